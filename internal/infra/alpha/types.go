package alpha

// Wire structs for the quote API. Field names mirror the upstream JSON
// exactly, numbered prefixes included; everything is string-typed.

type searchResponse struct {
	BestMatches []searchMatch `json:"bestMatches"`
}

type searchMatch struct {
	Symbol      string `json:"1. symbol"`
	Name        string `json:"2. name"`
	Type        string `json:"3. type"`
	Region      string `json:"4. region"`
	MarketOpen  string `json:"5. marketOpen"`
	MarketClose string `json:"6. marketClose"`
	Timezone    string `json:"7. timezone"`
	Currency    string `json:"8. currency"`
	MatchScore  string `json:"9. matchScore"`
}

type gainersLosersResponse struct {
	Metadata    string       `json:"metadata"`
	LastUpdated string       `json:"last_updated"`
	TopGainers  []tickerItem `json:"top_gainers"`
	TopLosers   []tickerItem `json:"top_losers"`
}

type tickerItem struct {
	Ticker           string `json:"ticker"`
	Price            string `json:"price"`
	ChangeAmount     string `json:"change_amount"`
	ChangePercentage string `json:"change_percentage"`
	Volume           string `json:"volume"`
}

type overviewResponse struct {
	Symbol        string `json:"Symbol"`
	Name          string `json:"Name"`
	Description   string `json:"Description"`
	Exchange      string `json:"Exchange"`
	Currency      string `json:"Currency"`
	Sector        string `json:"Sector"`
	Industry      string `json:"Industry"`
	MarketCap     string `json:"MarketCapitalization"`
	PERatio       string `json:"PERatio"`
	PBRatio       string `json:"PriceToBookRatio"`
	ROE           string `json:"ReturnOnEquityTTM"`
	EPS           string `json:"EPS"`
	DividendYield string `json:"DividendYield"`
	Week52High    string `json:"52WeekHigh"`
	Week52Low     string `json:"52WeekLow"`
	PreviousClose string `json:"PreviousClose"`
	DayOpen       string `json:"Open"`
	DayHigh       string `json:"High"`
	DayLow        string `json:"Low"`
	Price         string `json:"Price"`
}

type intradayResponse struct {
	Series map[string]intradayBar `json:"Time Series (5min)"`
}

type intradayBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// apiNotice captures the out-of-band notes the API sends instead of
// data: quota exhaustion ("Information"/"Note") and request errors.
type apiNotice struct {
	Information  string `json:"Information"`
	Note         string `json:"Note"`
	ErrorMessage string `json:"Error Message"`
}
