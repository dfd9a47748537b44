package alpha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"stock_go/internal/domain"
	"stock_go/internal/infra"
)

// DefaultBaseURL is the public query endpoint.
const DefaultBaseURL = "https://www.alphavantage.co/query"

// Client is the quote API client (boundary layer). It implements
// domain.QuoteAPI and owns its transport: timeouts live here, callers
// apply none of their own.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a quote API client from configuration.
func NewClient(cfg *infra.Config) *Client {
	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.API.Key,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSec) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		logger: slog.Default().With("module", "alpha_client"),
	}
}

// SearchSymbols looks up symbols matching the given keywords.
func (c *Client) SearchSymbols(ctx context.Context, keywords string) ([]domain.SymbolMatch, error) {
	params := url.Values{}
	params.Set("function", "SYMBOL_SEARCH")
	params.Set("keywords", keywords)

	var resp searchResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}

	matches := make([]domain.SymbolMatch, 0, len(resp.BestMatches))
	for _, m := range resp.BestMatches {
		matches = append(matches, domain.SymbolMatch{
			Symbol:      m.Symbol,
			Name:        m.Name,
			Type:        m.Type,
			Region:      m.Region,
			MarketOpen:  m.MarketOpen,
			MarketClose: m.MarketClose,
			Timezone:    m.Timezone,
			Currency:    m.Currency,
			MatchScore:  m.MatchScore,
		})
	}
	return matches, nil
}

// TopGainersLosers fetches the current top movers snapshot.
func (c *Client) TopGainersLosers(ctx context.Context) (*domain.GainersLosers, error) {
	params := url.Values{}
	params.Set("function", "TOP_GAINERS_LOSERS")

	var resp gainersLosersResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}

	return &domain.GainersLosers{
		LastUpdated: resp.LastUpdated,
		TopGainers:  toSummaries(resp.TopGainers),
		TopLosers:   toSummaries(resp.TopLosers),
	}, nil
}

// CompanyOverview fetches the fundamentals record for a symbol.
func (c *Client) CompanyOverview(ctx context.Context, symbol string) (*domain.Fundamentals, error) {
	params := url.Values{}
	params.Set("function", "OVERVIEW")
	params.Set("symbol", symbol)

	var resp overviewResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Symbol == "" {
		// The API answers unknown symbols with an empty object.
		return nil, fmt.Errorf("overview %s: %w", symbol, domain.ErrNoData)
	}

	return &domain.Fundamentals{
		Symbol:        resp.Symbol,
		Name:          resp.Name,
		Description:   resp.Description,
		Exchange:      resp.Exchange,
		Currency:      resp.Currency,
		Sector:        resp.Sector,
		Industry:      resp.Industry,
		MarketCap:     resp.MarketCap,
		PERatio:       resp.PERatio,
		PBRatio:       resp.PBRatio,
		ROE:           resp.ROE,
		EPS:           resp.EPS,
		DividendYield: resp.DividendYield,
		Week52High:    resp.Week52High,
		Week52Low:     resp.Week52Low,
		PreviousClose: resp.PreviousClose,
		DayOpen:       resp.DayOpen,
		DayHigh:       resp.DayHigh,
		DayLow:        resp.DayLow,
		Price:         resp.Price,
	}, nil
}

// Intraday fetches the 5-minute intraday series for a symbol, keyed by
// timestamp string.
func (c *Client) Intraday(ctx context.Context, symbol string) (map[string]domain.IntradayBar, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_INTRADAY")
	params.Set("symbol", symbol)
	params.Set("interval", "5min")

	var resp intradayResponse
	if err := c.doRequest(ctx, params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Series) == 0 {
		return nil, fmt.Errorf("intraday %s: %w", symbol, domain.ErrNoData)
	}

	bars := make(map[string]domain.IntradayBar, len(resp.Series))
	for ts, b := range resp.Series {
		bars[ts] = domain.IntradayBar{
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	return bars, nil
}

// doRequest performs one GET against the query endpoint and decodes the
// body into out. Quota notes and error payloads arrive with HTTP 200,
// so the body is inspected before decoding.
func (c *Client) doRequest(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	infra.GlobalMetrics.RecordAPIRequest()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		infra.GlobalMetrics.RecordError()
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		infra.GlobalMetrics.RecordError()
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		infra.GlobalMetrics.RecordError()
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := c.checkNotice(body); err != nil {
		infra.GlobalMetrics.RecordError()
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		infra.GlobalMetrics.RecordError()
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// checkNotice detects the API's out-of-band notes. The free tier
// answers over-quota requests with HTTP 200 and an "Information" (or
// legacy "Note") field instead of data.
func (c *Client) checkNotice(body []byte) error {
	var notice apiNotice
	if err := json.Unmarshal(body, &notice); err != nil {
		// Not an object we recognize; let the real decode report it.
		return nil
	}
	if notice.ErrorMessage != "" {
		return fmt.Errorf("api error: %s", notice.ErrorMessage)
	}
	if notice.Information != "" || notice.Note != "" {
		c.logger.Warn("quota note from API", slog.String("note", notice.Information+notice.Note))
		return domain.ErrRateLimited
	}
	return nil
}

func toSummaries(items []tickerItem) []domain.TickerSummary {
	out := make([]domain.TickerSummary, 0, len(items))
	for _, it := range items {
		out = append(out, domain.TickerSummary{
			Ticker:           it.Ticker,
			Price:            it.Price,
			ChangeAmount:     it.ChangeAmount,
			ChangePercentage: it.ChangePercentage,
			Volume:           it.Volume,
		})
	}
	return out
}
