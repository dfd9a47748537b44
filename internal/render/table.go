// Package render draws domain values as terminal tables. It is the
// CLI stand-in for the app's screens; nothing here mutates state.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"stock_go/internal/domain"
)

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	return tw
}

// GainersLosers renders the top movers snapshot as two tables.
func GainersLosers(w io.Writer, snap *domain.GainersLosers) {
	if snap.LastUpdated != "" {
		fmt.Fprintln(w, "as of", snap.LastUpdated)
	}

	fmt.Fprintln(w, text.Bold.Sprint("TOP GAINERS"))
	tickerTable(w, snap.TopGainers)
	fmt.Fprintln(w, text.Bold.Sprint("TOP LOSERS"))
	tickerTable(w, snap.TopLosers)
}

func tickerTable(w io.Writer, rows []domain.TickerSummary) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"TICKER", "PRICE", "CHANGE", "CHANGE %", "VOLUME"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Ticker, r.Price, r.ChangeAmount, r.ChangePercentage, r.Volume})
	}
	tw.Render()
}

// Matches renders symbol search results.
func Matches(w io.Writer, matches []domain.SymbolMatch) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"SYMBOL", "NAME", "TYPE", "REGION", "CURRENCY", "SCORE"})
	for _, m := range matches {
		tw.AppendRow(table.Row{m.Symbol, m.Name, m.Type, m.Region, m.Currency, m.MatchScore})
	}
	tw.Render()
}

// Watchlists renders every watchlist with its stocks, bookmark-style.
func Watchlists(w io.Writer, lists []domain.Watchlist) {
	if len(lists) == 0 {
		fmt.Fprintln(w, "no watchlists yet")
		return
	}

	for _, wl := range lists {
		fmt.Fprintf(w, "%s  (%s)\n", text.Bold.Sprint(strings.ToUpper(wl.Name)), wl.ID)
		if len(wl.Stocks) == 0 {
			fmt.Fprintln(w, "  empty")
			continue
		}
		tw := newTable(w)
		tw.AppendHeader(table.Row{"SYMBOL", "NAME", "52W LOW", "52W HIGH"})
		for _, st := range wl.Stocks {
			tw.AppendRow(table.Row{st.Symbol, st.Name, st.Low, st.High})
		}
		tw.Render()
	}
}

// Fundamentals renders a company overview as label/value rows.
func Fundamentals(w io.Writer, f *domain.Fundamentals) {
	fmt.Fprintln(w, text.Bold.Sprintf("%s (%s)", f.Symbol, f.Name))

	tw := newTable(w)
	rows := []struct{ label, value string }{
		{"Exchange", f.Exchange},
		{"Currency", f.Currency},
		{"Sector", f.Sector},
		{"Industry", f.Industry},
		{"Market Cap", f.MarketCap},
		{"P/E Ratio", f.PERatio},
		{"P/B Ratio", f.PBRatio},
		{"ROE", f.ROE},
		{"EPS", f.EPS},
		{"Dividend Yield", f.DividendYield},
		{"52 Week High", f.Week52High},
		{"52 Week Low", f.Week52Low},
		{"Previous Close", f.PreviousClose},
	}
	for _, r := range rows {
		v := r.value
		if v == "" {
			v = "-"
		}
		tw.AppendRow(table.Row{r.label, v})
	}
	tw.Render()

	if f.Description != "" {
		fmt.Fprintln(w, f.Description)
	}
}

// ChartPoints renders an intraday series as time/close rows. Labelled
// points mark the chart's axis ticks.
func ChartPoints(w io.Writer, points []domain.ChartPoint) {
	if len(points) == 0 {
		fmt.Fprintln(w, "no intraday data")
		return
	}

	tw := newTable(w)
	tw.AppendHeader(table.Row{"TIME", "CLOSE", "TICK"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, p := range points {
		tw.AppendRow(table.Row{p.Time, p.Close.String(), p.Label})
	}
	tw.Render()
}
