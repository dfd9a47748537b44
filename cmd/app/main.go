package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"stock_go/internal/app"
	"stock_go/internal/domain"
	"stock_go/internal/infra"
	"stock_go/internal/render"
	"stock_go/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap := app.NewBootstrap()
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "stocks",
		Short:         "Track movers, fundamentals, and personal watchlists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Initialize(cmd.Context(), configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", app.DefaultConfigPath, "config file path")

	rootCmd.AddCommand(
		newGainersCmd(bootstrap),
		newSearchCmd(bootstrap),
		newOverviewCmd(bootstrap),
		newChartCmd(bootstrap),
		newWatchlistCmd(bootstrap),
		newQuotaCmd(bootstrap),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printFetchFailure(err)
		os.Exit(1)
	}
}

// printFetchFailure renders failures the way the screens do: a short
// human message, with the rate-limit case called out explicitly.
func printFetchFailure(err error) {
	if domain.IsRateLimited(err) {
		fmt.Fprintln(os.Stderr, "No data: the daily API request limit (25/day) is exhausted. Try again tomorrow.")
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
}

func newGainersCmd(b *app.Bootstrap) *cobra.Command {
	return &cobra.Command{
		Use:   "gainers",
		Short: "Show the top gainers/losers snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := b.Cache.FetchGainersLosers(cmd.Context())
			if err != nil {
				return err
			}
			render.GainersLosers(cmd.OutOrStdout(), snap)
			return nil
		},
	}
}

func newSearchCmd(b *app.Bootstrap) *cobra.Command {
	return &cobra.Command{
		Use:   "search [keywords]",
		Short: "Search symbols; with no arguments, reads queries from stdin with debouncing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				matches, err := b.Search.Search(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				render.Matches(cmd.OutOrStdout(), matches)
				return nil
			}
			return runInteractiveSearch(cmd, b.Search, b.Config)
		},
	}
}

// runInteractiveSearch feeds stdin lines through the debouncer, so a
// burst of refined queries costs one API call, like the search box.
func runInteractiveSearch(cmd *cobra.Command, svc *store.SearchService, cfg *infra.Config) error {
	out := cmd.OutOrStdout()
	deb := svc.Debounced(cmd.Context(), cfg.SearchDebounce(),
		func(keywords string, matches []domain.SymbolMatch) {
			fmt.Fprintf(out, "results for %q:\n", keywords)
			render.Matches(out, matches)
		},
		func(keywords string, err error) {
			fmt.Fprintf(out, "search %q failed\n", keywords)
			printFetchFailure(err)
		})
	defer deb.Stop()

	fmt.Fprintln(out, "type to search, empty line or Ctrl+D to quit")
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		deb.Call(line)
	}
	deb.Flush()
	return scanner.Err()
}

func newOverviewCmd(b *app.Bootstrap) *cobra.Command {
	return &cobra.Command{
		Use:   "overview <symbol>",
		Short: "Show company fundamentals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := b.Cache.FetchFundamentals(cmd.Context(), strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			render.Fundamentals(cmd.OutOrStdout(), f)
			return nil
		},
	}
}

func newChartCmd(b *app.Bootstrap) *cobra.Command {
	return &cobra.Command{
		Use:   "chart <symbol>",
		Short: "Show the intraday close series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bars, err := b.Cache.FetchIntraday(cmd.Context(), strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			render.ChartPoints(cmd.OutOrStdout(), domain.BuildChartSeries(bars))
			return nil
		},
	}
}

func newWatchlistCmd(b *app.Bootstrap) *cobra.Command {
	wlCmd := &cobra.Command{
		Use:   "wl",
		Short: "Manage watchlists",
	}

	wlCmd.AddCommand(
		&cobra.Command{
			Use:   "ls",
			Short: "List all watchlists",
			RunE: func(cmd *cobra.Command, args []string) error {
				render.Watchlists(cmd.OutOrStdout(), b.Watchlists.Watchlists())
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a watchlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b.Watchlists.AddWatchlist(cmd.Context(), args[0])
				render.Watchlists(cmd.OutOrStdout(), b.Watchlists.Watchlists())
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a watchlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b.Watchlists.RemoveWatchlist(cmd.Context(), args[0])
				render.Watchlists(cmd.OutOrStdout(), b.Watchlists.Watchlists())
				return nil
			},
		},
		&cobra.Command{
			Use:   "bookmark <watchlist-id> <symbol>",
			Short: "Add a stock to a watchlist",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				symbol := strings.ToUpper(args[1])
				// The watchlist entry carries name and 52-week bounds,
				// so resolve fundamentals first (usually a cache hit).
				f, err := b.Cache.FetchFundamentals(cmd.Context(), symbol)
				if err != nil {
					return err
				}
				b.Watchlists.AddStock(cmd.Context(), args[0], f.AsStock())
				fmt.Fprintf(cmd.OutOrStdout(), "bookmarked %s: %v\n", symbol, b.Watchlists.IsBookmarked(symbol))
				return nil
			},
		},
		&cobra.Command{
			Use:   "unbookmark <watchlist-id> <symbol>",
			Short: "Remove a stock from a watchlist",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				symbol := strings.ToUpper(args[1])
				b.Watchlists.RemoveStock(cmd.Context(), args[0], symbol)
				fmt.Fprintf(cmd.OutOrStdout(), "bookmarked %s: %v\n", symbol, b.Watchlists.IsBookmarked(symbol))
				return nil
			},
		},
	)
	return wlCmd
}

func newQuotaCmd(b *app.Bootstrap) *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show API usage for this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := infra.GlobalMetrics.Snapshot(b.Config.API.DailyQuota)
			fmt.Fprintf(cmd.OutOrStdout(),
				"requests: %d  cache hits: %d  misses: %d  errors: %d  quota left (this session): %d\n",
				snap.APIRequests, snap.CacheHits, snap.CacheMisses, snap.ErrorsTotal, snap.QuotaRemaining)
			return nil
		},
	}
}
