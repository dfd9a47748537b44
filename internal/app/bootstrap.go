package app

import (
	"context"
	"log/slog"

	"stock_go/internal/infra"
	"stock_go/internal/infra/alpha"
	"stock_go/internal/infra/storage"
	"stock_go/internal/store"
)

// DefaultConfigPath is where the CLI looks for configuration unless
// told otherwise.
const DefaultConfigPath = "configs/config.yaml"

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config     *infra.Config
	Storage    *storage.Storage
	KV         *storage.KV
	Quotes     *alpha.Client
	Cache      *store.CacheStore
	Watchlists *store.WatchlistStore
	Search     *store.SearchService
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization: config, logger,
// storage, and the two stores.
func (b *Bootstrap) Initialize(ctx context.Context, configPath string) error {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	// 1. Load Config
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Initialize Storage (DB)
	var st *storage.Storage
	if cfg.Storage.Path != "" {
		st, err = storage.NewStorageAt(cfg.Storage.Path)
	} else {
		st, err = storage.NewStorage()
	}
	if err != nil {
		return err
	}
	b.Storage = st
	b.KV = storage.NewKV(st, logger)
	slog.Info("database initialized")

	// 4. Quote API client and stores
	b.Quotes = alpha.NewClient(cfg)
	b.Cache = store.NewCacheStore(ctx, b.Quotes, b.KV, store.CacheOptions{
		GainersLosersTTL: cfg.GainersLosersTTL(),
		FundamentalsTTL:  cfg.FundamentalsTTL(),
		SearchTTL:        cfg.SearchTTL(),
	})
	b.Watchlists = store.NewWatchlistStore(ctx, b.KV)
	b.Search = store.NewSearchService(b.Cache)
	slog.Info("stores ready")

	return nil
}
