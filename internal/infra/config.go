package infra

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings. After LoadConfig parses the
// file, the API key may be overridden through the environment.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	API struct {
		BaseURL    string `yaml:"base_url"`
		Key        string `yaml:"key"`
		TimeoutSec int    `yaml:"timeout_sec"`
		DailyQuota int    `yaml:"daily_quota"`
	} `yaml:"api"`

	Cache struct {
		GainersLosersTTLMin  int `yaml:"gainers_losers_ttl_min"`
		FundamentalsTTLHours int `yaml:"fundamentals_ttl_hours"`
	} `yaml:"cache"`

	Search struct {
		DebounceMS int `yaml:"debounce_ms"`
		TTLMin     int `yaml:"ttl_min"`
	} `yaml:"search"`

	Storage struct {
		// Path overrides the default OS config-dir DB location.
		// Mainly for tests and portable installs.
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with the documented defaults.
func (c *Config) applyDefaults() {
	if c.API.TimeoutSec == 0 {
		c.API.TimeoutSec = 10
	}
	if c.API.DailyQuota == 0 {
		c.API.DailyQuota = 25 // free tier
	}
	if c.Cache.GainersLosersTTLMin == 0 {
		c.Cache.GainersLosersTTLMin = 15
	}
	if c.Cache.FundamentalsTTLHours == 0 {
		c.Cache.FundamentalsTTLHours = 24
	}
	if c.Search.DebounceMS == 0 {
		c.Search.DebounceMS = 1000
	}
	if c.Search.TTLMin == 0 {
		c.Search.TTLMin = 15
	}
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if c.API.BaseURL == "" || (!strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://")) {
		return fmt.Errorf("invalid API base URL: %s", c.API.BaseURL)
	}
	if c.API.TimeoutSec <= 0 {
		return fmt.Errorf("API timeout must be positive")
	}
	if c.Cache.GainersLosersTTLMin <= 0 || c.Cache.FundamentalsTTLHours <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	if c.Search.DebounceMS <= 0 {
		return fmt.Errorf("search debounce must be positive")
	}
	return nil
}

// GainersLosersTTL returns the snapshot TTL as a duration.
func (c *Config) GainersLosersTTL() time.Duration {
	return time.Duration(c.Cache.GainersLosersTTLMin) * time.Minute
}

// FundamentalsTTL returns the per-symbol fundamentals TTL as a duration.
func (c *Config) FundamentalsTTL() time.Duration {
	return time.Duration(c.Cache.FundamentalsTTLHours) * time.Hour
}

// SearchTTL returns the keyword search cache TTL as a duration.
func (c *Config) SearchTTL() time.Duration {
	return time.Duration(c.Search.TTLMin) * time.Minute
}

// SearchDebounce returns the search debounce delay as a duration.
func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// overrideWithEnv applies environment overrides for sensitive values.
func overrideWithEnv(cfg *Config) {
	if key := os.Getenv("STOCKS_API_KEY"); key != "" {
		cfg.API.Key = key
	}
}
