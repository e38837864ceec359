package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete planner service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Sources   SourcesConfig   `yaml:"sources"`
	Hotels    HotelsConfig    `yaml:"hotels"`
	Assist    AssistConfig    `yaml:"assist"`
	Database  DatabaseConfig  `yaml:"database"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SourceConfig describes one scrape source.
type SourceConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

// SourcesConfig holds the content sources and aggregation timing.
// Source order is the merge tie-break priority.
type SourcesConfig struct {
	Providers []SourceConfig `yaml:"providers"`

	Timeout      time.Duration `yaml:"-"`
	FetchTimeout time.Duration `yaml:"-"`
	CacheTTL     time.Duration `yaml:"-"`

	// Raw string values for YAML unmarshaling.
	TimeoutRaw      string `yaml:"timeout"`
	FetchTimeoutRaw string `yaml:"fetch_timeout"`
	CacheTTLRaw     string `yaml:"cache_ttl"`
}

// HotelsConfig holds the hotel-search boundary configuration.
type HotelsConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// AssistConfig holds guidance-generation configuration. With an empty
// API key the deterministic playbook generator is used.
type AssistConfig struct {
	OpenAIAPIKey string `yaml:"openai_api_key"`
	Model        string `yaml:"model"`
}

// DatabaseConfig holds the trip store configuration.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// RateLimitConfig holds per-IP limiting for the public endpoints.
type RateLimitConfig struct {
	Requests  int           `yaml:"requests"`
	Window    time.Duration `yaml:"-"`
	WindowRaw string        `yaml:"window"`
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// envVarPattern matches ${VAR} references inside config values.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads a YAML config file, expands ${VAR} environment references,
// parses durations and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{
		Sources: SourcesConfig{
			Providers: []SourceConfig{
				{Name: "tripadvisor", BaseURL: "http://localhost:9001"},
				{Name: "lonelyplanet", BaseURL: "http://localhost:9002"},
				{Name: "booking", BaseURL: "http://localhost:9003"},
			},
		},
	}
	// finish only fails on unparseable durations, which defaults never have.
	_ = cfg.finish()
	return cfg
}

// finish parses raw duration strings and fills defaults.
func (c *Config) finish() error {
	durations := []struct {
		raw  string
		dst  *time.Duration
		def  time.Duration
		name string
	}{
		{c.Sources.TimeoutRaw, &c.Sources.Timeout, 2 * time.Second, "sources.timeout"},
		{c.Sources.FetchTimeoutRaw, &c.Sources.FetchTimeout, 2 * time.Second, "sources.fetch_timeout"},
		{c.Sources.CacheTTLRaw, &c.Sources.CacheTTL, 30 * time.Second, "sources.cache_ttl"},
		{c.RateLimit.WindowRaw, &c.RateLimit.Window, time.Minute, "rate_limit.window"},
	}
	for _, d := range durations {
		if d.raw == "" {
			*d.dst = d.def
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", d.name, err)
		}
		*d.dst = parsed
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 10
	}
	if c.Database.Path == "" {
		c.Database.Path = "./travel.db"
	}
	if c.Hotels.BaseURL == "" {
		c.Hotels.BaseURL = "https://booking-com.p.rapidapi.com/v1"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	return nil
}
