package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"feeTierScope/internal/dex"
	"feeTierScope/internal/source"
	"feeTierScope/internal/subgraph"
	"feeTierScope/internal/tickwindow"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	SubgraphURL      string
	RPCURL           string
	PGDSN            string
	Source           source.Kind
	Factory          string
	Token0           string
	Token1           string
	Fee              string
	SurroundingTicks int
	MaxTickPages     int
	MaxRetries       int
	RetryBackoff     time.Duration
	RequestTimeout   time.Duration
	PollInterval     time.Duration
	Listen           string
	LogLevel         string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FEETIER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("subgraph-url", subgraph.DefaultURL)
	v.SetDefault("source", string(source.KindPositions))
	v.SetDefault("factory", dex.DefaultFactory)
	v.SetDefault("surrounding-ticks", tickwindow.DefaultSurroundingTicks)
	v.SetDefault("max-tick-pages", 10)
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("request-timeout", 15*time.Second)
	v.SetDefault("poll-interval", 30*time.Second)
	v.SetDefault("listen", ":8080")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		SubgraphURL:      v.GetString("subgraph-url"),
		RPCURL:           v.GetString("rpc"),
		PGDSN:            v.GetString("pg-dsn"),
		Source:           source.Kind(strings.ToLower(strings.TrimSpace(v.GetString("source")))),
		Factory:          v.GetString("factory"),
		Token0:           v.GetString("token0"),
		Token1:           v.GetString("token1"),
		Fee:              v.GetString("fee"),
		SurroundingTicks: v.GetInt("surrounding-ticks"),
		MaxTickPages:     v.GetInt("max-tick-pages"),
		MaxRetries:       v.GetInt("max-retries"),
		RetryBackoff:     v.GetDuration("retry-backoff"),
		RequestTimeout:   v.GetDuration("request-timeout"),
		PollInterval:     v.GetDuration("poll-interval"),
		Listen:           v.GetString("listen"),
		LogLevel:         v.GetString("log-level"),
	}

	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail deep inside a command.
func (c Config) Validate() error {
	switch c.Source {
	case source.KindPositions, source.KindPools:
		if strings.TrimSpace(c.SubgraphURL) == "" {
			return fmt.Errorf("subgraph url is required for source %s", c.Source)
		}
	case source.KindPostgres:
		if strings.TrimSpace(c.PGDSN) == "" {
			return fmt.Errorf("pg dsn is required for source %s", c.Source)
		}
	default:
		return fmt.Errorf("unsupported source: %q", c.Source)
	}
	if c.SurroundingTicks < 0 {
		return fmt.Errorf("surrounding ticks must be >= 0")
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll interval must be >= 0")
	}
	if c.Factory != "" {
		if _, err := dex.ParseAddress(c.Factory); err != nil {
			return fmt.Errorf("factory: %w", err)
		}
	}
	return nil
}
