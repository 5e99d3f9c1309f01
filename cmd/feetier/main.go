package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "feetier",
		Short:        "Fee tier recommendation and liquidity depth tool",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("subgraph-url", "", "subgraph GraphQL endpoint")
	root.PersistentFlags().String("source", "positions", "record source (positions, pools, postgres)")
	root.PersistentFlags().String("pg-dsn", "", "Postgres DSN for the postgres source")
	root.PersistentFlags().String("rpc", "", "RPC URL for reading slot0 (falls back to the subgraph)")
	root.PersistentFlags().Int("max-retries", 3, "maximum retry attempts per query")
	root.PersistentFlags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	root.PersistentFlags().Duration("request-timeout", 15*time.Second, "HTTP timeout per query")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	recommendCmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a fee tier for a token pair",
		RunE:  runRecommend,
	}
	recommendCmd.Flags().String("token0", "", "first token address")
	recommendCmd.Flags().String("token1", "", "second token address")
	root.AddCommand(recommendCmd)

	ticksCmd := &cobra.Command{
		Use:   "ticks",
		Short: "Fetch initialized ticks around a pool's current price",
		RunE:  runTicks,
	}
	ticksCmd.Flags().String("token0", "", "first token address")
	ticksCmd.Flags().String("token1", "", "second token address")
	ticksCmd.Flags().String("fee", "", "fee tier (500, 3000, 10000)")
	ticksCmd.Flags().String("factory", "", "v3 factory address")
	ticksCmd.Flags().Int("surrounding-ticks", 300, "tick spacings on each side of the current tick")
	ticksCmd.Flags().Int("max-tick-pages", 10, "maximum pages of 1000 ticks")
	root.AddCommand(ticksCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll a token pair and report when a recommendation fires",
		RunE:  runWatch,
	}
	watchCmd.Flags().String("token0", "", "first token address")
	watchCmd.Flags().String("token1", "", "second token address")
	watchCmd.Flags().Duration("poll-interval", 30*time.Second, "poll interval")
	root.AddCommand(watchCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the fee tier and depth HTTP API",
		RunE:  runServe,
	}
	serveCmd.Flags().String("listen", ":8080", "listen address")
	serveCmd.Flags().String("factory", "", "v3 factory address")
	serveCmd.Flags().Int("surrounding-ticks", 300, "tick spacings on each side of the current tick")
	serveCmd.Flags().Int("max-tick-pages", 10, "maximum pages of 1000 ticks")
	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
