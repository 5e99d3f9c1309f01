package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"feeTierScope/internal/model"
)

func runTicks(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	var tier *model.FeeTier
	if e.cfg.Fee != "" {
		parsed, err := model.ParseFeeTier(e.cfg.Fee)
		if err != nil {
			return err
		}
		tier = &parsed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := e.depthService(ctx)
	if err != nil {
		return err
	}

	pair := model.NewTokenPair(e.cfg.Token0, e.cfg.Token1)
	result := svc.Depth(ctx, pair, tier)
	if result.Err != nil {
		e.logger.Warn("depth query failed", zap.String("pair", pair.Key()), zap.Error(result.Err))
	}

	return writeJSON(result)
}
