package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"feeTierScope/internal/model"
	"feeTierScope/internal/recommend"
)

func runRecommend(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker, err := e.tracker(ctx)
	if err != nil {
		return err
	}

	pair := model.NewTokenPair(e.cfg.Token0, e.cfg.Token1)
	result := tracker.Resolve(ctx, pair)
	report := recommend.Evaluate(pair, result)

	fields := []zap.Field{
		zap.String("pair", pair.Key()),
		zap.String("source", string(e.cfg.Source)),
		zap.Stringer("status", report.Status),
		zap.Int("records", report.Records),
	}
	if report.Recommended != nil {
		fields = append(fields, zap.Stringer("fee", *report.Recommended))
	}
	e.logger.Info("recommendation evaluated", fields...)

	return writeJSON(report)
}
