package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"feeTierScope/internal/metrics"
	"feeTierScope/internal/model"
	"feeTierScope/internal/recommend"
)

func runWatch(cmd *cobra.Command, _ []string) error {
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
	session := recommend.NewSession(e.logger.Named("session"))
	decision := session.InputsChanged(pair)
	if !pair.Complete() {
		e.logger.Warn("incomplete token pair, nothing to watch", zap.Stringer("state", decision.State))
		return nil
	}

	interval := e.cfg.PollInterval
	if interval == 0 {
		interval = 30 * time.Second
	}

	e.logger.Info("watch started",
		zap.String("pair", pair.Key()),
		zap.String("source", string(e.cfg.Source)),
		zap.Duration("poll_interval", interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		decision = session.QueryResolved(pair, tracker.Resolve(ctx, pair))
		if ctx.Err() != nil {
			return nil
		}
		if decision.Fire {
			metrics.Recommendations.WithLabelValues(decision.Tier.String()).Inc()
			if err := writeJSON(decision); err != nil {
				return err
			}
		} else {
			e.logger.Debug("watch poll",
				zap.Stringer("state", decision.State),
				zap.Bool("show_manual", decision.ShowManual),
			)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
