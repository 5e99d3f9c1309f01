package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"feeTierScope/internal/api"
)

func runServe(cmd *cobra.Command, _ []string) error {
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
	svc, err := e.depthService(ctx)
	if err != nil {
		return err
	}

	return api.NewServer(e.cfg.Listen, tracker, svc, e.logger.Named("api")).Run(ctx)
}
