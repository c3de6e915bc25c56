package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/testmanifest/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-lint the manifest whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Manifest.Path == "" {
				return errNoManifest
			}
			w, err := watch.New(a.cfg.Manifest.Path, a.cfg.Watch.Debounce, a.log)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			go func() {
				select {
				case <-sigCh:
					a.log.Info().Msg("Shutting down gracefully...")
					cancel()
				case <-ctx.Done():
				}
			}()

			check := func() error {
				report, err := a.lint()
				if err != nil {
					return err
				}
				return writeReport(cmd.OutOrStdout(), formatText, report)
			}
			if err := check(); err != nil {
				a.log.Error().Err(err).Msg("Manifest check failed")
			}
			return w.Watch(ctx, check)
		},
	}
}
