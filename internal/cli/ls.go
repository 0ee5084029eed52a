package cli

import (
	"context"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/pagedlist/internal/config"
	"github.com/idilsaglam/pagedlist/internal/store"
	"github.com/idilsaglam/pagedlist/internal/surface"
)

// getListCmd returns the interactive list command.
func getListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Browse memos interactively",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.runList(ctx)
		},
	}
}

func (a *app) runList(ctx context.Context) error {
	opts, err := surfaceOptions(a.cfg)
	if err != nil {
		return err
	}
	opts.Logger = a.log

	src, closeSrc, err := openSource(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	proxy := store.NewProxy(src, store.NewCollection(), a.log)
	watch := func(send func(tea.Msg)) {
		config.Watch(a.v, func(c *config.Config) {
			a.log.WithField("filter", c.List.Filter).Info("config reloaded")
			send(surface.ConfigChangedMsg{Filter: effectiveFilter(c.List), PageSize: c.List.PageSize})
		})
	}
	return surface.Run(ctx, proxy, opts, watch)
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s takes no arguments", cmd.CommandPath())
	}
	return nil
}
