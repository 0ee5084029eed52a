package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/pagedlist/internal/layout"
	"github.com/idilsaglam/pagedlist/internal/pager"
	"github.com/idilsaglam/pagedlist/internal/render"
	"github.com/idilsaglam/pagedlist/internal/store"
	"github.com/idilsaglam/pagedlist/internal/ui"
)

const FlagPages = "pages"

// getDumpCmd returns the non-interactive list command.
func getDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print memos without the interactive list",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := cmd.Flags().GetInt(FlagPages)
			if err != nil {
				return usagef("%s flag: %v", FlagPages, err)
			}
			if pages < 0 {
				return usagef("--%s must be >= 0", FlagPages)
			}
			return a.runDump(cmd.Context(), pages)
		},
	}
	cmd.Flags().Int(FlagPages, 1, "pages to load; 0 loads until the last page")
	return cmd
}

// runDump drives a pagination controller synchronously: each command is run
// to completion and its message handed straight back.
func (a *app) runDump(ctx context.Context, pages int) error {
	opts, err := surfaceOptions(a.cfg)
	if err != nil {
		return err
	}
	src, closeSrc, err := openSource(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	proxy := store.NewProxy(src, store.NewCollection(), a.log)
	ctrl := pager.New(proxy, pager.Config{Filter: opts.Filter, PageSize: opts.PageSize},
		pager.WithLogger(a.log), pager.WithContext(ctx))
	defer ctrl.Dispose()

	loaded := 0
	for cmd := ctrl.Init(); cmd != nil; cmd = ctrl.LoadNext() {
		ctrl.Handle(cmd())
		if err := ctrl.Err(); err != nil {
			return fmt.Errorf("load: %w", err)
		}
		loaded++
		if pages > 0 && loaded >= pages {
			break
		}
	}

	items := ctrl.Items()
	if opts.ListSort != nil {
		items = opts.ListSort(items)
	}
	width := layout.LeftAligned(opts.MaxWidth)(layout.TerminalWidth()) - 4
	if width < 20 {
		width = 20
	}

	cfg := ctrl.Config()
	header := ui.TitleStyle.Render(opts.Title)
	if cfg.Filter != "" {
		header += "  " + ui.AccentStyle.Render(cfg.Filter)
	}
	lines := []string{header, ""}
	if len(items) == 0 {
		lines = append(lines, ui.MutedStyle.Render("∅  No data"))
	} else {
		lines = append(lines, strings.Split(render.Block(items, width, opts.Renderer), "\n")...)
	}
	footer := fmt.Sprintf("%d memos · %d page(s) of %d", len(items), loaded, cfg.PageSize)
	if ctrl.LoadMoreVisible() {
		footer += " · more available (--pages 0 loads all)"
	}
	lines = append(lines, "", ui.MutedStyle.Render(footer))
	ui.Panel(lines)
	return nil
}
