// Package cli wires configuration, sources and the list surface into the
// pagedlist command tree.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/pagedlist/internal/config"
	"github.com/idilsaglam/pagedlist/internal/logging"
	"github.com/idilsaglam/pagedlist/internal/ui"
)

const (
	FlagConfig     = "config"
	FlagSource     = "source"
	FlagData       = "data"
	FlagAPIURL     = "api-url"
	FlagFilter     = "filter"
	FlagPageSize   = "page-size"
	FlagRoute      = "route"
	FlagSort       = "sort"
	FlagRenderer   = "renderer"
	FlagTheme      = "theme"
	FlagMaxWidth   = "max-width"
	FlagBreakpoint = "breakpoint"
	FlagLogLevel   = "log-level"
	FlagLogFile    = "log-file"
)

// usageError marks bad invocations; Run maps it to exit code 2.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// app is the state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	log      *logrus.Logger
	closeLog func()
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(ui.Out)
	root.SetErr(ui.Err)

	if len(args) == 0 {
		_ = root.Help()
		return 2
	}

	err := root.Execute()
	if a.closeLog != nil {
		a.closeLog()
	}
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue *usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		return 2
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "pagedlist",
		Short:         "Browse memos page by page",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	pf := root.PersistentFlags()
	pf.String(FlagConfig, "", "config file (default $HOME/.pagedlist/config.yaml)")
	pf.String(FlagSource, "", "memo source: json, sqlite or http (default json)")
	pf.String(FlagData, "", "data file for the json/sqlite source")
	pf.String(FlagAPIURL, "", "base URL of the http source")
	pf.String(FlagFilter, "", "filter, e.g. \"tag:go creator:alice pinned\"")
	pf.Int(FlagPageSize, 0, "memos per page")
	pf.String(FlagRoute, "", "view: /, /explore, /archived or /u/<name>")
	pf.String(FlagSort, "", "list sort: none, pinned or newest")
	pf.String(FlagRenderer, "", "item renderer: plain or markdown")
	pf.String(FlagTheme, "", "color theme: classic, neon or mono")
	pf.Int(FlagMaxWidth, 0, "list container width cap")
	pf.Int(FlagBreakpoint, 0, "pull-to-refresh is on below this width")
	pf.String(FlagLogLevel, "", "log level")
	pf.String(FlagLogFile, "", "log file (logs are discarded otherwise)")

	root.AddCommand(
		getListCmd(a),
		getDumpCmd(a),
		getSeedCmd(a),
		getAuthCmd(),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	a.v = config.New()
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	path, err := cmd.Flags().GetString(FlagConfig)
	if err != nil {
		return usagef("%s flag: %v", FlagConfig, err)
	}
	cfg, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetTheme(cfg.UI.Theme)
	l, closeFn, err := logging.New(cfg.Log)
	if err != nil {
		return usagef("%v", err)
	}
	a.log, a.closeLog = l, closeFn
	a.log.WithFields(logrus.Fields{"command": cmd.Name(), "source": cfg.Source}).Debug("config loaded")
	return nil
}
