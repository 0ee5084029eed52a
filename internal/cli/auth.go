package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/pagedlist/internal/auth"
	"github.com/idilsaglam/pagedlist/internal/ui"
)

// stdin is where `auth login` reads a pasted token.
var stdin io.Reader = os.Stdin

// getAuthCmd returns the token management commands for the http source.
func getAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the API token of the http source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return usagef("usage: pagedlist auth <login|logout|status|whoami>")
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "login [token]",
			Short: "Save a token (prompts when omitted)",
			Args:  maxArgs(1),
			RunE:  func(cmd *cobra.Command, args []string) error { return doAuthLogin(args) },
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Delete the saved token",
			Args:  noArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return doAuthLogout() },
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show where the token comes from",
			Args:  noArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return doAuthStatus() },
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Decode the token's claims locally",
			Args:  noArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return doAuthWhoAmI() },
		},
	)
	return cmd
}

func doAuthLogin(args []string) error {
	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		fmt.Fprint(ui.Out, "Paste your token: ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read token: %w", err)
		}
		token = line
	}
	if err := auth.SetToken(token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	ui.OK("logged in")
	return nil
}

func doAuthLogout() error {
	ti, _ := auth.GetToken()
	if ti != nil && ti.Source == "env" {
		ui.OK("token is provided by " + auth.EnvVar + " env var (nothing to delete)")
		return nil
	}
	if err := auth.DeleteToken(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	ui.OK("logged out")
	return nil
}

func doAuthStatus() error {
	ti, err := auth.GetToken()
	if err != nil {
		return err
	}
	if ti == nil {
		fmt.Fprintln(ui.Out, ui.MutedStyle.Render("not logged in"))
		fmt.Fprintln(ui.Out, "Run: pagedlist auth login")
		return nil
	}
	fmt.Fprintf(ui.Out, "source: %s\n", ti.Source)
	if ti.ExpiresAt != nil {
		fmt.Fprintf(ui.Out, "expires: %s\n", ti.ExpiresAt.UTC().Format(time.RFC3339))
	} else {
		fmt.Fprintln(ui.Out, "expires: (unknown)")
	}
	fmt.Fprintln(ui.Out, "env override: "+auth.EnvVar)
	return nil
}

// whoami decodes a JWT locally (unsigned); opaque tokens print basic info.
func doAuthWhoAmI() error {
	ti, err := auth.GetToken()
	if err != nil {
		return err
	}
	if ti == nil {
		return usagef("not logged in. Run: pagedlist auth login")
	}
	if claims, ok := auth.Claims(ti.Token); ok {
		b, _ := json.MarshalIndent(claims, "", "  ")
		fmt.Fprintln(ui.Out, "JWT payload:")
		fmt.Fprintln(ui.Out, string(b))
		return nil
	}
	fmt.Fprintln(ui.Out, "Opaque token (cannot introspect locally).")
	fmt.Fprintln(ui.Out, "source:", ti.Source)
	return nil
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return usagef("%s takes at most %d argument(s)", cmd.CommandPath(), n)
		}
		return nil
	}
}
