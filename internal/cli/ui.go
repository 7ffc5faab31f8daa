package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tOgg1/planproof/internal/tui"
)

func newUICmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the planning dashboard",
		Long:  "Launch the interactive terminal dashboard. This is the default command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}
}

func runUI(_ *cobra.Command, opts *globalOptions) error {
	if !hasTTY() {
		return &ExitError{
			Code: 2,
			Err:  errors.New("the dashboard requires an interactive terminal; use `planproof plan` for headless output"),
		}
	}

	s, err := loadSession(opts, true)
	if err != nil {
		return err
	}
	defer s.close()

	return tui.Run(tui.Config{
		Planner:  s.client(),
		Defaults: s.defaults(),
		Location: s.location,
		Theme:    s.cfg.UI.Theme,
		Interval: s.cfg.UI.MessageInterval,
	})
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// stdoutWidth is the terminal width, or fallback when stdout is not a
// terminal.
func stdoutWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
