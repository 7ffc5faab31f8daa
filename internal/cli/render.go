package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tOgg1/planproof/internal/dashboard"
	"github.com/tOgg1/planproof/internal/planapi"
	"github.com/tOgg1/planproof/internal/tui/styles"
)

// maxInputBytes caps saved responses read by render.
const maxInputBytes = 8 << 20

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var input, format string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a saved planning response",
		Long:  "Project a saved planning service response through the dashboard renderers.",
		Example: `  curl -s -XPOST localhost:8000/api/plan -d @req.json | planproof render --input -
  planproof render --input response.json --format html > plan.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return &ExitError{Code: 2, Err: err}
			}
			data, err := readInput(cmd, input)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			s, err := loadSession(opts, false)
			if err != nil {
				return err
			}
			defer s.close()

			resp, decodeErr := planapi.DecodeResponse(data)
			if decodeErr != nil {
				decodeErr = &planapi.DecodeError{Err: decodeErr}
			}

			ui := dashboard.NewUI(s.location)
			lifecycle, err := dashboard.NewLifecycle(ui, dashboard.TickerScheduler{}, s.cfg.UI.MessageInterval)
			if err != nil {
				return err
			}
			dashboard.NewOrchestrator(ui, lifecycle, nil, s.defaults()).Complete(resp, decodeErr)

			style := textStyle{theme: styles.Plain, width: stdoutWidth(defaultTextWidth)}
			if hasTTY() {
				style.theme = styles.Lookup(s.cfg.UI.Theme)
			}
			if err := writeDashboard(cmd.OutOrStdout(), ui, format, style); err != nil {
				return err
			}
			if decodeErr != nil {
				return &ExitError{Code: 1, Err: decodeErr}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "response file, - for stdin")
	cmd.Flags().StringVarP(&format, "format", "o", formatText, "output format: text|table|json|yaml|html")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes))
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
