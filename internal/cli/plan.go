package cli

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tOgg1/planproof/internal/dashboard"
	"github.com/tOgg1/planproof/internal/logging"
	"github.com/tOgg1/planproof/internal/tui/styles"
)

type planOptions struct {
	context  string
	file     string
	time     string
	timezone string
	variant  string
	format   string
}

func newPlanCmd(opts *globalOptions) *cobra.Command {
	po := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and verify one plan without the interactive UI",
		Example: `  planproof plan --context "Gym at 7, report due at noon"
  planproof plan --file notes.txt --variant v3_agentic_repair --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts, po)
		},
	}
	cmd.Flags().StringVar(&po.context, "context", "", "free-text description of your day")
	cmd.Flags().StringVar(&po.file, "file", "", "read the context from a file (- for stdin)")
	cmd.Flags().StringVar(&po.time, "time", "", "current time, e.g. 2024-01-01T09:00 (default now)")
	cmd.Flags().StringVar(&po.timezone, "timezone", "", "timezone sent to the planner (default from config)")
	cmd.Flags().StringVar(&po.variant, "variant", "", "planner variant: v1_naive|v2_structured|v3_agentic_repair")
	cmd.Flags().StringVarP(&po.format, "format", "o", formatText, "output format: text|table|json|yaml|html")
	return cmd
}

func runPlan(cmd *cobra.Command, opts *globalOptions, po *planOptions) error {
	if err := validateFormat(po.format); err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	text := po.context
	if po.file != "" {
		data, err := readInput(cmd, po.file)
		if err != nil {
			return &ExitError{Code: 2, Err: err}
		}
		text = string(data)
	}

	s, err := loadSession(opts, false)
	if err != nil {
		return err
	}
	defer s.close()

	ui := dashboard.NewUI(s.location)
	lifecycle, err := dashboard.NewLifecycle(ui, dashboard.TickerScheduler{}, s.cfg.UI.MessageInterval)
	if err != nil {
		return err
	}
	orchestrator := dashboard.NewOrchestrator(ui, lifecycle, s.client(), s.defaults())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx = logging.WithContext(ctx, logging.Component("plan"))

	submitErr := orchestrator.Submit(ctx, dashboard.FormInput{
		Context:     text,
		CurrentTime: po.time,
		Timezone:    po.timezone,
		Variant:     po.variant,
	})
	if errors.Is(submitErr, dashboard.ErrEmptyContext) || errors.Is(submitErr, dashboard.ErrInvalidTime) {
		return &ExitError{Code: 2, Err: errors.New(ui.Notice)}
	}

	style := textStyle{theme: styles.Plain, width: stdoutWidth(defaultTextWidth)}
	if hasTTY() {
		style.theme = styles.Lookup(s.cfg.UI.Theme)
	}
	if err := writeDashboard(cmd.OutOrStdout(), ui, po.format, style); err != nil {
		return err
	}

	if submitErr != nil {
		logger := logging.FromContext(ctx)
		logger.Error().Err(submitErr).Msg("plan request failed")
		return &ExitError{Code: 1, Err: submitErr}
	}
	if ui.Badge.State == dashboard.BadgeFail {
		return &ExitError{Code: 3, Err: errors.New(ui.Badge.Text), Printed: true}
	}
	return nil
}
