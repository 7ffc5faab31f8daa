package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tOgg1/planproof/internal/dashboard"
	"github.com/tOgg1/planproof/internal/htmlview"
	"github.com/tOgg1/planproof/internal/tui"
	"github.com/tOgg1/planproof/internal/tui/styles"
)

// Output formats for headless commands.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatHTML  = "html"
)

const defaultTextWidth = 100

var outputFormats = []string{formatText, formatTable, formatJSON, formatYAML, formatHTML}

func validateFormat(format string) error {
	for _, f := range outputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (want %s)", format, strings.Join(outputFormats, "|"))
}

// textStyle picks the theme and width for text output.
type textStyle struct {
	theme styles.Theme
	width int
}

func writeDashboard(out io.Writer, ui *dashboard.UI, format string, style textStyle) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ui)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(ui); err != nil {
			return err
		}
		return enc.Close()
	case formatHTML:
		renderer, err := htmlview.New()
		if err != nil {
			return err
		}
		return renderer.Render(out, ui)
	case formatTable:
		return writeSummaryTable(out, ui)
	default:
		_, err := fmt.Fprintln(out, tui.RenderDashboard(ui, style.width, style.theme))
		return err
	}
}

// writeSummaryTable prints the verdict, checks and schedule as plain tables.
func writeSummaryTable(out io.Writer, ui *dashboard.UI) error {
	if _, err := fmt.Fprintf(out, "%s %s\n\n", ui.Badge.Icon, ui.Badge.Text); err != nil {
		return err
	}

	checks := make([][]string, 0, len(ui.Checklist)+1)
	for _, item := range ui.Checklist {
		checks = append(checks, []string{item.Icon, item.Label, item.Value})
	}
	checks = append(checks, []string{"", ui.Coverage.Label, ui.Coverage.Value})
	if err := writeTable(out, []string{"", "CHECK", "VALUE"}, checks); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "\n%s\n", ui.Timeline.Counter); err != nil {
		return err
	}
	if len(ui.Timeline.Cards) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(ui.Timeline.Cards))
	for _, card := range ui.Timeline.Cards {
		if card.Invalid {
			rows = append(rows, []string{strconv.Itoa(card.Position), "", "", "", card.Message, ""})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(card.Position),
			card.Start,
			card.End,
			strconv.Itoa(card.Minutes),
			tableCell(card.Task),
			formatYesNo(card.Feasibility != ""),
		})
	}
	return writeTable(out, []string{"#", "START", "END", "MIN", "TASK", "FLAGGED"}, rows)
}
