package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tOgg1/planproof/internal/dashboard"
	"github.com/tOgg1/planproof/internal/tui/styles"
)

const (
	coverageBarWidth = 20
	minRenderWidth   = 40
)

// RenderDashboard draws the dashboard state as terminal text. Planner text
// is stripped of escape and control sequences before it is styled.
func RenderDashboard(ui *dashboard.UI, width int, theme styles.Theme) string {
	if width < minRenderWidth {
		width = minRenderWidth
	}

	cols := styles.ComputeColumnWidths(width)
	if theme.IsPlain() || cols.Sidebar == 0 {
		inner := width
		if !theme.IsPlain() {
			inner = width - 4
		}
		sidebar := renderSidebar(ui, inner, theme)
		timeline := renderTimeline(ui, inner, theme)
		if theme.IsPlain() {
			return sidebar + "\n\n" + timeline
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.PanelStyle(theme, false).Width(width-2).Render(sidebar),
			styles.PanelStyle(theme, true).Width(width-2).Render(timeline),
		)
	}

	sidebar := styles.PanelStyle(theme, false).Width(cols.Sidebar - 2).Render(renderSidebar(ui, cols.Sidebar-4, theme))
	timeline := styles.PanelStyle(theme, true).Width(cols.Timeline - 2).Render(renderTimeline(ui, cols.Timeline-4, theme))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, strings.Repeat(" ", styles.LayoutGap), timeline)
}

func renderSidebar(ui *dashboard.UI, width int, theme styles.Theme) string {
	var b strings.Builder

	badge := theme.Verdict(string(ui.Badge.State)).Bold(!theme.IsPlain()).
		Render(ui.Badge.Icon + " " + ui.Badge.Text)
	b.WriteString(badge)
	if ui.Confidence.Visible {
		b.WriteString("\n")
		b.WriteString(theme.Muted().Render(ui.Confidence.Text))
	}
	b.WriteString("\n\n")

	// Errors sit under the badge so a failed request stays in view.
	if ui.Errors.Visible {
		title := "ERRORS"
		style := theme.Verdict("warning")
		if ui.Errors.Priority {
			title = "ERRORS (!)"
			style = theme.Verdict("fail")
		}
		b.WriteString(heading(theme, title))
		for _, item := range ui.Errors.Items {
			b.WriteString(style.Render(bullet(item, width)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(heading(theme, "PRE-FLIGHT CHECKLIST"))
	for _, item := range ui.Checklist {
		label := padRight(item.Label, width-12)
		line := fmt.Sprintf("%s %s %s", item.Icon, label, item.Value)
		b.WriteString(theme.Verdict(string(item.State)).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(heading(theme, "METRICS"))
	for _, tile := range ui.Metrics {
		line := fmt.Sprintf("%s: %s", tile.Label, tile.Value)
		b.WriteString(theme.Verdict(string(tile.State)).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(heading(theme, "CONTEXT COVERAGE"))
	b.WriteString(theme.Verdict(string(ui.Coverage.State)).Render(coverageBar(ui.Coverage.Percent)))
	b.WriteString(" ")
	b.WriteString(ui.Coverage.Value)
	if ui.Coverage.State == dashboard.CoveragePending {
		b.WriteString(" ")
		b.WriteString(theme.Muted().Render(ui.Coverage.Label))
	}
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(heading(theme, "DETECTED CONSTRAINTS"))
	if len(ui.Constraints.Items) == 0 {
		b.WriteString(theme.Muted().Render(ui.Constraints.Placeholder))
		b.WriteString("\n")
	}
	for _, item := range ui.Constraints.Items {
		b.WriteString(bullet(item, width))
		b.WriteString("\n")
	}

	if ui.Repair.Visible {
		b.WriteString("\n")
		b.WriteString(heading(theme, "REPAIR"))
		state := "fail"
		if ui.Repair.Succeeded {
			state = "pass"
		}
		b.WriteString(theme.Verdict(state).Render(wrap(ui.Repair.Text, width)))
		b.WriteString("\n")
		if ui.Repair.Variant != "" {
			b.WriteString(theme.Muted().Render("variant: " + clean(ui.Repair.Variant)))
			b.WriteString("\n")
		}
	}

	if ui.Insights.HeaderVisible {
		b.WriteString("\n")
		b.WriteString(heading(theme, "PLANNER INSIGHTS"))
		if ui.Insights.Assumptions.Visible {
			b.WriteString(theme.Muted().Render("Assumptions"))
			b.WriteString("\n")
			for _, item := range ui.Insights.Assumptions.Items {
				b.WriteString(bullet(item, width))
				b.WriteString("\n")
			}
		}
		if ui.Insights.Questions.Visible {
			b.WriteString(theme.Muted().Render("Open Questions"))
			b.WriteString("\n")
			for _, item := range ui.Insights.Questions.Items {
				b.WriteString(bullet(item, width))
				b.WriteString("\n")
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderTimeline(ui *dashboard.UI, width int, theme styles.Theme) string {
	var b strings.Builder

	title := heading(theme, "TIMELINE")
	b.WriteString(strings.TrimRight(title, "\n"))
	b.WriteString("  ")
	b.WriteString(theme.Muted().Render(ui.Timeline.Counter))
	if ui.Timeline.Rejected {
		b.WriteString("  ")
		b.WriteString(theme.Watermark().Render("[" + dashboard.RejectedWatermark + "]"))
	}
	b.WriteString("\n\n")

	if ui.Timeline.Empty {
		b.WriteString(theme.Muted().Render(dashboard.TimelineEmptyMessage))
		b.WriteString("\n")
		b.WriteString(theme.Muted().Render(dashboard.TimelineEmptyHint))
		return b.String()
	}

	for _, card := range ui.Timeline.Cards {
		if card.Invalid {
			b.WriteString(theme.Verdict("error").Render("! " + card.Message))
			b.WriteString("\n\n")
			continue
		}

		when := fmt.Sprintf("%s - %s  (%d min)", card.Start, card.End, card.Minutes)
		if card.Timebox != "" {
			when += "  timebox " + card.Timebox
		}
		b.WriteString(theme.Muted().Render(when))
		b.WriteString("\n")
		b.WriteString(theme.Text().Bold(!theme.IsPlain()).Render(ansi.Truncate(singleLine(card.Task), width, "...")))
		b.WriteString("\n")
		if card.Why != "" {
			b.WriteString(theme.Muted().Render(indent(wrap(card.Why, width-2), "  ")))
			b.WriteString("\n")
		}
		if card.Feasibility != "" {
			b.WriteString(theme.Verdict("warning").Render(indent(wrap("⚠ "+card.Feasibility, width-2), "  ")))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func heading(theme styles.Theme, title string) string {
	return theme.Accent().Render(title) + "\n"
}

func coverageBar(percent int) string {
	filled := percent * coverageBarWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", coverageBarWidth-filled) + "]"
}

// bullet wraps text under a "• " marker with a hanging indent.
func bullet(text string, width int) string {
	return "• " + strings.TrimPrefix(indent(wrap(text, width-2), "  "), "  ")
}

// clean removes terminal escape sequences and control characters other than
// newline and tab.
func clean(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(clean(s)), " ")
}

func wrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	return wordwrap.String(clean(s), width)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
