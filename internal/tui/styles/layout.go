package styles

import "github.com/charmbracelet/lipgloss"

const (
	// LayoutGap is the default space between columns.
	LayoutGap = 2

	// LayoutInnerPadding is the default panel content padding.
	LayoutInnerPadding = 1
)

const (
	minSidebarWidth  = 30
	maxSidebarWidth  = 44
	minTimelineWidth = 40
)

// ColumnWidths are the sidebar and timeline widths. Sidebar is 0 when the
// panes stack vertically.
type ColumnWidths struct {
	Sidebar  int
	Timeline int
}

// ComputeColumnWidths splits totalWidth between the verification sidebar
// and the timeline, stacking them when the terminal is too narrow.
func ComputeColumnWidths(totalWidth int) ColumnWidths {
	if totalWidth <= 0 {
		return ColumnWidths{}
	}
	sidebar := clampInt(totalWidth*2/5, minSidebarWidth, maxSidebarWidth)
	timeline := totalWidth - sidebar - LayoutGap
	if timeline < minTimelineWidth {
		return ColumnWidths{Timeline: totalWidth}
	}
	return ColumnWidths{Sidebar: sidebar, Timeline: timeline}
}

// PanelStyle returns a focused/unfocused border style for panes.
func PanelStyle(theme Theme, focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		BorderStyle(panelBorderStyle(theme)).
		Padding(0, LayoutInnerPadding)
	if theme.IsPlain() {
		return style
	}
	return style.BorderForeground(lipgloss.Color(panelBorderColor(theme, focused)))
}

// DividerStyle returns the divider style between sections.
func DividerStyle(theme Theme) lipgloss.Style {
	return theme.fg(theme.Borders.Divider)
}

func panelBorderColor(theme Theme, focused bool) string {
	if focused {
		return theme.Borders.ActivePane
	}
	return theme.Borders.InactivePane
}

func panelBorderStyle(theme Theme) lipgloss.Border {
	switch theme.BorderStyle {
	case "double":
		return lipgloss.DoubleBorder()
	case "sharp":
		return lipgloss.NormalBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
