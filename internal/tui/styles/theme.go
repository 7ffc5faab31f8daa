// Package styles holds the lipgloss themes for the planproof terminal UI.
package styles

import "github.com/charmbracelet/lipgloss"

// BaseColors defines global UI colors.
type BaseColors struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Border     string
}

// VerdictColors color pass/fail/warning/pending/error states.
type VerdictColors struct {
	Pass    string
	Fail    string
	Warning string
	Pending string
	Error   string
}

// ChromeColors defines non-content UI colors.
type ChromeColors struct {
	Header    string
	Footer    string
	Watermark string
	Notice    string
}

// BorderColors defines border colors for pane state.
type BorderColors struct {
	ActivePane   string
	InactivePane string
	Divider      string
}

// Theme defines the dashboard style tokens.
type Theme struct {
	Name        string
	BorderStyle string // "rounded", "sharp", "double", "hidden"

	Base     BaseColors
	Verdicts VerdictColors
	Chrome   ChromeColors
	Borders  BorderColors
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// Lookup returns the named theme, falling back to the default palette.
func Lookup(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}

// Plain renders without colors. Headless output uses it when stdout is
// not a terminal.
var Plain = Theme{Name: "plain", BorderStyle: "hidden"}

// IsPlain reports whether the theme carries no colors.
func (t Theme) IsPlain() bool {
	return t.Base.Foreground == ""
}

func (t Theme) fg(color string) lipgloss.Style {
	if t.IsPlain() || color == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Text is body text.
func (t Theme) Text() lipgloss.Style {
	return t.fg(t.Base.Foreground)
}

// Muted is secondary text.
func (t Theme) Muted() lipgloss.Style {
	return t.fg(t.Base.Muted)
}

// Accent highlights headings and focus.
func (t Theme) Accent() lipgloss.Style {
	return t.fg(t.Base.Accent).Bold(!t.IsPlain())
}

// Verdict returns the style for a state name such as "pass" or "warning".
// Unknown names render muted.
func (t Theme) Verdict(state string) lipgloss.Style {
	switch state {
	case "pass":
		return t.fg(t.Verdicts.Pass)
	case "fail":
		return t.fg(t.Verdicts.Fail)
	case "warning":
		return t.fg(t.Verdicts.Warning)
	case "error":
		return t.fg(t.Verdicts.Error).Bold(!t.IsPlain())
	default:
		return t.fg(t.Verdicts.Pending)
	}
}

// Watermark styles the REJECTED marker.
func (t Theme) Watermark() lipgloss.Style {
	return t.fg(t.Chrome.Watermark).Bold(!t.IsPlain())
}

// Notice styles the blocking input notice.
func (t Theme) Notice() lipgloss.Style {
	if t.IsPlain() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Base.Background)).
		Background(lipgloss.Color(t.Chrome.Notice)).
		Bold(true).
		Padding(0, 1)
}

// Bar styles the header and footer lines.
func (t Theme) Bar(color string) lipgloss.Style {
	if t.IsPlain() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Base.Foreground)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}
