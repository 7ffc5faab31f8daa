package dashboard

import "github.com/tOgg1/planproof/internal/planapi"

// BadgeState is the overall verdict shown in the status badge.
type BadgeState string

const (
	BadgePending BadgeState = "pending"
	BadgePass    BadgeState = "pass"
	BadgeFail    BadgeState = "fail"
	// BadgeError is only reachable through a failed request.
	BadgeError BadgeState = "error"
)

// Badge is the status badge. State is a single value, so exactly one state
// class is ever active.
type Badge struct {
	State BadgeState `json:"state" yaml:"state"`
	Icon  string     `json:"icon" yaml:"icon"`
	Text  string     `json:"text" yaml:"text"`
}

// Classes returns the CSS classes for the badge.
func (b Badge) Classes() []string {
	return []string{"status-badge", "status-badge--" + string(b.State)}
}

var badgeFaces = map[BadgeState]struct{ icon, text string }{
	BadgePass:    {"✓", "SYSTEM VERIFIED: FEASIBLE"},
	BadgeFail:    {"✗", "LOGISTICAL CONFLICTS DETECTED"},
	BadgePending: {"◯", "AWAITING PLAN"},
	BadgeError:   {"⚠", "SYSTEM ERROR: PLANNING UNAVAILABLE"},
}

// NormalizeStatus maps a validation status to a badge state. Anything other
// than pass or fail is pending.
func NormalizeStatus(status string) BadgeState {
	switch status {
	case planapi.StatusPass:
		return BadgePass
	case planapi.StatusFail:
		return BadgeFail
	default:
		return BadgePending
	}
}

// RenderStatusBadge replaces the badge with the given state. Unknown states
// render as pending.
func RenderStatusBadge(ui *UI, state BadgeState) {
	face, ok := badgeFaces[state]
	if !ok {
		state = BadgePending
		face = badgeFaces[BadgePending]
	}
	ui.Badge = Badge{State: state, Icon: face.icon, Text: face.text}
}

// ResetStatusBadge returns the badge to pending.
func ResetStatusBadge(ui *UI) {
	RenderStatusBadge(ui, BadgePending)
}
