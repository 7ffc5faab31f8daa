package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderStatusBadge(t *testing.T) {
	ui := NewUI(time.UTC)
	require.Equal(t, BadgePending, ui.Badge.State)
	require.Equal(t, "AWAITING PLAN", ui.Badge.Text)

	RenderStatusBadge(ui, BadgePass)
	require.Equal(t, Badge{State: BadgePass, Icon: "✓", Text: "SYSTEM VERIFIED: FEASIBLE"}, ui.Badge)
	require.Equal(t, []string{"status-badge", "status-badge--pass"}, ui.Badge.Classes())

	RenderStatusBadge(ui, BadgeFail)
	require.Equal(t, "LOGISTICAL CONFLICTS DETECTED", ui.Badge.Text)
	require.Equal(t, []string{"status-badge", "status-badge--fail"}, ui.Badge.Classes())

	RenderStatusBadge(ui, BadgeError)
	require.Equal(t, "⚠", ui.Badge.Icon)
	require.Equal(t, "SYSTEM ERROR: PLANNING UNAVAILABLE", ui.Badge.Text)

	RenderStatusBadge(ui, BadgeState("bogus"))
	require.Equal(t, BadgePending, ui.Badge.State)
	require.Equal(t, "◯", ui.Badge.Icon)
}

func TestNormalizeStatus(t *testing.T) {
	require.Equal(t, BadgePass, NormalizeStatus("pass"))
	require.Equal(t, BadgeFail, NormalizeStatus("fail"))
	require.Equal(t, BadgePending, NormalizeStatus(""))
	require.Equal(t, BadgePending, NormalizeStatus("PASS"))
	require.Equal(t, BadgePending, NormalizeStatus("error"))
}
