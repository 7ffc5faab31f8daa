package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/planproof/internal/planapi"
)

func strPtr(s string) *string { return &s }

func TestRenderErrors(t *testing.T) {
	ui := NewUI(time.UTC)
	require.False(t, ui.Errors.Visible)

	RenderErrors(ui, []string{"Overlap detected"}, true)
	require.Equal(t, ErrorList{Visible: true, Priority: true, Items: []string{"Overlap detected"}}, ui.Errors)

	RenderErrors(ui, []string{}, true)
	require.Equal(t, ErrorList{}, ui.Errors)
}

func TestRenderConstraints(t *testing.T) {
	ui := NewUI(time.UTC)
	require.Equal(t, NoConstraintsText, ui.Constraints.Placeholder)
	require.Empty(t, ui.Constraints.Items)

	RenderConstraints(ui, []string{"before noon", "<b>not markup</b>"})
	require.Equal(t, []string{"before noon", "<b>not markup</b>"}, ui.Constraints.Items)
	require.Empty(t, ui.Constraints.Placeholder)
}

func TestInsightsHeaderTracksBothLists(t *testing.T) {
	ui := NewUI(time.UTC)
	require.False(t, ui.Insights.HeaderVisible)

	RenderAssumptions(ui, []string{"Office is open"})
	require.True(t, ui.Insights.HeaderVisible)
	require.True(t, ui.Insights.Assumptions.Visible)
	require.False(t, ui.Insights.Questions.Visible)

	RenderQuestions(ui, []string{"Is lunch flexible?"})
	RenderAssumptions(ui, nil)
	require.True(t, ui.Insights.HeaderVisible)
	require.False(t, ui.Insights.Assumptions.Visible)

	RenderQuestions(ui, nil)
	require.False(t, ui.Insights.HeaderVisible)
}

func TestRenderRepairLog(t *testing.T) {
	ui := NewUI(time.UTC)
	require.False(t, ui.Repair.Visible)

	RenderRepairLog(ui, &planapi.RepairInfo{RepairAttempted: false, RepairSuccess: true})
	require.False(t, ui.Repair.Visible)

	RenderRepairLog(ui, &planapi.RepairInfo{RepairAttempted: true, RepairSuccess: true, Variant: strPtr("v3_agentic_repair")})
	require.True(t, ui.Repair.Visible)
	require.True(t, ui.Repair.Succeeded)
	require.Equal(t, "v3_agentic_repair", ui.Repair.Variant)
	require.Contains(t, ui.Repair.Text, "resolved")

	RenderRepairLog(ui, &planapi.RepairInfo{RepairAttempted: true})
	require.False(t, ui.Repair.Succeeded)
	require.Contains(t, ui.Repair.Text, "conflicts remain")
}

func TestRenderConfidence(t *testing.T) {
	ui := NewUI(time.UTC)
	require.False(t, ui.Confidence.Visible)

	RenderConfidence(ui, strPtr(" High "))
	require.Equal(t, ConfidenceChip{Visible: true, Level: "high", Text: "Confidence: HIGH"}, ui.Confidence)

	RenderConfidence(ui, strPtr("certain"))
	require.False(t, ui.Confidence.Visible)
}
