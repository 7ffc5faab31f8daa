package dashboard

import (
	"strings"

	"github.com/tOgg1/planproof/internal/planapi"
)

// NoConstraintsText is shown when no hard constraints were detected.
const NoConstraintsText = "No hard constraints detected."

// RenderErrors shows errors, or hides the section when there are none.
// priority only changes styling.
func RenderErrors(ui *UI, errors []string, priority bool) {
	if len(errors) == 0 {
		ui.Errors = ErrorList{}
		return
	}
	ui.Errors = ErrorList{
		Visible:  true,
		Priority: priority,
		Items:    append([]string(nil), errors...),
	}
}

// ResetErrors hides the errors section.
func ResetErrors(ui *UI) {
	RenderErrors(ui, nil, false)
}

// RenderConstraints lists detected constraints or the empty placeholder.
func RenderConstraints(ui *UI, constraints []string) {
	if len(constraints) == 0 {
		ui.Constraints = ConstraintList{Placeholder: NoConstraintsText}
		return
	}
	ui.Constraints = ConstraintList{Items: append([]string(nil), constraints...)}
}

// ResetConstraints shows the empty placeholder.
func ResetConstraints(ui *UI) {
	RenderConstraints(ui, nil)
}

// RenderAssumptions shows the planner's assumptions, hiding the section
// when there are none.
func RenderAssumptions(ui *UI, assumptions []string) {
	ui.Insights.Assumptions = listSection(assumptions)
	updateInsightsHeader(ui)
}

// RenderQuestions shows the planner's open questions, hiding the section
// when there are none.
func RenderQuestions(ui *UI, questions []string) {
	ui.Insights.Questions = listSection(questions)
	updateInsightsHeader(ui)
}

func listSection(items []string) ListSection {
	if len(items) == 0 {
		return ListSection{}
	}
	return ListSection{Visible: true, Items: append([]string(nil), items...)}
}

func updateInsightsHeader(ui *UI) {
	ui.Insights.HeaderVisible = ui.Insights.Assumptions.Visible || ui.Insights.Questions.Visible
}

// RepairLog reports the planning engine's automatic repair pass.
type RepairLog struct {
	Visible   bool   `json:"visible" yaml:"visible"`
	Succeeded bool   `json:"succeeded" yaml:"succeeded"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Variant   string `json:"variant,omitempty" yaml:"variant,omitempty"`
}

// RenderRepairLog shows the repair outcome. The section is hidden unless a
// repair was attempted.
func RenderRepairLog(ui *UI, info *planapi.RepairInfo) {
	if info == nil || !info.RepairAttempted {
		ui.Repair = RepairLog{}
		return
	}
	repair := RepairLog{
		Visible:   true,
		Succeeded: info.RepairSuccess,
		Variant:   deref(info.Variant),
	}
	if info.RepairSuccess {
		repair.Text = "Automatic repair resolved the detected conflicts."
	} else {
		repair.Text = "Automatic repair was attempted but conflicts remain."
	}
	ui.Repair = repair
}

// ResetRepairLog hides the repair section.
func ResetRepairLog(ui *UI) {
	RenderRepairLog(ui, nil)
}

// ConfidenceChip shows the planner's self-reported confidence.
type ConfidenceChip struct {
	Visible bool   `json:"visible" yaml:"visible"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
}

// RenderConfidence shows low, medium or high confidence and hides the chip
// for anything else.
func RenderConfidence(ui *UI, level *string) {
	if level == nil {
		ui.Confidence = ConfidenceChip{}
		return
	}
	switch l := strings.ToLower(strings.TrimSpace(*level)); l {
	case "low", "medium", "high":
		ui.Confidence = ConfidenceChip{
			Visible: true,
			Level:   l,
			Text:    "Confidence: " + strings.ToUpper(l),
		}
	default:
		ui.Confidence = ConfidenceChip{}
	}
}

// ResetConfidence hides the confidence chip.
func ResetConfidence(ui *UI) {
	RenderConfidence(ui, nil)
}
