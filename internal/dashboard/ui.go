// Package dashboard projects planning responses onto dashboard state.
//
// All visible state lives in a UI value owned by the application shell and
// passed by pointer to every renderer. Renderers are plain functions that
// overwrite one section; each has a matching reset that restores the
// pending/empty baseline. Presentation (terminal, HTML) reads UI and never
// writes it.
package dashboard

import (
	"time"
)

// Submit button labels.
const (
	SubmitLabelIdle = "Generate Plan"
	SubmitLabelBusy = "Generating Plan..."
)

// UI is the complete visible state of the dashboard.
type UI struct {
	// Location is the zone task times are displayed in.
	Location *time.Location `json:"-" yaml:"-"`

	Submit      SubmitControl    `json:"submit" yaml:"submit"`
	Loading     LoadingIndicator `json:"loading" yaml:"loading"`
	Notice      string           `json:"notice,omitempty" yaml:"notice,omitempty"`
	Badge       Badge            `json:"badge" yaml:"badge"`
	Checklist   []ChecklistItem  `json:"checklist" yaml:"checklist"`
	Metrics     []MetricTile     `json:"metrics" yaml:"metrics"`
	Coverage    Coverage         `json:"coverage" yaml:"coverage"`
	Errors      ErrorList        `json:"errors" yaml:"errors"`
	Constraints ConstraintList   `json:"constraints" yaml:"constraints"`
	Repair      RepairLog        `json:"repair" yaml:"repair"`
	Insights    Insights         `json:"insights" yaml:"insights"`
	Confidence  ConfidenceChip   `json:"confidence" yaml:"confidence"`
	Timeline    Timeline         `json:"timeline" yaml:"timeline"`
}

// SubmitControl is the generate button.
type SubmitControl struct {
	Disabled bool   `json:"disabled" yaml:"disabled"`
	Label    string `json:"label" yaml:"label"`
}

// LoadingIndicator is the spinner region and its rotating status line.
type LoadingIndicator struct {
	Active  bool   `json:"active" yaml:"active"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ErrorList is the validation errors sidebar.
type ErrorList struct {
	Visible  bool     `json:"visible" yaml:"visible"`
	Priority bool     `json:"priority" yaml:"priority"`
	Items    []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// ConstraintList holds detected constraints, or a placeholder when none.
type ConstraintList struct {
	Items       []string `json:"items,omitempty" yaml:"items,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// ListSection is a section that is hidden while it has no items.
type ListSection struct {
	Visible bool     `json:"visible" yaml:"visible"`
	Items   []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// Insights groups assumptions and questions under one shared header.
type Insights struct {
	HeaderVisible bool        `json:"header_visible" yaml:"header_visible"`
	Assumptions   ListSection `json:"assumptions" yaml:"assumptions"`
	Questions     ListSection `json:"questions" yaml:"questions"`
}

// NewUI returns a UI in its initial pending state.
func NewUI(loc *time.Location) *UI {
	if loc == nil {
		loc = time.Local
	}
	ui := &UI{Location: loc}
	Reset(ui)
	return ui
}

// Reset puts every section back to its startup baseline.
func Reset(ui *UI) {
	ui.Submit = SubmitControl{Label: SubmitLabelIdle}
	ui.Loading = LoadingIndicator{}
	ui.Notice = ""
	ResetValidation(ui)
	ResetTimeline(ui)
	ResetConstraints(ui)
	ResetRepairLog(ui)
	RenderAssumptions(ui, nil)
	RenderQuestions(ui, nil)
	ResetConfidence(ui)
}

// DismissNotice clears the blocking notice.
func DismissNotice(ui *UI) {
	ui.Notice = ""
}
