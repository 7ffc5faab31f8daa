package dashboard

import (
	"math"
	"strconv"

	"github.com/tOgg1/planproof/internal/planapi"
)

// CellState is the verdict for one metric.
type CellState string

const (
	CellPending CellState = "pending"
	CellPass    CellState = "pass"
	CellFail    CellState = "fail"
)

// MetricConfig describes how one metric is labelled, formatted and judged.
type MetricConfig struct {
	Key        string
	Label      string
	GridLabel  string
	Format     func(float64) string
	GridFormat func(float64) string
	IsPass     func(float64) bool
}

// ChecklistItem is one row of the pre-flight checklist.
type ChecklistItem struct {
	Key   string    `json:"key" yaml:"key"`
	Label string    `json:"label" yaml:"label"`
	State CellState `json:"state" yaml:"state"`
	Icon  string    `json:"icon" yaml:"icon"`
	Value string    `json:"value" yaml:"value"`
}

// Classes returns the CSS classes for the row.
func (c ChecklistItem) Classes() []string {
	return []string{"checklist-item", "checklist-item--" + string(c.State)}
}

// MetricTile is one tile of the metrics grid.
type MetricTile struct {
	Key   string    `json:"key" yaml:"key"`
	Label string    `json:"label" yaml:"label"`
	State CellState `json:"state" yaml:"state"`
	Value string    `json:"value" yaml:"value"`
}

// Classes returns the CSS classes for the tile. Pending tiles carry no
// state modifier.
func (m MetricTile) Classes() []string {
	if m.State == CellPending {
		return []string{"metric-tile"}
	}
	return []string{"metric-tile", "metric-tile--" + string(m.State)}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatMinutes(v float64) string {
	return formatNumber(v) + " min"
}

func formatPercent(v float64) string {
	return strconv.Itoa(int(math.Round(v*100))) + "%"
}

func isZero(v float64) bool {
	return v == 0
}

// RecallPassThreshold is the keyword recall needed for a passing plan.
const RecallPassThreshold = 0.7

// MetricChecks lists the checks shown in both the checklist and the grid, in
// display order.
var MetricChecks = []MetricConfig{
	{
		Key:        planapi.MetricConstraintViolations,
		Label:      "Constraint Violations",
		GridLabel:  "Constraint Violations",
		Format:     formatNumber,
		GridFormat: formatNumber,
		IsPass:     isZero,
	},
	{
		Key:        planapi.MetricOverlapMinutes,
		Label:      "Time Overlaps",
		GridLabel:  "Overlap (min)",
		Format:     formatMinutes,
		GridFormat: formatNumber,
		IsPass:     isZero,
	},
	{
		Key:        planapi.MetricHallucinations,
		Label:      "Hallucinations",
		GridLabel:  "Hallucinations",
		Format:     formatNumber,
		GridFormat: formatNumber,
		IsPass:     isZero,
	},
	{
		Key:        planapi.MetricKeywordRecall,
		Label:      "Keyword Recall",
		GridLabel:  "Keyword Recall",
		Format:     formatPercent,
		GridFormat: formatPercent,
		IsPass:     func(v float64) bool { return v >= RecallPassThreshold },
	},
	{
		Key:        planapi.MetricFeasibilityFlags,
		Label:      "Feasibility Flags",
		GridLabel:  "Feasibility Flags",
		Format:     formatNumber,
		GridFormat: formatNumber,
		IsPass:     isZero,
	},
}

// Judge returns the verdict for one metric. A missing metrics object or a
// missing key is pending, never a failure.
func (c MetricConfig) Judge(metrics planapi.Metrics) (CellState, float64) {
	v, ok := metrics.Value(c.Key)
	switch {
	case !ok:
		return CellPending, 0
	case c.IsPass(v):
		return CellPass, v
	default:
		return CellFail, v
	}
}

var checklistIcons = map[CellState]string{
	CellPending: "○",
	CellPass:    "✓",
	CellFail:    "✗",
}

// RenderChecklist rebuilds the checklist from metrics, which may be nil.
func RenderChecklist(ui *UI, metrics planapi.Metrics) {
	items := make([]ChecklistItem, 0, len(MetricChecks))
	for _, cfg := range MetricChecks {
		state, v := cfg.Judge(metrics)
		value := Placeholder
		if state != CellPending {
			value = cfg.Format(v)
		}
		items = append(items, ChecklistItem{
			Key:   cfg.Key,
			Label: cfg.Label,
			State: state,
			Icon:  checklistIcons[state],
			Value: value,
		})
	}
	ui.Checklist = items
}

// ResetChecklist shows every check as pending.
func ResetChecklist(ui *UI) {
	RenderChecklist(ui, nil)
}

// RenderMetricsGrid rebuilds the metric tiles from metrics, which may be nil.
func RenderMetricsGrid(ui *UI, metrics planapi.Metrics) {
	tiles := make([]MetricTile, 0, len(MetricChecks))
	for _, cfg := range MetricChecks {
		state, v := cfg.Judge(metrics)
		value := Placeholder
		if state != CellPending {
			value = cfg.GridFormat(v)
		}
		tiles = append(tiles, MetricTile{
			Key:   cfg.Key,
			Label: cfg.GridLabel,
			State: state,
			Value: value,
		})
	}
	ui.Metrics = tiles
}

// ResetMetricsGrid shows every tile as pending.
func ResetMetricsGrid(ui *UI) {
	RenderMetricsGrid(ui, nil)
}
