package dashboard

import (
	"math"
	"strconv"
)

// CoverageState classifies keyword recall.
type CoverageState string

const (
	CoveragePending CoverageState = "pending"
	CoveragePass    CoverageState = "pass"
	CoverageWarning CoverageState = "warning"
	CoverageFail    CoverageState = "fail"
)

// CoverageWarnThreshold is the recall below which coverage fails outright.
const CoverageWarnThreshold = 0.5

// Coverage is the context coverage progress bar.
type Coverage struct {
	State CoverageState `json:"state" yaml:"state"`
	Label string        `json:"label" yaml:"label"`
	Value string        `json:"value" yaml:"value"`
	// Percent is the bar width, always within [0,100].
	Percent int `json:"percent" yaml:"percent"`
}

// ClampScore limits a recall score to [0,1].
func ClampScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(1, score))
}

// ClassifyCoverage clamps score and classifies it.
func ClassifyCoverage(score float64) CoverageState {
	clamped := ClampScore(score)
	switch {
	case clamped >= RecallPassThreshold:
		return CoveragePass
	case clamped >= CoverageWarnThreshold:
		return CoverageWarning
	default:
		return CoverageFail
	}
}

// RenderCoverage updates the bar. A nil score shows the pending state.
func RenderCoverage(ui *UI, score *float64) {
	if score == nil {
		ui.Coverage = Coverage{
			State: CoveragePending,
			Label: "Calculating...",
			Value: Placeholder,
		}
		return
	}

	// Clamp before rounding so the percentage stays within [0,100].
	clamped := ClampScore(*score)
	percent := int(math.Round(clamped * 100))
	ui.Coverage = Coverage{
		State:   ClassifyCoverage(clamped),
		Label:   "Context Coverage",
		Value:   strconv.Itoa(percent) + "%",
		Percent: percent,
	}
}

// ResetCoverage shows the pending bar.
func ResetCoverage(ui *UI) {
	RenderCoverage(ui, nil)
}
