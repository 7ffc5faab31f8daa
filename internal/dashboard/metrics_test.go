package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/planproof/internal/planapi"
)

func TestMissingMetricsArePendingNeverFail(t *testing.T) {
	cases := map[string]planapi.Metrics{
		"nil metrics":   nil,
		"empty metrics": {},
		"unrelated key": {"something_else": 3},
	}
	for name, metrics := range cases {
		t.Run(name, func(t *testing.T) {
			for _, cfg := range MetricChecks {
				state, _ := cfg.Judge(metrics)
				require.Equal(t, CellPending, state, cfg.Key)
			}

			ui := NewUI(time.UTC)
			RenderChecklist(ui, metrics)
			RenderMetricsGrid(ui, metrics)
			for _, item := range ui.Checklist {
				require.Equal(t, CellPending, item.State)
				require.Equal(t, "○", item.Icon)
				require.Equal(t, Placeholder, item.Value)
			}
			for _, tile := range ui.Metrics {
				require.Equal(t, CellPending, tile.State)
				require.Equal(t, []string{"metric-tile"}, tile.Classes())
			}
		})
	}
}

func TestRenderChecklistJudgesEachMetric(t *testing.T) {
	ui := NewUI(time.UTC)
	RenderChecklist(ui, planapi.Metrics{
		planapi.MetricConstraintViolations: 2,
		planapi.MetricOverlapMinutes:       15,
		planapi.MetricHallucinations:       0,
		planapi.MetricKeywordRecall:        0.7,
	})

	require.Len(t, ui.Checklist, len(MetricChecks))
	byKey := map[string]ChecklistItem{}
	for _, item := range ui.Checklist {
		byKey[item.Key] = item
	}

	violations := byKey[planapi.MetricConstraintViolations]
	require.Equal(t, CellFail, violations.State)
	require.Equal(t, "✗", violations.Icon)
	require.Equal(t, "2", violations.Value)
	require.Equal(t, []string{"checklist-item", "checklist-item--fail"}, violations.Classes())

	overlap := byKey[planapi.MetricOverlapMinutes]
	require.Equal(t, CellFail, overlap.State)
	require.Equal(t, "15 min", overlap.Value)

	hallucinations := byKey[planapi.MetricHallucinations]
	require.Equal(t, CellPass, hallucinations.State)
	require.Equal(t, "✓", hallucinations.Icon)

	recall := byKey[planapi.MetricKeywordRecall]
	require.Equal(t, CellPass, recall.State, "threshold is inclusive")
	require.Equal(t, "70%", recall.Value)

	require.Equal(t, CellPending, byKey[planapi.MetricFeasibilityFlags].State)
}

func TestRenderMetricsGridUsesGridLabels(t *testing.T) {
	ui := NewUI(time.UTC)
	RenderMetricsGrid(ui, planapi.Metrics{
		planapi.MetricOverlapMinutes: 12.5,
		planapi.MetricKeywordRecall:  0.42,
	})

	var overlap, recall MetricTile
	for _, tile := range ui.Metrics {
		switch tile.Key {
		case planapi.MetricOverlapMinutes:
			overlap = tile
		case planapi.MetricKeywordRecall:
			recall = tile
		}
	}
	require.Equal(t, "Overlap (min)", overlap.Label)
	require.Equal(t, "12.5", overlap.Value)
	require.Equal(t, []string{"metric-tile", "metric-tile--fail"}, overlap.Classes())
	require.Equal(t, "42%", recall.Value)
	require.Equal(t, CellFail, recall.State)
}

// The earlier dashboard only had four checks; they must keep their order and
// labels with the feasibility check appended.
func TestChecklistKeepsCoreChecksFirst(t *testing.T) {
	ui := NewUI(time.UTC)
	labels := make([]string, 0, len(ui.Checklist))
	for _, item := range ui.Checklist {
		labels = append(labels, item.Label)
	}
	require.Equal(t, []string{
		"Constraint Violations",
		"Time Overlaps",
		"Hallucinations",
		"Keyword Recall",
		"Feasibility Flags",
	}, labels)
}

func TestRecallPercentRoundsHalvesLikeCoverage(t *testing.T) {
	cases := map[float64]string{
		0.125: "13%",
		0.625: "63%",
		0.7:   "70%",
	}
	for score, want := range cases {
		ui := NewUI(time.UTC)
		Project(ui, &planapi.Validation{
			Status:  "pass",
			Metrics: planapi.Metrics{planapi.MetricKeywordRecall: score},
		})

		var checklist, grid string
		for _, item := range ui.Checklist {
			if item.Key == planapi.MetricKeywordRecall {
				checklist = item.Value
			}
		}
		for _, tile := range ui.Metrics {
			if tile.Key == planapi.MetricKeywordRecall {
				grid = tile.Value
			}
		}
		require.Equal(t, want, checklist, "checklist %v", score)
		require.Equal(t, want, grid, "grid %v", score)
		require.Equal(t, want, ui.Coverage.Value, "coverage %v", score)
	}
}
