package dashboard

import "github.com/tOgg1/planproof/internal/planapi"

// Project renders every validation-dependent section (badge, checklist,
// metrics grid, coverage, errors) from one validation object. A nil
// validation resets them all to pending.
func Project(ui *UI, validation *planapi.Validation) {
	if validation == nil {
		ResetValidation(ui)
		return
	}

	status := NormalizeStatus(validation.Status)
	RenderStatusBadge(ui, status)
	RenderChecklist(ui, validation.Metrics)
	RenderMetricsGrid(ui, validation.Metrics)

	if score, ok := validation.Metrics.Value(planapi.MetricKeywordRecall); ok {
		RenderCoverage(ui, &score)
	} else {
		RenderCoverage(ui, nil)
	}

	RenderErrors(ui, validation.Errors, status == BadgeFail)
}

// ResetValidation resets badge, checklist, grid, coverage and errors.
func ResetValidation(ui *UI) {
	ResetStatusBadge(ui)
	ResetChecklist(ui)
	ResetMetricsGrid(ui)
	ResetCoverage(ui)
	ResetErrors(ui)
}
