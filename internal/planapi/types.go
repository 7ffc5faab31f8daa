// Package planapi is the client side of the planning service contract:
// request/response types, lenient response decoding and the HTTP client.
package planapi

import "encoding/json"

// Validation status values produced by the planning service. Anything else
// is treated as pending by consumers.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Metric keys the service reports inside validation.metrics.
const (
	MetricConstraintViolations = "constraint_violation_count"
	MetricOverlapMinutes       = "overlap_minutes"
	MetricHallucinations       = "hallucination_count"
	MetricKeywordRecall        = "keyword_recall_score"
	MetricFeasibilityFlags     = "human_feasibility_flags"
)

// PlanRequest is the body of POST /api/plan.
type PlanRequest struct {
	Context     string `json:"context"`
	CurrentTime string `json:"current_time"`
	Timezone    string `json:"timezone"`
	Variant     string `json:"variant"`
}

// PlanResponse is one decoded planning result. Absent or wrongly typed
// fields are nil rather than zero values, so callers can tell "missing"
// from "reported as zero".
type PlanResponse struct {
	// Plan is nil when the field is absent, null or not an array.
	Plan              []PlanEntry
	Validation        *Validation
	ExtractedMetadata *ExtractedMetadata
	Debug             *RepairInfo
	Assumptions       []string
	Questions         []string
	Confidence        *string
}

// PlanEntry is one element of the plan array, kept at its index.
type PlanEntry struct {
	// Item is nil when the element was not a JSON object.
	Item *PlanItem
	Raw  json.RawMessage
}

// Valid reports whether the entry decoded as an object.
func (e PlanEntry) Valid() bool {
	return e.Item != nil
}

// PlanItem is a scheduled task. Every field is optional.
type PlanItem struct {
	Task            *string
	StartTime       *string
	EndTime         *string
	Why             *string
	FeasibilityFlag *string
	TimeboxMinutes  *float64
}

// Validation is the automated scoring attached to a plan.
type Validation struct {
	// Status is the raw status string, empty when absent.
	Status string
	// Metrics is nil when absent or not an object.
	Metrics Metrics
	Errors  []string
}

// Metrics maps metric key to value. Keys whose value was null or
// non-numeric are omitted.
type Metrics map[string]float64

// Value returns the metric and whether it was reported.
func (m Metrics) Value(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m[key]
	return v, ok
}

// ExtractedMetadata is what the service pulled out of the user's context.
type ExtractedMetadata struct {
	DetectedConstraints []string
}

// RepairInfo describes the automatic repair pass.
type RepairInfo struct {
	RepairAttempted bool
	RepairSuccess   bool
	Variant         *string
}
