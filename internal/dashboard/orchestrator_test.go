package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/planproof/internal/planapi"
)

type fakePlanner struct {
	got  []planapi.PlanRequest
	resp *planapi.PlanResponse
	err  error
}

func (f *fakePlanner) Plan(_ context.Context, req planapi.PlanRequest) (*planapi.PlanResponse, error) {
	f.got = append(f.got, req)
	return f.resp, f.err
}

func newTestOrchestrator(t *testing.T, ui *UI) *Orchestrator {
	t.Helper()
	lc, err := NewLifecycle(ui, &fakeScheduler{}, time.Second)
	require.NoError(t, err)
	return NewOrchestrator(ui, lc, nil, Defaults{})
}

func TestBeginRejectsBlankContext(t *testing.T) {
	ui := NewUI(time.UTC)
	orch := newTestOrchestrator(t, ui)
	before := *ui

	_, err := orch.Begin(FormInput{Context: " \n\t "})
	require.ErrorIs(t, err, ErrEmptyContext)
	require.Equal(t, EmptyContextNotice, ui.Notice)
	require.False(t, orch.Busy())

	ui.Notice = ""
	require.Equal(t, before, *ui)
}

func TestBeginBuildsRequest(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	ui := NewUI(ny)
	lc, err := NewLifecycle(ui, &fakeScheduler{}, time.Second)
	require.NoError(t, err)
	orch := NewOrchestrator(ui, lc, nil, Defaults{Timezone: "Europe/Oslo", Variant: "v2_structured"})
	orch.now = func() time.Time { return time.Date(2024, 3, 1, 8, 15, 30, 250e6, time.UTC) }

	req, err := orch.Begin(FormInput{Context: "Gym then work"})
	require.NoError(t, err)
	require.Equal(t, planapi.PlanRequest{
		Context:     "Gym then work",
		CurrentTime: "2024-03-01T08:15:30.250Z",
		Timezone:    "Europe/Oslo",
		Variant:     "v2_structured",
	}, req)
	require.True(t, orch.Busy())
	orch.Complete(&planapi.PlanResponse{}, nil)

	req, err = orch.Begin(FormInput{
		Context:     "Gym then work",
		CurrentTime: "2024-03-01T07:00",
		Timezone:    "America/New_York",
		Variant:     "v3_agentic_repair",
	})
	require.NoError(t, err)
	require.Equal(t, "2024-03-01T12:00:00.000Z", req.CurrentTime)
	require.Equal(t, "America/New_York", req.Timezone)
	require.Equal(t, "v3_agentic_repair", req.Variant)
}

func TestBeginDefaultsWhenUnset(t *testing.T) {
	ui := NewUI(time.UTC)
	orch := newTestOrchestrator(t, ui)
	req, err := orch.Begin(FormInput{Context: "x"})
	require.NoError(t, err)
	require.Equal(t, "UTC", req.Timezone)
	require.Equal(t, "v1_naive", req.Variant)
}

func TestBeginRejectsUnreadableTime(t *testing.T) {
	ui := NewUI(time.UTC)
	orch := newTestOrchestrator(t, ui)
	_, err := orch.Begin(FormInput{Context: "x", CurrentTime: "half past nine"})
	require.ErrorIs(t, err, ErrInvalidTime)
	require.NotEmpty(t, ui.Notice)
	require.False(t, orch.Busy())
}

func TestCompleteFailureScenario(t *testing.T) {
	ui := NewUI(time.UTC)
	orch := newTestOrchestrator(t, ui)

	_, err := orch.Begin(FormInput{Context: "x"})
	require.NoError(t, err)
	orch.Complete(decode(t, `{"plan":[{"task":"A"}],"validation":{"status":"fail","errors":["e"]},"confidence":"low","assumptions":["a"]}`), nil)
	require.Len(t, ui.Timeline.Cards, 1)

	_, err = orch.Begin(FormInput{Context: "x"})
	require.NoError(t, err)
	orch.Complete(nil, errors.New("API error: 500"))

	require.False(t, orch.Busy())
	require.Equal(t, SubmitControl{Label: SubmitLabelIdle}, ui.Submit)
	require.False(t, ui.Loading.Active)
	require.Equal(t, BadgeError, ui.Badge.State)
	require.Equal(t, ErrorList{Visible: true, Priority: true, Items: []string{MessageServerFault}}, ui.Errors)
	require.True(t, ui.Timeline.Empty)
	require.Empty(t, ui.Timeline.Cards)
	require.False(t, ui.Timeline.Rejected)
	require.Equal(t, CoveragePending, ui.Coverage.State)
	require.False(t, ui.Confidence.Visible)
	require.False(t, ui.Insights.HeaderVisible)
	require.Equal(t, NoConstraintsText, ui.Constraints.Placeholder)
}

func TestCompleteRendersEverySection(t *testing.T) {
	ui := NewUI(time.UTC)
	orch := newTestOrchestrator(t, ui)
	_, err := orch.Begin(FormInput{Context: "x"})
	require.NoError(t, err)

	orch.Complete(decode(t, `{
		"plan": [],
		"validation": null,
		"extracted_metadata": {"detected_constraints": ["after 5pm"]},
		"assumptions": [],
		"questions": ["Which gym?"],
		"confidence": "medium",
		"debug": {"repair_attempted": true, "repair_success": true}
	}`), nil)

	require.True(t, ui.Timeline.Empty)
	require.Equal(t, BadgePending, ui.Badge.State)
	require.Equal(t, []string{"after 5pm"}, ui.Constraints.Items)
	require.True(t, ui.Repair.Visible)
	require.True(t, ui.Insights.HeaderVisible)
	require.False(t, ui.Insights.Assumptions.Visible)
	require.Equal(t, "Confidence: MEDIUM", ui.Confidence.Text)
	require.False(t, orch.Busy())
}

func TestSubmit(t *testing.T) {
	ui := NewUI(time.UTC)
	planner := &fakePlanner{resp: &planapi.PlanResponse{Validation: &planapi.Validation{Status: "pass"}}}
	lc, err := NewLifecycle(ui, &fakeScheduler{}, time.Second)
	require.NoError(t, err)
	orch := NewOrchestrator(ui, lc, planner, Defaults{})

	require.NoError(t, orch.Submit(context.Background(), FormInput{Context: "plan my day"}))
	require.Len(t, planner.got, 1)
	require.Equal(t, BadgePass, ui.Badge.State)

	require.ErrorIs(t, orch.Submit(context.Background(), FormInput{}), ErrEmptyContext)
	require.Len(t, planner.got, 1, "no request for blank context")

	planner.err = &planapi.NetworkError{Err: errors.New("dial tcp: refused")}
	err = orch.Submit(context.Background(), FormInput{Context: "again"})
	var netErr *planapi.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, []string{MessageNetwork}, ui.Errors.Items)
	require.Equal(t, BadgeError, ui.Badge.State)
}
