package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tOgg1/planproof/internal/planapi"
)

// EmptyContextNotice is shown when the user submits without any context.
const EmptyContextNotice = "Please enter some context for your plan."

// CurrentTimeLayout is how current_time is sent: UTC with milliseconds.
const CurrentTimeLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrEmptyContext is returned when the form context is blank.
	ErrEmptyContext = errors.New("empty plan context")
	// ErrInvalidTime is returned when the form time cannot be parsed.
	ErrInvalidTime = errors.New("invalid current time")
	// ErrBusy is returned when a request is already in flight.
	ErrBusy = errors.New("a plan request is already in flight")
)

// Planner performs the planning request.
type Planner interface {
	Plan(ctx context.Context, req planapi.PlanRequest) (*planapi.PlanResponse, error)
}

// FormInput is what the user typed. Empty optional fields fall back to
// Defaults.
type FormInput struct {
	Context     string
	CurrentTime string
	Timezone    string
	Variant     string
}

// Defaults fill optional form fields.
type Defaults struct {
	Timezone string
	Variant  string
}

// Orchestrator ties one submit to the lifecycle, the planner and the
// section renderers.
type Orchestrator struct {
	ui        *UI
	lifecycle *Lifecycle
	planner   Planner
	defaults  Defaults
	now       func() time.Time
}

// NewOrchestrator wires an orchestrator. planner may be nil when only
// Begin/Complete are used, as the TUI does.
func NewOrchestrator(ui *UI, lifecycle *Lifecycle, planner Planner, defaults Defaults) *Orchestrator {
	if strings.TrimSpace(defaults.Timezone) == "" {
		defaults.Timezone = "UTC"
	}
	if strings.TrimSpace(defaults.Variant) == "" {
		defaults.Variant = "v1_naive"
	}
	return &Orchestrator{
		ui:        ui,
		lifecycle: lifecycle,
		planner:   planner,
		defaults:  defaults,
		now:       time.Now,
	}
}

// UI returns the context the orchestrator renders into.
func (o *Orchestrator) UI() *UI {
	return o.ui
}

// Busy reports whether a request is in flight.
func (o *Orchestrator) Busy() bool {
	return o.lifecycle.Loading()
}

// Begin validates the form and, if it is usable, enters the loading state
// and returns the request to send. On a validation error the only mutation
// is the notice.
func (o *Orchestrator) Begin(form FormInput) (planapi.PlanRequest, error) {
	if strings.TrimSpace(form.Context) == "" {
		o.ui.Notice = EmptyContextNotice
		return planapi.PlanRequest{}, ErrEmptyContext
	}

	current := o.now()
	if raw := strings.TrimSpace(form.CurrentTime); raw != "" {
		parsed, ok := ParseTimestamp(raw, o.ui.Location)
		if !ok {
			o.ui.Notice = fmt.Sprintf("Could not read the current time %q.", raw)
			return planapi.PlanRequest{}, fmt.Errorf("%w: %q", ErrInvalidTime, raw)
		}
		current = parsed
	}

	req := planapi.PlanRequest{
		Context:     form.Context,
		CurrentTime: current.UTC().Format(CurrentTimeLayout),
		Timezone:    firstNonBlank(form.Timezone, o.defaults.Timezone),
		Variant:     firstNonBlank(form.Variant, o.defaults.Variant),
	}

	o.ui.Notice = ""
	o.lifecycle.Enter()
	return req, nil
}

// Complete renders the outcome of the request started by Begin and leaves
// the loading state on both paths.
func (o *Orchestrator) Complete(resp *planapi.PlanResponse, err error) {
	if err == nil && resp == nil {
		err = &planapi.DecodeError{Err: errors.New("empty response")}
	}
	if err != nil {
		o.fail(err)
		return
	}

	rejected := resp.Validation != nil && NormalizeStatus(resp.Validation.Status) == BadgeFail
	RenderTimeline(o.ui, resp.Plan, rejected)
	Project(o.ui, resp.Validation)

	var constraints []string
	if resp.ExtractedMetadata != nil {
		constraints = resp.ExtractedMetadata.DetectedConstraints
	}
	RenderConstraints(o.ui, constraints)
	RenderRepairLog(o.ui, resp.Debug)
	RenderAssumptions(o.ui, resp.Assumptions)
	RenderQuestions(o.ui, resp.Questions)
	RenderConfidence(o.ui, resp.Confidence)

	o.lifecycle.Exit()
}

func (o *Orchestrator) fail(err error) {
	o.lifecycle.Exit()

	failure := ClassifyFailure(err)
	ResetTimeline(o.ui)
	ResetChecklist(o.ui)
	ResetMetricsGrid(o.ui)
	ResetCoverage(o.ui)
	ResetConstraints(o.ui)
	ResetRepairLog(o.ui)
	RenderAssumptions(o.ui, nil)
	RenderQuestions(o.ui, nil)
	ResetConfidence(o.ui)

	RenderErrors(o.ui, []string{failure.Message}, true)
	RenderStatusBadge(o.ui, BadgeError)
}

// Submit runs one full request synchronously. The returned error is the
// validation or request error; the UI already reflects it.
func (o *Orchestrator) Submit(ctx context.Context, form FormInput) error {
	if o.planner == nil {
		return errors.New("orchestrator has no planner")
	}
	if o.Busy() {
		return ErrBusy
	}

	req, err := o.Begin(form)
	if err != nil {
		return err
	}
	resp, err := o.planner.Plan(ctx, req)
	o.Complete(resp, err)
	if err != nil {
		return fmt.Errorf("plan request: %w", err)
	}
	return nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
