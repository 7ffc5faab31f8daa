package dashboard

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/statekit"
)

// Lifecycle states and events. Untyped so they convert to statekit IDs.
const (
	StateIdle    = "idle"
	StateLoading = "loading"

	eventStart  = "start"
	eventFinish = "finish"
)

// DefaultRotationInterval is how long each loading message stays up.
const DefaultRotationInterval = 1800 * time.Millisecond

// LoadingMessages cycle while a plan is being generated.
var LoadingMessages = []string{
	"Extracting constraints from your context...",
	"Drafting a schedule...",
	"Checking for time overlaps...",
	"Verifying tasks against your context...",
	"Scoring human feasibility...",
}

type lifecycleContext struct{}

// Lifecycle is the idle/loading state machine around one request. It owns
// the rotation handle: at most one rotation runs at a time.
type Lifecycle struct {
	ui          *UI
	scheduler   Scheduler
	interval    time.Duration
	messages    []string
	interpreter *statekit.Interpreter[lifecycleContext]

	cancel  func()
	index   int
	observe func(message string)
}

// NewLifecycle builds a lifecycle that drives ui. A non-positive interval
// uses DefaultRotationInterval.
func NewLifecycle(ui *UI, scheduler Scheduler, interval time.Duration) (*Lifecycle, error) {
	if scheduler == nil {
		scheduler = TickerScheduler{}
	}
	if interval <= 0 {
		interval = DefaultRotationInterval
	}

	builder := statekit.NewMachine[lifecycleContext]("loading-lifecycle").
		WithInitial(StateIdle).
		WithContext(lifecycleContext{})

	builder.State(StateIdle).
		On(eventStart).Target(StateLoading).
		Done()

	builder.State(StateLoading).
		On(eventFinish).Target(StateIdle).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build loading lifecycle: %w", err)
	}
	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Lifecycle{
		ui:          ui,
		scheduler:   scheduler,
		interval:    interval,
		messages:    LoadingMessages,
		interpreter: interpreter,
	}, nil
}

// OnRotate registers a callback that receives each new loading message.
// It runs wherever the scheduler runs ticks.
func (l *Lifecycle) OnRotate(fn func(message string)) {
	l.observe = fn
}

// Current returns the lifecycle state.
func (l *Lifecycle) Current() string {
	return string(l.interpreter.State().Value)
}

// Loading reports whether a request is in flight.
func (l *Lifecycle) Loading() bool {
	return l.Current() == StateLoading
}

// Enter switches the UI into the busy state and starts the message
// rotation, cancelling any rotation still running.
func (l *Lifecycle) Enter() {
	l.stopRotation()
	l.interpreter.Send(statekit.Event{Type: eventStart})

	l.ui.Submit = SubmitControl{Disabled: true, Label: SubmitLabelBusy}
	ClearTimelineItems(l.ui)

	l.index = 0
	l.ui.Loading = LoadingIndicator{Active: true, Message: l.messages[0]}
	l.cancel = l.scheduler.Every(l.interval, l.rotate)
}

// Exit restores the idle UI and stops the rotation. Calling it while idle
// is harmless.
func (l *Lifecycle) Exit() {
	l.stopRotation()
	l.interpreter.Send(statekit.Event{Type: eventFinish})

	l.ui.Submit = SubmitControl{Label: SubmitLabelIdle}
	l.ui.Loading = LoadingIndicator{}
}

func (l *Lifecycle) stopRotation() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Lifecycle) rotate() {
	l.index = (l.index + 1) % len(l.messages)
	msg := l.messages[l.index]
	l.ui.Loading.Message = msg
	if l.observe != nil {
		l.observe(msg)
	}
}
