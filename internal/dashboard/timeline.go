package dashboard

import (
	"fmt"
	"strings"

	"github.com/tOgg1/planproof/internal/planapi"
)

// Timeline empty-state copy.
const (
	TimelineEmptyMessage = "No plan generated yet."
	TimelineEmptyHint    = `Enter your context and click "Generate Plan"`
	UntitledTask         = "Untitled Task"
	RejectedWatermark    = "REJECTED"
)

// Timeline is the schedule pane.
type Timeline struct {
	// Rejected toggles the watermark. The watermark element is always
	// present; only its visibility class changes.
	Rejected bool           `json:"rejected" yaml:"rejected"`
	Empty    bool           `json:"empty" yaml:"empty"`
	Cards    []TimelineCard `json:"cards,omitempty" yaml:"cards,omitempty"`
	Counter  string         `json:"counter" yaml:"counter"`
}

// WatermarkClasses returns the CSS classes for the REJECTED watermark.
func (t Timeline) WatermarkClasses() []string {
	if t.Rejected {
		return []string{"timeline-watermark", "timeline-watermark--visible"}
	}
	return []string{"timeline-watermark"}
}

// TimelineCard is one plan entry, or an error card for a malformed entry.
type TimelineCard struct {
	// Position is the 1-based index into the plan.
	Position int    `json:"position" yaml:"position"`
	Invalid  bool   `json:"invalid,omitempty" yaml:"invalid,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`

	Start       string `json:"start,omitempty" yaml:"start,omitempty"`
	End         string `json:"end,omitempty" yaml:"end,omitempty"`
	Minutes     int    `json:"minutes" yaml:"minutes"`
	// Timebox is the planner's own estimate, e.g. "30 min", when given.
	Timebox     string `json:"timebox,omitempty" yaml:"timebox,omitempty"`
	Task        string `json:"task,omitempty" yaml:"task,omitempty"`
	Why         string `json:"why,omitempty" yaml:"why,omitempty"`
	Feasibility string `json:"feasibility,omitempty" yaml:"feasibility,omitempty"`
}

// TaskCounter formats the task count, e.g. "1 task" or "3 draft tasks".
func TaskCounter(n int, rejected bool) string {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	if rejected {
		return fmt.Sprintf("%d draft %s", n, noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// RenderTimeline rebuilds the timeline from plan, in plan order. A
// malformed entry becomes an error card at its position and the rest of the
// plan still renders. rejected marks the plan as a draft that failed
// validation.
func RenderTimeline(ui *UI, plan []planapi.PlanEntry, rejected bool) {
	if len(plan) == 0 {
		ui.Timeline = Timeline{Empty: true, Counter: TaskCounter(0, false)}
		return
	}

	cards := make([]TimelineCard, 0, len(plan))
	for i, entry := range plan {
		cards = append(cards, buildCard(ui, i, entry))
	}
	ui.Timeline = Timeline{
		Rejected: rejected,
		Cards:    cards,
		Counter:  TaskCounter(len(plan), rejected),
	}
}

func buildCard(ui *UI, index int, entry planapi.PlanEntry) TimelineCard {
	position := index + 1
	if !entry.Valid() {
		return TimelineCard{
			Position: position,
			Invalid:  true,
			Message:  fmt.Sprintf("Invalid task data at position %d", position),
		}
	}

	item := entry.Item
	start, end := deref(item.StartTime), deref(item.EndTime)
	task := strings.TrimSpace(deref(item.Task))
	if task == "" {
		task = UntitledTask
	}
	card := TimelineCard{
		Position: position,
		Start:    FormatTime(start, ui.Location),
		End:      FormatTime(end, ui.Location),
		Minutes:  Duration(start, end, ui.Location),
		Task:     task,
		Why:      strings.TrimSpace(deref(item.Why)),
	}
	if item.TimeboxMinutes != nil {
		card.Timebox = formatMinutes(*item.TimeboxMinutes)
	}
	if flag := strings.TrimSpace(deref(item.FeasibilityFlag)); flag != "" {
		card.Feasibility = "Feasibility warning: " + flag
	}
	return card
}

// ResetTimeline shows the empty state.
func ResetTimeline(ui *UI) {
	RenderTimeline(ui, nil, false)
}

// ClearTimelineItems removes cards, the counter and the empty state while a
// request is in flight.
func ClearTimelineItems(ui *UI) {
	ui.Timeline.Cards = nil
	ui.Timeline.Empty = false
	ui.Timeline.Rejected = false
	ui.Timeline.Counter = ""
}
