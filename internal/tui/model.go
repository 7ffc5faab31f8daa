// Package tui is the bubbletea front end for the planning dashboard.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/tOgg1/planproof/internal/dashboard"
	"github.com/tOgg1/planproof/internal/logging"
	"github.com/tOgg1/planproof/internal/planapi"
	"github.com/tOgg1/planproof/internal/tui/styles"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	formHeight    = 9
)

type focusID int

const (
	focusContext focusID = iota
	focusTime
	focusTimezone
	focusVariant
	focusDashboard
	focusCount
)

// Config configures the terminal UI.
type Config struct {
	Planner  dashboard.Planner
	Defaults dashboard.Defaults
	Location *time.Location
	Theme    string
	// Interval is the loading message rotation period.
	Interval time.Duration
}

// planResultMsg carries a finished request back onto the update loop.
type planResultMsg struct {
	resp *planapi.PlanResponse
	err  error
}

// Model is the root bubbletea model.
type Model struct {
	ui           *dashboard.UI
	orchestrator *dashboard.Orchestrator
	planner      dashboard.Planner
	scheduler    *programScheduler
	theme        styles.Theme
	logger       zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	contextInput textarea.Model
	timeInput    textinput.Model
	zoneInput    textinput.Model
	variantInput textinput.Model
	spinner      spinner.Model
	viewport     viewport.Model
	focus        focusID

	width  int
	height int
}

// NewModel wires the dashboard state, lifecycle and orchestrator.
func NewModel(cfg Config) (*Model, error) {
	if cfg.Planner == nil {
		return nil, fmt.Errorf("tui: planner is required")
	}
	if _, ok := styles.Themes[cfg.Theme]; cfg.Theme != "" && !ok {
		return nil, fmt.Errorf("invalid theme %q", cfg.Theme)
	}

	ui := dashboard.NewUI(cfg.Location)
	sched := &programScheduler{}
	lifecycle, err := dashboard.NewLifecycle(ui, sched, cfg.Interval)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		ui:           ui,
		orchestrator: dashboard.NewOrchestrator(ui, lifecycle, nil, cfg.Defaults),
		planner:      cfg.Planner,
		scheduler:    sched,
		theme:        styles.Lookup(cfg.Theme),
		logger:       logging.Component("tui"),
		ctx:          ctx,
		cancel:       cancel,
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.initInputs(cfg.Defaults)
	m.resize()
	m.refresh()
	return m, nil
}

func (m *Model) initInputs(defaults dashboard.Defaults) {
	m.contextInput = textarea.New()
	m.contextInput.Placeholder = "Describe your day: tasks, deadlines, meetings..."
	m.contextInput.ShowLineNumbers = false
	m.contextInput.CharLimit = 0
	m.contextInput.Focus()

	m.timeInput = textinput.New()
	m.timeInput.Placeholder = "now (e.g. 2024-01-01T09:00)"
	m.timeInput.CharLimit = 40

	m.zoneInput = textinput.New()
	m.zoneInput.Placeholder = defaults.Timezone
	m.zoneInput.CharLimit = 64

	m.variantInput = textinput.New()
	m.variantInput.Placeholder = defaults.Variant
	m.variantInput.CharLimit = 32

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.viewport = viewport.New(defaultWidth, defaultHeight-formHeight)
}

// Run starts the program and blocks until the user quits.
func Run(cfg Config) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	model.scheduler.attach(program.Send)
	_, err = program.Run()
	return err
}

// Close cancels any in-flight request.
func (m *Model) Close() {
	if m != nil && m.cancel != nil {
		m.cancel()
	}
}

// UI exposes the dashboard state.
func (m *Model) UI() *dashboard.UI {
	return m.ui
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.resize()
		m.refresh()
		return m, nil

	case invokeMsg:
		typed.fn()
		return m, nil

	case planResultMsg:
		m.complete(typed)
		return m, nil

	case spinner.TickMsg:
		if !m.orchestrator.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(typed); handled {
			return m, cmd
		}
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// The notice blocks input until acknowledged.
	if m.ui.Notice != "" {
		switch msg.String() {
		case "ctrl+c":
			m.Close()
			return tea.Quit, true
		}
		dashboard.DismissNotice(m.ui)
		return nil, true
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.Close()
		return tea.Quit, true
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount), true
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount), true
	case "ctrl+s":
		return m.submit(), true
	case "enter":
		if m.focus != focusContext && m.focus != focusDashboard {
			return m.submit(), true
		}
	}
	return nil, false
}

func (m *Model) submit() tea.Cmd {
	if m.orchestrator.Busy() {
		return nil
	}
	req, err := m.orchestrator.Begin(dashboard.FormInput{
		Context:     m.contextInput.Value(),
		CurrentTime: m.timeInput.Value(),
		Timezone:    m.zoneInput.Value(),
		Variant:     m.variantInput.Value(),
	})
	if err != nil {
		m.logger.Debug().Err(err).Msg("submit rejected")
		return nil
	}
	m.refresh()

	m.logger.Info().Str("variant", req.Variant).Str("timezone", req.Timezone).Msg("requesting plan")
	planner, ctx := m.planner, m.ctx
	request := func() tea.Msg {
		resp, err := planner.Plan(ctx, req)
		return planResultMsg{resp: resp, err: err}
	}
	return tea.Batch(m.spinner.Tick, request)
}

func (m *Model) complete(msg planResultMsg) {
	if msg.err != nil {
		m.logger.Warn().Err(msg.err).Msg("plan request failed")
	}
	m.orchestrator.Complete(msg.resp, msg.err)
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) setFocus(next focusID) tea.Cmd {
	m.focus = next
	m.contextInput.Blur()
	m.timeInput.Blur()
	m.zoneInput.Blur()
	m.variantInput.Blur()

	switch next {
	case focusContext:
		return m.contextInput.Focus()
	case focusTime:
		return m.timeInput.Focus()
	case focusTimezone:
		return m.zoneInput.Focus()
	case focusVariant:
		return m.variantInput.Focus()
	}
	return nil
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusContext:
		m.contextInput, cmd = m.contextInput.Update(msg)
	case focusTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
	case focusTimezone:
		m.zoneInput, cmd = m.zoneInput.Update(msg)
	case focusVariant:
		m.variantInput, cmd = m.variantInput.Update(msg)
	case focusDashboard:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return cmd
}

func (m *Model) resize() {
	inner := maxInt(20, m.width-4)
	m.contextInput.SetWidth(inner)
	m.contextInput.SetHeight(3)
	m.timeInput.Width = 28
	m.zoneInput.Width = 20
	m.variantInput.Width = 20

	m.viewport.Width = maxInt(0, m.width)
	m.viewport.Height = maxInt(3, m.height-formHeight-4)
}

// refresh re-renders the dashboard pane from the UI state.
func (m *Model) refresh() {
	m.viewport.SetContent(RenderDashboard(m.ui, m.width, m.theme))
}

func (m *Model) View() string {
	header := m.theme.Bar(m.theme.Chrome.Header).Bold(true).Width(maxInt(0, m.width)).
		Render(ansi.Truncate("PlanProof  "+m.ui.Badge.Icon+" "+m.ui.Badge.Text, maxInt(0, m.width-2), "..."))

	form := m.renderForm()
	status := m.renderStatus()
	footer := m.theme.Bar(m.theme.Chrome.Footer).Width(maxInt(0, m.width)).
		Render(ansi.Truncate("tab focus  ctrl+s "+strings.ToLower(m.ui.Submit.Label)+"  esc quit", maxInt(0, m.width-2), "..."))

	return lipgloss.JoinVertical(lipgloss.Left, header, form, status, m.viewport.View(), footer)
}

func (m *Model) renderForm() string {
	label := func(id focusID, text string) string {
		if m.focus == id {
			return m.theme.Accent().Render("› " + text)
		}
		return m.theme.Muted().Render("  " + text)
	}

	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		label(focusTime, "Time ")+m.timeInput.View(), "  ",
		label(focusTimezone, "Zone ")+m.zoneInput.View(), "  ",
		label(focusVariant, "Variant ")+m.variantInput.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		label(focusContext, "Context"),
		m.contextInput.View(),
		fields,
	)
}

func (m *Model) renderStatus() string {
	if m.ui.Notice != "" {
		return m.theme.Notice().Render(m.ui.Notice + "  (press any key)")
	}
	button := "[ " + m.ui.Submit.Label + " ]"
	if m.ui.Submit.Disabled {
		button = m.theme.Muted().Render(button)
	} else {
		button = m.theme.Accent().Render(button)
	}
	if m.ui.Loading.Active {
		return button + "  " + m.spinner.View() + " " + m.theme.Muted().Render(m.ui.Loading.Message)
	}
	return button
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
