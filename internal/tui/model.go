// Package tui is the interactive window: a status line and the Enable and
// Disable buttons, bound to a schedule controller.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/warpdl/daily420/internal/service"
)

// Controller is the part of service.Controller the window needs.
type Controller interface {
	Query(ctx context.Context) (service.State, error)
	Enable(ctx context.Context) error
	Disable(ctx context.Context) (service.DisableOutcome, error)
	IsAdmin() bool
	NextAlert(now time.Time) (time.Time, error)
}

type button int

const (
	enableButton button = iota
	disableButton
)

type (
	statusMsg struct {
		state service.State
		err   error
	}
	enableMsg struct {
		err error
	}
	disableMsg struct {
		outcome service.DisableOutcome
		err     error
	}
)

// Model is the bubbletea model of the window.
type Model struct {
	ctx  context.Context
	ctrl Controller
	now  func() time.Time

	admin    bool
	state    service.State
	stateErr error
	busy     string
	focus    button
	notice   *service.Notice
	spinner  spinner.Model
	quitting bool
}

// New returns a model that queries ctrl as soon as it starts.
func New(ctx context.Context, ctrl Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = mutedStyle
	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		now:     time.Now,
		admin:   ctrl.IsAdmin(),
		busy:    "Checking...",
		spinner: s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.query())
}

func (m Model) query() tea.Cmd {
	return func() tea.Msg {
		state, err := m.ctrl.Query(m.ctx)
		return statusMsg{state: state, err: err}
	}
}

func (m Model) enable() tea.Cmd {
	return func() tea.Msg {
		return enableMsg{err: m.ctrl.Enable(m.ctx)}
	}
}

func (m Model) disable() tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.ctrl.Disable(m.ctx)
		return disableMsg{outcome: outcome, err: err}
	}
}

func (m Model) canEnable() bool  { return m.state != service.StateEnabled }
func (m Model) canDisable() bool { return m.state == service.StateEnabled }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusMsg:
		m.busy = ""
		m.state, m.stateErr = msg.state, msg.err
		if m.canDisable() {
			m.focus = disableButton
		} else {
			m.focus = enableButton
		}
		return m, nil
	case enableMsg:
		n := service.EnableNotice(msg.err)
		m.notice = &n
		m.busy = "Refreshing..."
		return m, m.query()
	case disableMsg:
		n := service.DisableNotice(msg.outcome, msg.err)
		m.notice = &n
		m.busy = "Refreshing..."
		return m, m.query()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.notice != nil {
		switch key {
		case "enter", "esc", " ", "o":
			m.notice = nil
		}
		return m, nil
	}
	if m.busy != "" {
		return m, nil
	}
	switch key {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "left", "right", "h", "l":
		if m.focus == enableButton {
			m.focus = disableButton
		} else {
			m.focus = enableButton
		}
	case "r":
		m.busy = "Checking..."
		return m, m.query()
	case "e":
		return m.press(enableButton)
	case "d":
		return m.press(disableButton)
	case "enter", " ":
		return m.press(m.focus)
	}
	return m, nil
}

func (m Model) press(b button) (tea.Model, tea.Cmd) {
	switch {
	case b == enableButton && m.canEnable():
		m.busy = "Enabling alerts..."
		return m, m.enable()
	case b == disableButton && m.canDisable():
		m.busy = "Disabling alerts..."
		return m, m.disable()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Daily 4:20 Alerts"))
	b.WriteString("\n")

	if m.busy != "" {
		b.WriteString(m.spinner.View() + " " + m.busy)
	} else {
		b.WriteString(statusStyle.Foreground(stateColor(m.state)).Render("Status: " + m.statusText()))
	}
	b.WriteString("\n")

	if m.admin {
		b.WriteString(noteStyle.Render("(Running as Administrator)"))
	} else {
		b.WriteString(noteStyle.Render("(Run as Admin to Enable/Disable)"))
	}
	b.WriteString("\n")
	if m.busy == "" && m.state == service.StateEnabled {
		if next, err := m.ctrl.NextAlert(m.now()); err == nil {
			b.WriteString(mutedStyle.Render("Next alert: " + next.Format("Mon 15:04")))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(m.renderButton(enableButton, "Enable 4:20 Alerts", m.canEnable()))
	b.WriteString(m.renderButton(disableButton, "Disable 4:20 Alerts", m.canDisable()))
	b.WriteString("\n\n")

	if m.notice != nil {
		style := noticeStyle
		if m.notice.Error {
			style = noticeErrorStyle
		}
		b.WriteString(style.Render(titleStyle.Render(m.notice.Title) + "\n" + m.notice.Body))
		b.WriteString("\n")
		b.WriteString(keyHelp("enter", "dismiss"))
	} else {
		b.WriteString(strings.Join([]string{
			keyHelp("e", "enable"),
			keyHelp("d", "disable"),
			keyHelp("r", "refresh"),
			keyHelp("q", "quit"),
		}, "  "))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusText() string {
	switch m.state {
	case service.StateError:
		if m.stateErr != nil {
			return fmt.Sprintf("Error Checking (%s)", firstLine(service.UserMessage(m.stateErr)))
		}
		return "Error Checking"
	case service.StateUnknown:
		return "Unknown"
	default:
		return m.state.String()
	}
}

func (m Model) renderButton(b button, label string, active bool) string {
	style := inactiveButton
	if active {
		if b == enableButton {
			style = enableButtonStyle
		} else {
			style = disableButtonStyle
		}
	}
	if active && m.focus == b && m.busy == "" {
		label = "> " + label
	}
	return style.Render(label)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Run shows the window until the user quits.
func Run(ctx context.Context, ctrl Controller, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(New(ctx, ctrl), opts...).Run(); err != nil {
		return fmt.Errorf("error running interactive window: %w", err)
	}
	return nil
}
