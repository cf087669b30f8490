package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-mclib/client/nav"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// model is navdemo's bubbletea program state, following the same
// title/viewport/help-line layout as tui.TUI, minus the chat text input
// this program has no use for.
type model struct {
	sim      *simulation
	viewport viewport.Model
	ready    bool

	lines []string

	state    nav.ExecState
	x, y, z  float64
	yaw      float64
	tick     int64
	done     bool
	finalErr error
}

func newModel(sim *simulation) model {
	return model{sim: sim}
}

func waitForTick(ch <-chan tickMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m model) Init() tea.Cmd {
	m.sim.start()
	return waitForTick(m.sim.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.viewport.SetContent(m.renderLog())
		return m, nil

	case tickMsg:
		m.tick = msg.tick
		m.state = msg.state
		m.x, m.y, m.z = msg.x, msg.y, msg.z
		m.yaw = msg.yaw
		m.lines = append(m.lines, formatTick(msg))
		if len(m.lines) > 500 {
			m.lines = m.lines[len(m.lines)-500:]
		}
		if m.ready {
			wasAtBottom := m.viewport.AtBottom()
			m.viewport.SetContent(m.renderLog())
			if wasAtBottom {
				m.viewport.GotoBottom()
			}
		}
		if msg.finished {
			m.done = true
			m.finalErr = msg.err
			return m, nil
		}
		return m, waitForTick(m.sim.updates)
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf("navdemo — goal %s", m.sim.goal))

	status := fmt.Sprintf("tick %d  state=%v  pos=(%.2f, %.2f, %.2f)  yaw=%.1f",
		m.tick, m.state, m.x, m.y, m.z, m.yaw)
	if m.done {
		if m.finalErr != nil {
			status = fmt.Sprintf("%s — FAILED: %v", status, m.finalErr)
		} else {
			status = status + " — REACHED GOAL"
		}
	}

	help := helpStyle.Render("Ctrl+C/Esc: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		title,
		m.viewport.View(),
		statusStyle.Render(status),
		help,
	)
}

func (m model) renderLog() string {
	return strings.Join(m.lines, "\n")
}

func formatTick(msg tickMsg) string {
	if msg.err != nil {
		return fmt.Sprintf("[%5d] state=%v err=%v", msg.tick, msg.state, msg.err)
	}
	return fmt.Sprintf("[%5d] state=%v pos=(%.2f, %.2f, %.2f)", msg.tick, msg.state, msg.x, msg.y, msg.z)
}
