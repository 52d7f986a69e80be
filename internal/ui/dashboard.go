package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/surreal-look0e/Base-Horizon/internal/app"
)

// SnapshotRenderer bridges controller output into the Bubble Tea event
// loop. Render never blocks the calling goroutine: when the UI falls
// behind, older snapshots are dropped, the latest one wins.
type SnapshotRenderer struct {
	ch chan []string
}

// NewSnapshotRenderer creates a renderer for the dashboard.
func NewSnapshotRenderer() *SnapshotRenderer {
	return &SnapshotRenderer{ch: make(chan []string, 16)}
}

func (r *SnapshotRenderer) Render(lines []string) {
	for {
		select {
		case r.ch <- lines:
			return
		default:
			select {
			case <-r.ch: // drop the oldest snapshot
			default:
			}
		}
	}
}

type snapshotMsg []string
type actionDoneMsg struct{ err error }
type tickMsg time.Time

// dashboardModel is the Bubble Tea model for the single-page console.
// Everything the user does maps to one controller action; the view is
// always the last snapshot the controller rendered.
type dashboardModel struct {
	ctrl      *app.Controller
	snapshots <-chan []string
	interval  time.Duration

	lines    []string
	spin     spinner.Model
	input    textinput.Model
	entering bool
	busy     int
	quitting bool
}

func newDashboardModel(ctrl *app.Controller, r *SnapshotRenderer, interval time.Duration) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StyleChain

	ti := textinput.New()
	ti.Placeholder = "0x..."
	ti.Width = 44

	return dashboardModel{
		ctrl:      ctrl,
		snapshots: r.ch,
		interval:  interval,
		spin:      s,
		input:     ti,
	}
}

// NewDashboard creates the Bubble Tea program for the wallet console.
// The controller must have been wired with r as its renderer. A
// positive interval refreshes the pulse of a connected session
// periodically.
func NewDashboard(ctrl *app.Controller, r *SnapshotRenderer, interval time.Duration) *tea.Program {
	return tea.NewProgram(newDashboardModel(ctrl, r, interval))
}

func (m dashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listen(), m.spin.Tick}
	if m.interval > 0 {
		cmds = append(cmds, tick(m.interval))
	}
	return tea.Batch(cmds...)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "c":
			return m, m.begin(m.ctrl.Connect)

		case "t":
			m.ctrl.ToggleNetwork()
			return m, nil

		case "p":
			return m, m.begin(m.ctrl.FetchPulse)

		case "b":
			m.entering = true
			m.input.SetValue("")
			return m, m.input.Focus()
		}

	case snapshotMsg:
		m.lines = []string(msg)
		return m, m.listen()

	case actionDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tick(m.interval)}
		// Refresh only a quiet, connected session; a running action or
		// an open input keeps the timer from piling on.
		if m.ctrl.Connected() && m.busy == 0 && !m.entering {
			cmds = append(cmds, m.begin(m.ctrl.FetchPulse))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		addr := strings.TrimSpace(m.input.Value())
		m.entering = false
		m.input.Blur()
		return m, m.begin(func(ctx context.Context) error {
			return m.ctrl.CheckBalance(ctx, addr)
		})

	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// begin launches a controller action off the event loop. The action
// reports its result through the renderer; actionDoneMsg only clears
// the busy indicator.
func (m *dashboardModel) begin(action func(context.Context) error) tea.Cmd {
	m.busy++
	return func() tea.Msg {
		return actionDoneMsg{err: action(context.Background())}
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listen waits for the next controller snapshot.
func (m dashboardModel) listen() tea.Cmd {
	return func() tea.Msg {
		lines, ok := <-m.snapshots
		if !ok {
			return nil
		}
		return snapshotMsg(lines)
	}
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("⚡ Base Horizon") + "\n")
	sb.WriteString(m.headerLine() + "\n\n")

	body := Meta("No data yet. Press c to connect.")
	if len(m.lines) > 0 {
		body = strings.Join(m.styledLines(), "\n")
	}
	sb.WriteString(StyleBorder.Render(body) + "\n")

	if m.entering {
		sb.WriteString("\n" + Meta("Address to check (Enter to submit, Esc to cancel):") + "\n")
		sb.WriteString(m.input.View() + "\n")
	}

	if m.busy > 0 {
		sb.WriteString("\n" + m.spin.View() + Meta(" working...") + "\n")
	}

	sb.WriteString("\n" + Meta("c connect · t toggle network · p pulse · b balance · q quit") + "\n")
	return sb.String()
}

func (m dashboardModel) headerLine() string {
	net := m.ctrl.ActiveNetwork()
	status := StyleWarning.Render("disconnected")
	if sess, ok := m.ctrl.CurrentSession(); ok {
		status = StyleSuccess.Render("connected ") + Addr(TruncateAddr(sess.Address))
	}
	return NetworkName(net.Label) + Meta("  ·  ") + status
}

// styledLines colors the raw snapshot without changing its text.
func (m dashboardModel) styledLines() []string {
	out := make([]string, len(m.lines))
	for i, line := range m.lines {
		switch {
		case strings.HasPrefix(line, "Error: "):
			out[i] = StyleError.Render(line)
		case strings.HasPrefix(line, "Connected: "), strings.HasPrefix(line, "Address: "):
			out[i] = StyleAddress.Render(line)
		case strings.HasPrefix(line, "ETH balance: "):
			out[i] = StyleValue.Render(line)
		case strings.HasPrefix(line, "Explorer: "):
			out[i] = StyleMeta.Render(line)
		default:
			out[i] = line
		}
	}
	return out
}
