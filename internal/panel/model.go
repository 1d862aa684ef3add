package panel

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/t0mer/pi-fm-radio/internal/tuner"
)

// DefaultRefreshInterval is the default cadence of the periodic status
// refresh. Frequent enough for the signal meter and lamps to feel live,
// infrequent enough to avoid needless device load. Tunable per instance.
const DefaultRefreshInterval = 2 * time.Second

// refreshTrigger identifies what started a status fetch. The timer and
// user commands are independent trigger sources: each keeps its own
// in-flight accounting, and their responses may arrive in any order. The
// last response to be applied wins, which can transiently show a stale
// frame; the next refresh overwrites it.
type refreshTrigger int

const (
	triggerTimer refreshTrigger = iota
	triggerCommand
)

// Messages for async operations
type tickMsg time.Time

type statusMsg struct {
	trigger  refreshTrigger
	snapshot *tuner.StatusSnapshot
	err      error
}

type commandDoneMsg struct {
	op  string
	err error
}

type presetsMsg struct {
	presets []tuner.Preset
	err     error
}

// Model is the instrument panel. It owns the periodic refresh loop: the
// loop starts with Init, stops when the program quits, and never outlives
// the model. A failed refresh is handed to the Reporter and otherwise
// ignored; the next tick is the recovery mechanism.
type Model struct {
	client   *tuner.Client
	reporter Reporter
	interval time.Duration

	// visual is the only mutable shared state. It is written exclusively
	// by statusMsg handling, always as a total overwrite.
	visual     VisualState
	haveStatus bool
	lastUpdate time.Time

	// fetching guards the timer trigger: no new timer-driven fetch starts
	// while one is in flight. Command-driven refreshes are not guarded;
	// they are serialized behind their command by construction.
	fetching bool

	forcedMono bool
	presets    []tuner.Preset

	tuning    bool
	tuneInput textinput.Model

	spinner spinner.Model
	help    help.Model
	keys    panelKeyMap
	width   int
	height  int
}

// New creates a panel model for the given tuner client. A nil reporter
// falls back to the structured log.
func New(client *tuner.Client, reporter Reporter, interval time.Duration) Model {
	if reporter == nil {
		reporter = LogReporter{}
	}
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	input := textinput.New()
	input.Placeholder = "101.1"
	input.CharLimit = 6
	input.Width = 10
	input.Prompt = "Tune to MHz: "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = PromptStyle

	return Model{
		client:   client,
		reporter: reporter,
		interval: interval,
		// Init issues the first timer-driven fetch immediately.
		fetching:  true,
		tuneInput: input,
		spinner:   s,
		help:      help.New(),
		keys:      newPanelKeyMap(),
	}
}

// Init starts the refresh loop and loads the preset list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(triggerTimer),
		m.tickCmd(),
		m.loadPresetsCmd(),
		m.spinner.Tick,
	)
}

// Update handles all panel messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The next tick is always scheduled, even when this one is
		// skipped or the previous fetch failed: a single failed poll
		// must never halt the loop.
		cmds := []tea.Cmd{m.tickCmd()}
		if !m.fetching {
			m.fetching = true
			cmds = append(cmds, m.fetchCmd(triggerTimer))
		}
		return m, tea.Batch(cmds...)

	case statusMsg:
		if msg.trigger == triggerTimer {
			m.fetching = false
		}
		if msg.err != nil {
			m.reporter.ReportError("status", msg.err)
			return m, nil
		}
		m.visual = Map(*msg.snapshot)
		m.haveStatus = true
		m.lastUpdate = time.Now()
		return m, nil

	case commandDoneMsg:
		if msg.err != nil {
			// Command failed: no follow-up refresh, the display keeps
			// showing fetched truth from before the command.
			m.reporter.ReportError(msg.op, msg.err)
			return m, nil
		}
		if msg.op == "presets reload" {
			return m, m.loadPresetsCmd()
		}
		// Converge on the device's post-command state rather than
		// assuming the command's effect.
		return m, m.fetchCmd(triggerCommand)

	case presetsMsg:
		if msg.err != nil {
			m.reporter.ReportError("presets", msg.err)
			return m, nil
		}
		m.presets = msg.presets
		return m, nil

	case spinner.TickMsg:
		if m.haveStatus {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses, including the direct-tune prompt.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tuning {
		switch msg.String() {
		case "enter":
			value := strings.TrimSpace(m.tuneInput.Value())
			m.tuning = false
			m.tuneInput.Blur()
			m.tuneInput.Reset()

			frequency, err := strconv.ParseFloat(value, 64)
			if err != nil {
				m.reporter.ReportError("tune", fmt.Errorf("invalid frequency %q: %w", value, err))
				return m, nil
			}
			// Sent verbatim; the device clamps out-of-range requests and
			// the follow-up refresh shows what it settled on.
			return m, m.commandCmd("tune", func(ctx context.Context) error {
				return m.client.Tune(ctx, frequency)
			})

		case "esc":
			m.tuning = false
			m.tuneInput.Blur()
			m.tuneInput.Reset()
			return m, nil

		case "ctrl+c":
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.tuneInput, cmd = m.tuneInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.StepUp):
		return m, m.commandCmd("step", func(ctx context.Context) error {
			return m.client.Step(ctx, tuner.StepUp)
		})

	case key.Matches(msg, m.keys.StepDown):
		return m, m.commandCmd("step", func(ctx context.Context) error {
			return m.client.Step(ctx, tuner.StepDown)
		})

	case key.Matches(msg, m.keys.MuteToggle):
		if m.visual.MuteLampOn {
			return m, m.commandCmd("unmute", m.client.Unmute)
		}
		return m, m.commandCmd("mute", m.client.Mute)

	case key.Matches(msg, m.keys.MonoToggle):
		m.forcedMono = !m.forcedMono
		mono := m.forcedMono
		return m, m.commandCmd("mono", func(ctx context.Context) error {
			return m.client.SetMono(ctx, mono)
		})

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchCmd(triggerCommand)

	case key.Matches(msg, m.keys.Reload):
		return m, m.commandCmd("presets reload", m.client.ReloadPresets)

	case key.Matches(msg, m.keys.Tune):
		m.tuning = true
		m.tuneInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Preset):
		index := int(msg.String()[0] - '1')
		if index < 0 || index >= len(m.presets) {
			return m, nil
		}
		frequency := m.presets[index].Frequency
		return m, m.commandCmd("tune", func(ctx context.Context) error {
			return m.client.Tune(ctx, frequency)
		})
	}

	return m, nil
}

// View renders the panel. The whole frame is rebuilt from the current
// visual state on every call.
func (m Model) View() string {
	if !m.haveStatus {
		return PanelStyle.Render(
			fmt.Sprintf("%s Waiting for tuner at %s …", m.spinner.View(), m.client.BaseURL),
		) + "\n"
	}

	var b strings.Builder
	b.WriteString(PanelStyle.Render(Render(m.visual)))
	b.WriteString("\n")

	if m.tuning {
		b.WriteString(PromptStyle.Render(m.tuneInput.View()))
	} else {
		b.WriteString(m.footer())
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// footer shows the preset shortcuts and the time of the last applied
// refresh.
func (m Model) footer() string {
	var parts []string
	for i, preset := range m.presets {
		if i >= 9 {
			break
		}
		parts = append(parts, fmt.Sprintf("%d:%s", i+1, preset.Name))
	}
	line := strings.Join(parts, "  ")
	if !m.lastUpdate.IsZero() {
		if line != "" {
			line += "  ·  "
		}
		line += "updated " + m.lastUpdate.Format("15:04:05")
	}
	return HelpStyle.Render(line)
}

// tickCmd schedules the next refresh tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd fetches device status off the UI loop and delivers it as a
// statusMsg. In-flight fetches are never cancelled; a late response is
// applied in arrival order.
func (m Model) fetchCmd(trigger refreshTrigger) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		snapshot, err := client.Status(context.Background())
		return statusMsg{trigger: trigger, snapshot: snapshot, err: err}
	}
}

// commandCmd runs a state-changing device call off the UI loop.
func (m Model) commandCmd(op string, call func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{op: op, err: call(context.Background())}
	}
}

// loadPresetsCmd fetches the device preset list.
func (m Model) loadPresetsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		presets, err := client.Presets(context.Background())
		return presetsMsg{presets: presets, err: err}
	}
}
