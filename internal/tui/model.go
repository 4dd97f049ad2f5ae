// Package tui renders the four-line display in the terminal and turns
// keystrokes into simulated button presses.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/picalc/internal/button"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
	"github.com/agbru/picalc/internal/sim"
	"github.com/agbru/picalc/internal/sysmon"
)

// sysSampleInterval is the cadence of the footer's system sampling.
const sysSampleInterval = time.Second

// Model is the root bubbletea model.
type Model struct {
	header  HeaderModel
	display DisplayModel
	footer  FooterModel

	keymap KeyMap

	presser    sim.Presser
	shortTicks uint32
	longTicks  uint32

	ctx    context.Context
	cancel context.CancelFunc
	err    error

	width  int
	height int
}

// NewModel creates a model pressing buttons on p with lengths derived from
// th. cancel is invoked when the user quits.
func NewModel(ctx context.Context, cancel context.CancelFunc, p sim.Presser, th button.Thresholds, version string) Model {
	keys := DefaultKeyMap()
	return Model{
		header:     NewHeaderModel(version),
		display:    NewDisplayModel(),
		footer:     NewFooterModel(keys),
		keymap:     keys,
		presser:    p,
		shortTicks: sim.ShortPress(th),
		longTicks:  sim.LongPress(th),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(sampleSysStatsCmd(m.ctx), tickCmd(), watchContextCmd(m.ctx))
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(m.width)
		m.footer.SetWidth(m.width)
		return m, nil

	case ViewMsg:
		v := orchestration.View(msg)
		m.display.Update(v)
		m.header.SetSnapshot(v.Snapshot)
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(m.ctx), tickCmd())

	case SysStatsMsg:
		m.footer.UpdateSysStats(msg)
		return m, nil

	case TasksDoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
			m.header.SetFailed(true)
		}
		return m, tea.Quit

	case ContextCancelledMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if line, long, ok := m.keymap.pressFor(msg); ok {
		ticks := m.shortTicks
		if long {
			ticks = m.longTicks
		}
		m.presser.Press(line, ticks)
		return m, nil
	}
	if key.Matches(msg, m.keymap.Quit) {
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}
	return m, nil
}

// Err returns the task error that ended the session, if any.
func (m Model) Err() error { return m.err }

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.display.View(),
		m.footer.View())
}

// Config holds what Run needs besides the context.
type Config struct {
	// Deps are the task collaborators. Their Presenter is replaced.
	Deps       orchestration.Deps
	Buttons    sim.Presser
	Thresholds button.Thresholds
	Version    string
}

// Run is the public entry point for the TUI mode. It runs the task group in
// the background and the program in the foreground until the user quits, ctx
// is done, or a task fails.
func Run(ctx context.Context, cfg Config) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ref := &programRef{}
	model := NewModel(ctx, cancel, cfg.Buttons, cfg.Thresholds, cfg.Version)
	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so task goroutines can Send.
	ref.SetProgram(p)

	deps := cfg.Deps
	deps.Presenter = &Presenter{ref: ref}
	tasksDone := make(chan error, 1)
	go func() {
		err := orchestration.Run(ctx, deps)
		ref.Send(TasksDoneMsg{Err: err})
		tasksDone <- err
	}()

	finalModel, err := p.Run()
	cancel()
	tasksErr := <-tasksDone
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := finalModel.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	if tasksErr != nil && !errors.Is(tasksErr, context.Canceled) {
		return tasksErr
	}
	return nil
}

// tickCmd returns a command that sends a TickMsg after sysSampleInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(sysSampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and the process
// heap, and returns a SysStatsMsg.
func sampleSysStatsCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample(ctx)
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
			HeapAlloc:  metrics.ReadHeap().Alloc,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
