package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/picalc/internal/orchestration"
)

// programRef lets task goroutines reach the running program. Bubbletea
// copies the model on every Update, so the program cannot live in Model.
type programRef struct {
	program atomic.Pointer[tea.Program]
}

// SetProgram installs p. A nil p detaches the reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.program.Store(p)
}

// Send delivers msg to the program, or drops it when none is attached.
func (r *programRef) Send(msg tea.Msg) {
	if p := r.program.Load(); p != nil {
		p.Send(msg)
	}
}

// Presenter forwards refreshed views to the program as ViewMsg.
type Presenter struct {
	ref *programRef
}

var _ orchestration.Presenter = (*Presenter)(nil)

// Present sends v to the display.
func (p *Presenter) Present(v orchestration.View) {
	p.ref.Send(ViewMsg(v))
}
