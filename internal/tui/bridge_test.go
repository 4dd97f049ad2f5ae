package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agbru/picalc/internal/orchestration"
)

func TestPresenter_WithoutProgramDropsViews(t *testing.T) {
	ref := &programRef{}
	p := &Presenter{ref: ref}
	assert.NotPanics(t, func() {
		ref.Send(TickMsg{})
		p.Present(orchestration.View{})
	})
}

func TestPresenter_ConcurrentDetach(t *testing.T) {
	ref := &programRef{}
	p := &Presenter{ref: ref}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				p.Present(orchestration.View{})
				ref.SetProgram(nil)
			}
		}()
	}
	wg.Wait()
}
