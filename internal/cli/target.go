package cli

import (
	"context"
	"sync"

	"github.com/matzehuels/repocards/pkg/showcase"
)

// captureTarget records what a browser rendered so one-shot commands can
// write it out afterwards. A spinner runs while the browser is loading.
type captureTarget struct {
	mu      sync.Mutex
	ctx     context.Context
	message string
	spin    bool
	spinner *Spinner

	view    []showcase.Repository
	notice  string
	renders int
}

func newCaptureTarget(ctx context.Context, message string, spin bool) *captureTarget {
	return &captureTarget{ctx: ctx, message: message, spin: spin}
}

func (t *captureTarget) RenderList(repos []showcase.Repository) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view = repos
	t.notice = ""
	t.renders++
}

func (t *captureTarget) ShowError(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view = nil
	t.notice = msg
}

func (t *captureTarget) SetLoading(on bool) {
	if !t.spin {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case on && t.spinner == nil:
		t.spinner = newSpinnerWithContext(t.ctx, t.message)
		t.spinner.Start()
	case !on && t.spinner != nil:
		t.spinner.Stop()
		t.spinner = nil
	}
}

// View returns the last rendered list.
func (t *captureTarget) View() []showcase.Repository {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// Notice returns the last error region text, empty after a render.
func (t *captureTarget) Notice() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notice
}

var _ showcase.RenderTarget = (*captureTarget)(nil)
