package policy

import (
	"sync"
	"time"
)

// DefaultExitDuration matches the summary's exit transition.
const DefaultExitDuration = 250 * time.Millisecond

type SummaryPhase int

const (
	// SummaryHidden: not mounted.
	SummaryHidden SummaryPhase = iota
	// SummaryVisible: mounted and shown.
	SummaryVisible
	// SummaryExiting: still mounted, playing the exit transition.
	SummaryExiting
)

// SummaryPresenter holds the mount/unmount timing contract for the floating
// summary: a visible→hidden transition keeps the summary mounted for the
// exit duration before unmounting, while hidden→visible mounts immediately.
type SummaryPresenter struct {
	mu    sync.Mutex
	phase SummaryPhase

	exitAfter time.Duration
	exitTimer *time.Timer
}

func NewSummaryPresenter(exitAfter time.Duration) *SummaryPresenter {
	if exitAfter <= 0 {
		exitAfter = DefaultExitDuration
	}
	return &SummaryPresenter{exitAfter: exitAfter}
}

// Apply feeds the presenter the latest visibility decision. It is called on
// every input change: route navigation, cart mutation, overlay toggle.
func (p *SummaryPresenter) Apply(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if visible {
		if p.exitTimer != nil {
			p.exitTimer.Stop()
			p.exitTimer = nil
		}
		p.phase = SummaryVisible
		return
	}

	if p.phase != SummaryVisible {
		return
	}
	p.phase = SummaryExiting
	p.exitTimer = time.AfterFunc(p.exitAfter, p.finishExit)
}

func (p *SummaryPresenter) finishExit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase == SummaryExiting {
		p.phase = SummaryHidden
		p.exitTimer = nil
	}
}

// Mounted reports whether the summary is in the render tree, including the
// exit transition window.
func (p *SummaryPresenter) Mounted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase != SummaryHidden
}

func (p *SummaryPresenter) Phase() SummaryPhase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}
