package locker

import (
	"sync"
	"time"
)

func NewParams() *Params {
	return &Params{
		ErrorWait:  3 * time.Second,
		RedrawWait: time.Second,
		wakeup:     make(chan struct{}, 1),
	}
}

// Params holds the runtime knobs of the redraw loop.
type Params struct {
	l sync.RWMutex

	// ErrorWait is how long to back off after a failed draw, RedrawWait the
	// regular frame interval.
	ErrorWait  time.Duration
	RedrawWait time.Duration

	wakeup chan struct{}
	paused bool
}

func (p *Params) Paused() bool {
	p.l.RLock()
	defer p.l.RUnlock()
	return p.paused
}

func (p *Params) WakeupChan() <-chan struct{} {
	return p.wakeup
}

func (p *Params) Pause() {
	p.l.Lock()
	defer p.l.Unlock()
	p.paused = true
}

// Wakeup unpauses the loop and forces an immediate redraw.
func (p *Params) Wakeup() {
	p.l.Lock()
	p.paused = false
	p.l.Unlock()

	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}
