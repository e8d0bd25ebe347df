// Package locker drives the frame loop: grab a snapshot, convert it to the
// canonical surface, apply effects, paint the background and present.
package locker

import (
	"fmt"
	"image"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/background"
	"github.com/Xenfo/swaylock-effects-improved/pkg/capture"
	"github.com/Xenfo/swaylock-effects-improved/pkg/effects"
	"github.com/Xenfo/swaylock-effects-improved/pkg/output"
	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

func New(src capture.Source, out output.Output, renderer *background.Renderer,
	params *Params, logger *zap.Logger, opts ...Option) *Locker {
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Locker{
		src:      src,
		out:      out,
		renderer: renderer,
		params:   params,
		logger:   logger,
		mode:     background.ModeStretch,
		alpha:    1,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

type Locker struct {
	src      capture.Source
	out      output.Output
	renderer *background.Renderer
	params   *Params
	logger   *zap.Logger

	mode  background.Mode
	alpha float64
	bg    image.Image
	effs  []effects.Effect
}

type Option func(l *Locker)

// WithEffects applies the given effect chain to the background image.
func WithEffects(e ...effects.Effect) Option {
	return func(l *Locker) {
		l.effs = e
	}
}

// WithBackground uses img instead of the captured screen content.
func WithBackground(img image.Image) Option {
	return func(l *Locker) {
		l.bg = img
	}
}

// WithMode sets the background display mode and global alpha.
func WithMode(mode background.Mode, alpha float64) Option {
	return func(l *Locker) {
		l.mode = mode
		l.alpha = alpha
	}
}

// Draw produces and presents one frame.
func (l *Locker) Draw() error {
	started := time.Now()

	snap, err := l.src.Grab()
	if err != nil {
		return fmt.Errorf("grab snapshot failed: %w", err)
	}

	sfc, err := snap.Surface(l.logger)
	if err != nil {
		return fmt.Errorf("convert snapshot failed: %w", err)
	}

	img := lo.Ternary[image.Image](l.bg != nil, l.bg, sfc)
	img = effects.Apply(img, l.effs...)

	frame := surface.New(sfc.Bounds().Dx(), sfc.Bounds().Dy())
	if err := l.renderer.Render(frame, img, l.mode, l.alpha); err != nil {
		return fmt.Errorf("render background failed: %w", err)
	}

	if err := l.out.Present(frame); err != nil {
		return fmt.Errorf("present frame failed: %w", err)
	}

	l.logger.With(zap.Duration("took", time.Since(started))).Debug("frame drawn")
	return nil
}

// Run redraws until shutdown is signalled, backing off after failures. The
// output is shut down on the way out.
func (l *Locker) Run(shutdown <-chan struct{}) {
	timer := time.NewTimer(time.Nanosecond)

	defer func() {
		timer.Stop()
		if err := l.out.Shutdown(); err != nil {
			l.logger.With(zap.Error(err)).Info("shutdown failed")
		}
	}()

	wakeupChan := l.params.WakeupChan()

	for {
		select {
		case <-shutdown:
			return
		case <-wakeupChan:
			timer.Reset(time.Millisecond)
			continue
		case <-timer.C:
			if l.params.Paused() {
				l.logger.Info("redraw paused, skip...")
				continue
			}
			if err := l.Draw(); err != nil {
				l.logger.With(zap.Error(err)).Info("drawing failed")
				timer.Reset(l.params.ErrorWait)
			} else {
				timer.Reset(l.params.RedrawWait)
			}
		}
	}
}
