package output

import (
	"github.com/inhies/go-bytesize"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

func Mock(logger *zap.Logger) Output {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mocker{l: logger}
}

// Mocker logs frames instead of displaying them.
type Mocker struct {
	l      *zap.Logger
	frames int
}

func (m *Mocker) Startup() error {
	m.l.Info("startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.l.Info("shutdown")
	return nil
}

func (m *Mocker) Present(frame *surface.Surface) error {
	m.frames++
	m.l.With(
		zap.Int("w", frame.Bounds().Dx()),
		zap.Int("h", frame.Bounds().Dy()),
		zap.Stringer("size", bytesize.New(float64(len(frame.Pix)))),
	).Info("present")
	return nil
}

// Frames reports how many frames were presented.
func (m *Mocker) Frames() int {
	return m.frames
}
