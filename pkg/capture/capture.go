// Package capture abstracts the compositor side: something that can hand out
// framebuffer snapshots of the screen to be locked.
package capture

import (
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/pixel"
	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

// Snapshot is one framebuffer grab: raw little-endian pixels plus everything
// needed to interpret them. The buffer is owned by the caller and discarded
// after conversion.
type Snapshot struct {
	Buf       []byte
	Format    pixel.Format
	Width     int
	Height    int
	Stride    int
	Transform pixel.Transform
}

// Source supplies framebuffer snapshots.
type Source interface {
	Grab() (*Snapshot, error)
}

// Surface converts the snapshot into a canonical surface.
func (s *Snapshot) Surface(logger *zap.Logger) (*surface.Surface, error) {
	return surface.FromBuffer(s.Buf, s.Format, s.Width, s.Height, s.Stride, s.Transform, logger)
}
