package capture

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/pixel"
)

func NewVirtual(width, height int, format pixel.Format, tr pixel.Transform, logger *zap.Logger) *Virtual {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Virtual{
		width:  width,
		height: height,
		format: format,
		tr:     tr,
		logger: logger,
	}
}

// Virtual is a fake compositor for demos and tests: it grabs a generated
// gradient pattern instead of a real screen, in a configurable wire format
// and transform.
type Virtual struct {
	width  int
	height int
	format pixel.Format
	tr     pixel.Transform
	frame  uint8
	logger *zap.Logger
}

func (v *Virtual) Grab() (*Snapshot, error) {
	// Cells are always 4 bytes wide, 3-byte formats use the low 3 bytes.
	stride := v.width * 4
	buf := make([]byte, v.height*stride)

	v.frame++
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			r := gradient(x, v.width)
			g := gradient(y, v.height)
			b := v.frame

			if err := v.encode(buf[y*stride+x*v.format.WireBytes():], r, g, b); err != nil {
				return nil, err
			}
		}
	}

	v.logger.With(
		zap.Int("w", v.width),
		zap.Int("h", v.height),
		zap.Stringer("format", v.format),
		zap.Stringer("transform", v.tr),
	).Debug("grabbed virtual frame")

	return &Snapshot{
		Buf:       buf,
		Format:    v.format,
		Width:     v.width,
		Height:    v.height,
		Stride:    stride,
		Transform: v.tr,
	}, nil
}

func (v *Virtual) encode(pix []byte, r, g, b uint8) error {
	switch v.format {
	case pixel.XRGB8888, pixel.ARGB8888:
		pix[0], pix[1], pix[2], pix[3] = b, g, r, 0xFF
	case pixel.XBGR8888, pixel.ABGR8888:
		pix[0], pix[1], pix[2], pix[3] = r, g, b, 0xFF
	case pixel.BGR888:
		pix[0], pix[1], pix[2] = r, g, b
	case pixel.RGB888:
		pix[0], pix[1], pix[2] = b, g, r
	default:
		return errors.Errorf("virtual source cannot encode %s", v.format)
	}
	return nil
}

func gradient(i, n int) uint8 {
	if n <= 1 {
		return 0
	}
	return uint8(i * 255 / (n - 1))
}
