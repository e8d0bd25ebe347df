package surface

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/pixel"
)

// FromBuffer converts one compositor framebuffer snapshot into a canonical
// surface: geometry first (the transform copy works on opaque 4-byte cells),
// then the per-format channel rewrite on the already-oriented buffer. The
// order matters for the 3-byte formats, whose widening kernel must own whole
// destination rows.
//
// The destination dimensions are swapped from the source's for the
// 90/270-family transforms. The source buffer is only read; the returned
// surface is freshly allocated and belongs to the caller.
func FromBuffer(buf []byte, format pixel.Format, width, height, stride int,
	tr pixel.Transform, logger *zap.Logger) (*Surface, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if width < 0 || height < 0 {
		err := errors.Errorf("invalid snapshot size %dx%d", width, height)
		logger.With(zap.Error(err)).Error("failed to create surface")
		return nil, err
	}
	if width > 0 && stride < width*4 {
		// Every supported wire format fits its pixels in 4-byte cells; the
		// transform stage relies on that.
		err := errors.Errorf("stride %d too small for width %d", stride, width)
		logger.With(zap.Error(err)).Error("failed to create surface")
		return nil, err
	}
	if len(buf) < height*stride {
		err := errors.Errorf("buffer holds %d bytes, need %d", len(buf), height*stride)
		logger.With(zap.Error(err)).Error("failed to create surface")
		return nil, err
	}

	dstW, dstH := width, height
	if tr.Swapped() {
		dstW, dstH = height, width
	}

	s := New(dstW, dstH)
	pixel.CopyTransformed(s.Pix, buf, s.Stride, stride, dstW, dstH, tr)
	pixel.Normalize(s.Pix, dstW, dstH, s.Stride, format, logger)

	return s, nil
}
