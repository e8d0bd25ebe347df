package output

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

func NewPNG(fs afero.Fs, logger *zap.Logger) *PNG {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PNG{fs: fs, log: logger}
}

// PNG writes every presented frame as a PNG file, mostly useful to inspect
// what the pipeline produces without a display.
type PNG struct {
	fs   afero.Fs
	log  *zap.Logger
	last string
}

func (p *PNG) Startup() error {
	return nil
}

func (p *PNG) Shutdown() error {
	return nil
}

func (p *PNG) Present(frame *surface.Surface) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return fmt.Errorf("encode frame failed: %w", err)
	}

	name := fmt.Sprintf("frame-%s.png", xid.New())
	if err := afero.WriteFile(p.fs, name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write frame failed: %w", err)
	}

	p.last = name
	p.log.With(
		zap.String("file", name),
		zap.Stringer("size", bytesize.New(float64(buf.Len()))),
	).Debug("frame written")
	return nil
}

// Last returns the name of the most recently written frame file.
func (p *PNG) Last() string {
	return p.last
}
