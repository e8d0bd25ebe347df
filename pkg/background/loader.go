package background

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/Xenfo/swaylock-effects-improved/pkg/surface"
)

func NewLoader(fs afero.Fs, logger *zap.Logger) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fs: fs, log: logger}
}

// Loader reads background image files into canonical surfaces.
type Loader struct {
	fs  afero.Fs
	log *zap.Logger
}

func (l *Loader) Load(path string) (*surface.Surface, error) {
	bs, err := afero.ReadFile(l.fs, path)
	if err != nil {
		l.log.With(zap.String("path", path), zap.Error(err)).Error("failed to read background image")
		return nil, fmt.Errorf("read background image failed: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		l.log.With(zap.String("path", path), zap.Error(err)).Error("failed to decode background image")
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	return surface.FromImage(img), nil
}
