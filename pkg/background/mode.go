package background

import "go.uber.org/zap"

// Mode is the display policy for painting a background onto an output area.
type Mode int

const (
	ModeStretch Mode = iota
	ModeFill
	ModeFit
	ModeCenter
	ModeTile
	ModeSolidColor
	ModeInvalid
)

var modeNames = map[Mode]string{
	ModeStretch:    "stretch",
	ModeFill:       "fill",
	ModeFit:        "fit",
	ModeCenter:     "center",
	ModeTile:       "tile",
	ModeSolidColor: "solid_color",
	ModeInvalid:    "invalid",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "invalid"
}

// ParseMode maps a configuration keyword onto a Mode. Unknown keywords log
// an error and return ModeInvalid; the caller decides whether that is fatal.
func ParseMode(mode string, logger *zap.Logger) Mode {
	switch mode {
	case "stretch":
		return ModeStretch
	case "fill":
		return ModeFill
	case "fit":
		return ModeFit
	case "center":
		return ModeCenter
	case "tile":
		return ModeTile
	case "solid_color":
		return ModeSolidColor
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.With(zap.String("mode", mode)).Error("unsupported background mode")
	return ModeInvalid
}
