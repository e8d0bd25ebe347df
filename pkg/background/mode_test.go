package background

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		text string
		want Mode
	}{
		{"stretch", ModeStretch},
		{"fill", ModeFill},
		{"fit", ModeFit},
		{"center", ModeCenter},
		{"tile", ModeTile},
		{"solid_color", ModeSolidColor},
		{"bogus", ModeInvalid},
		{"", ModeInvalid},
		{"Fill", ModeInvalid}, // exact match only
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, ParseMode(tt.text, nil))
		})
	}
}

func TestParseModeLogsUnknown(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	got := ParseMode("bogus", logger)

	require.Equal(t, ModeInvalid, got)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "unsupported background mode", entry.Message)
	require.Equal(t, "bogus", entry.ContextMap()["mode"])
}

func TestModeString(t *testing.T) {
	require.Equal(t, "tile", ModeTile.String())
	require.Equal(t, "solid_color", ModeSolidColor.String())
	require.Equal(t, "invalid", Mode(42).String())
}
