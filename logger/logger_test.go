package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zap.AtomicLevel
	}{
		{"default", "", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"debug", "DEBUG", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"invalid falls back to info", "loud", zap.NewAtomicLevelAt(zap.InfoLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(Config{Level: tt.level, Encoding: "json"})
			require.NoError(t, err)
			assert.Equal(t, tt.want.Level() == zap.DebugLevel, l.Core().Enabled(zap.DebugLevel))
			assert.True(t, l.Core().Enabled(zap.InfoLevel))
		})
	}
}
