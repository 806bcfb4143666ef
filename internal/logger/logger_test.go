package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/mesafe/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		env   string
		level slog.Level
	}{
		{logger.EnvLocal, slog.LevelDebug},
		{logger.EnvDev, slog.LevelInfo},
		{logger.EnvProd, slog.LevelWarn},
		{"unknown", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.New(&buf, tt.env)

			assert.True(t, log.Enabled(context.Background(), tt.level))
			assert.False(t, log.Enabled(context.Background(), tt.level-1))
		})
	}
}

func TestNew_ProductionDropsTime(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.EnvProd)

	log.Warn("Reference table installed", "places", 81)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, slog.TimeKey)
	assert.Equal(t, "Reference table installed", record[slog.MessageKey])
	assert.InDelta(t, 81, record["places"], 0)
}

func TestNew_UnknownEnvWarns(t *testing.T) {
	var buf bytes.Buffer
	logger.New(&buf, "")

	assert.Contains(t, buf.String(), "available_envs")
}

func TestSetup(t *testing.T) {
	assert.NotNil(t, logger.Setup(logger.EnvDev))
}
