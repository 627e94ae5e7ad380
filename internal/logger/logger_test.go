package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel_AcceptsEveryLevel(t *testing.T) {
	for _, level := range Levels {
		_, err := ParseLevel(level)
		assert.NoError(t, err, level)
	}
}

func TestNewZapAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapAdapter(zap.New(core)).With(Fields{"use_case": "report"})

	l.Debug("hidden", nil)
	l.WithError(errors.New("boom")).Error("failed", Fields{"facilities": 1})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "failed", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "report", ctx["use_case"])
	assert.Equal(t, "boom", ctx["error"])
	assert.EqualValues(t, 1, ctx["facilities"])
}

func TestNew(t *testing.T) {
	for _, format := range Formats {
		l, err := New("warn", format)
		require.NoError(t, err, format)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	}

	_, err := New("loud", "json")
	assert.Error(t, err)
}

func TestNewWriter_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zapcore.InfoLevel).With(Fields{"run_id": "r-1"})

	l.Debug("hidden", nil)
	l.WithError(errors.New("boom")).Info("analyzed", Fields{"intent": "compare"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "analyzed", entry["msg"])
	assert.Equal(t, "r-1", entry["run_id"])
	assert.Equal(t, "compare", entry["intent"])
	assert.Equal(t, "boom", entry["error"])
}

func TestNoOpAndTestLoggers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNoOpLogger().With(Fields{"k": 1}).Warn("dropped", nil)
		NewTestLogger(t).Info("visible in -v", Fields{"k": "v"})
	})
}
