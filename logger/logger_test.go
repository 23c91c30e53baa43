package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDFromContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestIDFromContext(ctx))
}

func TestLogrusLogger_JSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLoggerWithOutput("debug", "json", &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	log.WithField("component", "jobs").Info(ctx, "job created", map[string]interface{}{"job_id": 7})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "job created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "jobs", entry["component"])
	assert.Equal(t, float64(7), entry["job_id"])
}

func TestLogrusLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLoggerWithOutput("warn", "json", &buf)

	log.Info(context.Background(), "dropped", nil)
	assert.Zero(t, buf.Len())

	log.Error(context.Background(), "kept", nil)
	assert.Contains(t, buf.String(), "kept")
}

func TestLogrusLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogrusLoggerWithOutput("loud", "text", &buf)

	log.Debug(context.Background(), "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Info(context.Background(), "shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestTestLogger_SharedSink(t *testing.T) {
	log := NewTestLogger()
	child := log.WithField("component", "companies")

	child.Warn(WithRequestID(context.Background(), "r"), "slow query", map[string]interface{}{"ms": 12})
	log.Error(context.Background(), "failed", nil)

	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Equal(t, "companies", entries[0].Fields["component"])
	assert.Equal(t, "r", entries[0].Fields["request_id"])
	assert.Equal(t, 12, entries[0].Fields["ms"])
	assert.Len(t, log.EntriesWithLevel("error"), 1)

	log.Reset()
	assert.Empty(t, log.Entries())
}
