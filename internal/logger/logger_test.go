package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_RedactsSecretKeys(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core))

	l.Info("backend configured", "provider", "cerebras", "api_key", "csk-123", "AuthToken", "abc")

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "cerebras", fields["provider"])
	assert.Equal(t, redacted, fields["api_key"])
	assert.Equal(t, redacted, fields["AuthToken"])
}

func TestLogger_WithKeepsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With("course_generation_id", 7)

	l.Warn("chapter failed", "chapter", 2)

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 7, fields["course_generation_id"])
	assert.EqualValues(t, 2, fields["chapter"])
}

func TestRedact_OddLength(t *testing.T) {
	in := []any{"token", "x", "dangling"}
	out := redact(in)
	assert.Equal(t, []any{"token", redacted, "dangling"}, out)
	assert.Equal(t, "x", in[1], "input must not be mutated")
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode)
		assert.NoError(t, err)
		assert.NotNil(t, l)
	}
}
