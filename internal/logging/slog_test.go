package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_LevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "hidden", "k", "v")
	assert.Empty(t, buf.String(), "debug must be filtered at info level")

	log.Info(ctx, "api request", "method", "GET", "path", "/users")
	out := buf.String()
	assert.Contains(t, out, "api request")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/users")
}

func TestWith_PropagatesAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelDebug)

	child := log.With("component", "api")
	require.NotNil(t, child)

	child.Error(context.Background(), "request failed", "status", 500)
	out := buf.String()
	assert.Contains(t, out, "component=api")
	assert.Contains(t, out, "status=500")
}
