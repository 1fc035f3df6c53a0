package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("db down"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "db down", attr.Value.String())
	assert.Equal(t, "", Err(nil).Value.String())
}

func TestLevelsByEnv(t *testing.T) {
	ctx := context.Background()
	assert.True(t, NewWithWriter(EnvLocal, &bytes.Buffer{}).Enabled(ctx, slog.LevelDebug))
	assert.False(t, NewWithWriter(EnvDevelopment, &bytes.Buffer{}).Enabled(ctx, slog.LevelDebug))
	assert.True(t, NewWithWriter(EnvDevelopment, &bytes.Buffer{}).Enabled(ctx, slog.LevelInfo))
	assert.False(t, NewWithWriter(EnvProduction, &bytes.Buffer{}).Enabled(ctx, slog.LevelInfo))
}

func TestUnknownEnvWarnsInJSON(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("staging", &buf)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "staging", entry["env"])
}
