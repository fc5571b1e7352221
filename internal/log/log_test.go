package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelInfo, OutputJSON, &buf)

	Info(ctx, "registry read", "root", "4242")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "registry read", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "4242", entry["root"])
}

func TestNewContextTextOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelDebug, OutputText, &buf)

	Debug(ctx, "assembling request")

	assert.Contains(t, buf.String(), "msg=\"assembling request\"")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestErrorAttachesErrAttribute(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelErr, OutputJSON, &buf)

	Error(ctx, "cannot read current merkle root", errors.New("rpc timeout"), "attempt", "1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cannot read current merkle root", entry["msg"])
	assert.Equal(t, "rpc timeout", entry["err"])
	assert.Equal(t, "1", entry["attempt"])
}

func TestErrorWithNilError(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelErr, OutputJSON, &buf)

	Error(ctx, "hub call failed", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hub call failed", entry["msg"])
	_, found := entry["err"]
	assert.False(t, found)
}

func TestLevelFiltersLowerRecords(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelWarn, OutputJSON, &buf)

	Info(ctx, "should be dropped")
	assert.Zero(t, buf.Len())

	Warn(ctx, "should be kept")
	assert.Contains(t, buf.String(), "should be kept")
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), LevelInfo, OutputJSON, &buf)
	ctx = With(ctx, "network", "celo")

	Info(ctx, "resolved settings")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "celo", entry["network"])
}
