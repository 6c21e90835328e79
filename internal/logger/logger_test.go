package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsRequestAndUserIDs(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "123456789")
	CtxInfo(ctx, "scored volunteers", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "123456789", entry["user_id"])
	assert.Equal(t, "scored volunteers", entry["msg"])
	assert.EqualValues(t, 3, entry["count"])
}

func TestDBLog_ErrorLevelOnFailure(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)

	DBLog("count_by_city", 0, errors.New("connection reset"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "connection reset", entry["error"])
}

func TestInit_DevelopmentIsDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("development", &buf)

	Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
