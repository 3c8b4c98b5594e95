package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "seashell", "info", JSONEncoder)
	require.NoError(t, err)

	logger.Debug("hidden")
	require.Zero(t, buf.Len())

	logger.Info("submitted", ZBase58("id", []byte{0, 1, 2}), zap.Uint64("gas", 5))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "submitted", entry["msg"])
	require.Equal(t, "seashell", entry["logger"])
	require.Equal(t, "15T", entry["id"])
	require.EqualValues(t, 5, entry["gas"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "cli", "debug", ConsoleEncoder)
	require.NoError(t, err)
	logger.Debug("visible")
	require.Contains(t, buf.String(), "visible")
	require.Contains(t, buf.String(), "cli")
}

func TestNewWithWriter_Errors(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "", "loud", ConsoleEncoder)
	require.ErrorContains(t, err, "parse log level")

	_, err = NewWithWriter(&bytes.Buffer{}, "", "info", "xml")
	require.ErrorContains(t, err, "unknown log encoder")
}
