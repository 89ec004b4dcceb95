package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		rec := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}

	return records
}

func TestSlogLogger_Log(t *testing.T) {
	t.Setenv("ENV", "production")
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogWriter(&buf, InfoLevel, false)

	l.Log(InfoLevel, "fibonacci() => {}", 8)
	l.Log(DebugLevel, "hidden {}", 1)
	l.Warn("structured", "key", "value")

	records := decodeLines(t, &buf)
	require.Len(records, 2)
	require.Equal("fibonacci() => 8", records[0]["msg"])
	require.Equal("INFO", records[0]["level"])
	require.Contains(records[0], "ts")
	require.Equal("structured", records[1]["msg"])
	require.Equal("value", records[1]["key"])
}

func TestSlogLogger_TraceLevel(t *testing.T) {
	t.Setenv("ENV", "production")
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogWriter(&buf, InfoLevel, false)
	require.Equal(InfoLevel, l.Level())

	l.Log(TraceLevel, "not yet")
	require.Zero(buf.Len())

	l.SetLevel(TraceLevel)
	require.Equal(TraceLevel, l.Level())
	l.Log(TraceLevel, "now {}", "visible")

	records := decodeLines(t, &buf)
	require.Len(records, 1)
	require.Equal("now visible", records[0]["msg"])
	require.Equal("TRACE", records[0]["level"])
}

func TestSlogLogger_With(t *testing.T) {
	t.Setenv("ENV", "production")
	require := require.New(t)

	var buf bytes.Buffer
	l := NewSlogWriter(&buf, InfoLevel, false)
	child := l.With("component", "generator")
	child.Info("hello")

	records := decodeLines(t, &buf)
	require.Len(records, 1)
	require.Equal("generator", records[0]["component"])
}

func TestSetLogger(t *testing.T) {
	require := require.New(t)

	m := NewMockLogger()
	prev := SetLogger(m)
	defer SetLogger(prev)

	m.On("Log", WarnLevel, "add() => {}", []any{3}).Once()
	m.On("Info", "plain", []any{"k", 1}).Once()

	Log(WarnLevel, "add() => {}", 3)
	Info("plain", "k", 1)

	m.AssertExpectations(t)
	require.Same(m, GetLogger())
	require.Same(m, SetLogger(nil))
}
