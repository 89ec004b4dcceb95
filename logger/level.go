package logger

import (
	"fmt"
	"strings"
)

// Level indicates the logging severity level.
type Level int8

const (
	// TraceLevel logs are the most verbose ones, below DebugLevel.
	TraceLevel Level = iota - 2
	// DebugLevel logs are typically voluminous, and are usually disabled in production.
	DebugLevel
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel
	// ErrorLevel logs are high-priority. If an application is running smoothly,
	// it shouldn't generate any error-level logs.
	ErrorLevel
)

var levelNames = map[Level]string{
	TraceLevel: "Trace",
	DebugLevel: "Debug",
	InfoLevel:  "Info",
	WarnLevel:  "Warn",
	ErrorLevel: "Error",
}

// String returns the canonical, title-cased name of the level, e.g. "Info".
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("Level(%d)", int8(l))
}

// Valid reports whether l is one of the five known levels.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel parses a level name case-insensitively, e.g. "INFO", "info" and "Info" all yield InfoLevel.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}

	return InfoLevel, fmt.Errorf("unknown log level %q, expected one of Error, Warn, Info, Debug, Trace", name)
}
