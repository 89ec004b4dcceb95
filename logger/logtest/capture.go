// Package logtest provides a capturing logger.Logger for verifying the records emitted by generated code.
//
// Capture swaps the package-level logger for the duration of a test and restores it on cleanup.
// Records are kept per Capture, so a test only ever sees what it produced itself. Only one
// Capture can be active at a time: a second Capture while another test holds the default logger
// fails the test immediately instead of mixing records, so tests using Capture must not run in
// parallel.
//
//	func TestFibonacci(t *testing.T) {
//	    logs := logtest.Capture(t)
//	    fibonacci(5)
//	    logs.RequireLast(logger.InfoLevel, "fibonacci() => 8")
//	}
//
// On cleanup Capture fails the test if any record was left unread, so every emitted record has
// to be asserted with PopLast or RequireLast.
package logtest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-logfn/logger"
)

// Record is a single captured log record.
type Record struct {
	Level   logger.Level
	Message string
}

func (r Record) String() string {
	return fmt.Sprintf("[%s] %s", r.Level, r.Message)
}

// Logger is a logger.Logger that stores every record in memory.
type Logger struct {
	t       testing.TB
	mu      *sync.Mutex
	records *[]Record
	fields  []any
	level   logger.Level
}

var _ logger.Logger = (*Logger)(nil)

// New creates a capturing logger that accepts all levels. It does not install itself.
func New(t testing.TB) *Logger {
	return &Logger{
		t:       t,
		mu:      &sync.Mutex{},
		records: &[]Record{},
		level:   logger.TraceLevel,
	}
}

var (
	activeMu sync.Mutex
	active   string // name of the test holding the default logger
)

// Capture installs a new capturing logger as the default logger for the duration of the test.
// It fails the test and returns nil when another test's capture is still installed.
func Capture(t testing.TB) *Logger {
	t.Helper()

	activeMu.Lock()
	owner := active
	if owner == "" {
		active = t.Name()
	}
	activeMu.Unlock()
	if owner != "" {
		require.FailNowf(t, "default logger already captured",
			"%s holds the capture, tests using Capture must not run in parallel", owner)
		return nil
	}

	l := New(t)
	prev := logger.SetLogger(l)
	t.Cleanup(func() {
		logger.SetLogger(prev)
		activeMu.Lock()
		active = ""
		activeMu.Unlock()
		assert.Emptyf(t, l.Records(), "unasserted log records: %v", l.Records())
	})

	return l
}

func (l *Logger) Trace(msg string, keysAndValues ...any) {
	l.add(logger.TraceLevel, msg, keysAndValues)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.add(logger.DebugLevel, msg, keysAndValues)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.add(logger.InfoLevel, msg, keysAndValues)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.add(logger.WarnLevel, msg, keysAndValues)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.add(logger.ErrorLevel, msg, keysAndValues)
}

func (l *Logger) Log(level logger.Level, template string, args ...any) {
	l.add(level, logger.Format(template, args...), nil)
}

// With returns a logger sharing the same record storage. Fields are appended to messages as k=v pairs.
func (l *Logger) With(keyValues ...any) logger.Logger {
	child := *l
	child.fields = append(append([]any{}, l.fields...), keyValues...)

	return &child
}

func (l *Logger) Level() logger.Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level
}

func (l *Logger) SetLevel(level logger.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

func (l *Logger) add(level logger.Level, msg string, keysAndValues []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	kv := append(append([]any{}, l.fields...), keysAndValues...)
	for i := 0; i+1 < len(kv); i += 2 {
		msg += fmt.Sprintf(" %v=%v", kv[i], kv[i+1])
	}
	*l.records = append(*l.records, Record{Level: level, Message: msg})
}

// Len returns the number of records not yet popped.
func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(*l.records)
}

// Records returns a copy of the records not yet popped, oldest first.
func (l *Logger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Record(nil), *l.records...)
}

// PopLast removes and returns the most recent record. It fails the test when there is none.
func (l *Logger) PopLast() Record {
	l.t.Helper()

	l.mu.Lock()
	n := len(*l.records)
	if n == 0 {
		l.mu.Unlock()
		require.FailNow(l.t, "no log record to pop")
		return Record{}
	}
	last := (*l.records)[n-1]
	*l.records = (*l.records)[:n-1]
	l.mu.Unlock()

	return last
}

// RequireLast pops the most recent record and requires it to match level and msg.
func (l *Logger) RequireLast(level logger.Level, msg string) {
	l.t.Helper()

	last := l.PopLast()
	require.Equal(l.t, msg, last.Message)
	require.Equal(l.t, level, last.Level)
}

// RequireEmpty requires that every record has been popped.
func (l *Logger) RequireEmpty() {
	l.t.Helper()

	require.Emptyf(l.t, l.Records(), "unasserted log records: %v", l.Records())
}
