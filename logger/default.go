package logger

import "sync/atomic"

type holder struct {
	l Logger
}

var defLogger atomic.Pointer[holder]

func init() {
	defLogger.Store(&holder{l: NewSlog(InfoLevel, false)})
}

func current() Logger {
	return defLogger.Load().l
}

// Log renders template with args and logs it at level through the default logger.
//
// This is the call emitted by generated code.
func Log(level Level, template string, args ...any) {
	current().Log(level, template, args...)
}

func Trace(msg string, keysAndValues ...any) {
	current().Trace(msg, keysAndValues...)
}

func Debug(msg string, keysAndValues ...any) {
	current().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	current().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	current().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	current().Error(msg, keysAndValues...)
}

func SetLevel(level Level) {
	current().SetLevel(level)
}

func GetLogger() Logger {
	return current()
}

// SetLogger replaces the default logger and returns the previous one.
// A nil l is ignored and the current logger is returned.
func SetLogger(l Logger) Logger {
	if l == nil {
		return current()
	}

	return defLogger.Swap(&holder{l: l}).l
}

func With(keyValues ...any) Logger {
	return current().With(keyValues...)
}
