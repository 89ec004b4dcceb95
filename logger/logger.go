// Package logger is the severity-leveled logging facade that code generated by logfn calls into.
//
// Generated functions emit records through the package-level Log function, passing a level,
// a format template with `{}`-style positional placeholders and the positional arguments:
//
//	logger.Log(logger.InfoLevel, "fibonacci() => {}", logfnRes0)
//
// The facade itself is backed by a swappable Logger. The default Logger writes through log/slog,
// using a console handler when ENV=development and a JSON handler otherwise. Tests replace it with
// a capturing Logger (see the logtest package), applications may install their own with SetLogger.
//
// Log Levels:
//
//   - TraceLevel: Very fine-grained information, usually only useful while debugging a single function.
//   - DebugLevel: Detailed debug information, typically disabled in production.
//   - InfoLevel: General informational messages.
//   - WarnLevel: Warnings about potential issues.
//   - ErrorLevel: Errors that require attention.
package logger

// Logger defines the common interface for logging.
//
// The leveled methods (Trace, Debug, Info, Warn, Error) accept a message and structured key-value
// pairs and are used by tooling. Log renders a positional template and is the entry point used by
// generated code.
type Logger interface {
	// Trace logs a message at TraceLevel.
	// The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
	Trace(msg string, keysAndValues ...any)
	// Debug logs a message at DebugLevel.
	// The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
	Debug(msg string, keysAndValues ...any)
	// Info logs a message at InfoLevel.
	// The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
	Info(msg string, keysAndValues ...any)
	// Warn logs a message at WarnLevel.
	// The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
	Warn(msg string, keysAndValues ...any)
	// Error logs a message at ErrorLevel.
	// The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
	Error(msg string, keysAndValues ...any)
	// Log renders template with args (see Format) and logs the result at the given level.
	Log(level Level, template string, args ...any)
	// With creates a child logger and adds structured context to it.
	// Key-values added to the child don't affect the parent, and vice versa.
	With(keyValues ...any) Logger
	// Level returns the minimum enabled level for this logger.
	Level() Level
	// SetLevel sets the minimum enabled level for this logger.
	SetLevel(level Level)
}
