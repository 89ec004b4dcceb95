package synth

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-logfn/directive"
	"github.com/arloliu/go-logfn/wrap"
)

func newTestFunc(t *testing.T, src string) *wrap.Func {
	t.Helper()

	full := []byte("package p\n\n" + src)
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", full, parser.ParseComments)
	require.NoError(t, err)

	decl, ok := file.Decls[0].(*ast.FuncDecl)
	require.True(t, ok)

	fn, err := wrap.NewFunc(fset, full, decl)
	require.NoError(t, err)

	return fn
}

func outputConfig(t *testing.T, args string) *directive.OutputConfig {
	t.Helper()

	cfg, err := directive.ParseOutput(args)
	require.NoError(t, err)

	return cfg
}

// squash removes all white space so expectations do not depend on layout.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func requireCode(t *testing.T, expected string, actual string) {
	t.Helper()
	require.Equal(t, squash(expected), squash(actual), "generated:\n%s", actual)
}

func TestOutput(t *testing.T) {
	tests := []struct {
		description string
		src         string
		args        string
		expected    string
		usesTime    bool
		usesFacade  bool
	}{
		{
			description: "plain single result",
			src:         "func fibonacci(n uint32) uint32 { return n }",
			args:        "Info",
			expected: `{
				logfnRes0 := func() uint32 { return n }()
				logger.Log(logger.InfoLevel, "fibonacci() => {}", logfnRes0)
				return logfnRes0
			}`,
			usesFacade: true,
		},
		{
			description: "plain without results",
			src:         "func hello() { println() }",
			args:        "Info",
			expected: `{
				func() { println() }()
				logger.Log(logger.InfoLevel, "hello() => {}", nil)
			}`,
			usesFacade: true,
		},
		{
			description: "plain multiple results",
			src:         "func pair() (int, string) { return 1, \"a\" }",
			args:        `Debug, fmt = "pair: {}"`,
			expected: `{
				logfnRes0, logfnRes1 := func() (int, string) { return 1, "a" }()
				logger.Log(logger.DebugLevel, "pair: {}", []any{logfnRes0, logfnRes1})
				return logfnRes0, logfnRes1
			}`,
			usesFacade: true,
		},
		{
			description: "plain with timestamp",
			src:         "func func2() int { return 2 }",
			args:        "Debug, log_ts = true",
			expected: `{
				logfnStart := time.Now()
				logfnRes0 := func() int { return 2 }()
				logfnElapsed := time.Since(logfnStart)
				logger.Log(logger.DebugLevel, "func2() => {}, ts={}", logfnRes0, logfnElapsed)
				return logfnRes0
			}`,
			usesFacade: true,
			usesTime:   true,
		},
		{
			description: "silent",
			src:         "func quiet() int { return 1 }",
			args:        `fmt = "never", log_ts = true`,
			expected: `{
				logfnRes0 := func() int { return 1 }()
				return logfnRes0
			}`,
		},
		{
			description: "error tuple with leading level",
			src:         "func div(a, b int) (int, error) { return a / b, nil }",
			args:        "Info",
			expected: `{
				logfnRes0, logfnRes1 := func() (int, error) { return a / b, nil }()
				if logfnRes1 != nil {
					logger.Log(logger.InfoLevel, "div() => {}", logfnRes1)
				} else {
					logger.Log(logger.InfoLevel, "div() => {}", logfnRes0)
				}
				return logfnRes0, logfnRes1
			}`,
			usesFacade: true,
		},
		{
			description: "error tuple with ok and err",
			src:         "func div(a, b int) (q int, err error) { q = a / b; return }",
			args:        `ok = debug, err = error, fmt = "div: {}"`,
			expected: `{
				logfnRes0, logfnRes1 := func() (q int, err error) { q = a / b; return }()
				if logfnRes1 != nil {
					logger.Log(logger.ErrorLevel, "div: {}", logfnRes1)
				} else {
					logger.Log(logger.DebugLevel, "div: {}", logfnRes0)
				}
				return logfnRes0, logfnRes1
			}`,
			usesFacade: true,
		},
		{
			description: "error only success branch",
			src:         "func check() error { return nil }",
			args:        "ok = info",
			expected: `{
				logfnRes0 := func() error { return nil }()
				if logfnRes0 == nil {
					logger.Log(logger.InfoLevel, "check() => {}", nil)
				}
				return logfnRes0
			}`,
			usesFacade: true,
		},
		{
			description: "error tuple failure branch",
			src:         "func triple() (int, string, error) { return 0, \"\", nil }",
			args:        "err = warn, log_ts = true",
			expected: `{
				logfnStart := time.Now()
				logfnRes0, logfnRes1, logfnRes2 := func() (int, string, error) { return 0, "", nil }()
				logfnElapsed := time.Since(logfnStart)
				if logfnRes2 != nil {
					logger.Log(logger.WarnLevel, "triple() => {}, ts={}", logfnRes2, logfnElapsed)
				}
				return logfnRes0, logfnRes1, logfnRes2
			}`,
			usesFacade: true,
			usesTime:   true,
		},
		{
			description: "error tuple success value list",
			src:         "func triple() (int, string, error) { return 0, \"\", nil }",
			args:        "ok = trace",
			expected: `{
				logfnRes0, logfnRes1, logfnRes2 := func() (int, string, error) { return 0, "", nil }()
				if logfnRes2 == nil {
					logger.Log(logger.TraceLevel, "triple() => {}", []any{logfnRes0, logfnRes1})
				}
				return logfnRes0, logfnRes1, logfnRes2
			}`,
			usesFacade: true,
		},
		{
			description: "result value with leading level",
			src:         "func parse(s string) result.Result[int] { return result.Ok(1) }",
			args:        "Warn",
			expected: `{
				logfnRes0 := func() result.Result[int] { return result.Ok(1) }()
				if logfnVal, logfnErr := logfnRes0.Get(); logfnErr != nil {
					logger.Log(logger.WarnLevel, "parse() => {}", logfnErr)
				} else {
					logger.Log(logger.WarnLevel, "parse() => {}", logfnVal)
				}
				return logfnRes0
			}`,
			usesFacade: true,
		},
		{
			description: "result value success only",
			src:         "func parse(s string) result.Result[int] { return result.Ok(1) }",
			args:        "ok = info",
			expected: `{
				logfnRes0 := func() result.Result[int] { return result.Ok(1) }()
				if logfnVal, logfnErr := logfnRes0.Get(); logfnErr == nil {
					logger.Log(logger.InfoLevel, "parse() => {}", logfnVal)
				}
				return logfnRes0
			}`,
			usesFacade: true,
		},
		{
			description: "result value failure only",
			src:         "func parse(s string) result.Result[int] { return result.Ok(1) }",
			args:        `err = error, fmt = "parse failed: {}"`,
			expected: `{
				logfnRes0 := func() result.Result[int] { return result.Ok(1) }()
				if _, logfnErr := logfnRes0.Get(); logfnErr != nil {
					logger.Log(logger.ErrorLevel, "parse failed: {}", logfnErr)
				}
				return logfnRes0
			}`,
			usesFacade: true,
		},
		{
			description: "method keeps receiver in scope",
			src:         "func (c *Counter) Inc() int { c.n++; return c.n }",
			args:        "Trace",
			expected: `{
				logfnRes0 := func() int { c.n++; return c.n }()
				logger.Log(logger.TraceLevel, "Inc() => {}", logfnRes0)
				return logfnRes0
			}`,
			usesFacade: true,
		},
	}

	s := New(wrap.Direct{}, Options{})
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			code, err := s.Output(newTestFunc(t, test.src), outputConfig(t, test.args))
			require.NoError(t, err)
			requireCode(t, test.expected, code.Text)
			require.Equal(t, test.usesFacade, code.UsesFacade)
			require.Equal(t, test.usesTime, code.UsesTime)
		})
	}
}

func TestOutput_Suspending(t *testing.T) {
	require := require.New(t)

	s := New(wrap.Suspend{}, Options{})
	require.Equal(wrap.ModeSuspending, s.Strategy().Name())

	code, err := s.Output(
		newTestFunc(t, "func fetch(id int) <-chan result.Result[string] { return load(id) }"),
		outputConfig(t, "Info, err = warn, log_ts = true"),
	)
	require.NoError(err)
	requireCode(t, `{
		logfnStart := time.Now()
		logfnCh := func() <-chan result.Result[string] { return load(id) }()
		logfnOut := make(chan result.Result[string], 1)
		go func() {
			defer close(logfnOut)
			logfnRes0, logfnOK := <-logfnCh
			if !logfnOK {
				return
			}
			logfnElapsed := time.Since(logfnStart)
			if logfnVal, logfnErr := logfnRes0.Get(); logfnErr != nil {
				logger.Log(logger.WarnLevel, "fetch() => {}, ts={}", logfnErr, logfnElapsed)
			} else {
				logger.Log(logger.InfoLevel, "fetch() => {}, ts={}", logfnVal, logfnElapsed)
			}
			logfnOut <- logfnRes0
		}()
		return logfnOut
	}`, code.Text)
	require.True(code.UsesTime)

	code, err = s.Output(newTestFunc(t, "func count() <-chan int { return src }"), outputConfig(t, "Debug"))
	require.NoError(err)
	requireCode(t, `{
		logfnCh := func() <-chan int { return src }()
		logfnOut := make(chan int, 1)
		go func() {
			defer close(logfnOut)
			logfnRes0, logfnOK := <-logfnCh
			if !logfnOK {
				return
			}
			logger.Log(logger.DebugLevel, "count() => {}", logfnRes0)
			logfnOut <- logfnRes0
		}()
		return logfnOut
	}`, code.Text)
	require.False(code.UsesTime)

	// non-suspending functions are generated exactly as with the direct strategy
	fn := "func add(a, b int) int { return a + b }"
	direct, err := New(wrap.Direct{}, Options{}).Output(newTestFunc(t, fn), outputConfig(t, "Info"))
	require.NoError(err)
	suspend, err := s.Output(newTestFunc(t, fn), outputConfig(t, "Info"))
	require.NoError(err)
	require.Equal(direct, suspend)
}

func TestOutput_Errors(t *testing.T) {
	s := New(wrap.Direct{}, Options{})

	tests := []struct {
		description string
		src         string
		args        string
		expectedErr error
	}{
		{"ok on plain", "func f() int { return 1 }", "Info, ok = debug", ErrBranchOnPlain},
		{"err on plain", "func f() {}", "err = error", ErrBranchOnPlain},
		{"suspending disabled", "func f() <-chan int { return nil }", "Info", wrap.ErrSuspendingDisabled},
		{"reserved parameter", "func f(logfnRes0 int) int { return 1 }", "Info", ErrReservedName},
		{"facade shadowed", "func f(logger int) int { return logger }", "Info", ErrReservedName},
		{"time shadowed", "func f(time int) int { return time }", "Info, log_ts = true", ErrReservedName},
		{"reserved result", "func f() (logfnX int) { return }", "Info", ErrReservedName},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			_, err := s.Output(newTestFunc(t, test.src), outputConfig(t, test.args))
			require.ErrorIs(t, err, test.expectedErr)
		})
	}

	// time is free to use when no timing code is generated
	_, err := s.Output(newTestFunc(t, "func f(time int) int { return time }"), outputConfig(t, "Info"))
	require.NoError(t, err)
}

func TestOutput_Options(t *testing.T) {
	require := require.New(t)

	s := New(wrap.Direct{}, Options{Facade: "logfacade", OutcomeNames: []string{"Either"}})

	code, err := s.Output(newTestFunc(t, "func f() mo.Either[int, error] { return v }"), outputConfig(t, "Info"))
	require.NoError(err)
	requireCode(t, `{
		logfnRes0 := func() mo.Either[int, error] { return v }()
		if logfnVal, logfnErr := logfnRes0.Get(); logfnErr != nil {
			logfacade.Log(logfacade.InfoLevel, "f() => {}", logfnErr)
		} else {
			logfacade.Log(logfacade.InfoLevel, "f() => {}", logfnVal)
		}
		return logfnRes0
	}`, code.Text)

	// Result is plain once the names are replaced
	code, err = s.Output(newTestFunc(t, "func f() result.Result[int] { return v }"), outputConfig(t, "Info"))
	require.NoError(err)
	require.NotContains(code.Text, "Get()")
}

func TestOutput_Deterministic(t *testing.T) {
	s := New(wrap.Direct{}, Options{})
	src := "func div(a, b int) (int, error) { return a / b, nil }"

	first, err := s.Output(newTestFunc(t, src), outputConfig(t, "Info, err = error, log_ts = true"))
	require.NoError(t, err)
	for range 5 {
		code, err := s.Output(newTestFunc(t, src), outputConfig(t, "Info, err = error, log_ts = true"))
		require.NoError(t, err)
		require.Equal(t, first, code)
	}
}
