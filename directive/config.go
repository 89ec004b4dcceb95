package directive

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-logfn/logger"
)

// Option names accepted by the output directive.
const (
	OptionOk    = "ok"
	OptionErr   = "err"
	OptionFmt   = "fmt"
	OptionLogTS = "log_ts"
)

// timestampSuffix is appended to the output template when log_ts is enabled.
const timestampSuffix = ", ts={}"

// OutputConfig is the parsed form of an output directive (`//logfn:output ...`).
//
// It is immutable once parsed.
type OutputConfig struct {
	// Leading is the level given as the first, bare argument.
	Leading *logger.Level
	// Ok overrides Leading for the success outcome.
	Ok *logger.Level
	// Err overrides Leading for the failure outcome.
	Err *logger.Level
	// Format is the user supplied template, valid when HasFormat is set.
	Format    string
	HasFormat bool
	// LogTimestamp enables measuring the elapsed time of the call.
	LogTimestamp bool
}

// OkLevel returns the level of the success log: Ok, else Leading. The boolean is false when
// neither is set, in which case no success log is emitted.
func (c *OutputConfig) OkLevel() (logger.Level, bool) {
	return pickLevel(c.Ok, c.Leading)
}

// ErrLevel returns the level of the failure log: Err, else Leading. The boolean is false when
// neither is set, in which case no failure log is emitted.
func (c *OutputConfig) ErrLevel() (logger.Level, bool) {
	return pickLevel(c.Err, c.Leading)
}

// ExplicitOutcome reports whether ok or err was given, which forces success/failure branching.
func (c *OutputConfig) ExplicitOutcome() bool {
	return c.Ok != nil || c.Err != nil
}

// Template returns the format template for the function named fnName.
//
// Without a fmt option the template is "<fnName>() => {}". With log_ts the template gains a
// trailing ", ts={}" placeholder for the elapsed time.
func (c *OutputConfig) Template(fnName string) string {
	tmpl := fnName + "() => {}"
	if c.HasFormat {
		tmpl = c.Format
	}
	if c.LogTimestamp {
		tmpl += timestampSuffix
	}

	return tmpl
}

func pickLevel(levels ...*logger.Level) (logger.Level, bool) {
	for _, lv := range levels {
		if lv != nil {
			return *lv, true
		}
	}

	return logger.InfoLevel, false
}

// InputConfig is the parsed form of an inputs directive (`//logfn:inputs ...`).
type InputConfig struct {
	Level     logger.Level
	Format    string
	HasFormat bool
}

// Template returns the format template for the function named fnName with the given parameter
// names. Without a format string it is "<fnName>(<p1>: {}, <p2>: {})".
func (c *InputConfig) Template(fnName string, params []string) string {
	if c.HasFormat {
		return c.Format
	}

	var sb strings.Builder
	sb.WriteString(fnName)
	sb.WriteByte('(')
	for i, name := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": {}")
	}
	sb.WriteByte(')')

	return sb.String()
}

// ParseOutput parses the arguments of an output directive.
func ParseOutput(text string) (*OutputConfig, error) {
	args, err := ParseArgs(text)
	if err != nil {
		return nil, err
	}

	return OutputFromArgs(args)
}

// OutputFromArgs builds an OutputConfig from parsed arguments.
//
// The first argument may be a bare level. Every other argument must be one of the named options
// ok, err, fmt and log_ts, each at most once.
func OutputFromArgs(args []Arg) (*OutputConfig, error) {
	if len(args) == 0 {
		return nil, ErrTooFewArgs
	}

	cfg := &OutputConfig{}
	if args[0].Kind == ArgIdent {
		lv, err := parseLevel("level", args[0].Name)
		if err != nil {
			return nil, err
		}
		cfg.Leading = &lv
		args = args[1:]
	}

	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		name, value, err := namedOption(arg)
		if err != nil {
			return nil, err
		}

		if seen[name] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateOption, name)
		}
		seen[name] = true

		switch name {
		case OptionOk, OptionErr:
			lv, err := levelValue(name, value)
			if err != nil {
				return nil, err
			}
			if name == OptionOk {
				cfg.Ok = &lv
			} else {
				cfg.Err = &lv
			}
		case OptionFmt:
			s, err := stringValue(name, value)
			if err != nil {
				return nil, err
			}
			cfg.Format, cfg.HasFormat = s, true
		case OptionLogTS:
			b, err := boolValue(name, value)
			if err != nil {
				return nil, err
			}
			cfg.LogTimestamp = b
		}
	}

	return cfg, nil
}

// ParseInputs parses the arguments of an inputs directive.
func ParseInputs(text string) (*InputConfig, error) {
	args, err := ParseArgs(text)
	if err != nil {
		return nil, err
	}

	return InputsFromArgs(args)
}

// InputsFromArgs builds an InputConfig from parsed arguments.
//
// The first argument is a required bare level, optionally followed by a format string given
// either as a bare string literal or as `fmt = "..."`.
func InputsFromArgs(args []Arg) (*InputConfig, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: expected a level as first argument", ErrMissingLevel)
	}
	if args[0].Kind != ArgIdent {
		return nil, fmt.Errorf("%w: first argument should be a log level, got %s", ErrMissingLevel, args[0].Kind)
	}
	if len(args) > 2 {
		return nil, fmt.Errorf("%w: expected a level and an optional format string, got %d arguments", ErrTooManyArgs, len(args))
	}

	lv, err := parseLevel("level", args[0].Name)
	if err != nil {
		return nil, err
	}
	cfg := &InputConfig{Level: lv}
	if len(args) == 1 {
		return cfg, nil
	}

	second := args[1]
	switch second.Kind {
	case ArgString:
		cfg.Format, cfg.HasFormat = second.Text, true
	case ArgNamed:
		if second.Name != OptionFmt {
			return nil, fmt.Errorf("%w %q", ErrUnknownOption, second.Name)
		}
		s, err := stringValue(OptionFmt, *second.Value)
		if err != nil {
			return nil, err
		}
		cfg.Format, cfg.HasFormat = s, true
	case ArgList:
		return nil, fmt.Errorf("%w: format expects a string literal, got a list", ErrWrongShape)
	default:
		return nil, fmt.Errorf("%w: format expects a string literal, got %s %s", ErrUnexpectedType, second.Kind, second)
	}

	return cfg, nil
}

// namedOption validates that arg is a recognized named option and returns its name and value.
func namedOption(arg Arg) (string, Arg, error) {
	switch arg.Kind {
	case ArgNamed:
		if !isOption(arg.Name) {
			return "", Arg{}, fmt.Errorf("%w %q", ErrUnknownOption, arg.Name)
		}
		return arg.Name, *arg.Value, nil
	case ArgList:
		if arg.Name == "" {
			return "", Arg{}, fmt.Errorf("%w: unexpected list %s", ErrWrongShape, arg)
		}
		if !isOption(arg.Name) {
			return "", Arg{}, fmt.Errorf("%w %q", ErrUnknownOption, arg.Name)
		}
		return "", Arg{}, fmt.Errorf("%w: option %q expects a value, got a list", ErrWrongShape, arg.Name)
	case ArgIdent:
		// a bare word past the leading level is a flag-style option; none are recognized
		return "", Arg{}, fmt.Errorf("%w %q", ErrUnknownOption, arg.Name)
	default:
		return "", Arg{}, fmt.Errorf("%w: unexpected %s %s, expected a named option", ErrUnexpectedType, arg.Kind, arg)
	}
}

func isOption(name string) bool {
	switch name {
	case OptionOk, OptionErr, OptionFmt, OptionLogTS:
		return true
	}

	return false
}

func levelValue(option string, value Arg) (logger.Level, error) {
	switch value.Kind {
	case ArgIdent:
		return parseLevel(option, value.Name)
	case ArgString:
		return parseLevel(option, value.Text)
	case ArgList:
		return logger.InfoLevel, fmt.Errorf("%w: option %q expects a level, got a list", ErrWrongShape, option)
	default:
		return logger.InfoLevel, fmt.Errorf("%w: option %q expects a level, got %s %s", ErrUnexpectedType, option, value.Kind, value)
	}
}

func stringValue(option string, value Arg) (string, error) {
	switch value.Kind {
	case ArgString:
		return value.Text, nil
	case ArgList:
		return "", fmt.Errorf("%w: option %q expects a string literal, got a list", ErrWrongShape, option)
	default:
		return "", fmt.Errorf("%w: option %q expects a string literal, got %s %s", ErrUnexpectedType, option, value.Kind, value)
	}
}

func boolValue(option string, value Arg) (bool, error) {
	if value.Kind == ArgIdent {
		switch value.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	if value.Kind == ArgList {
		return false, fmt.Errorf("%w: option %q expects a bool, got a list", ErrWrongShape, option)
	}

	return false, fmt.Errorf("%w: option %q expects true or false, got %s", ErrUnexpectedType, option, value)
}

func parseLevel(option, name string) (logger.Level, error) {
	lv, err := logger.ParseLevel(name)
	if err != nil {
		return lv, fmt.Errorf("%w %q for %s, expected one of Error, Warn, Info, Debug, Trace", ErrInvalidLevel, name, option)
	}

	return lv, nil
}
