package generator

import (
	"fmt"
	"go/token"
	"path"
	"runtime"
	"strings"

	"github.com/arloliu/go-logfn/logger"
	"github.com/arloliu/go-logfn/wrap"
)

// Defaults of a Generator.
const (
	DefaultSourceTag    = "logfnsrc"
	DefaultSuffix       = "_logfn"
	DefaultFacadeImport = "github.com/arloliu/go-logfn/logger"
	DefaultFacadeName   = "logger"
)

// Options holds the settings of a Generator.
type Options struct {
	// mode selects the wrapping strategy, see wrap.New.
	// Defaults to "direct".
	mode string

	// sourceTag is the build tag excluding annotated sources from normal builds.
	// Defaults to "logfnsrc".
	sourceTag string

	// suffix is appended to the base name of a source file to name its output.
	// Defaults to "_logfn".
	suffix string

	// facadeImport is the import path of the logger facade used by generated code.
	// Defaults to "github.com/arloliu/go-logfn/logger".
	facadeImport string
	// facadeName is the package name generated code refers to the facade by.
	// Defaults to "logger".
	facadeName string

	// outcomeTypes are the terminal type names treated as outcome-carrying.
	// Defaults to "Result".
	outcomeTypes []string

	// concurrency limits the number of files Run transforms at once.
	// Defaults to GOMAXPROCS.
	concurrency int

	// check makes Run compare outputs with the files on disk instead of writing them.
	check bool

	logger logger.Logger
}

func defaultOptions() *Options {
	return &Options{
		mode:         wrap.ModeDirect,
		sourceTag:    DefaultSourceTag,
		suffix:       DefaultSuffix,
		facadeImport: DefaultFacadeImport,
		facadeName:   DefaultFacadeName,
		concurrency:  runtime.GOMAXPROCS(0),
		logger:       logger.GetLogger(),
	}
}

// Mode returns the wrapping mode name.
func (o *Options) Mode() string { return o.mode }

// SourceTag returns the build tag of annotated sources.
func (o *Options) SourceTag() string { return o.sourceTag }

// Suffix returns the output file name suffix.
func (o *Options) Suffix() string { return o.suffix }

// Facade returns the import path and package name of the logger facade.
func (o *Options) Facade() (importPath string, name string) { return o.facadeImport, o.facadeName }

// Concurrency returns the maximum number of files transformed at once.
func (o *Options) Concurrency() int { return o.concurrency }

// Check reports whether Run only checks outputs.
func (o *Options) Check() bool { return o.check }

// Option represents a functional option for configuring a Generator.
type Option interface {
	apply(*Options) error
}

type optFunc func(*Options) error

func (f optFunc) apply(opts *Options) error { return f(opts) }

// WithMode sets the wrapping mode, "direct" or "suspending".
func WithMode(mode string) Option {
	return optFunc(func(opts *Options) error {
		if _, err := wrap.New(mode); err != nil {
			return err
		}
		opts.mode = strings.ToLower(mode)
		if opts.mode == "" {
			opts.mode = wrap.ModeDirect
		}

		return nil
	})
}

// WithSourceTag sets the build tag that marks annotated sources.
func WithSourceTag(tag string) Option {
	return optFunc(func(opts *Options) error {
		if !token.IsIdentifier(tag) {
			return fmt.Errorf("%w: invalid source tag %q", ErrInvalidOption, tag)
		}
		opts.sourceTag = tag

		return nil
	})
}

// WithSuffix sets the output file name suffix.
func WithSuffix(suffix string) Option {
	return optFunc(func(opts *Options) error {
		if suffix == "" || strings.ContainsAny(suffix, `/\.`) || strings.HasSuffix(suffix, "_test") {
			return fmt.Errorf("%w: invalid output suffix %q", ErrInvalidOption, suffix)
		}
		opts.suffix = suffix

		return nil
	})
}

// WithFacade sets the logger facade generated code calls. An empty name defaults to the last
// element of the import path.
func WithFacade(importPath string, name string) Option {
	return optFunc(func(opts *Options) error {
		if importPath == "" {
			return fmt.Errorf("%w: empty facade import path", ErrInvalidOption)
		}
		if name == "" {
			name = path.Base(importPath)
		}
		if !token.IsIdentifier(name) {
			return fmt.Errorf("%w: invalid facade name %q", ErrInvalidOption, name)
		}
		opts.facadeImport = importPath
		opts.facadeName = name

		return nil
	})
}

// WithOutcomeTypes sets the terminal type names treated as outcome-carrying.
func WithOutcomeTypes(names ...string) Option {
	return optFunc(func(opts *Options) error {
		for _, name := range names {
			if !token.IsIdentifier(name) {
				return fmt.Errorf("%w: invalid outcome type name %q", ErrInvalidOption, name)
			}
		}
		opts.outcomeTypes = append([]string(nil), names...)

		return nil
	})
}

// WithConcurrency limits the number of files transformed at once. Zero means GOMAXPROCS.
func WithConcurrency(n int) Option {
	return optFunc(func(opts *Options) error {
		if n < 0 {
			return fmt.Errorf("%w: concurrency %d must not be negative", ErrInvalidOption, n)
		}
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		opts.concurrency = n

		return nil
	})
}

// WithCheck enables check mode: Run reports stale outputs instead of writing them.
func WithCheck(check bool) Option {
	return optFunc(func(opts *Options) error {
		opts.check = check
		return nil
	})
}

// WithLogger sets the logger used to report progress.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(opts *Options) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		opts.logger = l

		return nil
	})
}
