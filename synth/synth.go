// Package synth generates the replacement bodies of annotated functions.
//
// Output wraps the original body (see package wrap), invokes it once, optionally measures the
// elapsed time and emits log calls through the logger facade:
//
//	func fibonacci(n uint32) uint32 {
//		logfnRes0 := func() uint32 {
//			...original body...
//		}()
//		logger.Log(logger.InfoLevel, "fibonacci() => {}", logfnRes0)
//		return logfnRes0
//	}
//
// When the results carry a success/failure distinction, or when ok/err is configured, the log
// call is split into a success branch and a failure branch. Results are returned unchanged.
//
// Inputs builds the single statement the inputs directive prepends to a body.
//
// Only the body is ever replaced: the name, receiver, type parameters, parameters and results of
// the declaration stay as written.
package synth

import (
	"fmt"
	"go/ast"
	"strconv"
	"strings"

	"github.com/arloliu/go-logfn/directive"
	"github.com/arloliu/go-logfn/logger"
	"github.com/arloliu/go-logfn/signature"
	"github.com/arloliu/go-logfn/wrap"
)

// reservedPrefix prefixes every identifier declared by generated code.
const reservedPrefix = "logfn"

// DefaultFacade is the package qualifier of the logger facade in generated code.
const DefaultFacade = "logger"

// Options configures a Synthesizer.
type Options struct {
	// Facade is the package qualifier used for log calls, DefaultFacade when empty.
	Facade string
	// OutcomeNames are the recognized outcome type names, signature.DefaultOutcomeNames when nil.
	OutcomeNames []string
}

// Code is a piece of generated code.
type Code struct {
	// Text is the generated body (Output) or statement (Inputs).
	Text string
	// UsesFacade reports whether Text references the facade package.
	UsesFacade bool
	// UsesTime reports whether Text references the time package.
	UsesTime bool
}

// Synthesizer generates function bodies with one wrapping strategy.
type Synthesizer struct {
	strategy wrap.Strategy
	facade   string
	names    []string
}

// New creates a Synthesizer using strategy to wrap bodies.
func New(strategy wrap.Strategy, opts Options) *Synthesizer {
	s := &Synthesizer{
		strategy: strategy,
		facade:   opts.Facade,
		names:    opts.OutcomeNames,
	}
	if s.facade == "" {
		s.facade = DefaultFacade
	}
	if s.names == nil {
		s.names = signature.DefaultOutcomeNames
	}

	return s
}

// Strategy returns the wrapping strategy.
func (s *Synthesizer) Strategy() wrap.Strategy {
	return s.strategy
}

// Output generates the replacement body of fn for an output directive.
//
// It classifies the results of fn, wraps its body with the synthesizer's strategy and emits the
// invocation followed by the log calls selected by cfg. Configuring ok or err on a function
// whose results are not outcome-carrying fails with ErrBranchOnPlain.
func (s *Synthesizer) Output(fn *wrap.Func, cfg *directive.OutputConfig) (Code, error) {
	fn.Shape = signature.Classify(fn.Decl.Type.Results, s.names)

	branching := fn.Shape.Kind == signature.OutcomeCarrying || cfg.ExplicitOutcome()
	if branching && fn.Shape.Kind == signature.Plain {
		return Code{}, ErrBranchOnPlain
	}

	body, err := s.strategy.Wrap(fn)
	if err != nil {
		return Code{}, err
	}

	e := &emitter{
		facade:    s.facade,
		template:  strconv.Quote(cfg.Template(fn.Name)),
		shape:     fn.Shape,
		branching: branching,
	}
	e.okLevel, e.hasOk = cfg.OkLevel()
	e.errLevel, e.hasErr = cfg.ErrLevel()
	// the failure expression only exists on the branching path
	e.hasErr = e.hasErr && branching
	e.timed = cfg.LogTimestamp && (e.hasOk || e.hasErr)

	if err := checkReserved(fn.Decl, s.facade, e.timed); err != nil {
		return Code{}, err
	}

	var code Code
	if body.Mode == wrap.Suspending {
		code.Text = e.suspending(body)
	} else {
		code.Text = e.immediate(body)
	}
	code.UsesFacade = e.hasOk || e.hasErr
	code.UsesTime = e.timed

	return code, nil
}

// Inputs generates the statement logging the receiver and parameters of fn.
// The statement is meant to be placed first in the body, see Prepend.
func (s *Synthesizer) Inputs(fn *wrap.Func, cfg *directive.InputConfig) (Code, error) {
	params, err := signature.ParamNames(fn.Decl)
	if err != nil {
		return Code{}, err
	}
	if err := checkReserved(fn.Decl, s.facade, false); err != nil {
		return Code{}, err
	}

	args := append([]string{levelExpr(s.facade, cfg.Level), strconv.Quote(cfg.Template(fn.Name, params))}, params...)
	text := s.facade + ".Log(" + strings.Join(args, ", ") + ")"

	return Code{Text: text, UsesFacade: true}, nil
}

// Prepend inserts stmt as the first statement of body, which must start with '{'.
func Prepend(body, stmt string) string {
	return "{\n" + stmt + "\n" + strings.TrimPrefix(body, "{")
}

func levelExpr(facade string, lv logger.Level) string {
	return facade + "." + lv.String() + "Level"
}

// checkReserved rejects declared names the generated code would shadow or collide with.
func checkReserved(decl *ast.FuncDecl, facade string, timed bool) error {
	lists := []*ast.FieldList{decl.Recv, decl.Type.Params, decl.Type.Results}
	for _, list := range lists {
		if list == nil {
			continue
		}
		for _, field := range list.List {
			for _, name := range field.Names {
				switch {
				case strings.HasPrefix(name.Name, reservedPrefix):
					return fmt.Errorf("%w %q: identifiers starting with %q are used by generated code", ErrReservedName, name.Name, reservedPrefix)
				case name.Name == facade:
					return fmt.Errorf("%w %q: shadows the logger package", ErrReservedName, name.Name)
				case timed && name.Name == "time":
					return fmt.Errorf("%w %q: shadows the time package", ErrReservedName, name.Name)
				}
			}
		}
	}

	return nil
}
