// Package signature inspects function declarations for code generation.
//
// Classify decides whether a declared result list carries a success/failure distinction. The
// decision is purely structural and never consults type information:
//
//   - a result list whose last element is the predeclared `error` is an error tuple
//   - a single result whose terminal type name is one of the recognized outcome names (default
//     "Result") is an outcome value, regardless of package qualification or type arguments
//   - a single `<-chan T` result makes the function suspending; T is classified the same way
//
// A user type that merely happens to be named Result is therefore treated as outcome-carrying.
// This is a known limitation of the name-based heuristic.
package signature

import (
	"go/ast"
	"slices"
)

// DefaultOutcomeNames are the terminal type names recognized as outcome-carrying by default.
var DefaultOutcomeNames = []string{"Result"}

// Kind is the classification of a return type.
type Kind int

const (
	// Plain results carry no success/failure distinction.
	Plain Kind = iota
	// OutcomeCarrying results distinguish success from failure.
	OutcomeCarrying
)

func (k Kind) String() string {
	if k == OutcomeCarrying {
		return "OutcomeCarrying"
	}

	return "Plain"
}

// Outcome tells how an outcome-carrying result is unwrapped.
type Outcome int

const (
	// OutcomeNone is used for Plain shapes.
	OutcomeNone Outcome = iota
	// OutcomeValue is a single value unwrapped with `Get() (T, error)`.
	OutcomeValue
	// OutcomeErrorTuple is a result list ending with error; the preceding results are the success value.
	OutcomeErrorTuple
)

// Shape is the classification of a function's results.
type Shape struct {
	Kind    Kind
	Outcome Outcome
	// Results is the number of result values, counting each name of a grouped field.
	// For suspending functions it describes the channel element and is always 1.
	Results int
	// Suspending is set when the only result is a receive-only channel.
	Suspending bool
}

// Classify classifies a declared result list. names lists the recognized outcome type names;
// nil means DefaultOutcomeNames. Classify has no side effects and never fails.
func Classify(results *ast.FieldList, names []string) Shape {
	if names == nil {
		names = DefaultOutcomeNames
	}

	n := results.NumFields()
	if n == 0 {
		return Shape{Kind: Plain}
	}

	last := results.List[len(results.List)-1].Type
	if n == 1 {
		if ch, ok := unparen(last).(*ast.ChanType); ok && ch.Dir == ast.RECV {
			shape := classifyTypes([]ast.Expr{ch.Value}, names)
			shape.Suspending = true
			return shape
		}
	}

	types := make([]ast.Expr, 0, n)
	for _, field := range results.List {
		count := max(len(field.Names), 1)
		for range count {
			types = append(types, field.Type)
		}
	}

	return classifyTypes(types, names)
}

func classifyTypes(types []ast.Expr, names []string) Shape {
	shape := Shape{Kind: Plain, Results: len(types)}
	if IsError(types[len(types)-1]) {
		shape.Kind, shape.Outcome = OutcomeCarrying, OutcomeErrorTuple
		return shape
	}
	if len(types) == 1 && IsOutcomeType(types[0], names) {
		shape.Kind, shape.Outcome = OutcomeCarrying, OutcomeValue
	}

	return shape
}

// IsError reports whether expr is the predeclared error type.
func IsError(expr ast.Expr) bool {
	ident, ok := unparen(expr).(*ast.Ident)
	return ok && ident.Name == "error"
}

// IsOutcomeType reports whether the terminal name of expr is one of names.
func IsOutcomeType(expr ast.Expr, names []string) bool {
	name := TerminalName(expr)
	return name != "" && slices.Contains(names, name)
}

// TerminalName returns the last path segment of a named type expression, ignoring package
// qualification and type arguments: `Result`, `result.Result[T]` and `x.Result[K, V]` all yield
// "Result". Other type expressions (pointers, slices, maps, func types...) yield "".
func TerminalName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return TerminalName(t.X)
	case *ast.IndexListExpr:
		return TerminalName(t.X)
	case *ast.ParenExpr:
		return TerminalName(t.X)
	default:
		return ""
	}
}

func unparen(expr ast.Expr) ast.Expr {
	for {
		p, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}
		expr = p.X
	}
}
