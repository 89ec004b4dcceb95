package signature

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseFunc(t *testing.T, src string) *ast.FuncDecl {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "test.go", "package p\n"+src, 0)
	require.NoError(t, err)
	require.Len(t, file.Decls, 1)
	decl, ok := file.Decls[0].(*ast.FuncDecl)
	require.True(t, ok)

	return decl
}

func parseType(t *testing.T, src string) ast.Expr {
	t.Helper()

	expr, err := parser.ParseExpr(src)
	require.NoError(t, err)

	return expr
}

func TestTerminalName(t *testing.T) {
	tests := map[string]string{
		"Result":                   "Result",
		"Result[T, E]":             "Result",
		"result.Result[T]":         "Result",
		"fmt.Result":               "Result",
		"a.b.Result[map[string]T]": "Result",
		"(Result)":                 "Result",
		"*Result":                  "",
		"[]Result":                 "",
		"map[string]Result":        "",
		"func() Result":            "",
		"error":                    "error",
	}

	for src, expected := range tests {
		require.Equalf(t, expected, TerminalName(parseType(t, src)), "type %s", src)
	}
}

func TestIsOutcomeType(t *testing.T) {
	require := require.New(t)

	// Qualification prefixes and type arguments never change the classification.
	for _, src := range []string{"Result[T, E]", "std.result.Result[T, E]", "fmt.Result", "result.Result[int]"} {
		require.Truef(IsOutcomeType(parseType(t, src), DefaultOutcomeNames), "type %s", src)
	}
	for _, src := range []string{"Results", "result.Value", "*Result", "ResultSet[int]"} {
		require.Falsef(IsOutcomeType(parseType(t, src), DefaultOutcomeNames), "type %s", src)
	}

	require.True(IsOutcomeType(parseType(t, "mo.Either[int, error]"), []string{"Result", "Either"}))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		src         string
		expected    Shape
	}{
		{
			description: "no results",
			src:         "func f() {}",
			expected:    Shape{Kind: Plain},
		},
		{
			description: "single plain result",
			src:         "func fibonacci(n uint32) uint32 { return 0 }",
			expected:    Shape{Kind: Plain, Results: 1},
		},
		{
			description: "multiple plain results",
			src:         "func f() (int, string) { return 0, \"\" }",
			expected:    Shape{Kind: Plain, Results: 2},
		},
		{
			description: "grouped named results",
			src:         "func f() (a, b int) { return }",
			expected:    Shape{Kind: Plain, Results: 2},
		},
		{
			description: "error only",
			src:         "func f() error { return nil }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeErrorTuple, Results: 1},
		},
		{
			description: "value and error",
			src:         "func f() (string, error) { return \"\", nil }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeErrorTuple, Results: 2},
		},
		{
			description: "named values and error",
			src:         "func f() (a, b int, err error) { return }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeErrorTuple, Results: 3},
		},
		{
			description: "error not last",
			src:         "func f() (error, int) { return nil, 0 }",
			expected:    Shape{Kind: Plain, Results: 2},
		},
		{
			description: "generic Result",
			src:         "func f() result.Result[string] { return result.Ok(\"\") }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeValue, Results: 1},
		},
		{
			description: "unqualified Result",
			src:         "func f() Result { return Result{} }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeValue, Results: 1},
		},
		{
			description: "Result among several results",
			src:         "func f() (Result, int) { return Result{}, 0 }",
			expected:    Shape{Kind: Plain, Results: 2},
		},
		{
			description: "pointer to Result",
			src:         "func f() *Result { return nil }",
			expected:    Shape{Kind: Plain, Results: 1},
		},
		{
			description: "suspending plain",
			src:         "func f() <-chan int { return nil }",
			expected:    Shape{Kind: Plain, Results: 1, Suspending: true},
		},
		{
			description: "suspending named",
			src:         "func f() (out <-chan int) { return }",
			expected:    Shape{Kind: Plain, Results: 1, Suspending: true},
		},
		{
			description: "suspending Result",
			src:         "func f() <-chan result.Result[string] { return nil }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeValue, Results: 1, Suspending: true},
		},
		{
			description: "suspending error",
			src:         "func f() <-chan error { return nil }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeErrorTuple, Results: 1, Suspending: true},
		},
		{
			description: "bidirectional channel is not suspending",
			src:         "func f() chan int { return nil }",
			expected:    Shape{Kind: Plain, Results: 1},
		},
		{
			description: "receive channel among several results",
			src:         "func f() (<-chan int, error) { return nil, nil }",
			expected:    Shape{Kind: OutcomeCarrying, Outcome: OutcomeErrorTuple, Results: 2},
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			decl := parseFunc(t, test.src)
			require.Equal(t, test.expected, Classify(decl.Type.Results, nil))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	require := require.New(t)

	decl := parseFunc(t, "func f() result.Result[T, E] { return nil }")
	first := Classify(decl.Type.Results, nil)
	for range 10 {
		require.Equal(first, Classify(decl.Type.Results, nil))
	}
	require.Equal(OutcomeCarrying, first.Kind)
	require.Equal("OutcomeCarrying", first.Kind.String())
	require.Equal("Plain", Plain.String())

	// custom names replace the defaults
	require.Equal(Plain, Classify(decl.Type.Results, []string{"Either"}).Kind)
}
