package wrap

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/arloliu/go-logfn/signature"
)

// Func is an annotated function together with the source text the generated code is built from.
type Func struct {
	// Name is the function or method name.
	Name string
	// Decl is the parsed declaration.
	Decl *ast.FuncDecl
	// Body is the source text of the body, braces included.
	Body string
	// Results is the source text of the result list as declared, e.g. `int`, `(string, error)` or
	// `(n int, err error)`. It is empty when the function has no results.
	Results string
	// Elem is the source text of the channel element type of a suspending function.
	Elem string
	// Shape is the classification of the results, set by the synthesizer.
	Shape signature.Shape
}

// NewFunc extracts the source text of decl from src, which must be the content fset parsed decl from.
func NewFunc(fset *token.FileSet, src []byte, decl *ast.FuncDecl) (*Func, error) {
	if decl.Body == nil {
		return nil, ErrNoBody
	}

	fn := &Func{
		Name: decl.Name.Name,
		Decl: decl,
		Body: text(fset, src, decl.Body.Lbrace, decl.Body.Rbrace+1),
	}

	results := decl.Type.Results
	if results.NumFields() > 0 {
		fn.Results = text(fset, src, results.Pos(), results.End())
		if results.NumFields() == 1 {
			if ch, ok := results.List[0].Type.(*ast.ChanType); ok && ch.Dir == ast.RECV {
				fn.Elem = text(fset, src, ch.Value.Pos(), ch.Value.End())
			}
		}
	}

	return fn, nil
}

func text(fset *token.FileSet, src []byte, from, to token.Pos) string {
	start := fset.Position(from).Offset
	end := fset.Position(to).Offset
	if start < 0 || end > len(src) || start > end {
		panic(fmt.Sprintf("wrap: source range [%d, %d) out of bounds", start, end))
	}

	return string(src[start:end])
}
