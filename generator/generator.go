// Package generator rewrites annotated Go source files.
//
// An annotated source file is excluded from normal builds by a build constraint on the source tag
// (`//go:build logfnsrc` by default) and carries directives in the doc comments of its functions:
//
//	//go:build logfnsrc
//
//	package fib
//
//	// fibonacci returns the n-th Fibonacci number.
//	//
//	//logfn:output Info
//	func fibonacci(n uint32) uint32 { ... }
//
// For every source file the generator writes `<base>_logfn.go` next to it. The output is the
// source file with the source tag negated in its build constraint, the directive lines removed and
// the body of every annotated function replaced by the generated body. Everything else, including
// comments and functions without directives, is copied unchanged. The output starts with the
// standard "Code generated" header.
//
// The generator is typically invoked through `go:generate` from a regular file of the same
// package, since a directive inside the annotated source would be copied to its output:
//
//	//go:generate go run github.com/arloliu/go-logfn/cmd/logfn generate fib.go
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/imports"

	"github.com/arloliu/go-logfn/directive"
	"github.com/arloliu/go-logfn/logger"
	"github.com/arloliu/go-logfn/synth"
	"github.com/arloliu/go-logfn/wrap"
)

// Header is the first line of every generated file.
const Header = "// Code generated by logfn. DO NOT EDIT."

// Directive prefixes recognized in function doc comments.
const (
	directivePrefix = "//logfn:"
	kindOutput      = "output"
	kindInputs      = "inputs"
)

// Generator transforms annotated source files.
type Generator struct {
	opts  *Options
	synth *synth.Synthesizer
	log   logger.Logger
}

// Output is the generated counterpart of a source file.
type Output struct {
	// Source is the path of the annotated source file.
	Source string
	// Path is the path the output is written to.
	Path string
	// Content is the formatted output.
	Content []byte
	// Functions is the number of annotated functions.
	Functions int
}

// New creates a Generator with the given options applied over the defaults.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt.apply(o); err != nil {
			return nil, err
		}
	}

	strategy, err := wrap.New(o.mode)
	if err != nil {
		return nil, err
	}

	return &Generator{
		opts: o,
		synth: synth.New(strategy, synth.Options{
			Facade:       o.facadeName,
			OutcomeNames: o.outcomeTypes,
		}),
		log: o.logger,
	}, nil
}

// Options returns the settings of the generator.
func (g *Generator) Options() *Options {
	return g.opts
}

// OutputPath returns the path of the file generated from the source file at src.
// Test files keep their `_test.go` ending.
func (g *Generator) OutputPath(src string) string {
	dir, base := filepath.Split(src)
	base = strings.TrimSuffix(base, ".go")
	if name, ok := strings.CutSuffix(base, "_test"); ok {
		return filepath.Join(dir, name+g.opts.suffix+"_test.go")
	}

	return filepath.Join(dir, base+g.opts.suffix+".go")
}

// File reads and transforms the source file filename.
func (g *Generator) File(filename string) (*Output, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return g.Source(filename, src)
}

// Source transforms src, the content of the source file filename.
//
// Errors are reported with their position. All errors of a file are joined, and a file with any
// error produces no output.
func (g *Generator) Source(filename string, src []byte) (*Output, error) {
	base := strings.TrimSuffix(strings.TrimSuffix(filepath.Base(filename), ".go"), "_test")
	if strings.HasSuffix(base, g.opts.suffix) {
		return nil, fmt.Errorf("%w: %s", ErrGeneratedInput, filename)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	if ast.IsGenerated(file) {
		return nil, fmt.Errorf("%w: %s", ErrGeneratedInput, filename)
	}

	edits, err := g.constraintEdits(fset, file, src)
	if err != nil {
		return nil, err
	}

	var (
		errs       []error
		functions  int
		usesFacade bool
		usesTime   bool
	)
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}

		dirs, err := collectDirectives(fset, fd)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if dirs == nil {
			continue
		}
		for _, c := range dirs.comments {
			edits = append(edits, removeLine(fset, src, c))
		}

		body, code, err := g.function(fset, src, fd, dirs)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", fset.Position(fd.Pos()), fd.Name.Name, err))
			continue
		}
		edits = append(edits, body)
		usesFacade = usesFacade || code.UsesFacade
		usesTime = usesTime || code.UsesTime
		functions++

		g.log.Debug("transformed function", "file", filename, "function", fd.Name.Name)
	}

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if strings.HasPrefix(c.Text, directivePrefix) && !isFuncDoc(file, cg) {
				errs = append(errs, fmt.Errorf("%s: %w", fset.Position(c.Slash), ErrMisplacedDirective))
			}
		}
	}

	if len(errs) == 0 {
		errs = g.checkNames(fset, file, usesFacade, usesTime)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if functions == 0 {
		g.log.Warn("no annotated functions found", "file", filename)
	}

	content, err := g.render(filename, applyEdits(src, edits), usesFacade, usesTime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &Output{
		Source:    filename,
		Path:      g.OutputPath(filename),
		Content:   content,
		Functions: functions,
	}, nil
}

// function generates the replacement body of decl.
func (g *Generator) function(fset *token.FileSet, src []byte, decl *ast.FuncDecl, dirs *directives) (edit, synth.Code, error) {
	fn, err := wrap.NewFunc(fset, src, decl)
	if err != nil {
		return edit{}, synth.Code{}, err
	}

	var code synth.Code
	if dirs.inputs != nil {
		in, err := g.synth.Inputs(fn, dirs.inputs)
		if err != nil {
			return edit{}, synth.Code{}, err
		}
		fn.Body = synth.Prepend(fn.Body, in.Text)
		code.UsesFacade = true
	}
	if dirs.output != nil {
		out, err := g.synth.Output(fn, dirs.output)
		if err != nil {
			return edit{}, synth.Code{}, err
		}
		fn.Body = out.Text
		code.UsesFacade = code.UsesFacade || out.UsesFacade
		code.UsesTime = out.UsesTime
	}
	code.Text = fn.Body

	return edit{
		start: offset(fset, decl.Body.Lbrace),
		end:   offset(fset, decl.Body.Rbrace) + 1,
		text:  fn.Body,
	}, code, nil
}

// render adds the header and the imports used by generated code to src and formats the result.
func (g *Generator) render(filename string, src []byte, usesFacade, usesTime bool) ([]byte, error) {
	src = append([]byte(Header+"\n\n"), src...)

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}

	if usesTime {
		astutil.AddImport(fset, file, "time")
	}
	if usesFacade {
		if path.Base(g.opts.facadeImport) == g.opts.facadeName {
			astutil.AddImport(fset, file, g.opts.facadeImport)
		} else {
			astutil.AddNamedImport(fset, file, g.opts.facadeName, g.opts.facadeImport)
		}
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, err
	}

	return imports.Process(g.OutputPath(filename), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}

// checkNames rejects file-level names that would collide with the packages generated code
// refers to: an import of another package under the facade name or "time", or a package-level
// declaration with one of those names.
func (g *Generator) checkNames(fset *token.FileSet, file *ast.File, usesFacade, usesTime bool) []error {
	wanted := make(map[string]string, 2)
	if usesFacade {
		wanted[g.opts.facadeName] = g.opts.facadeImport
	}
	if usesTime {
		wanted["time"] = "time"
	}

	var errs []error
	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := path.Base(importPath)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if want, ok := wanted[name]; ok && importPath != want {
			errs = append(errs, fmt.Errorf("%s: %w %q: imports %s, generated code uses it for %s",
				fset.Position(spec.Pos()), synth.ErrReservedName, name, importPath, want))
		}
	}
	for name, want := range wanted {
		if obj := file.Scope.Lookup(name); obj != nil {
			errs = append(errs, fmt.Errorf("%s: %w %q: declared in the file, generated code uses it for %s",
				fset.Position(obj.Pos()), synth.ErrReservedName, name, want))
		}
	}
	slices.SortFunc(errs, func(a, b error) int { return strings.Compare(a.Error(), b.Error()) })

	return errs
}

// constraintEdits negates the source tag in the build constraint of file and drops legacy
// `// +build` lines. A file without the source tag in its `//go:build` line is rejected, since
// its output would be compiled alongside it.
func (g *Generator) constraintEdits(fset *token.FileSet, file *ast.File, src []byte) ([]edit, error) {
	var (
		edits []edit
		found bool
	)
	for _, cg := range file.Comments {
		if cg.Pos() >= file.Package {
			break
		}
		for _, c := range cg.List {
			switch {
			case constraint.IsGoBuild(c.Text):
				expr, err := constraint.Parse(c.Text)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", fset.Position(c.Slash), err)
				}
				negated, ok := negateTag(expr, g.opts.sourceTag)
				if !ok {
					continue
				}
				found = true
				edits = append(edits, edit{
					start: offset(fset, c.Slash),
					end:   offset(fset, c.End()),
					text:  "//go:build " + negated.String(),
				})
			case constraint.IsPlusBuild(c.Text):
				edits = append(edits, removeLine(fset, src, c))
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: %s has no //go:build line using the %q tag", ErrMissingTag, fset.File(file.Pos()).Name(), g.opts.sourceTag)
	}

	return edits, nil
}

// negateTag returns expr with every occurrence of tag negated, and whether tag occurs.
func negateTag(expr constraint.Expr, tag string) (constraint.Expr, bool) {
	switch x := expr.(type) {
	case *constraint.TagExpr:
		if x.Tag == tag {
			return &constraint.NotExpr{X: x}, true
		}
		return x, false
	case *constraint.NotExpr:
		inner, ok := negateTag(x.X, tag)
		if n, double := inner.(*constraint.NotExpr); ok && double {
			return n.X, true
		}
		return &constraint.NotExpr{X: inner}, ok
	case *constraint.AndExpr:
		left, okX := negateTag(x.X, tag)
		right, okY := negateTag(x.Y, tag)
		return &constraint.AndExpr{X: left, Y: right}, okX || okY
	case *constraint.OrExpr:
		left, okX := negateTag(x.X, tag)
		right, okY := negateTag(x.Y, tag)
		return &constraint.OrExpr{X: left, Y: right}, okX || okY
	}

	return expr, false
}

// directives are the parsed directives of one function.
type directives struct {
	output   *directive.OutputConfig
	inputs   *directive.InputConfig
	comments []*ast.Comment
}

// collectDirectives parses the directives in the doc comment of decl. It returns nil when there
// are none.
func collectDirectives(fset *token.FileSet, decl *ast.FuncDecl) (*directives, error) {
	if decl.Doc == nil {
		return nil, nil //nolint:nilnil
	}

	var (
		dirs directives
		errs []error
	)
	for _, c := range decl.Doc.List {
		rest, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}
		dirs.comments = append(dirs.comments, c)

		kind, args := rest, ""
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			kind, args = rest[:i], rest[i+1:]
		}
		pos := fset.Position(c.Slash)
		var err error
		switch kind {
		case kindOutput:
			if dirs.output != nil {
				err = fmt.Errorf("%w %q", ErrDuplicateDirective, directivePrefix+kind)
				break
			}
			dirs.output, err = directive.ParseOutput(args)
		case kindInputs:
			if dirs.inputs != nil {
				err = fmt.Errorf("%w %q", ErrDuplicateDirective, directivePrefix+kind)
				break
			}
			dirs.inputs, err = directive.ParseInputs(args)
		default:
			err = fmt.Errorf("%w %q, expected %s or %s", ErrUnknownDirective, directivePrefix+kind, directivePrefix+kindOutput, directivePrefix+kindInputs)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %s: %w", pos, decl.Name.Name, err))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if len(dirs.comments) == 0 {
		return nil, nil //nolint:nilnil
	}

	return &dirs, nil
}

func isFuncDoc(file *ast.File, cg *ast.CommentGroup) bool {
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Doc == cg {
			return true
		}
	}

	return false
}

// edit replaces src[start:end] with text.
type edit struct {
	start int
	end   int
	text  string
}

// removeLine returns an edit deleting the line holding the comment c, which must be the only
// thing on its line.
func removeLine(fset *token.FileSet, src []byte, c *ast.Comment) edit {
	start, end := offset(fset, c.Slash), offset(fset, c.End())
	for start > 0 && (src[start-1] == ' ' || src[start-1] == '\t') {
		start--
	}
	if end < len(src) && src[end] == '\r' {
		end++
	}
	if end < len(src) && src[end] == '\n' {
		end++
	}

	return edit{start: start, end: end}
}

// applyEdits applies non-overlapping edits to src.
func applyEdits(src []byte, edits []edit) []byte {
	slices.SortFunc(edits, func(a, b edit) int { return a.start - b.start })

	out := make([]byte, 0, len(src))
	last := 0
	for _, e := range edits {
		out = append(out, src[last:e.start]...)
		out = append(out, e.text...)
		last = e.end
	}

	return append(out, src[last:]...)
}

func offset(fset *token.FileSet, pos token.Pos) int {
	return fset.Position(pos).Offset
}
