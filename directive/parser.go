package directive

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgKind classifies a parsed directive argument.
type ArgKind int

const (
	// ArgIdent is a bare identifier, e.g. `Info` or `true`.
	ArgIdent ArgKind = iota
	// ArgString is a string literal; Text holds the unquoted value.
	ArgString
	// ArgNumber is a numeric literal; Text holds its source text.
	ArgNumber
	// ArgNamed is a `name = value` pair; Value holds the value.
	ArgNamed
	// ArgList is a nested list, either `name(...)`, `(...)` or `[...]`; Items holds the elements.
	ArgList
)

func (k ArgKind) String() string {
	switch k {
	case ArgIdent:
		return "identifier"
	case ArgString:
		return "string"
	case ArgNumber:
		return "number"
	case ArgNamed:
		return "named value"
	case ArgList:
		return "list"
	default:
		return fmt.Sprintf("ArgKind(%d)", int(k))
	}
}

// Arg is a single directive argument.
type Arg struct {
	Kind  ArgKind
	Name  string // identifier for ArgIdent, option name for ArgNamed and named ArgList
	Text  string // value for ArgString and ArgNumber
	Value *Arg   // value for ArgNamed
	Items []Arg  // elements for ArgList
	Pos   int    // byte offset of the argument in the directive text
}

// String renders the argument back in directive syntax.
func (a Arg) String() string {
	switch a.Kind {
	case ArgIdent:
		return a.Name
	case ArgString:
		return strconv.Quote(a.Text)
	case ArgNumber:
		return a.Text
	case ArgNamed:
		return a.Name + " = " + a.Value.String()
	case ArgList:
		items := make([]string, 0, len(a.Items))
		for _, item := range a.Items {
			items = append(items, item.String())
		}
		return a.Name + "(" + strings.Join(items, ", ") + ")"
	default:
		return "?"
	}
}

// parser turns the lexer's token stream into arguments.
type parser struct {
	lex *lexer
	tok token // current token
}

// ParseArgs parses a comma-separated directive argument list.
//
// An argument is a bare identifier, a string or number literal, a `name = value` pair or a nested
// list written as `name(...)`, `(...)` or `[...]`. A trailing comma is allowed.
func ParseArgs(text string) ([]Arg, error) {
	p := &parser{lex: newLexer(text)}
	p.advance()

	args, err := p.parseList(tokenTypeEOF)
	if err != nil {
		return nil, err
	}

	return args, nil
}

func (p *parser) advance() {
	p.tok = p.lex.nextToken()
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) unexpected(expected string) error {
	if p.tok.typ == tokenTypeError {
		return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.tok.pos, p.tok.val)
	}
	if p.tok.typ == tokenTypeEOF {
		return p.errorf("expected %s, got %s", expected, p.tok.typ)
	}

	return p.errorf("expected %s, got %s %q", expected, p.tok.typ, p.tok.val)
}

// parseList parses arguments until the closing token, which is consumed.
func (p *parser) parseList(closing tokenType) ([]Arg, error) {
	args := []Arg{}
	for p.tok.typ != closing {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.tok.typ {
		case tokenTypeComma:
			p.advance()
		case closing:
		default:
			return nil, p.unexpected("',' or " + closing.String())
		}
	}
	p.advance()

	return args, nil
}

// parseArg parses one argument, either a value or a named option.
func (p *parser) parseArg() (Arg, error) {
	if p.tok.typ != tokenTypeIdent {
		return p.parseValue()
	}

	ident := p.tok
	p.advance()

	switch p.tok.typ {
	case tokenTypeAssign:
		p.advance()
		value, err := p.parseValue()
		if err != nil {
			return Arg{}, err
		}
		return Arg{Kind: ArgNamed, Name: ident.val, Value: &value, Pos: ident.pos}, nil
	case tokenTypeLeftParen:
		p.advance()
		items, err := p.parseList(tokenTypeRightParen)
		if err != nil {
			return Arg{}, err
		}
		return Arg{Kind: ArgList, Name: ident.val, Items: items, Pos: ident.pos}, nil
	default:
		return Arg{Kind: ArgIdent, Name: ident.val, Pos: ident.pos}, nil
	}
}

// parseValue parses a value: identifier, literal or unnamed list.
func (p *parser) parseValue() (Arg, error) {
	tok := p.tok
	switch tok.typ {
	case tokenTypeIdent:
		p.advance()
		return Arg{Kind: ArgIdent, Name: tok.val, Pos: tok.pos}, nil
	case tokenTypeString:
		s, err := strconv.Unquote(tok.val)
		if err != nil {
			return Arg{}, p.errorf("invalid string literal %s", tok.val)
		}
		p.advance()
		return Arg{Kind: ArgString, Text: s, Pos: tok.pos}, nil
	case tokenTypeNumber:
		p.advance()
		return Arg{Kind: ArgNumber, Text: tok.val, Pos: tok.pos}, nil
	case tokenTypeLeftParen, tokenTypeLeftBracket:
		closing := tokenTypeRightParen
		if tok.typ == tokenTypeLeftBracket {
			closing = tokenTypeRightBracket
		}
		p.advance()
		items, err := p.parseList(closing)
		if err != nil {
			return Arg{}, err
		}
		return Arg{Kind: ArgList, Items: items, Pos: tok.pos}, nil
	default:
		return Arg{}, p.unexpected("argument")
	}
}
