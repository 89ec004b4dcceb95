package directive

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/go-logfn/internal/queue"
)

const eof rune = -1

// token represents a tokenized text string that a lexer identified.
type token struct {
	typ tokenType // token type
	val string    // tokenized text
	pos int       // byte offset of the token in the input
}

type tokenType int

const (
	tokenTypeEOF          tokenType = iota // EOF
	tokenTypeError                         // lexing error
	tokenTypeIdent                         // [A-Za-z_][A-Za-z0-9_]*
	tokenTypeString                        // Go string literal, double quoted or raw, quotes included
	tokenTypeNumber                        // decimal or hexadecimal number with optional sign and fraction
	tokenTypeComma                         // ','
	tokenTypeAssign                        // '='
	tokenTypeLeftParen                     // '('
	tokenTypeRightParen                    // ')'
	tokenTypeLeftBracket                   // '['
	tokenTypeRightBracket                  // ']'
)

func (t tokenType) String() string {
	switch t {
	case tokenTypeEOF:
		return "end of input"
	case tokenTypeError:
		return "error"
	case tokenTypeIdent:
		return "identifier"
	case tokenTypeString:
		return "string"
	case tokenTypeNumber:
		return "number"
	case tokenTypeComma:
		return "','"
	case tokenTypeAssign:
		return "'='"
	case tokenTypeLeftParen:
		return "'('"
	case tokenTypeRightParen:
		return "')'"
	case tokenTypeLeftBracket:
		return "'['"
	case tokenTypeRightBracket:
		return "']'"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// lexer represents the state of the lexical scanner.
type lexer struct {
	input  string  // input string being lexed
	state  stateFn // next lexing state function to enter
	pos    int     // current position in the input
	start  int     // start position of a token being lexed in input string
	width  int     // width of last rune read from input
	tokens queue.Queue[token]
}

// newLexer creates a new scanner for the input string.
func newLexer(input string) *lexer {
	return &lexer{
		input:  input,
		state:  lexArgs,
		tokens: queue.NewSliceQueue[token](4),
	}
}

// next returns the next rune in the input and move position.
func (l *lexer) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}

	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

// ignore skips over the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.pos
}

// back steps back one rune.
func (l *lexer) back() {
	l.pos -= l.width
}

// peek returns the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.back()
	return r
}

// emit passes a token to the client.
func (l *lexer) emit(t tokenType) {
	l.tokens.Enqueue(token{typ: t, val: l.input[l.start:l.pos], pos: l.start})
	l.start = l.pos
}

// accept consumes the next rune if it's from the valid set.
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.back()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.back()
}

// errorf queues an error token and terminates the running lexer.
func (l *lexer) errorf(format string, args ...any) stateFn {
	l.tokens.Enqueue(token{typ: tokenTypeError, val: fmt.Sprintf(format, args...), pos: l.start})
	return nil
}

// nextToken returns the next token from the input.
// Once the input is exhausted it keeps returning the EOF (or error) token.
func (l *lexer) nextToken() token {
	for {
		if t, ok := l.tokens.Dequeue(); ok {
			return t
		}
		if l.state == nil {
			return token{typ: tokenTypeEOF, pos: len(l.input)}
		}
		l.state = l.state(l)
	}
}

// stateFn represents the state of the lexer as a function that returns the next state
type stateFn func(*lexer) stateFn

// lexArgs scans the elements of an argument list.
func lexArgs(l *lexer) stateFn {
	for {
		r := l.next()
		switch {
		case r == eof:
			l.emit(tokenTypeEOF)
			return nil
		case unicode.IsSpace(r):
			l.ignore()
		case r == ',':
			l.emit(tokenTypeComma)
			return lexArgs
		case r == '=':
			l.emit(tokenTypeAssign)
			return lexArgs
		case r == '(':
			l.emit(tokenTypeLeftParen)
			return lexArgs
		case r == ')':
			l.emit(tokenTypeRightParen)
			return lexArgs
		case r == '[':
			l.emit(tokenTypeLeftBracket)
			return lexArgs
		case r == ']':
			l.emit(tokenTypeRightBracket)
			return lexArgs
		case r == '"':
			l.back()
			return lexDoubleQuotedString
		case r == '`':
			l.back()
			return lexRawString
		case r == '+' || r == '-' || isDigit(r):
			l.back()
			return lexNumber
		case r == '_' || unicode.IsLetter(r):
			l.back()
			return lexIdent
		default:
			return l.errorf("unexpected character %#U", r)
		}
	}
}

// lexIdent scans an identifier, which is known to be present.
func lexIdent(l *lexer) stateFn {
	for isAlphaNumeric(l.next()) {
	}
	l.back()
	l.emit(tokenTypeIdent)
	return lexArgs
}

// lexDoubleQuotedString scans an interpreted string literal.
// The left double quote is known to be present.
func lexDoubleQuotedString(l *lexer) stateFn {
	l.accept(`"`)
	for {
		switch l.next() {
		case '\\':
			if l.next() == eof {
				return l.errorf("unclosed double quoted string")
			}
		case '"':
			l.emit(tokenTypeString)
			return lexArgs
		case eof, '\n':
			return l.errorf("unclosed double quoted string")
		}
	}
}

// lexRawString scans a raw string literal.
// The left back quote is known to be present.
func lexRawString(l *lexer) stateFn {
	l.accept("`")
	i := strings.IndexByte(l.input[l.pos:], '`')
	if i < 0 {
		return l.errorf("unclosed raw string")
	}
	l.pos += i + 1
	l.emit(tokenTypeString)

	return lexArgs
}

// lexNumber scans a number, which is known to be present.
func lexNumber(l *lexer) stateFn {
	// Optional number sign
	l.accept("+-")

	digits := "0123456789"
	if l.accept("0") && l.accept("xX") {
		digits = "0123456789abcdefABCDEF"
	}
	l.acceptRun(digits)

	if l.accept(".") {
		l.acceptRun(digits)
	}

	// Next thing must not be alphanumeric
	if isAlphaNumeric(l.peek()) {
		l.next()
		return l.errorf("invalid number syntax: %q", l.input[l.start:l.pos])
	}
	if l.pos-l.start == 1 && !isDigit(rune(l.input[l.start])) {
		return l.errorf("invalid number syntax: %q", l.input[l.start:l.pos])
	}

	l.emit(tokenTypeNumber)
	return lexArgs
}

// isAlphaNumeric reports whether r is an alphabetic, digit, or underscore.
func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit reports whether r is a digit.
func isDigit(r rune) bool {
	return ('0' <= r && r <= '9')
}
