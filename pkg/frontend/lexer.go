// Package frontend - Lexer for the C subset
// Design: Hand-written scanner over a byte buffer, no allocations per token
package frontend

import (
	"errors"

	"github.com/GriffinCanCode/minic/pkg/diag"
)

var (
	ErrUnknownToken        = errors.New("unknown token")
	ErrInvalidConstant     = errors.New("invalid constant")
	ErrUnterminatedComment = errors.New("unterminated comment")
)

// Lexer is a cursor over an immutable source buffer. It holds no pointers
// besides the buffer, so copying a Lexer snapshots its state.
type Lexer struct {
	src  []byte
	pos  int
	line int
	col  int
}

func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Next scans and returns the next token. Comments are returned as COMMENT
// tokens; callers that only care about the grammar skip them. After EOF,
// Next keeps returning EOF.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	if l.atEnd() {
		return Token{Kind: EOF, Offset: l.pos, Line: l.line, Col: l.col}, nil
	}

	start := l.mark()
	c := l.peek()

	if c == '/' && l.peekAt(1) == '/' {
		for !l.atEnd() && l.peek() != '\n' {
			l.advance()
		}
		return l.token(COMMENT, start), nil
	}

	if c == '/' && l.peekAt(1) == '*' {
		l.advance()
		l.advance()
		for !l.atEnd() && !(l.peek() == '*' && l.peekAt(1) == '/') {
			l.advance()
		}
		if l.atEnd() {
			return Token{}, diag.At(diag.InvalidToken, start.pos(), ErrUnterminatedComment, "comment starting here never ends")
		}
		l.advance()
		l.advance()
		return l.token(COMMENT, start), nil
	}

	switch c {
	case '(':
		l.advance()
		return l.token(LPAREN, start), nil
	case ')':
		l.advance()
		return l.token(RPAREN, start), nil
	case '{':
		l.advance()
		return l.token(LBRACE, start), nil
	case '}':
		l.advance()
		return l.token(RBRACE, start), nil
	case ';':
		l.advance()
		return l.token(SEMICOLON, start), nil
	}

	if isDigit(c) {
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
		if !l.atEnd() && isAlpha(l.peek()) {
			for !l.atEnd() && isIdentChar(l.peek()) {
				l.advance()
			}
			return Token{}, diag.At(diag.InvalidToken, start.pos(), ErrInvalidConstant, "'%s'", l.src[start.offset:l.pos])
		}
		return l.token(CONSTANT, start), nil
	}

	if isAlpha(c) {
		for !l.atEnd() && isIdentChar(l.peek()) {
			l.advance()
		}
		tok := l.token(IDENT, start)
		tok.Kind = keyword(tok.Lexeme)
		return tok, nil
	}

	// Step over the offending byte so a caller could resynchronize.
	l.advance()
	return Token{}, diag.At(diag.InvalidToken, start.pos(), ErrUnknownToken, "%q", rune(c))
}

// Peek returns the token Next would return without advancing.
func (l *Lexer) Peek() (Token, error) {
	saved := *l
	tok, err := l.Next()
	*l = saved
	return tok, err
}

// Pos returns the current cursor position.
func (l *Lexer) Pos() diag.Pos {
	return diag.Pos{Line: l.line, Col: l.col}
}

// LexAll tokenizes src until EOF and reports how many tokens, comments
// included, it produced. It stops at the first error.
func LexAll(src []byte) (int, error) {
	l := NewLexer(src)
	count := 0
	for {
		tok, err := l.Next()
		if err != nil {
			return count, err
		}
		if tok.Kind == EOF {
			return count, nil
		}
		count++
	}
}

type mark struct {
	offset, line, col int
}

func (m mark) pos() diag.Pos { return diag.Pos{Line: m.line, Col: m.col} }

func (l *Lexer) mark() mark {
	return mark{offset: l.pos, line: l.line, col: l.col}
}

func (l *Lexer) token(kind TokenKind, m mark) Token {
	return Token{
		Kind:   kind,
		Lexeme: l.src[m.offset:l.pos:l.pos],
		Offset: m.offset,
		Line:   m.line,
		Col:    m.col,
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) advance() {
	if l.atEnd() {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}
