// Package frontend implements lexing and parsing of the C subset.
//
// Design: tokens are views into the source buffer, the lexer is a plain
// value that can be copied to snapshot the cursor, and the parser is a
// recursive descent with one token of lookahead.
package frontend

import (
	"fmt"

	"github.com/GriffinCanCode/minic/pkg/diag"
)

type TokenKind int

const (
	EOF TokenKind = iota
	COMMENT

	IDENT
	CONSTANT
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	SEMICOLON

	// Keywords
	INT
	VOID
	RETURN
)

var kindNames = [...]string{
	EOF:       "end of file",
	COMMENT:   "comment",
	IDENT:     "identifier",
	CONSTANT:  "constant",
	LPAREN:    "'('",
	RPAREN:    "')'",
	LBRACE:    "'{'",
	RBRACE:    "'}'",
	SEMICOLON: "';'",
	INT:       "'int'",
	VOID:      "'void'",
	RETURN:    "'return'",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("token(%d)", int(k))
}

type Token struct {
	Kind   TokenKind
	Lexeme []byte // Slice of the source buffer, nil for EOF
	Offset int    // Byte offset of the first character
	Line   int
	Col    int
}

func (t Token) Pos() diag.Pos {
	return diag.Pos{Line: t.Line, Col: t.Col}
}

func (t Token) String() string {
	if len(t.Lexeme) == 0 {
		return fmt.Sprintf("{%s %d:%d}", t.Kind, t.Line, t.Col)
	}
	return fmt.Sprintf("{%s '%s' %d:%d}", t.Kind, t.Lexeme, t.Line, t.Col)
}

// keyword classifies an identifier-shaped lexeme.
func keyword(lexeme []byte) TokenKind {
	switch string(lexeme) {
	case "int":
		return INT
	case "void":
		return VOID
	case "return":
		return RETURN
	}
	return IDENT
}
