// Package frontend - Recursive descent parser for the C subset
// Design: Predictive parsing, one token of lookahead, first error is fatal
package frontend

import (
	"fmt"
	"math"

	"github.com/GriffinCanCode/minic/pkg/arena"
	"github.com/GriffinCanCode/minic/pkg/diag"
)

//	program    := function EOF
//	function   := "int" IDENT "(" "void" ")" "{" statement "}"
//	statement  := "return" expression ";"
//	expression := CONSTANT
type Parser struct {
	lex   Lexer
	nodes *Nodes
}

func NewParser(a *arena.Arena, src []byte) *Parser {
	return &Parser{
		lex:   *NewLexer(src),
		nodes: NewNodes(a),
	}
}

// Parse parses src into a Program whose nodes are owned by a.
func Parse(a *arena.Arena, src []byte) (*Program, error) {
	return NewParser(a, src).Parse()
}

func (p *Parser) Parse() (*Program, error) {
	fn, err := p.function()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EOF); err != nil {
		return nil, err
	}
	return &Program{Nodes: p.nodes, Function: fn}, nil
}

func (p *Parser) function() (arena.Ref[FunctionDefinition], error) {
	var none arena.Ref[FunctionDefinition]

	if _, err := p.expect(INT); err != nil {
		return none, err
	}

	name, err := p.expect(IDENT)
	if err != nil {
		return none, err
	}
	if len(name.Lexeme) > MaxIdentLen {
		return none, diag.At(diag.IdentifierTooLong, name.Pos(), nil,
			"function name is %d bytes, limit is %d", len(name.Lexeme), MaxIdentLen)
	}

	for _, kind := range []TokenKind{LPAREN, VOID, RPAREN, LBRACE} {
		if _, err := p.expect(kind); err != nil {
			return none, err
		}
	}

	body, err := p.statement()
	if err != nil {
		return none, err
	}

	if _, err := p.expect(RBRACE); err != nil {
		return none, err
	}

	ref, err := p.nodes.Functions.New(FunctionDefinition{
		Name: string(name.Lexeme),
		Pos:  name.Pos(),
		Body: body,
	})
	if err != nil {
		return none, allocErr(err, "function definition")
	}
	return ref, nil
}

// statement dispatches on the next token. return is the only statement.
func (p *Parser) statement() (arena.Ref[Statement], error) {
	tok, err := p.peek()
	if err != nil {
		return arena.Ref[Statement]{}, err
	}

	switch tok.Kind {
	case RETURN:
		return p.returnStatement()
	}
	return arena.Ref[Statement]{}, diag.At(diag.InvalidSyntax, tok.Pos(), nil, "expected %s, got %s", RETURN, describe(tok))
}

func (p *Parser) returnStatement() (arena.Ref[Statement], error) {
	var none arena.Ref[Statement]

	ret, err := p.expect(RETURN)
	if err != nil {
		return none, err
	}

	value, err := p.expression()
	if err != nil {
		return none, err
	}

	if _, err := p.expect(SEMICOLON); err != nil {
		return none, err
	}

	ref, err := p.nodes.Statements.New(ReturnStatement{Pos: ret.Pos(), Value: value})
	if err != nil {
		return none, allocErr(err, "return statement")
	}
	return ref, nil
}

func (p *Parser) expression() (arena.Ref[Expression], error) {
	var none arena.Ref[Expression]

	c, err := p.constant()
	if err != nil {
		return none, err
	}

	ref, err := p.nodes.Expressions.New(ConstantExpression{Constant: c})
	if err != nil {
		return none, allocErr(err, "expression")
	}
	return ref, nil
}

func (p *Parser) constant() (arena.Ref[Constant], error) {
	var none arena.Ref[Constant]

	tok, err := p.expect(CONSTANT)
	if err != nil {
		return none, err
	}

	var value int64
	for _, d := range tok.Lexeme {
		value = value*10 + int64(d-'0')
		if value > math.MaxInt32 {
			return none, diag.At(diag.InvalidSyntax, tok.Pos(), nil,
				"integer constant %s overflows int", tok.Lexeme)
		}
	}

	ref, err := p.nodes.Constants.New(Constant{Pos: tok.Pos(), Value: int32(value)})
	if err != nil {
		return none, allocErr(err, "constant")
	}
	return ref, nil
}

// expect skips comments and consumes one token of the given kind.
func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, diag.At(diag.InvalidSyntax, tok.Pos(), nil, "expected %s, got %s", kind, describe(tok))
	}
	return tok, nil
}

// peek returns the next non-comment token without consuming it. Comments
// in front of it are consumed.
func (p *Parser) peek() (Token, error) {
	for {
		tok, err := p.lex.Peek()
		if err != nil || tok.Kind != COMMENT {
			return tok, err
		}
		if _, err := p.lex.Next(); err != nil {
			return Token{}, err
		}
	}
}

func (p *Parser) next() (Token, error) {
	for {
		tok, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		if tok.Kind != COMMENT {
			return tok, nil
		}
	}
}

func describe(tok Token) string {
	switch tok.Kind {
	case IDENT, CONSTANT:
		return fmt.Sprintf("%s '%s'", tok.Kind, tok.Lexeme)
	}
	return tok.Kind.String()
}

func allocErr(err error, what string) error {
	return diag.Wrap(diag.MemoryAllocation, err, "allocating %s", what)
}
