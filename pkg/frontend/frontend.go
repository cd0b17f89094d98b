// Package frontend - AST for the C subset
// Design: Nodes live in arena pools and point at each other through typed
// refs. Statement and Expression are closed sets: only this package can
// add variants.
package frontend

import (
	"github.com/GriffinCanCode/minic/pkg/arena"
	"github.com/GriffinCanCode/minic/pkg/diag"
)

// MaxIdentLen is the longest function name accepted, in bytes.
const MaxIdentLen = 255

// Nodes holds one pool per AST node kind. All of them charge the same
// arena and go away together when it is released.
type Nodes struct {
	Functions   *arena.Pool[FunctionDefinition]
	Statements  *arena.Pool[Statement]
	Expressions *arena.Pool[Expression]
	Constants   *arena.Pool[Constant]
}

func NewNodes(a *arena.Arena) *Nodes {
	return &Nodes{
		Functions:   arena.NewPool[FunctionDefinition](a),
		Statements:  arena.NewPool[Statement](a),
		Expressions: arena.NewPool[Expression](a),
		Constants:   arena.NewPool[Constant](a),
	}
}

// Program is the root of a parsed translation unit.
type Program struct {
	Nodes    *Nodes
	Function arena.Ref[FunctionDefinition]
}

// Func returns the program's function definition.
func (p *Program) Func() *FunctionDefinition {
	return p.Nodes.Functions.Get(p.Function)
}

type FunctionDefinition struct {
	Name string
	Pos  diag.Pos
	Body arena.Ref[Statement]
}

// Statements
type Statement interface {
	stmt()
}

type ReturnStatement struct {
	Pos   diag.Pos
	Value arena.Ref[Expression]
}

func (ReturnStatement) stmt() {}

// Expressions
type Expression interface {
	expr()
}

type ConstantExpression struct {
	Constant arena.Ref[Constant]
}

func (ConstantExpression) expr() {}

type Constant struct {
	Pos   diag.Pos
	Value int32
}
