// Package ir - AST to IR conversion
// Design: Single depth-first pass, no partial IR on failure
package ir

import (
	"github.com/GriffinCanCode/minic/pkg/arena"
	"github.com/GriffinCanCode/minic/pkg/diag"
	"github.com/GriffinCanCode/minic/pkg/frontend"
	"github.com/GriffinCanCode/minic/pkg/logger"
)

type Builder struct {
	arena *arena.Arena
	nodes *frontend.Nodes
	queue *Queue
}

func NewBuilder(a *arena.Arena) *Builder {
	return &Builder{arena: a}
}

// Lower parses src and lowers the resulting AST. Both live in a.
func Lower(a *arena.Arena, src []byte) (*Program, error) {
	prog, err := frontend.Parse(a, src)
	if err != nil {
		return nil, err
	}
	return NewBuilder(a).Build(prog)
}

func (b *Builder) Build(prog *frontend.Program) (*Program, error) {
	b.nodes = prog.Nodes

	fn, err := b.buildFunction(prog.Func())
	if err != nil {
		logger.Debug("IR lowering failed", "error", err)
		return nil, err
	}

	logger.LogLowering(fn.Name, fn.Instructions.Len())
	return &Program{Function: fn}, nil
}

func (b *Builder) buildFunction(fn *frontend.FunctionDefinition) (FunctionDefinition, error) {
	b.queue = NewQueue(b.arena)

	if err := b.buildStatement(*b.nodes.Statements.Get(fn.Body)); err != nil {
		return FunctionDefinition{}, err
	}

	return FunctionDefinition{
		Name:         fn.Name,
		Instructions: b.queue,
	}, nil
}

func (b *Builder) buildStatement(stmt frontend.Statement) error {
	switch s := stmt.(type) {
	case frontend.ReturnStatement:
		if err := b.buildExpression(*b.nodes.Expressions.Get(s.Value)); err != nil {
			return err
		}
		return b.emit(Ret{})
	default:
		return diag.Errorf(diag.NotImplemented, "unsupported statement type: %T", stmt)
	}
}

func (b *Builder) buildExpression(expr frontend.Expression) error {
	switch e := expr.(type) {
	case frontend.ConstantExpression:
		c := b.nodes.Constants.Get(e.Constant)
		return b.emit(Mov{Src: Imm{Value: c.Value}, Dst: Reg{ID: EAX}})
	default:
		return diag.Errorf(diag.NotImplemented, "unsupported expression type: %T", expr)
	}
}

func (b *Builder) emit(inst Instruction) error {
	if err := b.queue.Push(inst); err != nil {
		return diag.Wrap(diag.MemoryAllocation, err, "growing instruction queue")
	}
	return nil
}
