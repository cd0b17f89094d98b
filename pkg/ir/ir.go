// Package ir implements the intermediate representation.
//
// Design: An ordered instruction queue per function, architecture neutral.
// The source language has no branches, so queue order is the only
// sequencing information and there is no control-flow graph.
package ir

import (
	"fmt"

	"github.com/GriffinCanCode/minic/pkg/arena"
)

// Program is the top-level IR container
type Program struct {
	Function FunctionDefinition
}

// FunctionDefinition is one lowered function
type FunctionDefinition struct {
	Name         string
	Instructions *Queue
}

// Instruction is a closed set: Mov and Ret
type Instruction interface {
	inst()
}

// Mov copies Src into Dst
type Mov struct {
	Src Operand
	Dst Operand
}

func (Mov) inst() {}

// Ret returns from the function with the result in EAX
type Ret struct{}

func (Ret) inst() {}

// Operand is a closed set: Imm and Reg
type Operand interface {
	operand()
}

type Imm struct {
	Value int32
}

func (Imm) operand() {}

type Reg struct {
	ID Register
}

func (Reg) operand() {}

// Register identifies a machine register. The instruction set has one.
type Register int

const (
	EAX Register = iota
)

func (r Register) String() string {
	switch r {
	case EAX:
		return "eax"
	}
	return fmt.Sprintf("r%d", int(r))
}

// Queue is the append-only instruction sequence of a function. Its backing
// store is charged to the compilation arena.
type Queue struct {
	v *arena.Vec[Instruction]
}

func NewQueue(a *arena.Arena) *Queue {
	return &Queue{v: arena.NewVec[Instruction](a)}
}

// Push appends inst. It fails only when the arena cannot grow the queue.
func (q *Queue) Push(inst Instruction) error {
	return q.v.Push(inst)
}

func (q *Queue) Len() int { return q.v.Len() }

func (q *Queue) At(i int) Instruction { return q.v.At(i) }

// Instructions returns the queue in emission order.
func (q *Queue) Instructions() []Instruction { return q.v.Items() }
