// Package amd64 implements x86-64 code generation.
//
// Design: Direct AT&T assembly text, one line per IR instruction.
// Platform differences live in Target rather than in build tags.
package amd64

import (
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/minic/pkg/diag"
	"github.com/GriffinCanCode/minic/pkg/ir"
	"github.com/GriffinCanCode/minic/pkg/logger"
)

// 32-bit register names, indexed by ir.Register
var registerNames = map[ir.Register]string{
	ir.EAX: "%eax",
}

// Generator generates x86-64 assembly
type Generator struct {
	w      io.Writer
	target Target
	err    error // First write error
}

func NewGenerator(w io.Writer, target Target) *Generator {
	return &Generator{w: w, target: target}
}

// Generate emits assembly for prog. On error the writer may hold a
// truncated listing.
func (g *Generator) Generate(prog *ir.Program) error {
	fn := prog.Function
	sym := g.target.Symbol(fn.Name)

	g.emitf(".globl %s\n", sym)
	g.emitf("%s:\n", sym)

	for _, inst := range fn.Instructions.Instructions() {
		if err := g.generateInstruction(inst); err != nil {
			logger.Debug("Failed to generate function", "target", g.target.Name, "name", fn.Name, "error", err)
			return err
		}
	}

	if g.target.StackNote {
		g.emitf(".section .note.GNU-stack,\"\",@progbits\n")
	}

	if g.err != nil {
		return diag.Wrap(diag.CouldNotCreateOutputFile, g.err, "writing assembly")
	}

	logger.LogCodeGen(g.target.Name, fn.Name, fn.Instructions.Len())
	return nil
}

// GenerateString emits prog into a string and validates the result.
func GenerateString(prog *ir.Program, target Target) (string, error) {
	var buf strings.Builder
	if err := NewGenerator(&buf, target).Generate(prog); err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	assembly := buf.String()
	if err := ValidateProgram(assembly); err != nil {
		return assembly, diag.Wrap(diag.UnsupportedInstruction, err, "validating assembly")
	}
	return assembly, nil
}

func (g *Generator) generateInstruction(inst ir.Instruction) error {
	switch i := inst.(type) {
	case ir.Mov:
		return g.generateMov(i)
	case ir.Ret:
		g.emitf("\tret\n")
		return nil
	default:
		return diag.Errorf(diag.UnsupportedInstruction, "unsupported instruction %T", inst)
	}
}

func (g *Generator) generateMov(mov ir.Mov) error {
	src, srcOK := mov.Src.(ir.Imm)
	dst, dstOK := mov.Dst.(ir.Reg)
	if !srcOK || !dstOK {
		return diag.Errorf(diag.UnsupportedInstruction, "unsupported mov instruction: %s", ir.FormatInstruction(mov))
	}

	reg, ok := registerNames[dst.ID]
	if !ok {
		return diag.Errorf(diag.UnsupportedInstruction, "no amd64 register for %s", dst.ID)
	}

	g.emitf("\tmovl $%d, %s\n", src.Value, reg)
	return nil
}

func (g *Generator) emitf(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}
