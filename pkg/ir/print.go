package ir

import (
	"fmt"
	"strings"
)

// Format renders prog as indented text, one instruction per line:
//
//	FUNC main
//	  MOV $2 -> %eax
//	  RET
func Format(prog *Program) string {
	var sb strings.Builder
	fn := prog.Function
	fmt.Fprintf(&sb, "FUNC %s\n", fn.Name)
	for _, inst := range fn.Instructions.Instructions() {
		sb.WriteString("  ")
		sb.WriteString(FormatInstruction(inst))
		sb.WriteString("\n")
	}
	return sb.String()
}

func FormatInstruction(inst Instruction) string {
	switch i := inst.(type) {
	case Mov:
		return fmt.Sprintf("MOV %s -> %s", formatOperand(i.Src), formatOperand(i.Dst))
	case Ret:
		return "RET"
	default:
		return fmt.Sprintf("unknown instruction %T", inst)
	}
}

func formatOperand(op Operand) string {
	switch o := op.(type) {
	case Imm:
		return fmt.Sprintf("$%d", o.Value)
	case Reg:
		return "%" + o.ID.String()
	default:
		return fmt.Sprintf("unknown operand %T", op)
	}
}
