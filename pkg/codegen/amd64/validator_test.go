// Package amd64 - Tests for assembly validator
package amd64

import (
	"strings"
	"testing"
)

func TestValidatorValidCode(t *testing.T) {
	validAsm := `
.globl main
main:
	movl $42, %eax
	ret
.section .note.GNU-stack,"",@progbits
`

	validator := NewValidator()
	if err := validator.Validate(validAsm); err != nil {
		t.Errorf("Valid assembly failed validation: %v", err)
	}
}

func TestValidatorInvalid(t *testing.T) {
	tests := []struct {
		name string
		asm  string
		want string
	}{
		{
			name: "invalid register",
			asm:  ".globl f\nf:\n\tmovl $1, %bogus\n\tret\n",
			want: "invalid register",
		},
		{
			name: "immediate destination",
			asm:  ".globl f\nf:\n\tmovl %eax, $1\n\tret\n",
			want: "immediate value cannot be destination",
		},
		{
			name: "wide destination",
			asm:  ".globl f\nf:\n\tmovl $1, %rax\n\tret\n",
			want: "32-bit destination",
		},
		{
			name: "unknown mnemonic",
			asm:  ".globl f\nf:\n\tjmp f\n\tret\n",
			want: "malformed instruction",
		},
		{
			name: "missing label",
			asm:  ".globl f\ng:\n\tret\n",
			want: "global symbol f has no label",
		},
		{
			name: "missing ret",
			asm:  ".globl f\nf:\n\tmovl $1, %eax\n.section .note.GNU-stack,\"\",@progbits\n",
			want: "does not end in ret",
		},
		{
			name: "bad label",
			asm:  ".globl f\nf:\n\tret\nbad label:\n\tret\n",
			want: "invalid label format",
		},
		{
			name: "unknown directive",
			asm:  ".data\n.globl f\nf:\n\tret\n",
			want: "unknown directive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidator().Validate(tt.asm)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateGeneratedListings(t *testing.T) {
	for _, target := range []Target{Linux, Darwin} {
		t.Run(target.Name, func(t *testing.T) {
			asm := generate(t, lowerSource(t, "int main(void) { return 123; }"), target)
			if err := ValidateProgram(asm); err != nil {
				t.Errorf("generated assembly failed validation: %v\n%s", err, asm)
			}
		})
	}
}
