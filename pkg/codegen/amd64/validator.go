// Package amd64 - Assembly validation and correctness verification
package amd64

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/GriffinCanCode/minic/pkg/logger"
)

// ValidationError represents an assembly validation error
type ValidationError struct {
	Line    int
	Message string
	Code    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %s\n  %s", e.Line, e.Message, e.Code)
}

// Validator checks generated assembly against the instruction forms this
// backend is allowed to produce.
type Validator struct {
	errors []ValidationError
	warns  []ValidationError
}

// NewValidator creates a new assembly validator
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
		warns:  make([]ValidationError, 0),
	}
}

var (
	regPattern   = regexp.MustCompile(`%[a-z0-9]+`)
	labelPattern = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.$]*:$`)

	validRegs = map[string]bool{
		"%eax": true, "%ebx": true, "%ecx": true, "%edx": true,
		"%esi": true, "%edi": true, "%ebp": true, "%esp": true,
		"%rax": true, "%rsp": true, "%rbp": true,
	}

	validInsts = []string{"movl", "movq", "ret", "pushq", "popq"}

	validDirectives = []string{".globl", ".section", ".text"}
)

// Validate performs validation on assembly code
func (v *Validator) Validate(assembly string) error {
	lines := strings.Split(assembly, "\n")

	v.validateSyntax(lines)
	v.validateRegisters(lines)
	v.validateInstructionValidity(lines)
	v.validateSymbols(lines)
	v.validateReturns(lines)

	if len(v.errors) > 0 {
		return v.formatErrors()
	}

	if len(v.warns) > 0 {
		v.logWarnings()
	}

	return nil
}

// validateSyntax checks that every line is a label, directive or known
// instruction
func (v *Validator) validateSyntax(lines []string) {
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasSuffix(line, ":"):
			if !labelPattern.MatchString(line) {
				v.addError(i+1, "invalid label format", line)
			}
		case strings.HasPrefix(line, "."):
			if !hasAnyPrefix(line, validDirectives) {
				v.addError(i+1, "unknown directive", line)
			}
		case strings.HasPrefix(raw, "\t"):
			if !isValidInstruction(line) {
				v.addError(i+1, "malformed instruction", line)
			}
		default:
			v.addWarn(i+1, "instruction is not indented", line)
		}
	}
}

// validateRegisters checks register names
func (v *Validator) validateRegisters(lines []string) {
	for i, line := range lines {
		for _, reg := range regPattern.FindAllString(line, -1) {
			if !validRegs[reg] {
				v.addError(i+1, fmt.Sprintf("invalid register: %s", reg), line)
			}
		}
	}
}

// validateInstructionValidity checks for invalid operand combinations
func (v *Validator) validateInstructionValidity(lines []string) {
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "mov") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			v.addError(i+1, "mov needs exactly two operands", line)
			continue
		}

		dest := strings.TrimSpace(parts[1])
		if strings.HasPrefix(dest, "$") {
			v.addError(i+1, "immediate value cannot be destination", line)
		}
		if strings.HasPrefix(line, "movl") && strings.HasPrefix(dest, "%r") {
			v.addError(i+1, "movl needs a 32-bit destination", line)
		}
	}
}

// validateSymbols checks that every exported symbol is defined
func (v *Validator) validateSymbols(lines []string) {
	globals := make(map[string]int)
	labels := make(map[string]bool)

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ".globl") {
			fields := strings.Fields(line)
			if len(fields) != 2 {
				v.addError(i+1, ".globl needs one symbol", line)
				continue
			}
			globals[fields[1]] = i + 1
		}
		if strings.HasSuffix(line, ":") {
			labels[strings.TrimSuffix(line, ":")] = true
		}
	}

	for sym, line := range globals {
		if !labels[sym] {
			v.addError(line, fmt.Sprintf("global symbol %s has no label", sym), ".globl "+sym)
		}
	}
}

// validateReturns checks that each function body ends in ret
func (v *Validator) validateReturns(lines []string) {
	label := ""
	labelLine := 0
	last := ""

	check := func() {
		if label != "" && last != "ret" {
			v.addError(labelLine, fmt.Sprintf("function %s does not end in ret", label), label+":")
		}
	}

	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case strings.HasSuffix(line, ":"):
			check()
			label = strings.TrimSuffix(line, ":")
			labelLine = i + 1
			last = ""
		case strings.HasPrefix(line, ".section"):
			check()
			label = ""
		case strings.HasPrefix(line, "."):
		default:
			last = strings.Fields(line)[0]
		}
	}
	check()
}

// Helper functions

func (v *Validator) addError(line int, msg, code string) {
	v.errors = append(v.errors, ValidationError{Line: line, Message: msg, Code: code})
}

func (v *Validator) addWarn(line int, msg, code string) {
	v.warns = append(v.warns, ValidationError{Line: line, Message: msg, Code: code})
}

func (v *Validator) formatErrors() error {
	var sb strings.Builder
	sb.WriteString("Assembly validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString("  " + err.Error() + "\n")
	}
	return fmt.Errorf("%s", sb.String())
}

func (v *Validator) logWarnings() {
	for _, warn := range v.warns {
		logger.Warn("Assembly validation warning", "line", warn.Line, "msg", warn.Message)
	}
}

func isValidInstruction(line string) bool {
	mnemonic := strings.Fields(line)[0]
	for _, inst := range validInsts {
		if mnemonic == inst {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ValidateProgram validates an entire generated program
func ValidateProgram(assembly string) error {
	return NewValidator().Validate(assembly)
}
