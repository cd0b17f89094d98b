// Package diag defines the compiler's error codes and positioned errors.
//
// Design: every failure carries one fixed code that doubles as the process
// exit status. Callers wrap, never translate, a lower layer's code.
package diag

import (
	"errors"
	"fmt"
)

// Code is a compiler error code. Values are stable and used as exit status.
type Code int

const (
	OK Code = iota
	NotImplemented
	InvalidUsage
	InvalidFlag
	MemoryAllocation
	FileNotFound
	FailedToReadFile
	InvalidToken
	InvalidSyntax
	IdentifierTooLong
	UnsupportedInstruction
	CouldNotCreateOutputFile
	ToolchainLaunch
	ToolchainFailed
)

var codeNames = [...]string{
	OK:                       "ok",
	NotImplemented:           "not implemented",
	InvalidUsage:             "invalid usage",
	InvalidFlag:              "invalid flag",
	MemoryAllocation:         "memory allocation failed",
	FileNotFound:             "file not found",
	FailedToReadFile:         "failed to read file",
	InvalidToken:             "invalid token",
	InvalidSyntax:            "syntax error",
	IdentifierTooLong:        "identifier too long",
	UnsupportedInstruction:   "unsupported instruction",
	CouldNotCreateOutputFile: "could not create output file",
	ToolchainLaunch:          "could not launch toolchain",
	ToolchainFailed:          "toolchain failed",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Pos is a 1-based source position. The zero Pos means "no position".
type Pos struct {
	Line int
	Col  int
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Error is a coded compiler error, optionally tied to a source position.
type Error struct {
	Code Code
	Pos  Pos
	Msg  string
	Err  error // Underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Code.String()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf returns an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// At returns an *Error at pos wrapping cause.
func At(code Code, pos Pos, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Pos: pos, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Wrap attaches code to cause. A nil cause yields nil.
func Wrap(code Code, cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// CodeOf reports the code carried by err. Errors without a code are
// NotImplemented, since every failure the compiler knows about is coded.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return NotImplemented
}
