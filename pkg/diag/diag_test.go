package diag

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, OK},
		{"direct", Errorf(InvalidSyntax, "bad"), InvalidSyntax},
		{"wrapped", fmt.Errorf("parse: %w", Errorf(IdentifierTooLong, "long")), IdentifierTooLong},
		{"foreign", io.EOF, NotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	err := At(InvalidToken, Pos{Line: 3, Col: 7}, cause, "unknown token '%c'", '@')

	want := "3:7: unknown token '@': boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	bare := &Error{Code: FileNotFound}
	if bare.Error() != "file not found" {
		t.Errorf("Error() = %q, want code name", bare.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(FailedToReadFile, nil, "read"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestCodeValuesAreStable(t *testing.T) {
	// Exit statuses seen by scripts; renumbering them breaks callers.
	want := map[Code]int{
		InvalidUsage:             2,
		InvalidFlag:              3,
		MemoryAllocation:         4,
		FileNotFound:             5,
		InvalidToken:             7,
		InvalidSyntax:            8,
		CouldNotCreateOutputFile: 11,
	}
	for c, v := range want {
		if int(c) != v {
			t.Errorf("%v = %d, want %d", c, int(c), v)
		}
	}
}
