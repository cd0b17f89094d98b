package driver

import (
	"path/filepath"

	"github.com/GriffinCanCode/minic/pkg/diag"
)

// AssemblyPath replaces the input's extension with ".s": foo.c -> foo.s.
func AssemblyPath(input string) (string, error) {
	stem, err := stripExt(input)
	if err != nil {
		return "", err
	}
	return stem + ".s", nil
}

// ExecutablePath drops the input's extension: dir/foo.c -> dir/foo.
func ExecutablePath(input string) (string, error) {
	return stripExt(input)
}

// stripExt removes the extension of the last path element. Dots in
// directory names do not count, and the path is cleaned first so a
// trailing separator does not hide the last element.
func stripExt(input string) (string, error) {
	input = filepath.Clean(input)
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	switch {
	case ext == "":
		return "", diag.Errorf(diag.InvalidUsage, "input %q has no extension", input)
	case ext == base:
		return "", diag.Errorf(diag.InvalidUsage, "input %q has an empty name", input)
	}
	return input[:len(input)-len(ext)], nil
}
