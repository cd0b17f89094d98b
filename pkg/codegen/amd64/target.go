// Package amd64 - Target platform configuration
package amd64

import (
	"fmt"
	"runtime"
)

// Target captures the platform-specific parts of the assembly text. The
// instruction encoding itself is the same everywhere.
type Target struct {
	Name string

	// LabelPrefix is prepended to global symbols. Mach-O wants "_".
	LabelPrefix string

	// StackNote emits the GNU-stack note section so the linker does not
	// mark the stack executable.
	StackNote bool
}

var (
	Linux  = Target{Name: "linux", StackNote: true}
	Darwin = Target{Name: "darwin", LabelPrefix: "_"}
)

// TargetFor returns the target for a GOOS value. Unknown systems get plain
// ELF conventions without the stack note.
func TargetFor(goos string) Target {
	switch goos {
	case "linux":
		return Linux
	case "darwin":
		return Darwin
	default:
		return Target{Name: goos}
	}
}

// ParseTarget is TargetFor restricted to the systems we know the
// conventions of.
func ParseTarget(name string) (Target, error) {
	switch name {
	case "linux", "darwin":
		return TargetFor(name), nil
	}
	return Target{}, fmt.Errorf("unknown target %q (want linux or darwin)", name)
}

// HostTarget returns the target for the running system.
func HostTarget() Target {
	return TargetFor(runtime.GOOS)
}

// Symbol returns the assembly-level name of a function.
func (t Target) Symbol(name string) string {
	return t.LabelPrefix + name
}
