// Package linker turns emitted assembly into an executable.
//
// Design: Delegate to the system C compiler driver, which assembles and
// links for the host. Runs as a blocking child process.
package linker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/GriffinCanCode/minic/pkg/diag"
	"github.com/GriffinCanCode/minic/pkg/logger"
)

// DefaultCC is used when neither a flag nor $CC names a compiler.
const DefaultCC = "cc"

// Linker builds one executable from one assembly file
type Linker struct {
	cc     string
	output string
	input  string
}

func New(cc, output, input string) *Linker {
	if cc == "" {
		cc = DefaultCC
	}
	return &Linker{
		cc:     cc,
		output: output,
		input:  input,
	}
}

// CCFromEnv returns $CC, or DefaultCC when unset.
func CCFromEnv() string {
	if cc := strings.TrimSpace(os.Getenv("CC")); cc != "" {
		return cc
	}
	return DefaultCC
}

// Args returns the command line Link runs.
func (l *Linker) Args() []string {
	return []string{l.cc, "-o", l.output, l.input}
}

// Link runs `cc -o <output> <input>` and waits for it.
func (l *Linker) Link(ctx context.Context) error {
	args := l.Args()
	logger.LogLinkingStart(l.cc, l.input)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Start(); err != nil {
		return diag.Wrap(diag.ToolchainLaunch, err, "starting %s", l.cc)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(out.String())
			if msg == "" {
				return diag.Errorf(diag.ToolchainFailed, "%s exited with status %d", l.cc, exitErr.ExitCode())
			}
			return diag.Errorf(diag.ToolchainFailed, "%s exited with status %d:\n%s", l.cc, exitErr.ExitCode(), msg)
		}
		return diag.Wrap(diag.ToolchainFailed, err, "waiting for %s", l.cc)
	}

	logger.LogLinkingComplete(l.output)
	return nil
}
