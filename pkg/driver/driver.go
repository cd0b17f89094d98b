package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GriffinCanCode/minic/pkg/arena"
	"github.com/GriffinCanCode/minic/pkg/codegen/amd64"
	"github.com/GriffinCanCode/minic/pkg/diag"
	"github.com/GriffinCanCode/minic/pkg/frontend"
	"github.com/GriffinCanCode/minic/pkg/ir"
	"github.com/GriffinCanCode/minic/pkg/linker"
	"github.com/GriffinCanCode/minic/pkg/logger"
)

// Main runs the compiler with the arguments after the program name and
// returns the process exit status.
func Main(ctx context.Context, args []string, stderr io.Writer) int {
	opts, err := ParseArgs(args, stderr)
	if err != nil {
		return int(diag.CodeOf(err))
	}

	if err := initLogging(opts, stderr); err != nil {
		fmt.Fprintf(stderr, "minic: %v\n", err)
		return int(diag.CodeOf(err))
	}
	logger.LogCompilerStart(args)

	return int(diag.CodeOf(Run(ctx, opts, stderr)))
}

func initLogging(opts Options, stderr io.Writer) error {
	if opts.Verbose && opts.LogFile == "" {
		logger.InitDev(stderr)
		return nil
	}

	cfg := logger.DefaultConfig()
	cfg.Output = stderr
	cfg.LogFile = opts.LogFile
	switch {
	case opts.Verbose:
		cfg.Level = logger.LevelDebug
	case opts.LogLevel != "":
		cfg.Level = logger.ParseLevel(opts.LogLevel)
	}
	if err := logger.Init(cfg); err != nil {
		return diag.Wrap(diag.CouldNotCreateOutputFile, err, "opening log file")
	}
	return nil
}

// Run compiles opts.Input up to opts.Stage. Each stage starts again from
// the source buffer, so a lex error under --parse is a syntactic analysis
// failure. All compiler data lives in one arena, released as soon as the
// last in-memory stage is done. The first failure is reported on stderr and
// returned unchanged.
func Run(ctx context.Context, opts Options, stderr io.Writer) (err error) {
	start := time.Now()
	phase := "reading input"

	a := arena.New(opts.ArenaLimit)
	release := func() {
		if !a.Released() {
			logger.LogArenaRelease(phase, a.Used())
			a.Release()
		}
	}

	defer func() {
		release()
		if err != nil {
			logger.LogError(phase, opts.Input, err)
			fmt.Fprintf(stderr, "minic: %s failed: %v\n", phase, err)
		}
		logger.LogCompilerComplete(err == nil, time.Since(start).String())
	}()

	src, err := LoadSource(opts.Input)
	if err != nil {
		return err
	}

	switch opts.Stage {
	case StageLex:
		phase = StageLex.String()
		logger.LogPhase(phase)
		count, err := frontend.LexAll(src)
		if err != nil {
			return err
		}
		logger.LogLexing(opts.Input, count)
		return nil

	case StageParse:
		phase = StageParse.String()
		logger.LogPhase(phase)
		prog, err := frontend.Parse(a, src)
		if err != nil {
			return err
		}
		logger.LogParsing(opts.Input, prog.Func().Name, a.Used())
		return nil
	}

	// Lowering runs the parser itself.
	phase = StageCodegen.String()
	logger.LogPhase(phase)
	irProg, err := ir.Lower(a, src)
	if err != nil {
		return err
	}
	logger.Debug("IR", "listing", ir.Format(irProg))
	if opts.Stage == StageCodegen {
		return nil
	}

	phase = StageAssembly.String()
	logger.LogPhase(phase)
	asmPath, err := AssemblyPath(opts.Input)
	if err != nil {
		return err
	}
	if err := writeAssembly(asmPath, irProg, opts.Target); err != nil {
		return err
	}
	release()
	if opts.Stage == StageAssembly {
		return nil
	}

	phase = StageExecutable.String()
	logger.LogPhase(phase)
	exePath, err := ExecutablePath(opts.Input)
	if err != nil {
		return err
	}
	if err := linker.New(opts.CC, exePath, asmPath).Link(ctx); err != nil {
		return err
	}
	logger.LogPhaseComplete(phase)
	return nil
}

// writeAssembly emits and validates prog, then writes it to path. Nothing
// is created when emission fails.
func writeAssembly(path string, prog *ir.Program, target amd64.Target) error {
	asm, err := amd64.GenerateString(prog, target)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return diag.Wrap(diag.CouldNotCreateOutputFile, err, "creating %s", path)
	}
	if _, err := io.WriteString(f, asm); err != nil {
		f.Close()
		return diag.Wrap(diag.CouldNotCreateOutputFile, err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		return diag.Wrap(diag.CouldNotCreateOutputFile, err, "closing %s", path)
	}

	logger.LogAssemblyWritten(path)
	return nil
}
