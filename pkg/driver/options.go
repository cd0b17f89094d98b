// Package driver wires the compiler stages into the staged command line.
package driver

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/GriffinCanCode/minic/pkg/codegen/amd64"
	"github.com/GriffinCanCode/minic/pkg/diag"
	"github.com/GriffinCanCode/minic/pkg/linker"
)

// Stage is the last pipeline stage a run performs.
type Stage int

const (
	StageLex Stage = iota
	StageParse
	StageCodegen
	StageAssembly
	StageExecutable
)

var stageNames = [...]string{
	StageLex:        "lexical analysis",
	StageParse:      "syntactic analysis",
	StageCodegen:    "code generation",
	StageAssembly:   "assembly emission",
	StageExecutable: "linking",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Options is everything a run needs.
type Options struct {
	Stage      Stage
	Input      string
	Target     amd64.Target
	CC         string
	Verbose    bool
	LogLevel   string // debug, info, warn or error; empty keeps the default
	LogFile    string // Appends logs here instead of stderr
	ArenaLimit int // Slots, 0 for unbounded
}

// ParseArgs parses the arguments after the program name. Usage problems are
// reported on stderr along with the usage text.
func ParseArgs(args []string, stderr io.Writer) (Options, error) {
	opts := Options{
		Stage:  StageExecutable,
		Target: amd64.HostTarget(),
		CC:     linker.CCFromEnv(),
	}

	fs := flag.NewFlagSet("minic", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	lex := fs.Bool("lex", false, "stop after lexical analysis")
	parse := fs.Bool("parse", false, "stop after syntactic analysis")
	codegen := fs.Bool("codegen", false, "stop after IR generation")
	asm := fs.Bool("S", false, "stop after writing <input>.s")
	target := fs.String("target", opts.Target.Name, "target system: linux or darwin")
	fs.StringVar(&opts.CC, "cc", opts.CC, "C compiler used to assemble and link")
	fs.BoolVar(&opts.Verbose, "v", false, "verbose (debug) logging with source locations")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&opts.LogFile, "log-file", "", "append logs to this file instead of stderr")
	fs.IntVar(&opts.ArenaLimit, "arena-limit", 0, "maximum arena slots, 0 for no limit")

	usageErr := func(code diag.Code, format string, a ...any) (Options, error) {
		err := diag.Errorf(code, format, a...)
		fmt.Fprintf(stderr, "minic: %v\n", err)
		Usage(stderr, fs)
		return Options{}, err
	}

	if len(args) == 0 {
		return usageErr(diag.InvalidUsage, "no input file")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			Usage(stderr, fs)
			return Options{}, diag.Errorf(diag.InvalidUsage, "help requested")
		}
		return usageErr(diag.InvalidFlag, "%v", err)
	}

	stages := 0
	for _, s := range []struct {
		set   bool
		stage Stage
	}{
		{*lex, StageLex}, {*parse, StageParse}, {*codegen, StageCodegen}, {*asm, StageAssembly},
	} {
		if s.set {
			opts.Stage = s.stage
			stages++
		}
	}
	if stages > 1 {
		return usageErr(diag.InvalidFlag, "only one of --lex, --parse, --codegen, -S may be given")
	}

	switch fs.NArg() {
	case 0:
		return usageErr(diag.InvalidUsage, "no input file")
	case 1:
		opts.Input = fs.Arg(0)
	default:
		return usageErr(diag.InvalidUsage, "expected one input file, got %d", fs.NArg())
	}

	// The host default may be a system ParseTarget does not name.
	if *target != opts.Target.Name {
		t, err := amd64.ParseTarget(*target)
		if err != nil {
			return usageErr(diag.InvalidFlag, "%v", err)
		}
		opts.Target = t
	}

	return opts, nil
}

// Usage prints the command line help.
func Usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, `Usage: minic [flags] [--lex | --parse | --codegen | -S] <input-file>

Stages:
    --lex        Perform lexical analysis
    --parse      Perform lexical and syntactic analysis
    --codegen    Perform lexical, syntactic and code generation analysis
    -S           Also emit assembly to <input>.s
    (none)       Also assemble and link to <input>

Flags:`)
	fs.SetOutput(w)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "lex", "parse", "codegen", "S":
			return
		}
		fmt.Fprintf(w, "    -%-12s %s\n", f.Name, f.Usage)
	})
	fs.SetOutput(io.Discard)
}
