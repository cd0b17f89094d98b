// Package logger provides standardized logging utilities for the minic compiler
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Global logger instance
var defaultLogger *slog.Logger

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Config holds logger configuration
type Config struct {
	Level     LogLevel
	Format    string // "text" or "json"
	Output    io.Writer
	AddSource bool
	LogFile   string
}

// DefaultConfig returns the default logger configuration. Compiler runs are
// quiet unless something goes wrong.
func DefaultConfig() Config {
	return Config{
		Level:  LevelWarn,
		Format: "text",
		Output: os.Stderr,
	}
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	var handler slog.Handler

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		output = file
	}

	opts := &slog.HandlerOptions{
		Level:     toSlogLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)

	return nil
}

// InitDev initializes logging for development (debug level, text format)
func InitDev(output io.Writer) {
	_ = Init(Config{
		Level:     LevelDebug,
		Format:    "text",
		Output:    output,
		AddSource: true,
	})
}

// ParseLevel maps a level name to a LogLevel. Unknown names yield LevelInfo.
func ParseLevel(name string) LogLevel {
	switch name {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...any) {
	if defaultLogger != nil {
		defaultLogger.Error(msg, args...)
	}
}

// Compiler-specific logging helpers

// LogPhase logs the start of a compilation phase
func LogPhase(phase string) {
	Debug("Starting compilation phase", "phase", phase)
}

// LogPhaseComplete logs the completion of a compilation phase
func LogPhaseComplete(phase string) {
	Debug("Completed compilation phase", "phase", phase)
}

// LogLexing logs lexing activity
func LogLexing(file string, tokenCount int) {
	Debug("Lexing complete", "file", file, "tokens", tokenCount)
}

// LogParsing logs parsing activity
func LogParsing(file string, funcName string, nodeCount int) {
	Debug("Parsing complete", "file", file, "function", funcName, "nodes", nodeCount)
}

// LogLowering logs AST to IR lowering
func LogLowering(funcName string, instructionCount int) {
	Debug("IR lowering complete", "function", funcName, "instructions", instructionCount)
}

// LogCodeGen logs code generation
func LogCodeGen(target string, funcName string, instructionCount int) {
	Debug("Code generation complete",
		"target", target,
		"function", funcName,
		"instructions", instructionCount)
}

// LogError logs a compilation error. The driver prints the diagnostic
// itself, so this only shows up in verbose runs.
func LogError(phase string, file string, err error) {
	Debug("Compilation error",
		"phase", phase,
		"file", file,
		"error", err)
}

// LogCompilerStart logs compiler startup
func LogCompilerStart(args []string) {
	Info("minic starting", "args", args)
}

// LogCompilerComplete logs compiler completion
func LogCompilerComplete(success bool, duration string) {
	if success {
		Info("Compilation successful", "duration", duration)
	} else {
		Info("Compilation failed", "duration", duration)
	}
}

// LogFileProcessing logs file processing start
func LogFileProcessing(file string, bytes int) {
	Info("Processing file", "file", file, "bytes", bytes)
}

// LogArenaRelease logs how much of the arena a stage used
func LogArenaRelease(stage string, slots int) {
	Debug("Arena released", "stage", stage, "slots", slots)
}

// LogAssemblyWritten logs a finished assembly file
func LogAssemblyWritten(path string) {
	Info("Assembly written", "output", path)
}

// LogLinkingStart logs linker start
func LogLinkingStart(cc string, input string) {
	Info("Starting linking", "cc", cc, "input", input)
}

// LogLinkingComplete logs linker completion
func LogLinkingComplete(outputFile string) {
	Info("Linking complete", "output", outputFile)
}
