// Package logger provides standardized logging utilities for the Mython interpreter
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
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

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:     LevelInfo,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	var handler slog.Handler

	output := cfg.Output
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
func InitDev() {
	_ = Init(Config{
		Level:     LevelDebug,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: true,
	})
}

// InitProd initializes logging for production (info level, json format)
func InitProd(logDir string) error {
	logPath := filepath.Join(logDir, "mython.log")
	return Init(Config{
		Level:     LevelInfo,
		Format:    "json",
		LogFile:   logPath,
		AddSource: false,
	})
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

// With returns a new logger with the given attributes
func With(args ...any) *slog.Logger {
	if defaultLogger != nil {
		return defaultLogger.With(args...)
	}
	return slog.Default().With(args...)
}

// WithGroup returns a new logger with the given group
func WithGroup(name string) *slog.Logger {
	if defaultLogger != nil {
		return defaultLogger.WithGroup(name)
	}
	return slog.Default().WithGroup(name)
}

// Interpreter-specific logging helpers

// LogPhase logs the start of an interpretation phase.
func LogPhase(phase string) {
	Info("starting phase", "phase", phase)
}

// LogPhaseComplete logs the completion of an interpretation phase.
func LogPhaseComplete(phase string) {
	Info("completed phase", "phase", phase)
}

// LogLexing logs lexing activity.
func LogLexing(file string, tokenCount int) {
	Debug("lexing complete", "file", file, "tokens", tokenCount)
}

// LogParsing logs parsing activity.
func LogParsing(file string, nodeCount int) {
	Debug("parsing complete", "file", file, "statements", nodeCount)
}

// LogEvalError logs a runtime error raised while evaluating the AST.
func LogEvalError(file string, msg string) {
	Error("runtime error", "file", file, "message", msg)
}

// LogLexError logs a lexer error.
func LogLexError(file string, line, col int, msg string) {
	Error("lexer error", "file", file, "line", line, "col", col, "message", msg)
}

// LogParseError logs a parser error.
func LogParseError(file string, line, col int, msg string) {
	Error("parser error", "file", file, "line", line, "col", col, "message", msg)
}

// LogRunStart logs interpreter startup.
func LogRunStart(args []string) {
	Info("mython starting", "args", args)
}

// LogRunComplete logs interpreter completion.
func LogRunComplete(success bool, duration string) {
	if success {
		Info("run complete", "duration", duration)
	} else {
		Error("run failed", "duration", duration)
	}
}

// LogFileProcessing logs file processing start.
func LogFileProcessing(file string) {
	Info("processing file", "file", file)
}
