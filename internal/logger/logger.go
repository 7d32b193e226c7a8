// Package logger holds the process-wide zap logger.
//
// Generated text owns stdout, so every log line goes to the writer passed to
// Initialize (stderr from the CLI).
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It is a no-op until Initialize is called.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Verbosity levels for the repeatable -v flag.
const (
	VerbosityUser  = 0 // warnings and errors only
	VerbosityInfo  = 1 // -v: + plan summary
	VerbosityDebug = 2 // -vv: + per-block emission
)

// VerbosityToLevel maps a -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Initialize replaces the global logger with a console logger writing to w.
func Initialize(verbosity int, w io.Writer) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		VerbosityToLevel(verbosity),
	)

	Logger = zap.New(core).Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
