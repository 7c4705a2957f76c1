// Package logger builds the application's zap logger. Components receive a
// *zap.SugaredLogger through their constructors; nothing logs through the
// standard library.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls verbosity.
type Level int

const (
	// LevelOff disables all output.
	LevelOff Level = iota
	// LevelNormal enables info and above.
	LevelNormal
	// LevelVerbose enables debug and above.
	LevelVerbose
)

// New creates a sugared logger at the given level writing to out.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *zap.SugaredLogger {
	if level == LevelOff {
		return zap.NewNop().Sugar()
	}
	if out == nil {
		out = os.Stderr
	}

	zapLevel := zapcore.InfoLevel
	if level == LevelVerbose {
		zapLevel = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(out),
		zapLevel,
	)
	return zap.New(core).Sugar()
}
