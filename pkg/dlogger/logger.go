// Copyright © 2018 One Concern

// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelNone disables logging. Other levels are zap's: debug, info, warn, error.
const LogLevelNone = "none"

// NewLogger returns a console logger writing entries at or above logLevel to w.
//
// No level or LogLevelNone yield a no-op logger.
func NewLogger(w io.Writer, logLevel string) (*zap.Logger, error) {
	if logLevel == LogLevelNone || logLevel == "" {
		return zap.NewNop(), nil
	}
	lvl, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	sink := zapcore.Lock(zapcore.AddSync(w))

	return zap.New(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), sink, lvl),
		zap.ErrorOutput(sink),
	), nil
}
