// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// This packages handles logging in the bigo harness
package logging

import (
	"time"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _zapLogger *zap.SugaredLogger

var _debugMode bool

// Initialize builds and returns the logger for the harness. With the datetime
// parameter, you can specify if you want the datetime to be prefixed at each
// log entry. With the debugMode parameter you can choose the logging level
// (INFO or DEBUG). With the colors parameter you can enable or disable colors
// for logging levels in output.
func Initialize(datetime bool, debugMode bool, colors bool) (*zap.SugaredLogger, error) {
	zapConfig := zap.NewProductionConfig()

	// Use human-readable messages instead of JSON
	zapConfig.Encoding = "console"

	// Disable stack trace output if not in debug mode
	zapConfig.DisableStacktrace = !debugMode

	// Timings are printed to stdout, keep the log on stderr
	zapConfig.OutputPaths = []string{"stderr"}

	if datetime {
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// Empty time encoder function (to disable date/time logging)
		zapConfig.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {}
	}

	if debugMode {
		zapConfig.Level.SetLevel(zapcore.DebugLevel)
	} else {
		zapConfig.Level.SetLevel(zapcore.InfoLevel)
	}

	if colors {
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	unsugared, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "Error while constructing a logger")
	}

	// The logger will always be a sugared one
	zapLogger := unsugared.Sugar()

	// If everything successful, set the package's static vars
	_zapLogger = zapLogger
	_debugMode = debugMode

	return zapLogger, nil
}

// Logger returns the logger for the harness. If it has not been initialized,
// it returns a no-op logger, so that packages can be used (and tested) without
// calling Initialize first
func Logger() *zap.SugaredLogger {
	if _zapLogger == nil {
		return zap.NewNop().Sugar()
	}
	return _zapLogger
}

// GetDebugMode returns true if the logger level is set to DEBUG, false
// otherwise
func GetDebugMode() bool {
	return _debugMode
}
