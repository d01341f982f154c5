// Copyright (c) Toit contributors. All rights reserved.
// Licensed under the MIT License.

// Package logutil configures the library's structured logging. All packages
// log through a shared log/slog logger writing to stderr; hosts embedding
// the library can reconfigure it with SetupLogger.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvDebug enables debug-level logging at startup when set to "true".
const EnvDebug = "DESKTOP_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
)

func init() {
	SetupLogger(strings.EqualFold(os.Getenv(EnvDebug), "true"), false)
}

// SetupLogger configures the global logger. When debug is true the level is
// lowered to debug; when structured is true logs are emitted as JSON instead
// of text. Safe for concurrent use.
func SetupLogger(debug, structured bool) {
	SetupLoggerWithWriter(os.Stderr, debug, structured)
}

// SetupLoggerWithWriter is SetupLogger with an explicit destination.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	globalLogger = slog.New(handler)
}

// Logger returns the global logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
