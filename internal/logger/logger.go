/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide leveled logger. It writes to
// stderr so that artifacts printed to stdout stay clean.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Format selects the handler used to render records.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	format           = FormatText
	level            = new(slog.LevelVar)
	logger *slog.Logger
)

func init() {
	rebuild()
}

func rebuild() {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}
	logger = slog.New(handler)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// SetFormat switches between text and JSON records.
func SetFormat(f Format) {
	mu.Lock()
	defer mu.Unlock()
	format = f
	rebuild()
}

// SetLevel sets the minimum level that is written.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func log(l slog.Level, msg string, args ...any) {
	mu.Lock()
	lg := logger
	mu.Unlock()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(msg, args...))
}

// Error logs an error message.
func Error(format string, args ...any) {
	log(slog.LevelError, format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	log(slog.LevelWarn, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	log(slog.LevelInfo, format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	log(slog.LevelDebug, format, args...)
}
