// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

// Package logger wraps zerolog.Logger with the constructors and
// context-scoped helpers the rest of the application relies on.
//
// Logger embeds zerolog.Logger, so the whole zerolog API (Debug, Info,
// Err, Fatal, ...) is available on *Logger directly. Handlers and
// repositories never hold a logger of their own for a request; they pull
// the request-scoped one out of the context with FromContext or
// FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helper methods can be added without
// shadowing the upstream API.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the process-wide JSON logger writing to stdout.
//
// role labels the emitting component ("jobify-server", "notifier") so logs
// from different binaries can be told apart. Every entry carries a
// timestamp and a "func" field holding the fully qualified caller name,
// which reads better in aggregated logs than the default file:line form.
// The global level is Debug.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// extra fields (trace id, user id) without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger stored in the request
// context by the trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. zerolog falls back to
// its global logger when none was attached, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
