// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package http

import "net/http"

// responseWriter wraps [http.ResponseWriter] so the logging middleware can
// read the status code and body size after the downstream handler returns.
// Nothing is buffered.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

// WriteHeader records the status and forwards it to the wrapped writer
// exactly once; repeat calls are dropped, per the [http.ResponseWriter]
// contract.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write accumulates the byte count and, like the stdlib writer, issues an
// implicit 200 when the handler never called WriteHeader.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
