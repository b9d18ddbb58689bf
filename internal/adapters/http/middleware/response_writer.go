// Package middleware holds the inbound HTTP middleware. cmd/server installs
// it in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Compression, Timeout
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced so
// recovery, tracing and access logging can report them after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status    int
	bytes     int64
	committed bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records code; repeat calls are dropped like net/http does.
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.committed {
		return
	}
	rec.status = code
	rec.committed = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.committed = true
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and Hijack underneath.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
