// Package responsewriter records what a handler wrote so middleware can log
// and count it afterwards.
package responsewriter

import "net/http"

// ResponseWriter remembers the status and body size of one response.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written int
	sent    bool
}

// Wrap returns w itself when it is already a *ResponseWriter, so stacked
// middleware share one recorder per request.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *ResponseWriter) WriteHeader(status int) {
	if w.sent {
		return
	}
	w.status = status
	w.sent = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.sent {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}

func (w *ResponseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// StatusCode is 200 until the handler sets something else.
func (w *ResponseWriter) StatusCode() int { return w.status }

func (w *ResponseWriter) BytesWritten() int { return w.written }

// CacheResult reports the page cache outcome ("HIT" or "MISS"), or "" when
// the route is not cached.
func (w *ResponseWriter) CacheResult() string {
	return w.Header().Get("X-Cache")
}

// Unwrap supports http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
