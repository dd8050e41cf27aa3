package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"
)

// withTraceID tags the request logger with a trace id. The id is taken from
// X-Trace-ID, then from the client's X-Request-ID, and generated otherwise.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = r.Header.Get(requestIDHeader)
		}
		if traceID == "" {
			traceID = h.ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
