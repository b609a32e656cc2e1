package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"numroute/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID reuses a caller-supplied X-Trace-Id so a messaging client can
// correlate its own logs with ours.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if traceID == "" {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
