package contextx

import (
	"context"
	"fmt"
)

// TraceID correlates one inbound request with its outbound upstream calls
// and is echoed back in the X-Trace-Id header.
type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}

// TraceIDOrEmpty is used where a missing trace id only degrades log output.
func TraceIDOrEmpty(ctx context.Context) TraceID {
	traceID, _ := TraceIDFromContext(ctx) //nolint:errcheck

	return traceID
}
