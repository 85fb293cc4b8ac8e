package ctxutil

import "context"

type requestIDsKey struct{}

// RequestIDs correlate one HTTP request across logs, traces and response headers.
type RequestIDs struct {
	TraceID   string
	RequestID string
}

// LogFields renders the non-empty ids as logger key/value pairs.
func (ids RequestIDs) LogFields() []interface{} {
	var kv []interface{}
	if ids.TraceID != "" {
		kv = append(kv, "trace_id", ids.TraceID)
	}
	if ids.RequestID != "" {
		kv = append(kv, "request_id", ids.RequestID)
	}
	return kv
}

func WithRequestIDs(ctx context.Context, ids RequestIDs) context.Context {
	return context.WithValue(ctx, requestIDsKey{}, ids)
}

// RequestIDsFrom returns the ids stamped on ctx; ok is false outside a request.
func RequestIDsFrom(ctx context.Context) (ids RequestIDs, ok bool) {
	ids, ok = ctx.Value(requestIDsKey{}).(RequestIDs)
	return ids, ok
}
