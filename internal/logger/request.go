package logger

import (
	"context"

	"go.uber.org/zap"
)

type requestKey struct{}

// RequestInfo identifies the inbound request a log line belongs to
type RequestInfo struct {
	RequestID string
	Method    string
	Path      string
}

// WithRequest returns a context whose loggers are tagged with the request info
func WithRequest(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestKey{}, info)
}

// RequestFromContext returns the request info stored in the context, if any
func RequestFromContext(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestKey{}).(RequestInfo)
	return info, ok
}

func requestFields(ctx context.Context) []zap.Field {
	info, ok := RequestFromContext(ctx)
	if !ok {
		return nil
	}

	fields := []zap.Field{zap.String("request_id", info.RequestID)}
	if info.Method != "" {
		fields = append(fields, zap.String("method", info.Method))
	}
	if info.Path != "" {
		fields = append(fields, zap.String("path", info.Path))
	}
	return fields
}
