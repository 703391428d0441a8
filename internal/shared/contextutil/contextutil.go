package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// private key type so values never collide with other packages
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	teacherIDKey contextKey = "teacher_id"
	loggerKey    contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithTeacherID(ctx context.Context, tid string) context.Context {
	return context.WithValue(ctx, teacherIDKey, tid)
}

func GetTeacherID(ctx context.Context) string {
	if tid, ok := ctx.Value(teacherIDKey).(string); ok {
		return tid
	}
	return ""
}

// WithLogger stores a request scoped logger, usually already decorated with
// request_id and teacher_id.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the logger stored in ctx, then defaultLogger, then a no-op
// logger. It never returns nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

type Metadata struct {
	RequestID string
	TeacherID string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		TeacherID: GetTeacherID(ctx),
	}
}
