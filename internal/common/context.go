package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyEmailID   contextKey = "email_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithEmailID tags the context with the mailbox message currently processed
func WithEmailID(ctx context.Context, emailID string) context.Context {
	return context.WithValue(ctx, ContextKeyEmailID, emailID)
}

// EmailIDFromContext extracts the mailbox message ID from context
func EmailIDFromContext(ctx context.Context) string {
	if emailID, ok := ctx.Value(ContextKeyEmailID).(string); ok {
		return emailID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
