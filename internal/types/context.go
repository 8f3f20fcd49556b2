package types

import (
	"context"
)

type ContextKey string

const (
	CtxRequestID  ContextKey = "ctx_request_id"
	CtxLandlordID ContextKey = "ctx_landlord_id"
	CtxUserID     ContextKey = "ctx_user_id"
)

// SetRequestID returns a context carrying the request id.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, CtxRequestID, requestID)
}

// SetLandlordID returns a context carrying the landlord scope. Every query
// a report makes is restricted to this scope; it is resolved once at the
// request boundary, never hard-coded per component.
func SetLandlordID(ctx context.Context, landlordID string) context.Context {
	return context.WithValue(ctx, CtxLandlordID, landlordID)
}

// SetUserID returns a context carrying the acting user id.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

// GetRequestID retrieves the request id from the context.
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxRequestID).(string); ok {
		return v
	}
	return ""
}

// GetLandlordID retrieves the landlord scope from the context.
func GetLandlordID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxLandlordID).(string); ok {
		return v
	}
	return ""
}

// GetUserID retrieves the acting user id from the context.
func GetUserID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxUserID).(string); ok {
		return v
	}
	return ""
}
