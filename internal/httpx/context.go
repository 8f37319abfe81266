package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	principalKey    contextKey = "principal"
	requestIDKey    contextKey = "requestID"
	accessRecordKey contextKey = "accessRecord"
)

// accessRecord is filled in by inner middleware and read back by
// AccessLogMiddleware once the handler returns.
type accessRecord struct {
	sellerID string
}

// Principal is the identity carried by a verified bearer token.
type Principal struct {
	SellerID string
	Email    string
}

// PrincipalFrom retrieves the authenticated principal from the request context.
func PrincipalFrom(r *http.Request) (Principal, bool) {
	p, ok := r.Context().Value(principalKey).(Principal)
	if !ok || p.SellerID == "" {
		return Principal{}, false
	}
	return p, true
}

// ContextWithPrincipal stores p and, when the request is access logged,
// records the seller id for the access line.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	if rec, ok := ctx.Value(accessRecordKey).(*accessRecord); ok {
		rec.sellerID = p.SellerID
	}
	return context.WithValue(ctx, principalKey, p)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
