// Package contexthelpers carries request-scoped values between middleware and handlers.
package contexthelpers

import (
	"context"
	"net/http"
)

type contextKey string

const CurrentUserIDContextKey = contextKey("currentUserID")
const CspNonceContextKey = contextKey("cspNonce")

// CurrentUserID returns the identifier of the user owning the session,
// or the empty string when the request has not been identified.
func CurrentUserID(ctx context.Context) string {
	userID, ok := ctx.Value(CurrentUserIDContextKey).(string)
	if !ok {
		return ""
	}

	return userID
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}

func SetCurrentUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), CurrentUserIDContextKey, userID)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := context.WithValue(r.Context(), CspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}
