package middleware

import (
	"context"
	"net/http"

	"matrimony-service/internal/domain"
	"matrimony-service/pkg/jwtutil"
)

type contextKey string

const (
	ContextUserID  contextKey = "userID"
	ContextClaims  contextKey = "claims"
	ContextSession contextKey = "session"
)

func GetUserID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextUserID).(string)
	return val, ok && val != ""
}

// GetClaims returns the verified claims, or nil for an anonymous request.
func GetClaims(ctx context.Context) *jwtutil.Claims {
	c, _ := ctx.Value(ContextClaims).(*jwtutil.Claims)
	return c
}

// GetSession returns the session resolved by RequireRoles.
func GetSession(ctx context.Context) (domain.Session, bool) {
	s, ok := ctx.Value(ContextSession).(domain.Session)
	return s, ok
}

func setClaims(r *http.Request, claims *jwtutil.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
	ctx = context.WithValue(ctx, ContextClaims, claims)
	return r.WithContext(ctx)
}

func setSession(r *http.Request, s domain.Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ContextSession, s))
}
