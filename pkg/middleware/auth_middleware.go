package middleware

import (
	"context"
	"errors"
	"net/http"

	"matrimony-service/internal/domain"
	"matrimony-service/internal/routing"
	"matrimony-service/pkg/jwtutil"
	"matrimony-service/pkg/response"
	"matrimony-service/pkg/xerrors"

	"go.uber.org/zap"
)

// SessionResolver turns verified claims (nil for anonymous callers) into a
// session snapshot.
type SessionResolver interface {
	ResolveSession(ctx context.Context, claims *jwtutil.Claims) domain.Session
}

type AuthMiddleware struct {
	verifier *jwtutil.Verifier
	sessions SessionResolver
	logger   *zap.Logger
}

func NewAuthMiddleware(verifier *jwtutil.Verifier, sessions SessionResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginRedirect is the payload sent with a 401 so the client can go to login
// and come back to From afterwards.
type LoginRedirect struct {
	Redirect string `json:"redirect"`
	From     string `json:"from,omitempty"`
}

// Optional verifies a token when one is sent. Requests without a token pass
// through anonymously; a bad token is rejected.
func (am *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := am.verifier.ParseAndValidate(token)
		if err != nil {
			am.logger.Debug("rejected token", zap.String("path", r.URL.Path), zap.Error(err))
			msg := "Invalid token"
			if errors.Is(err, xerrors.ErrExpiredToken) {
				msg = "Token expired"
			}
			response.ErrorWithData(w, http.StatusUnauthorized, msg, LoginRedirect{
				Redirect: domain.PathLogin,
				From:     r.URL.RequestURI(),
			})
			return
		}

		next.ServeHTTP(w, setClaims(r, claims))
	})
}

// RequireRoles admits the request only when the access guard allows the
// caller's session. It verifies the token itself, so it can be used without
// Optional in front of it.
func (am *AuthMiddleware) RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return am.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session := am.sessions.ResolveSession(ctx, GetClaims(ctx))
			from := r.URL.RequestURI()

			decision := routing.Guard(session, roles, from)
			switch decision.Kind {
			case domain.DecisionAllow:
				next.ServeHTTP(w, setSession(r, session))
			case domain.DecisionLoading:
				w.Header().Set("Retry-After", "1")
				response.Error(w, http.StatusServiceUnavailable, "Session is still loading")
			default:
				am.logger.Info("access denied",
					zap.String("path", r.URL.Path),
					zap.String("role", string(session.Role)),
				)
				response.ErrorWithData(w, http.StatusUnauthorized, "Login required", LoginRedirect{
					Redirect: decision.Path,
					From:     decision.From,
				})
			}
		}))
	}
}
