package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ParsePGErrorCode returns the SQLSTATE of a Postgres error, e.g. 23505 for
// unique_violation.
func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
	ErrUnauthorized   = errors.New("unauthorized")
)

// Token
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Profiles and subscriptions
var (
	ErrUserIDRequired          = errors.New("user ID required")
	ErrProfileNotFound         = errors.New("profile not found")
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrSubscriptionUnavailable = errors.New("subscription lookup unavailable")
)
