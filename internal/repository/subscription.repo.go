package repository

import (
	"context"
	"errors"
	"fmt"

	"matrimony-service/internal/domain"
	"matrimony-service/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error)
}

type subscriptionRepo struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepo(db *pgxpool.Pool) SubscriptionRepository {
	return &subscriptionRepo{db: db}
}

// GetByUserID returns the member's most recent subscription.
func (r *subscriptionRepo) GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error) {
	row := r.db.QueryRow(ctx, `
		SELECT user_id, status, tier, expires_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, userID)

	s, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("get subscription %s: %w", userID, err)
	}
	return s, nil
}

// scanSubscription reads user_id, status, tier, expires_at, updated_at.
// status and tier are nullable; NULL parses as unknown.
func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var (
		s            domain.Subscription
		status, tier *string
	)
	if err := row.Scan(&s.UserID, &status, &tier, &s.ExpiresAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = domain.ParseSubscriptionStatus(deref(status))
	s.Tier = domain.ParseSubscriptionTier(deref(tier))
	return &s, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
