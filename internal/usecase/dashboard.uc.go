package usecase

import (
	"context"
	"errors"
	"time"

	"matrimony-service/internal/domain"
	"matrimony-service/internal/repository"
	"matrimony-service/internal/routing"
	"matrimony-service/pkg/cache"
	"matrimony-service/pkg/jwtutil"
	"matrimony-service/pkg/xerrors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CompletionSource reports how complete a member's profile is.
type CompletionSource interface {
	Completion(ctx context.Context, userID string) (int, error)
}

type DashboardUsecase struct {
	subRepo  repository.SubscriptionRepository
	profiles CompletionSource
	cache    JSONCache
	subTTL   time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewDashboardUsecase(
	subRepo repository.SubscriptionRepository,
	profiles CompletionSource,
	c JSONCache,
	subTTL time.Duration,
	logger *zap.Logger,
) *DashboardUsecase {
	return &DashboardUsecase{
		subRepo:  subRepo,
		profiles: profiles,
		cache:    c,
		subTTL:   subTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// LegacyResolution is where an old deep link should send the caller.
type LegacyResolution struct {
	Kind     domain.DecisionKind `json:"kind"`
	Location string              `json:"location,omitempty"`
	Reason   string              `json:"reason,omitempty"`
	From     string              `json:"from,omitempty"`
}

// Overview is the dashboard header payload.
type Overview struct {
	Session    domain.Session       `json:"session"`
	Decision   domain.RouteDecision `json:"decision"`
	Completion *int                 `json:"completion"`
}

// ResolveSession builds the session snapshot for verified claims. nil claims
// is an anonymous caller. A failed subscription lookup leaves the status
// unknown, which routes to the loading state rather than a wrong dashboard.
func (uc *DashboardUsecase) ResolveSession(ctx context.Context, claims *jwtutil.Claims) domain.Session {
	if claims == nil || claims.UserID == "" {
		return domain.AnonymousSession()
	}

	s := domain.Session{
		Role:       domain.ParseRole(claims.Role),
		AuthLoaded: true,
	}
	if s.Role != domain.RoleMember {
		return s
	}

	sub, err := uc.subscription(ctx, claims.UserID)
	switch {
	case errors.Is(err, xerrors.ErrSubscriptionNotFound):
		s.SubscriptionStatus = domain.SubscriptionInactive
		s.SubscriptionTier = domain.TierFree
	case err != nil:
		uc.logger.Warn("subscription lookup failed",
			zap.String("user_id", claims.UserID),
			zap.Error(err),
		)
	default:
		s.SubscriptionStatus = sub.Effective(uc.now())
		s.SubscriptionTier = sub.Tier
		if s.SubscriptionTier == domain.TierUnknown {
			s.SubscriptionTier = domain.TierFree
		}
	}
	return s
}

func (uc *DashboardUsecase) subscription(ctx context.Context, userID string) (*domain.Subscription, error) {
	var cached domain.Subscription
	err := uc.cache.GetJSON(ctx, nsSubscriptions, userID, &cached)
	if err == nil {
		subscriptionLookupsTotal.WithLabelValues("cache").Inc()
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		uc.logger.Debug("subscription cache read failed", zap.Error(err))
	}

	sub, err := uc.subRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrSubscriptionNotFound) {
			subscriptionLookupsTotal.WithLabelValues("missing").Inc()
			return nil, err
		}
		subscriptionLookupsTotal.WithLabelValues("error").Inc()
		return nil, errors.Join(xerrors.ErrSubscriptionUnavailable, err)
	}
	subscriptionLookupsTotal.WithLabelValues("db").Inc()

	if err := uc.cache.SetJSON(ctx, nsSubscriptions, userID, sub, uc.subTTL); err != nil {
		uc.logger.Debug("subscription cache write failed", zap.Error(err))
	}
	return sub, nil
}

// Route routes a posted snapshot.
func (uc *DashboardUsecase) Route(s domain.Session) domain.RouteDecision {
	d := routing.Route(s)
	routeDecisionsTotal.WithLabelValues(string(d.Kind), targetLabel(d.Path, d.Reason)).Inc()
	return d
}

// Guard checks a posted snapshot against requiredRoles.
func (uc *DashboardUsecase) Guard(s domain.Session, requiredRoles []domain.Role, from string) domain.GuardDecision {
	d := routing.Guard(s, requiredRoles, from)
	guardDecisionsTotal.WithLabelValues(string(d.Kind)).Inc()
	return d
}

// RouteFor routes the caller identified by claims.
func (uc *DashboardUsecase) RouteFor(ctx context.Context, claims *jwtutil.Claims) (domain.Session, domain.RouteDecision) {
	s := uc.ResolveSession(ctx, claims)
	return s, uc.Route(s)
}

// GuardFor guards the caller identified by claims.
func (uc *DashboardUsecase) GuardFor(ctx context.Context, claims *jwtutil.Claims, requiredRoles []domain.Role, from string) domain.GuardDecision {
	return uc.Guard(uc.ResolveSession(ctx, claims), requiredRoles, from)
}

// ResolveLegacy sends an old deep link (e.g. "profile/:id") into the caller's
// dashboard tree. Loading passes through; a login redirect carries from.
func (uc *DashboardUsecase) ResolveLegacy(ctx context.Context, claims *jwtutil.Claims, subPath string, params map[string]string, from string) LegacyResolution {
	_, d := uc.RouteFor(ctx, claims)
	return legacyResolution(d, subPath, params, from)
}

func legacyResolution(d domain.RouteDecision, subPath string, params map[string]string, from string) LegacyResolution {
	switch {
	case d.IsLoading():
		return LegacyResolution{Kind: domain.DecisionLoading, Reason: d.Reason}
	case !routing.IsDashboardPath(d.Path):
		return LegacyResolution{Kind: domain.DecisionRedirect, Location: domain.PathLogin, From: from}
	default:
		return LegacyResolution{
			Kind:     domain.DecisionRedirect,
			Location: routing.ResolveLegacy(d.Path, subPath, params),
		}
	}
}

// Overview routes the caller and, for members, loads the profile completion
// at the same time. A session already resolved by the auth middleware is
// reused; pass nil to resolve it here. A completion failure is logged and
// left out.
func (uc *DashboardUsecase) Overview(ctx context.Context, claims *jwtutil.Claims, session *domain.Session) (*Overview, error) {
	out := &Overview{}
	g, gctx := errgroup.WithContext(ctx)

	role := domain.RoleAnonymous
	if session != nil {
		role = session.Role
		out.Session, out.Decision = *session, uc.Route(*session)
	} else {
		if claims != nil {
			role = domain.ParseRole(claims.Role)
		}
		g.Go(func() error {
			out.Session, out.Decision = uc.RouteFor(gctx, claims)
			return nil
		})
	}

	if role == domain.RoleMember && claims != nil {
		g.Go(func() error {
			pct, err := uc.profiles.Completion(gctx, claims.UserID)
			if err != nil {
				uc.logger.Warn("profile completion unavailable",
					zap.String("user_id", claims.UserID),
					zap.Error(err),
				)
				return nil
			}
			out.Completion = &pct
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
