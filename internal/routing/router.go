// Package routing decides which dashboard a session belongs to and whether a
// session may enter a protected area. Everything here is a pure function of
// the session snapshot it is given.
package routing

import "matrimony-service/internal/domain"

// Route derives the navigation target for a session. Rules are ordered and
// the first match wins.
func Route(s domain.Session) domain.RouteDecision {
	if !s.AuthLoaded {
		return domain.ShowLoading(domain.ReasonAuthLoading)
	}

	switch s.Role {
	case domain.RoleMember:
		// tier is not consulted: an active subscription always lands on premium
		switch s.SubscriptionStatus {
		case domain.SubscriptionUnknown:
			return domain.ShowLoading(domain.ReasonSubscriptionLoading)
		case domain.SubscriptionActive:
			return domain.RedirectTo(domain.PathDashboardPremium)
		default:
			// pending, inactive and any unrecognised status
			return domain.RedirectTo(domain.PathDashboardFree)
		}
	case domain.RoleOrganizer:
		return domain.RedirectTo(domain.PathDashboardOrganizer)
	case domain.RoleAdmin:
		return domain.RedirectTo(domain.PathDashboardAdmin)
	default:
		// anonymous and any unrecognised role
		return domain.RedirectTo(domain.PathLogin)
	}
}

// IsDashboardPath reports whether p is one of the per-role dashboard bases.
func IsDashboardPath(p string) bool {
	switch p {
	case domain.PathDashboardPremium, domain.PathDashboardFree,
		domain.PathDashboardOrganizer, domain.PathDashboardAdmin:
		return true
	}
	return false
}
