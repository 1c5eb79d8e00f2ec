package routing

import "matrimony-service/internal/domain"

// Guard decides whether a session may enter an area restricted to
// requiredRoles. An empty requiredRoles admits any signed-in role. from is
// the requested location and travels with a login redirect.
func Guard(s domain.Session, requiredRoles []domain.Role, from string) domain.GuardDecision {
	if !s.AuthLoaded {
		return domain.GuardDecision{Kind: domain.DecisionLoading}
	}
	if !s.Role.Authenticated() {
		return loginRedirect(from)
	}
	if len(requiredRoles) > 0 && !hasRole(requiredRoles, s.Role) {
		return loginRedirect(from)
	}
	return domain.GuardDecision{Kind: domain.DecisionAllow}
}

func loginRedirect(from string) domain.GuardDecision {
	return domain.GuardDecision{
		Kind: domain.DecisionRedirect,
		Path: domain.PathLogin,
		From: from,
	}
}

func hasRole(roles []domain.Role, r domain.Role) bool {
	for _, x := range roles {
		if x == r {
			return true
		}
	}
	return false
}
