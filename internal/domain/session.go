package domain

import (
	"encoding/json"
	"strings"
)

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleMember    Role = "member"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a claim or request value onto a Role. Anything unrecognized
// is anonymous.
func ParseRole(v string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(v))) {
	case RoleMember:
		return RoleMember
	case RoleOrganizer:
		return RoleOrganizer
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleAnonymous
	}
}

func (r Role) Authenticated() bool {
	return r == RoleMember || r == RoleOrganizer || r == RoleAdmin
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*r = RoleAnonymous
		return nil
	}
	*r = ParseRole(s)
	return nil
}

// SubscriptionStatus is empty while the member's subscription is unknown.
type SubscriptionStatus string

const (
	SubscriptionUnknown  SubscriptionStatus = ""
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// ParseSubscriptionStatus treats a blank value as unknown and any other
// unrecognized value as inactive.
func ParseSubscriptionStatus(v string) SubscriptionStatus {
	v = strings.ToLower(strings.TrimSpace(v))
	switch SubscriptionStatus(v) {
	case SubscriptionUnknown:
		return SubscriptionUnknown
	case SubscriptionPending:
		return SubscriptionPending
	case SubscriptionActive:
		return SubscriptionActive
	default:
		return SubscriptionInactive
	}
}

func (s SubscriptionStatus) MarshalJSON() ([]byte, error) {
	if s == SubscriptionUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

func (s *SubscriptionStatus) UnmarshalJSON(b []byte) error {
	var v *string
	if err := json.Unmarshal(b, &v); err != nil || v == nil {
		*s = SubscriptionUnknown
		return nil
	}
	*s = ParseSubscriptionStatus(*v)
	return nil
}

type SubscriptionTier string

const (
	TierUnknown SubscriptionTier = ""
	TierFree    SubscriptionTier = "free"
	TierPremium SubscriptionTier = "premium"
)

func ParseSubscriptionTier(v string) SubscriptionTier {
	switch SubscriptionTier(strings.ToLower(strings.TrimSpace(v))) {
	case TierFree:
		return TierFree
	case TierPremium:
		return TierPremium
	default:
		return TierUnknown
	}
}

func (t SubscriptionTier) MarshalJSON() ([]byte, error) {
	if t == TierUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

func (t *SubscriptionTier) UnmarshalJSON(b []byte) error {
	var v *string
	if err := json.Unmarshal(b, &v); err != nil || v == nil {
		*t = TierUnknown
		return nil
	}
	*t = ParseSubscriptionTier(*v)
	return nil
}

// Session is a snapshot of the caller's authentication state. Subscription
// fields only carry meaning for members.
type Session struct {
	Role               Role               `json:"role"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionTier   SubscriptionTier   `json:"subscriptionTier"`
	AuthLoaded         bool               `json:"authLoaded"`
}

// AnonymousSession is a resolved session with nobody signed in.
func AnonymousSession() Session {
	return Session{Role: RoleAnonymous, AuthLoaded: true}
}
