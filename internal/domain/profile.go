package domain

import "time"

// Wire marital status values
const (
	MaritalSingle   = "SINGLE"
	MaritalDivorced = "DIVORCED"
	MaritalWidowed  = "WIDOWED"
)

// Form marital status values
const (
	FormNeverMarried    = "never-married"
	FormDivorced        = "divorced"
	FormWidowed         = "widowed"
	FormAwaitingDivorce = "awaiting-divorce"
)

// ProfileRecord is the API-facing profile. A nil field means "not provided"
// and is sent as JSON null.
type ProfileRecord struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Phone       *string `json:"phone"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"dateOfBirth"`

	HeightCm *int `json:"heightCm"`
	WeightKg *int `json:"weightKg"`

	Religion      *string `json:"religion"`
	Caste         *string `json:"caste"`
	MaritalStatus *string `json:"maritalStatus"`

	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
	Citizenship *string `json:"citizenship"`

	Occupation *string `json:"occupation"`
	Education  *string `json:"education"`
	College    *string `json:"college"`
	Company    *string `json:"company"`
	Income     *int64  `json:"income"`

	AboutMe            *string `json:"aboutMe"`
	PartnerPreferences *string `json:"partnerPreferences"`
}

// ProfileForm is the display shape of a profile: every field is a string,
// height is a ladder code and income a bucket code.
type ProfileForm struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`

	Height string `json:"height"`
	Weight string `json:"weight"`

	Religion      string `json:"religion"`
	Caste         string `json:"caste"`
	MaritalStatus string `json:"maritalStatus"`

	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Citizenship string `json:"citizenship"`

	Occupation string `json:"occupation"`
	Education  string `json:"education"`
	College    string `json:"college"`
	Company    string `json:"company"`
	Income     string `json:"income"`

	AboutMe            string `json:"aboutMe"`
	PartnerPreferences string `json:"partnerPreferences"`
}

// Profile is a stored profile row.
type Profile struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Record    ProfileRecord `json:"record"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Subscription is a member's plan as stored by billing.
type Subscription struct {
	UserID    string             `json:"userId"`
	Status    SubscriptionStatus `json:"status"`
	Tier      SubscriptionTier   `json:"tier"`
	ExpiresAt *time.Time         `json:"expiresAt,omitempty"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Effective returns the status as of now; an expired subscription is
// inactive regardless of the stored status.
func (s *Subscription) Effective(now time.Time) SubscriptionStatus {
	if s == nil {
		return SubscriptionInactive
	}
	if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
		return SubscriptionInactive
	}
	if s.Status == SubscriptionUnknown {
		return SubscriptionInactive
	}
	return s.Status
}

// ProfileUpdatedEvent is published after a profile is saved.
type ProfileUpdatedEvent struct {
	EventID    string    `json:"eventId"`
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	Completion int       `json:"completion"`
	OccurredAt time.Time `json:"occurredAt"`
}

const EventProfileUpdated = "profile.updated"
