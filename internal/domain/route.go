package domain

type DecisionKind string

const (
	DecisionLoading  DecisionKind = "loading"
	DecisionRedirect DecisionKind = "redirect"
	DecisionAllow    DecisionKind = "allow"
)

// Loading reasons
const (
	ReasonAuthLoading         = "auth_loading"
	ReasonSubscriptionLoading = "subscription_loading"
)

// Dashboard route targets
const (
	PathLogin              = "/login"
	PathDashboardPremium   = "/dashboard/premium"
	PathDashboardFree      = "/dashboard/free"
	PathDashboardOrganizer = "/dashboard/organizer"
	PathDashboardAdmin     = "/dashboard/admin"
)

// RouteDecision is either ShowLoading(Reason) or RedirectTo(Path).
type RouteDecision struct {
	Kind   DecisionKind `json:"kind"`
	Path   string       `json:"path,omitempty"`
	Reason string       `json:"reason,omitempty"`
}

func ShowLoading(reason string) RouteDecision {
	return RouteDecision{Kind: DecisionLoading, Reason: reason}
}

func RedirectTo(path string) RouteDecision {
	return RouteDecision{Kind: DecisionRedirect, Path: path}
}

func (d RouteDecision) IsLoading() bool  { return d.Kind == DecisionLoading }
func (d RouteDecision) IsRedirect() bool { return d.Kind == DecisionRedirect }

// GuardDecision is ShowLoading, RedirectTo("/login") or Allow. From holds the
// originally requested location so login can send the user back.
type GuardDecision struct {
	Kind DecisionKind `json:"kind"`
	Path string       `json:"path,omitempty"`
	From string       `json:"from,omitempty"`
}

func (d GuardDecision) Allowed() bool { return d.Kind == DecisionAllow }
