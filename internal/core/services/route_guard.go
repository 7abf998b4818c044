package services

import "vidgram/internal/core/domain"

// RouteRequirement annotates a view with the capability it needs.
type RouteRequirement int

const (
	RequireNone RouteRequirement = iota
	RequireAuthenticated
	RequireCreator
)

// GuardDecision is the outcome of evaluating a route against the session.
type GuardDecision int

const (
	DecisionRender GuardDecision = iota
	DecisionPlaceholder
	DecisionRedirectLogin
	DecisionRedirectHome
)

func (d GuardDecision) String() string {
	switch d {
	case DecisionRender:
		return "render"
	case DecisionPlaceholder:
		return "placeholder"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// EvaluateRoute decides whether a view may render given a session snapshot.
// While the session is still loading no redirect decision is made; a
// neutral placeholder renders instead. Deterministic and side-effect-free.
func EvaluateRoute(session domain.Session, requirement RouteRequirement) GuardDecision {
	if session.Loading {
		return DecisionPlaceholder
	}

	switch requirement {
	case RequireNone:
		return DecisionRender

	case RequireAuthenticated:
		if !session.IsAuthenticated() {
			return DecisionRedirectLogin
		}
		return DecisionRender

	case RequireCreator:
		if !session.IsAuthenticated() {
			return DecisionRedirectLogin
		}
		if session.User == nil || session.User.Role != domain.RoleCreator {
			return DecisionRedirectHome
		}
		return DecisionRender

	default:
		return DecisionRedirectHome
	}
}

// DefaultRoutes is the application's route table with its capability
// annotations.
var DefaultRoutes = map[string]RouteRequirement{
	"home":     RequireNone,
	"login":    RequireNone,
	"register": RequireNone,
	"profile":  RequireAuthenticated,
	"upload":   RequireCreator,
}
