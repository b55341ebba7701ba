package services

import "wikicms/models"

// EditDecision is the outcome of the edit authorization policy.
type EditDecision int

const (
	// ApplyDirectly commits the edit to the live article immediately.
	ApplyDirectly EditDecision = iota
	// RequireModeration queues the edit for moderator review.
	RequireModeration
	// Deny rejects the edit outright; the caller redirects to login.
	Deny
)

func (d EditDecision) String() string {
	switch d {
	case ApplyDirectly:
		return "apply_directly"
	case RequireModeration:
		return "require_moderation"
	case Deny:
		return "deny"
	}
	return "unknown"
}

// DecideEditRoute is the edit authorization policy. It is a pure function
// of the article's persisted protection flag and the acting user, and must
// be re-evaluated on every submission: role membership can change between
// page loads.
func DecideEditRoute(isProtected bool, actor models.Actor) EditDecision {
	if !isProtected {
		return ApplyDirectly
	}
	if !actor.Authenticated {
		return Deny
	}
	if actor.Role.Elevated() {
		return ApplyDirectly
	}
	return RequireModeration
}
