package domain

import (
	"net/url"
	"slices"
)

// GateOutcome is the verdict of a route gate.
type GateOutcome int

const (
	// GateAllow lets the nested route render.
	GateAllow GateOutcome = iota
	// GateWait means the session is still resolving; show a placeholder.
	GateWait
	// GateRedirect sends the visitor to Location.
	GateRedirect
)

// GateDecision is what a gate resolved to for one request.
type GateDecision struct {
	Outcome  GateOutcome
	Location string
}

// EvaluateAuthGate lets authenticated visitors through and sends everyone
// else to the login route, recording requestedPath as "from".
func EvaluateAuthGate(state SessionState, requestedPath string) GateDecision {
	if state.Loading {
		return GateDecision{Outcome: GateWait}
	}
	if !state.Authenticated() {
		location := LoginRoute
		if requestedPath != "" {
			location += "?" + url.Values{"from": {requestedPath}}.Encode()
		}
		return GateDecision{Outcome: GateRedirect, Location: location}
	}
	return GateDecision{Outcome: GateAllow}
}

// EvaluateRoleGate admits only the allowed roles. A known role outside the
// set is sent to its own home route rather than to login.
func EvaluateRoleGate(state SessionState, allowed []Role) GateDecision {
	role := state.Role()
	if state.Loading || (state.Authenticated() && role == "") {
		return GateDecision{Outcome: GateWait}
	}
	if role == "" {
		return GateDecision{Outcome: GateRedirect, Location: LoginRoute}
	}
	if !slices.Contains(allowed, role) {
		return GateDecision{Outcome: GateRedirect, Location: HomeRoute(role)}
	}
	return GateDecision{Outcome: GateAllow}
}
