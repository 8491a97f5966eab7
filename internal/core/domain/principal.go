package domain

import "sort"

// AnonymousIdentifier identifies a caller that presented no credentials.
const AnonymousIdentifier = "unauthenticated"

// Principal is the caller a request acts on behalf of.
type Principal struct {
	Identifier string
	SessionID  string
	roles      map[string]struct{}
}

// Anonymous returns the principal used when no credentials were presented.
func Anonymous() Principal {
	return Principal{Identifier: AnonymousIdentifier}
}

// NewPrincipal builds an authenticated principal.
func NewPrincipal(identifier, sessionID string, roles ...string) Principal {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if r != "" {
			set[r] = struct{}{}
		}
	}
	return Principal{Identifier: identifier, SessionID: sessionID, roles: set}
}

func (p Principal) IsAuthenticated() bool {
	return p.Identifier != "" && p.Identifier != AnonymousIdentifier
}

func (p Principal) HasRole(role string) bool {
	_, ok := p.roles[role]
	return ok
}

// Roles returns the role set sorted by name.
func (p Principal) Roles() []string {
	out := make([]string, 0, len(p.roles))
	for r := range p.roles {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
