package domain

import "fmt"

// Operation is an action on the catalog that is subject to authorization.
type Operation string

const (
	OpList   Operation = "list"
	OpView   Operation = "view"
	OpCreate Operation = "create"
	OpEdit   Operation = "edit"
	OpDelete Operation = "delete"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

type requirement struct {
	authenticated bool
	roles         []string
}

// policy maps every operation to what a principal needs. Operations missing
// from the table are denied.
var policy = map[Operation]requirement{
	OpList:   {authenticated: true},
	OpView:   {authenticated: true},
	OpEdit:   {authenticated: true},
	OpCreate: {authenticated: true, roles: []string{RoleProductManagement}},
	OpDelete: {authenticated: true, roles: []string{RoleProductManagement}},
}

// Authorize evaluates the policy table for (p, op). It performs no I/O.
func Authorize(p Principal, op Operation) Decision {
	req, ok := policy[op]
	if !ok {
		return Deny
	}
	if req.authenticated && !p.IsAuthenticated() {
		return Deny
	}
	for _, role := range req.roles {
		if !p.HasRole(role) {
			return Deny
		}
	}
	return Allow
}

// RequiredRoles lists the roles op demands in addition to authentication.
func RequiredRoles(op Operation) []string {
	return append([]string(nil), policy[op].roles...)
}

// AuthorizationError reports a Deny decision. Authenticated tells the caller
// whether to send the principal to the login entry point or reject outright.
type AuthorizationError struct {
	Operation     Operation
	Authenticated bool
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization denied for %s", e.Operation)
}

func (e *AuthorizationError) Unwrap() error {
	return ErrAuthorizationDenied
}

// Require returns nil when p may perform op, or an *AuthorizationError.
func Require(p Principal, op Operation) error {
	if Authorize(p, op) == Allow {
		return nil
	}
	return &AuthorizationError{Operation: op, Authenticated: p.IsAuthenticated()}
}
