package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allOperations = []Operation{OpList, OpView, OpCreate, OpEdit, OpDelete}

func TestAuthorize_AnonymousDeniedEverywhere(t *testing.T) {
	for _, op := range allOperations {
		assert.Equal(t, Deny, Authorize(Anonymous(), op), "op=%s", op)
	}
}

func TestAuthorize_AuthenticatedWithoutRole(t *testing.T) {
	p := NewPrincipal("admin@test.com", "sid-1")

	assert.Equal(t, Allow, Authorize(p, OpList))
	assert.Equal(t, Allow, Authorize(p, OpView))
	assert.Equal(t, Allow, Authorize(p, OpEdit))
	assert.Equal(t, Deny, Authorize(p, OpCreate))
	assert.Equal(t, Deny, Authorize(p, OpDelete))
}

func TestAuthorize_UnrelatedRolesDoNotGrantCreate(t *testing.T) {
	p := NewPrincipal("ops@test.com", "sid-2", "Auditor", "productmanagement")

	assert.Equal(t, Deny, Authorize(p, OpCreate))
	assert.Equal(t, Deny, Authorize(p, OpDelete))
}

func TestAuthorize_ProductManagementAllowsEverything(t *testing.T) {
	p := NewPrincipal("adminRole@test.com", "sid-3", RoleProductManagement)

	for _, op := range allOperations {
		assert.Equal(t, Allow, Authorize(p, op), "op=%s", op)
	}
}

func TestAuthorize_UnknownOperationDenied(t *testing.T) {
	p := NewPrincipal("adminRole@test.com", "sid-3", RoleProductManagement)
	assert.Equal(t, Deny, Authorize(p, Operation("publish")))
}

func TestRequire_ReportsAuthenticationState(t *testing.T) {
	err := Require(Anonymous(), OpList)
	var authErr *AuthorizationError
	if assert.True(t, errors.As(err, &authErr)) {
		assert.False(t, authErr.Authenticated)
		assert.Equal(t, OpList, authErr.Operation)
	}
	assert.True(t, errors.Is(err, ErrAuthorizationDenied))

	err = Require(NewPrincipal("admin@test.com", "sid"), OpDelete)
	if assert.True(t, errors.As(err, &authErr)) {
		assert.True(t, authErr.Authenticated)
	}

	assert.NoError(t, Require(NewPrincipal("admin@test.com", "sid"), OpEdit))
}

func TestPrincipal_IdentifierOfAnonymous(t *testing.T) {
	p := Anonymous()
	assert.Equal(t, "unauthenticated", p.Identifier)
	assert.Empty(t, p.Roles())
	assert.False(t, p.IsAuthenticated())
}
