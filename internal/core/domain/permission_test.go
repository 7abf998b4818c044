package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePermissionsExplicit(t *testing.T) {
	set := PermissionSet{CanUpload: true, CanComment: true, CanRate: false}

	resolved := ResolvePermissions(ExplicitPermissions{Set: set})

	assert.Equal(t, set, resolved)
}

func TestResolvePermissionsRoleDerived(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected PermissionSet
	}{
		{
			name:     "creator uploads but cannot comment or rate",
			role:     RoleCreator,
			expected: PermissionSet{CanUpload: true, CanComment: false, CanRate: false},
		},
		{
			name:     "consumer comments and rates but cannot upload",
			role:     RoleConsumer,
			expected: PermissionSet{CanUpload: false, CanComment: true, CanRate: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := ResolvePermissions(RoleDerivedPermissions{Role: tt.role})
			assert.Equal(t, tt.expected, resolved)
		})
	}
}

func TestDerivePermissionsPrefersExplicitPayload(t *testing.T) {
	// A creator whose server payload grants commenting keeps that grant.
	user := &User{
		ID:   "u1",
		Role: RoleCreator,
		Permissions: &PermissionSet{
			CanUpload:  true,
			CanComment: true,
			CanRate:    false,
		},
	}

	perms := DerivePermissions(user)

	assert.True(t, perms.CanUpload)
	assert.True(t, perms.CanComment)
	assert.False(t, perms.CanRate)
}

func TestDerivePermissionsFallsBackToRole(t *testing.T) {
	user := &User{ID: "u2", Role: RoleConsumer}

	perms := DerivePermissions(user)

	assert.Equal(t, PermissionSet{CanUpload: false, CanComment: true, CanRate: true}, perms)
}

func TestDerivePermissionsNilUser(t *testing.T) {
	perms := DerivePermissions(nil)

	assert.Equal(t, PermissionSet{}, perms)
}

func TestDerivePermissionsIsDeterministic(t *testing.T) {
	user := &User{ID: "u3", Role: RoleCreator}

	first := DerivePermissions(user)
	second := DerivePermissions(user)

	assert.Equal(t, first, second)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleCreator, ParseRole("creator"))
	assert.Equal(t, RoleConsumer, ParseRole("consumer"))
	assert.Equal(t, RoleConsumer, ParseRole(""))
	assert.Equal(t, RoleConsumer, ParseRole("admin"))
}

func TestSessionIsAuthenticated(t *testing.T) {
	// Token presence alone decides authentication.
	assert.False(t, Session{}.IsAuthenticated())
	assert.True(t, Session{Token: "tok"}.IsAuthenticated())
	assert.True(t, Session{Token: "tok", User: nil}.IsAuthenticated())
}

func TestAverageRating(t *testing.T) {
	v := Video{Ratings: []int{4, 5, 3}}
	avg, ok := v.AverageRating()
	assert.True(t, ok)
	assert.InDelta(t, 4.0, avg, 0.001)

	empty := Video{}
	_, ok = empty.AverageRating()
	assert.False(t, ok)
}
