package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRoles() []Role {
	return []Role{
		RoleGlobalAdmin, RoleGlobal,
		RoleCountryAdmin, RoleCountry,
		RoleCityAdmin, RoleCity,
		RoleCommunityAdmin, RoleCommunity,
		RoleSocietyAdmin, RoleSociety,
	}
}

func TestRoleLevels(t *testing.T) {
	expected := map[Role]int{
		RoleGlobalAdmin:    1,
		RoleGlobal:         2,
		RoleCountryAdmin:   3,
		RoleCountry:        4,
		RoleCityAdmin:      5,
		RoleCity:           6,
		RoleCommunityAdmin: 7,
		RoleCommunity:      8,
		RoleSocietyAdmin:   9,
		RoleSociety:        10,
	}

	for role, want := range expected {
		level, ok := role.Level()
		require.True(t, ok, "role %s must be ranked", role)
		assert.Equal(t, want, level, "role %s", role)
	}
}

func TestLevelUnknownRole(t *testing.T) {
	for _, role := range []Role{"", "admin", "superuser", "GLOBAL_ADMIN", "global admin"} {
		level, ok := role.Level()
		assert.False(t, ok, "role %q must not be ranked", role)
		assert.Zero(t, level)
		assert.False(t, role.Valid())
	}
}

// TestOutranksAllPairs checks every ordered pair of the ten roles: acting
// outranks target exactly when its level is strictly lower.
func TestOutranksAllPairs(t *testing.T) {
	roles := allRoles()
	require.Len(t, roles, 10)

	for _, acting := range roles {
		for _, target := range roles {
			actingLevel, ok := acting.Level()
			require.True(t, ok)
			targetLevel, ok := target.Level()
			require.True(t, ok)

			want := actingLevel < targetLevel
			assert.Equal(t, want, Outranks(acting, target),
				"acting=%s (level %d) target=%s (level %d)", acting, actingLevel, target, targetLevel)
		}
	}
}

func TestOutranksNeverEqualRank(t *testing.T) {
	for _, role := range allRoles() {
		assert.False(t, Outranks(role, role), "role %s must not outrank itself", role)
	}
}

func TestOutranksUnknownRoleDenies(t *testing.T) {
	// An unknown role must lose both ways; it never gets a default level.
	assert.False(t, Outranks("mystery_role", RoleSociety))
	assert.False(t, Outranks(RoleGlobalAdmin, "mystery_role"))
	assert.False(t, Outranks("mystery_role", "other_mystery"))
}

func TestIsAdminTier(t *testing.T) {
	adminTiers := map[Role]bool{
		RoleGlobalAdmin: true, RoleCountryAdmin: true, RoleCityAdmin: true,
		RoleCommunityAdmin: true, RoleSocietyAdmin: true,
		RoleGlobal: false, RoleCountry: false, RoleCity: false,
		RoleCommunity: false, RoleSociety: false,
	}
	for role, want := range adminTiers {
		assert.Equal(t, want, role.IsAdminTier(), "role %s", role)
	}
	assert.False(t, Role("owner").IsAdminTier())
}

func TestRequiredParentChain(t *testing.T) {
	_, ok := RoleGlobalAdmin.RequiredParent()
	assert.False(t, ok, "global_admin registers under nobody")

	chain := map[Role]Role{
		RoleGlobal:         RoleGlobalAdmin,
		RoleCountryAdmin:   RoleGlobal,
		RoleCountry:        RoleCountryAdmin,
		RoleCityAdmin:      RoleCountry,
		RoleCity:           RoleCityAdmin,
		RoleCommunityAdmin: RoleCity,
		RoleCommunity:      RoleCommunityAdmin,
		RoleSocietyAdmin:   RoleCommunity,
		RoleSociety:        RoleSocietyAdmin,
	}
	for role, want := range chain {
		parent, ok := role.RequiredParent()
		require.True(t, ok, "role %s", role)
		assert.Equal(t, want, parent, "role %s", role)
	}
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusActive, NormalizeStatus("approved"))
	assert.Equal(t, StatusActive, NormalizeStatus(StatusActive))
	assert.Equal(t, StatusPending, NormalizeStatus(StatusPending))
	assert.Equal(t, StatusSuspended, NormalizeStatus(StatusSuspended))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusActive))
	assert.True(t, ValidStatus(StatusSuspended))
	assert.False(t, ValidStatus("approved"), "legacy value is not accepted as input")
	assert.False(t, ValidStatus("deleted"))
	assert.False(t, ValidStatus(""))
}
