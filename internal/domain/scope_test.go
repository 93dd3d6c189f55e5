package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admin(username string, role Role, scope ManagedEntities) *AdminAccount {
	return &AdminAccount{Username: username, Role: role, ManagedEntities: scope}
}

func TestWithinJurisdictionGlobal(t *testing.T) {
	acting := admin("root", RoleGlobalAdmin, ManagedEntities{})
	target := admin("someone", RoleSocietyAdmin, ManagedEntities{Community: "unrelated"})
	assert.True(t, WithinJurisdiction(acting, target), "global tier sees everything")
}

func TestWithinJurisdictionCountryPointer(t *testing.T) {
	acting := admin("pk-admin", RoleCountryAdmin, ManagedEntities{})

	inside := admin("lahore-admin", RoleCityAdmin, ManagedEntities{Country: "pk-admin"})
	assert.True(t, WithinJurisdiction(acting, inside))

	// A city admin under a different country admin is out of scope even if
	// geographically it would be "inside" the same country.
	outside := admin("karachi-admin", RoleCityAdmin, ManagedEntities{Country: "other-pk-admin"})
	assert.False(t, WithinJurisdiction(acting, outside))

	unscoped := admin("floating-admin", RoleCityAdmin, ManagedEntities{})
	assert.False(t, WithinJurisdiction(acting, unscoped), "missing pointer never matches")
}

func TestWithinJurisdictionCityAndCommunity(t *testing.T) {
	city := admin("lahore-admin", RoleCityAdmin, ManagedEntities{})
	assert.True(t, WithinJurisdiction(city, admin("x", RoleCommunityAdmin, ManagedEntities{City: "lahore-admin"})))
	assert.False(t, WithinJurisdiction(city, admin("x", RoleCommunityAdmin, ManagedEntities{City: "multan-admin"})))
	// Country pointer does not satisfy a city-scoped check.
	assert.False(t, WithinJurisdiction(city, admin("x", RoleCommunityAdmin, ManagedEntities{Country: "lahore-admin"})))

	community := admin("model-town", RoleCommunityAdmin, ManagedEntities{})
	assert.True(t, WithinJurisdiction(community, admin("x", RoleSocietyAdmin, ManagedEntities{Community: "model-town"})))
	assert.False(t, WithinJurisdiction(community, admin("x", RoleSocietyAdmin, ManagedEntities{Community: "gulberg"})))
}

func TestWithinJurisdictionSocietyAndUnknown(t *testing.T) {
	target := admin("x", RoleSocietyAdmin, ManagedEntities{Community: "anything"})
	assert.False(t, WithinJurisdiction(admin("s", RoleSocietyAdmin, ManagedEntities{}), target))
	assert.False(t, WithinJurisdiction(admin("s", RoleSociety, ManagedEntities{}), target))
	assert.False(t, WithinJurisdiction(admin("s", "made_up_role", ManagedEntities{}), target))
}

func TestManagedEntitiesRoundTrip(t *testing.T) {
	scope := ManagedEntities{City: "lahore-admin"}

	value, err := scope.Value()
	require.NoError(t, err)

	var decoded ManagedEntities
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, scope, decoded)

	var fromNil ManagedEntities
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())

	assert.Error(t, fromNil.Scan(42))
}
