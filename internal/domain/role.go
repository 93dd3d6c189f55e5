package domain

// Role identifies a tier in the geographic admin hierarchy. The five
// "*_admin" roles are person tiers that go through the approval workflow;
// the five bare scope roles name the geographic area an admin administers.
// Both kinds share one rank table.
type Role string

const (
	RoleGlobalAdmin    Role = "global_admin"
	RoleGlobal         Role = "global"
	RoleCountryAdmin   Role = "country_admin"
	RoleCountry        Role = "country"
	RoleCityAdmin      Role = "city_admin"
	RoleCity           Role = "city"
	RoleCommunityAdmin Role = "community_admin"
	RoleCommunity      Role = "community"
	RoleSocietyAdmin   Role = "society_admin"
	RoleSociety        Role = "society"
)

// roleLevels ranks every role. Lower level means more authority.
// Roles absent from this table carry no authority at all.
var roleLevels = map[Role]int{
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

// requiredParents maps each role to the role of the scope it registers under.
var requiredParents = map[Role]Role{
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

// adminTierRoles are the roles that represent people and require approval.
var adminTierRoles = map[Role]bool{
	RoleGlobalAdmin:    true,
	RoleCountryAdmin:   true,
	RoleCityAdmin:      true,
	RoleCommunityAdmin: true,
	RoleSocietyAdmin:   true,
}

// Level returns the role's rank. The second return is false for roles not in
// the hierarchy table; callers must treat that as "no authority", never as a
// numeric default.
func (r Role) Level() (int, bool) {
	level, ok := roleLevels[r]
	return level, ok
}

// Valid reports whether r is one of the ten hierarchy roles.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// IsAdminTier reports whether r is one of the five approval-gated tiers.
func (r Role) IsAdminTier() bool {
	return adminTierRoles[r]
}

// RequiredParent returns the role tier this role registers under.
// global_admin has no parent.
func (r Role) RequiredParent() (Role, bool) {
	parent, ok := requiredParents[r]
	return parent, ok
}

// Outranks reports whether acting is strictly higher-ranked than target.
// Unknown roles on either side never outrank anything.
func Outranks(acting, target Role) bool {
	actingLevel, ok := acting.Level()
	if !ok {
		return false
	}
	targetLevel, ok := target.Level()
	if !ok {
		return false
	}
	return actingLevel < targetLevel
}

// AdminTierRoles returns the five approval-gated roles, highest rank first.
func AdminTierRoles() []Role {
	return []Role{RoleGlobalAdmin, RoleCountryAdmin, RoleCityAdmin, RoleCommunityAdmin, RoleSocietyAdmin}
}
