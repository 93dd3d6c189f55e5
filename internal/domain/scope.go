package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ManagedEntities records which parent scope an admin governs under. Each
// field holds the username of the admin owning that scope. At most one field
// is meaningful for a given role (the role's required parent kind), but all
// three are kept so jurisdiction checks stay exhaustive and type-checked.
type ManagedEntities struct {
	Country   string `json:"country,omitempty"`
	City      string `json:"city,omitempty"`
	Community string `json:"community,omitempty"`
}

func (m ManagedEntities) IsZero() bool {
	return m.Country == "" && m.City == "" && m.Community == ""
}

// Value serializes to JSONB for the managed_entities column.
func (m ManagedEntities) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan deserializes the JSONB managed_entities column.
func (m *ManagedEntities) Scan(src interface{}) error {
	if src == nil {
		*m = ManagedEntities{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported type %T for managed_entities", src)
	}
}

// WithinJurisdiction reports whether target falls inside the acting admin's
// geographic scope. Containment is never inferred; it only follows the
// explicit managed-entities pointer matching the acting admin's username.
func WithinJurisdiction(acting, target *AdminAccount) bool {
	switch acting.Role {
	case RoleGlobalAdmin, RoleGlobal:
		return true
	case RoleCountryAdmin, RoleCountry:
		return target.ManagedEntities.Country == acting.Username
	case RoleCityAdmin, RoleCity:
		return target.ManagedEntities.City == acting.Username
	case RoleCommunityAdmin, RoleCommunity:
		return target.ManagedEntities.Community == acting.Username
	default:
		// society tiers and unrecognized roles approve nobody
		return false
	}
}
