package domain

import "time"

type AccountStatus string

const (
	StatusPending   AccountStatus = "pending"
	StatusActive    AccountStatus = "active"
	StatusSuspended AccountStatus = "suspended"

	// statusApproved is a legacy value written by early seed scripts.
	statusApproved AccountStatus = "approved"
)

// NormalizeStatus folds the legacy "approved" value into "active". Every
// repository read passes through here so the rest of the code only ever sees
// the three operative states.
func NormalizeStatus(s AccountStatus) AccountStatus {
	if s == statusApproved {
		return StatusActive
	}
	return s
}

// ValidStatus reports whether s is a status the mutation endpoint accepts.
func ValidStatus(s AccountStatus) bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended:
		return true
	}
	return false
}

type AdminAccount struct {
	ID               int32           `json:"id"`
	Name             string          `json:"name"`
	Username         string          `json:"username"`
	Email            string          `json:"email"`
	PasswordHash     string          `json:"-"`
	Role             Role            `json:"role"`
	Status           AccountStatus   `json:"status"`
	ManagedEntities  ManagedEntities `json:"managed_entities"`
	ApprovedByID     *int32          `json:"approved_by_id,omitempty"`
	Location         string          `json:"location,omitempty"`
	Latitude         *float64        `json:"latitude,omitempty"`
	Longitude        *float64        `json:"longitude,omitempty"`
	CNIC             string          `json:"cnic,omitempty"`
	PhoneNumber      string          `json:"phone_number,omitempty"`
	CreatedOn        time.Time       `json:"created_on"`
	LastLogin        *time.Time      `json:"last_login,omitempty"`
	LastStatusChange *time.Time      `json:"last_status_change,omitempty"`
}

// Sanitized returns a copy safe to hand to any client. The hash already has
// a "-" JSON tag; clearing it as well keeps it out of logs and test dumps.
func (a *AdminAccount) Sanitized() *AdminAccount {
	cp := *a
	cp.PasswordHash = ""
	return &cp
}
