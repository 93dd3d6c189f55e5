package domain

import "time"

// Society is a residential block/society attached to a mosque community.
// CommunityAdmin names the community-tier admin it sits under, using the same
// username-pointer convention as ManagedEntities.
type Society struct {
	ID                       int32     `json:"id"`
	Name                     string    `json:"name"`
	CommunityAdmin           string    `json:"community_admin"`
	Location                 string    `json:"location,omitempty"`
	Latitude                 *float64  `json:"latitude,omitempty"`
	Longitude                *float64  `json:"longitude,omitempty"`
	MonthlyContributionCents int32     `json:"monthly_contribution_cents"`
	CreatedOn                time.Time `json:"created_on"`
}

type ResidentStatus string

const (
	ResidentPending  ResidentStatus = "pending"
	ResidentApproved ResidentStatus = "approved"
	ResidentRejected ResidentStatus = "rejected"
)

type Resident struct {
	ID               int32          `json:"id"`
	SocietyID        int32          `json:"society_id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	PhoneNumber      string         `json:"phone_number,omitempty"`
	HouseNumber      string         `json:"house_number"`
	Status           ResidentStatus `json:"status"`
	ApprovedByID     *int32         `json:"approved_by_id,omitempty"`
	CreatedOn        time.Time      `json:"created_on"`
	LastStatusChange *time.Time     `json:"last_status_change,omitempty"`
}
