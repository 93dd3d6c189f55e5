package domain

import "time"

type EnrollmentStatus string

const (
	EnrollmentPending   EnrollmentStatus = "pending"
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentWithdrawn EnrollmentStatus = "withdrawn"
)

// Enrollment is a madrasa enrollment application filed by a guardian.
type Enrollment struct {
	ID               int32            `json:"id"`
	GuardianName     string           `json:"guardian_name"`
	GuardianEmail    string           `json:"guardian_email"`
	GuardianPhone    string           `json:"guardian_phone,omitempty"`
	StudentName      string           `json:"student_name"`
	StudentAge       int32            `json:"student_age"`
	Program          string           `json:"program"`
	Status           EnrollmentStatus `json:"status"`
	CreatedOn        time.Time        `json:"created_on"`
	LastStatusChange *time.Time       `json:"last_status_change,omitempty"`
}
