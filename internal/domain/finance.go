package domain

import "time"

type ContributionStatus string

const (
	ContributionDue    ContributionStatus = "due"
	ContributionPaid   ContributionStatus = "paid"
	ContributionWaived ContributionStatus = "waived"
)

// Contribution is one resident's monthly society contribution. Month uses
// the "2006-01" form; one row exists per resident per month.
type Contribution struct {
	ID           int32              `json:"id"`
	SocietyID    int32              `json:"society_id"`
	ResidentID   int32              `json:"resident_id"`
	Month        string             `json:"month"`
	AmountCents  int32              `json:"amount_cents"`
	Status       ContributionStatus `json:"status"`
	PaidOn       *time.Time         `json:"paid_on,omitempty"`
	RecordedByID *int32             `json:"recorded_by_id,omitempty"`
}

type Expense struct {
	ID           int32     `json:"id"`
	SocietyID    int32     `json:"society_id"`
	Month        string    `json:"month"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	AmountCents  int32     `json:"amount_cents"`
	RecordedByID int32     `json:"recorded_by_id"`
	CreatedOn    time.Time `json:"created_on"`
}

// Donation records a donation intent. Payment capture happens in the
// external processor; this row is the receipt of record.
type Donation struct {
	ID            int32     `json:"id"`
	DonorName     string    `json:"donor_name"`
	DonorEmail    string    `json:"donor_email"`
	AmountCents   int32     `json:"amount_cents"`
	Purpose       string    `json:"purpose,omitempty"`
	ReceiptNumber string    `json:"receipt_number"`
	CreatedOn     time.Time `json:"created_on"`
}
