package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

type donationRepository struct {
	db *sql.DB
}

func NewDonationRepository(db *sql.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, d *domain.Donation) error {
	query := `INSERT INTO donations (donor_name, donor_email, amount_cents, purpose, receipt_number, created_on)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	d.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		d.DonorName, d.DonorEmail, d.AmountCents, d.Purpose, d.ReceiptNumber, d.CreatedOn,
	).Scan(&d.ID)
}

func (r *donationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	query := `SELECT id, donor_name, donor_email, amount_cents, purpose, receipt_number, created_on
		FROM donations ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.DonorName, &d.DonorEmail, &d.AmountCents, &d.Purpose, &d.ReceiptNumber, &d.CreatedOn); err != nil {
			return nil, err
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}
