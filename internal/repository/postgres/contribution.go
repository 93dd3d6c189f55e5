package postgres

import (
	"context"
	"database/sql"
	"errors"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

type contributionRepository struct {
	db *sql.DB
}

func NewContributionRepository(db *sql.DB) repository.ContributionRepository {
	return &contributionRepository{db: db}
}

func (r *contributionRepository) Create(ctx context.Context, c *domain.Contribution) (bool, error) {
	// ON CONFLICT keeps the monthly rollover job idempotent.
	query := `INSERT INTO contributions (society_id, resident_id, month, amount_cents, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (resident_id, month) DO NOTHING
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.SocietyID, c.ResidentID, c.Month, c.AmountCents, c.Status).Scan(&c.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *contributionRepository) GetByID(ctx context.Context, id int32) (*domain.Contribution, error) {
	c := &domain.Contribution{}
	query := `SELECT id, society_id, resident_id, month, amount_cents, status, paid_on, recorded_by_id
		FROM contributions WHERE id = $1`
	var paidOn sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.SocietyID, &c.ResidentID, &c.Month, &c.AmountCents, &c.Status, &paidOn, &c.RecordedByID,
	)
	if err != nil {
		return nil, notFound(err)
	}
	if paidOn.Valid {
		t := paidOn.Time
		c.PaidOn = &t
	}
	return c, nil
}

func (r *contributionRepository) ListBySocietyMonth(ctx context.Context, societyID int32, month string) ([]domain.Contribution, error) {
	query := `SELECT id, society_id, resident_id, month, amount_cents, status, paid_on, recorded_by_id
		FROM contributions WHERE society_id = $1 AND month = $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, societyID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contributions []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		var paidOn sql.NullTime
		if err := rows.Scan(&c.ID, &c.SocietyID, &c.ResidentID, &c.Month, &c.AmountCents, &c.Status, &paidOn, &c.RecordedByID); err != nil {
			return nil, err
		}
		if paidOn.Valid {
			t := paidOn.Time
			c.PaidOn = &t
		}
		contributions = append(contributions, c)
	}
	return contributions, rows.Err()
}

func (r *contributionRepository) ListDueByMonth(ctx context.Context, month string) ([]domain.Contribution, []domain.Resident, error) {
	query := `SELECT c.id, c.society_id, c.resident_id, c.month, c.amount_cents, c.status,
		       r.id, r.society_id, r.name, r.email, r.phone_number, r.house_number, r.status
		FROM contributions c
		JOIN residents r ON c.resident_id = r.id
		WHERE c.month = $1 AND c.status = 'due'`
	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var contributions []domain.Contribution
	var residents []domain.Resident
	for rows.Next() {
		var c domain.Contribution
		var res domain.Resident
		if err := rows.Scan(
			&c.ID, &c.SocietyID, &c.ResidentID, &c.Month, &c.AmountCents, &c.Status,
			&res.ID, &res.SocietyID, &res.Name, &res.Email, &res.PhoneNumber, &res.HouseNumber, &res.Status,
		); err != nil {
			return nil, nil, err
		}
		contributions = append(contributions, c)
		residents = append(residents, res)
	}
	return contributions, residents, rows.Err()
}

func (r *contributionRepository) Update(ctx context.Context, c *domain.Contribution) error {
	query := `UPDATE contributions SET amount_cents=$1, status=$2, paid_on=$3, recorded_by_id=$4 WHERE id=$5`
	result, err := r.db.ExecContext(ctx, query, c.AmountCents, c.Status, c.PaidOn, c.RecordedByID, c.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
