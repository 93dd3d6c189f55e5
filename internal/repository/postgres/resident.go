package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

const residentColumns = `id, society_id, name, email, phone_number, house_number, status, approved_by_id, created_on, last_status_change`

type residentRepository struct {
	db *sql.DB
}

func NewResidentRepository(db *sql.DB) repository.ResidentRepository {
	return &residentRepository{db: db}
}

func (r *residentRepository) Create(ctx context.Context, res *domain.Resident) error {
	query := `INSERT INTO residents (society_id, name, email, phone_number, house_number, status, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	res.CreatedOn = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		res.SocietyID, res.Name, res.Email, res.PhoneNumber, res.HouseNumber, res.Status, res.CreatedOn,
	).Scan(&res.ID)
	if err != nil {
		return uniqueViolation(err, domain.ErrDuplicateIdentity)
	}
	return nil
}

func scanResident(row interface{ Scan(...any) error }) (*domain.Resident, error) {
	res := &domain.Resident{}
	var lastStatusChange sql.NullTime
	err := row.Scan(
		&res.ID, &res.SocietyID, &res.Name, &res.Email, &res.PhoneNumber, &res.HouseNumber,
		&res.Status, &res.ApprovedByID, &res.CreatedOn, &lastStatusChange,
	)
	if err != nil {
		return nil, err
	}
	if lastStatusChange.Valid {
		t := lastStatusChange.Time
		res.LastStatusChange = &t
	}
	return res, nil
}

func (r *residentRepository) GetByID(ctx context.Context, id int32) (*domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE id = $1`
	res, err := scanResident(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return res, nil
}

func (r *residentRepository) ListBySociety(ctx context.Context, societyID int32) ([]domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE society_id = $1 ORDER BY id`
	return r.list(ctx, query, societyID)
}

func (r *residentRepository) ListApprovedBySociety(ctx context.Context, societyID int32) ([]domain.Resident, error) {
	query := `SELECT ` + residentColumns + ` FROM residents WHERE society_id = $1 AND status = 'approved' ORDER BY id`
	return r.list(ctx, query, societyID)
}

func (r *residentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Resident, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var residents []domain.Resident
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, err
		}
		residents = append(residents, *res)
	}
	return residents, rows.Err()
}

func (r *residentRepository) Update(ctx context.Context, res *domain.Resident) error {
	query := `UPDATE residents SET name=$1, email=$2, phone_number=$3, house_number=$4, status=$5, approved_by_id=$6, last_status_change=$7 WHERE id=$8`
	result, err := r.db.ExecContext(ctx, query,
		res.Name, res.Email, res.PhoneNumber, res.HouseNumber, res.Status, res.ApprovedByID, res.LastStatusChange, res.ID,
	)
	if err != nil {
		return uniqueViolation(err, domain.ErrDuplicateIdentity)
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
