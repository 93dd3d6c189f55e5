package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

const adminColumns = `id, name, username, email, password_hash, role, status, managed_entities,
	approved_by_id, location, latitude, longitude, cnic, phone_number,
	created_on, last_login, last_status_change`

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.AdminAccount) error {
	query := `INSERT INTO admin_accounts
		(name, username, email, password_hash, role, status, managed_entities, location, latitude, longitude, cnic, phone_number, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	a.CreatedOn = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query,
		a.Name, a.Username, a.Email, a.PasswordHash, a.Role, a.Status, a.ManagedEntities,
		a.Location, a.Latitude, a.Longitude, a.CNIC, a.PhoneNumber, a.CreatedOn,
	).Scan(&a.ID)
	if err != nil {
		return uniqueViolation(err, domain.ErrDuplicateIdentity)
	}
	return nil
}

func scanAdmin(row interface{ Scan(...any) error }) (*domain.AdminAccount, error) {
	a := &domain.AdminAccount{}
	var lastLogin, lastStatusChange sql.NullTime
	err := row.Scan(
		&a.ID, &a.Name, &a.Username, &a.Email, &a.PasswordHash, &a.Role, &a.Status,
		&a.ManagedEntities, &a.ApprovedByID, &a.Location, &a.Latitude, &a.Longitude,
		&a.CNIC, &a.PhoneNumber, &a.CreatedOn, &lastLogin, &lastStatusChange,
	)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		a.LastLogin = &t
	}
	if lastStatusChange.Valid {
		t := lastStatusChange.Time
		a.LastStatusChange = &t
	}
	a.Status = domain.NormalizeStatus(a.Status)
	return a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int32) (*domain.AdminAccount, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_accounts WHERE id = $1`
	a, err := scanAdmin(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_accounts WHERE username = $1`
	a, err := scanAdmin(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

func (r *adminRepository) List(ctx context.Context) ([]domain.AdminAccount, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_accounts ORDER BY id`
	return r.list(ctx, query)
}

func (r *adminRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.AdminAccount, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_accounts WHERE role = $1 ORDER BY id`
	return r.list(ctx, query, role)
}

func (r *adminRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.AdminAccount, error) {
	query := `SELECT ` + adminColumns + ` FROM admin_accounts WHERE status = 'pending' AND created_on < $1 ORDER BY created_on`
	return r.list(ctx, query, cutoff)
}

func (r *adminRepository) list(ctx context.Context, query string, args ...any) ([]domain.AdminAccount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.AdminAccount
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *a)
	}
	return admins, rows.Err()
}

func (r *adminRepository) CountByRole(ctx context.Context, role domain.Role) (int32, error) {
	query := `SELECT COUNT(*) FROM admin_accounts WHERE role = $1`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, role).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *adminRepository) Update(ctx context.Context, a *domain.AdminAccount) error {
	query := `UPDATE admin_accounts
		SET name=$1, email=$2, role=$3, status=$4, managed_entities=$5, approved_by_id=$6,
		    location=$7, latitude=$8, longitude=$9, cnic=$10, phone_number=$11, last_status_change=$12
		WHERE id=$13`
	result, err := r.db.ExecContext(ctx, query,
		a.Name, a.Email, a.Role, a.Status, a.ManagedEntities, a.ApprovedByID,
		a.Location, a.Latitude, a.Longitude, a.CNIC, a.PhoneNumber, a.LastStatusChange, a.ID,
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

func (r *adminRepository) SetLastLogin(ctx context.Context, id int32, at time.Time) error {
	query := `UPDATE admin_accounts SET last_login=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, at, id)
	return err
}
