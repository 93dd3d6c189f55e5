package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

const enrollmentColumns = `id, guardian_name, guardian_email, guardian_phone, student_name, student_age, program, status, created_on, last_status_change`

type enrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	query := `INSERT INTO enrollments (guardian_name, guardian_email, guardian_phone, student_name, student_age, program, status, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	e.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		e.GuardianName, e.GuardianEmail, e.GuardianPhone, e.StudentName, e.StudentAge, e.Program, e.Status, e.CreatedOn,
	).Scan(&e.ID)
}

func scanEnrollment(row interface{ Scan(...any) error }) (*domain.Enrollment, error) {
	e := &domain.Enrollment{}
	var lastStatusChange sql.NullTime
	err := row.Scan(
		&e.ID, &e.GuardianName, &e.GuardianEmail, &e.GuardianPhone, &e.StudentName,
		&e.StudentAge, &e.Program, &e.Status, &e.CreatedOn, &lastStatusChange,
	)
	if err != nil {
		return nil, err
	}
	if lastStatusChange.Valid {
		t := lastStatusChange.Time
		e.LastStatusChange = &t
	}
	return e, nil
}

func (r *enrollmentRepository) GetByID(ctx context.Context, id int32) (*domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments WHERE id = $1`
	e, err := scanEnrollment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

func (r *enrollmentRepository) List(ctx context.Context) ([]domain.Enrollment, error) {
	query := `SELECT ` + enrollmentColumns + ` FROM enrollments ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []domain.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, *e)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepository) Update(ctx context.Context, e *domain.Enrollment) error {
	query := `UPDATE enrollments SET status=$1, last_status_change=$2 WHERE id=$3`
	result, err := r.db.ExecContext(ctx, query, e.Status, e.LastStatusChange, e.ID)
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
