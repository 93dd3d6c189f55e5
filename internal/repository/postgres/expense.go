package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	query := `INSERT INTO expenses (society_id, month, category, description, amount_cents, recorded_by_id, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	e.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		e.SocietyID, e.Month, e.Category, e.Description, e.AmountCents, e.RecordedByID, e.CreatedOn,
	).Scan(&e.ID)
}

func (r *expenseRepository) ListBySociety(ctx context.Context, societyID int32, month string) ([]domain.Expense, error) {
	query := `SELECT id, society_id, month, category, description, amount_cents, recorded_by_id, created_on
		FROM expenses WHERE society_id = $1`
	args := []any{societyID}
	if month != "" {
		query += ` AND month = $2`
		args = append(args, month)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ID, &e.SocietyID, &e.Month, &e.Category, &e.Description, &e.AmountCents, &e.RecordedByID, &e.CreatedOn); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
