package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

type societyRepository struct {
	db *sql.DB
}

func NewSocietyRepository(db *sql.DB) repository.SocietyRepository {
	return &societyRepository{db: db}
}

func (r *societyRepository) Create(ctx context.Context, s *domain.Society) error {
	query := `INSERT INTO societies (name, community_admin, location, latitude, longitude, monthly_contribution_cents, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	s.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		s.Name, s.CommunityAdmin, s.Location, s.Latitude, s.Longitude, s.MonthlyContributionCents, s.CreatedOn,
	).Scan(&s.ID)
}

func (r *societyRepository) GetByID(ctx context.Context, id int32) (*domain.Society, error) {
	s := &domain.Society{}
	query := `SELECT id, name, community_admin, location, latitude, longitude, monthly_contribution_cents, created_on
		FROM societies WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.CommunityAdmin, &s.Location, &s.Latitude, &s.Longitude, &s.MonthlyContributionCents, &s.CreatedOn,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

func (r *societyRepository) List(ctx context.Context) ([]domain.Society, error) {
	query := `SELECT id, name, community_admin, location, latitude, longitude, monthly_contribution_cents, created_on
		FROM societies ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var societies []domain.Society
	for rows.Next() {
		var s domain.Society
		if err := rows.Scan(&s.ID, &s.Name, &s.CommunityAdmin, &s.Location, &s.Latitude, &s.Longitude, &s.MonthlyContributionCents, &s.CreatedOn); err != nil {
			return nil, err
		}
		societies = append(societies, s)
	}
	return societies, rows.Err()
}
