package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

const proposalColumns = `p.id, p.society_id, p.title, p.description, p.status, p.created_by_id, p.created_on,
	COUNT(*) FILTER (WHERE v.choice = 'for'),
	COUNT(*) FILTER (WHERE v.choice = 'against')`

type proposalRepository struct {
	db *sql.DB
}

func NewProposalRepository(db *sql.DB) repository.ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, p *domain.Proposal) error {
	query := `INSERT INTO proposals (society_id, title, description, status, created_by_id, created_on)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	p.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query,
		p.SocietyID, p.Title, p.Description, p.Status, p.CreatedByID, p.CreatedOn,
	).Scan(&p.ID)
}

func (r *proposalRepository) GetByID(ctx context.Context, id int32) (*domain.Proposal, error) {
	p := &domain.Proposal{}
	query := `SELECT ` + proposalColumns + `
		FROM proposals p
		LEFT JOIN proposal_votes v ON v.proposal_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.SocietyID, &p.Title, &p.Description, &p.Status, &p.CreatedByID, &p.CreatedOn,
		&p.VotesFor, &p.VotesAgainst,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *proposalRepository) ListBySociety(ctx context.Context, societyID int32) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + `
		FROM proposals p
		LEFT JOIN proposal_votes v ON v.proposal_id = p.id
		WHERE p.society_id = $1
		GROUP BY p.id
		ORDER BY p.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, societyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		var p domain.Proposal
		if err := rows.Scan(
			&p.ID, &p.SocietyID, &p.Title, &p.Description, &p.Status, &p.CreatedByID, &p.CreatedOn,
			&p.VotesFor, &p.VotesAgainst,
		); err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func (r *proposalRepository) Update(ctx context.Context, p *domain.Proposal) error {
	query := `UPDATE proposals SET title=$1, description=$2, status=$3 WHERE id=$4`
	result, err := r.db.ExecContext(ctx, query, p.Title, p.Description, p.Status, p.ID)
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

func (r *proposalRepository) CreateVote(ctx context.Context, v *domain.Vote) error {
	query := `INSERT INTO proposal_votes (proposal_id, resident_id, choice, created_on)
		VALUES ($1, $2, $3, $4) RETURNING id`
	v.CreatedOn = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, v.ProposalID, v.ResidentID, v.Choice, v.CreatedOn).Scan(&v.ID)
	if err != nil {
		return uniqueViolation(err, domain.ErrAlreadyVoted)
	}
	return nil
}
