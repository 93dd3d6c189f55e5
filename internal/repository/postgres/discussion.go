package postgres

import (
	"context"
	"database/sql"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"
)

type discussionRepository struct {
	db *sql.DB
}

func NewDiscussionRepository(db *sql.DB) repository.DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Create(ctx context.Context, d *domain.Discussion) error {
	query := `INSERT INTO discussions (society_id, author_name, title, body, created_on)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	d.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, d.SocietyID, d.AuthorName, d.Title, d.Body, d.CreatedOn).Scan(&d.ID)
}

func (r *discussionRepository) GetByID(ctx context.Context, id int32) (*domain.Discussion, error) {
	d := &domain.Discussion{}
	query := `SELECT id, society_id, author_name, title, body, created_on FROM discussions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.SocietyID, &d.AuthorName, &d.Title, &d.Body, &d.CreatedOn)
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

func (r *discussionRepository) ListBySociety(ctx context.Context, societyID int32) ([]domain.Discussion, error) {
	query := `SELECT id, society_id, author_name, title, body, created_on
		FROM discussions WHERE society_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, societyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discussions []domain.Discussion
	for rows.Next() {
		var d domain.Discussion
		if err := rows.Scan(&d.ID, &d.SocietyID, &d.AuthorName, &d.Title, &d.Body, &d.CreatedOn); err != nil {
			return nil, err
		}
		discussions = append(discussions, d)
	}
	return discussions, rows.Err()
}

func (r *discussionRepository) CreateReply(ctx context.Context, reply *domain.Reply) error {
	query := `INSERT INTO discussion_replies (discussion_id, author_name, body, created_on)
		VALUES ($1, $2, $3, $4) RETURNING id`
	reply.CreatedOn = time.Now().UTC()
	return r.db.QueryRowContext(ctx, query, reply.DiscussionID, reply.AuthorName, reply.Body, reply.CreatedOn).Scan(&reply.ID)
}

func (r *discussionRepository) ListReplies(ctx context.Context, discussionID int32) ([]domain.Reply, error) {
	query := `SELECT id, discussion_id, author_name, body, created_on
		FROM discussion_replies WHERE discussion_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, discussionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []domain.Reply
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(&reply.ID, &reply.DiscussionID, &reply.AuthorName, &reply.Body, &reply.CreatedOn); err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}
