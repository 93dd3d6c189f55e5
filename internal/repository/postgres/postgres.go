package postgres

import (
	"database/sql"
	"errors"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AdminRepository
	repository.SessionRepository
	repository.SocietyRepository
	repository.ResidentRepository
	repository.ContributionRepository
	repository.ExpenseRepository
	repository.DonationRepository
	repository.EnrollmentRepository
	repository.DiscussionRepository
	repository.ProposalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		AdminRepository:        NewAdminRepository(db),
		SessionRepository:      NewSessionRepository(db),
		SocietyRepository:      NewSocietyRepository(db),
		ResidentRepository:     NewResidentRepository(db),
		ContributionRepository: NewContributionRepository(db),
		ExpenseRepository:      NewExpenseRepository(db),
		DonationRepository:     NewDonationRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		DiscussionRepository:   NewDiscussionRepository(db),
		ProposalRepository:     NewProposalRepository(db),
	}
}

// uniqueViolation maps a Postgres 23505 error onto the given domain error so
// uniqueness races settle in the database, not in the application.
func uniqueViolation(err error, mapped error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return mapped
	}
	return err
}

// notFound maps sql.ErrNoRows onto domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
