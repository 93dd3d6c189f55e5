package repository

import (
	"context"
	"time"

	"masjidhub-backend/internal/domain"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminAccount) error
	GetByID(ctx context.Context, id int32) (*domain.AdminAccount, error)
	GetByUsername(ctx context.Context, username string) (*domain.AdminAccount, error)
	List(ctx context.Context) ([]domain.AdminAccount, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.AdminAccount, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.AdminAccount, error)
	CountByRole(ctx context.Context, role domain.Role) (int32, error)
	Update(ctx context.Context, admin *domain.AdminAccount) error
	SetLastLogin(ctx context.Context, id int32, at time.Time) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type SocietyRepository interface {
	Create(ctx context.Context, society *domain.Society) error
	GetByID(ctx context.Context, id int32) (*domain.Society, error)
	List(ctx context.Context) ([]domain.Society, error)
}

type ResidentRepository interface {
	Create(ctx context.Context, resident *domain.Resident) error
	GetByID(ctx context.Context, id int32) (*domain.Resident, error)
	ListBySociety(ctx context.Context, societyID int32) ([]domain.Resident, error)
	ListApprovedBySociety(ctx context.Context, societyID int32) ([]domain.Resident, error)
	Update(ctx context.Context, resident *domain.Resident) error
}

type ContributionRepository interface {
	// Create inserts a due row unless one already exists for the resident and
	// month; ok is false when the row was skipped.
	Create(ctx context.Context, c *domain.Contribution) (ok bool, err error)
	GetByID(ctx context.Context, id int32) (*domain.Contribution, error)
	ListBySocietyMonth(ctx context.Context, societyID int32, month string) ([]domain.Contribution, error)
	ListDueByMonth(ctx context.Context, month string) ([]domain.Contribution, []domain.Resident, error)
	Update(ctx context.Context, c *domain.Contribution) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	ListBySociety(ctx context.Context, societyID int32, month string) ([]domain.Expense, error)
}

type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) error
	List(ctx context.Context) ([]domain.Donation, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	GetByID(ctx context.Context, id int32) (*domain.Enrollment, error)
	List(ctx context.Context) ([]domain.Enrollment, error)
	Update(ctx context.Context, enrollment *domain.Enrollment) error
}

type DiscussionRepository interface {
	Create(ctx context.Context, discussion *domain.Discussion) error
	GetByID(ctx context.Context, id int32) (*domain.Discussion, error)
	ListBySociety(ctx context.Context, societyID int32) ([]domain.Discussion, error)
	CreateReply(ctx context.Context, reply *domain.Reply) error
	ListReplies(ctx context.Context, discussionID int32) ([]domain.Reply, error)
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *domain.Proposal) error
	GetByID(ctx context.Context, id int32) (*domain.Proposal, error)
	ListBySociety(ctx context.Context, societyID int32) ([]domain.Proposal, error)
	Update(ctx context.Context, proposal *domain.Proposal) error
	CreateVote(ctx context.Context, vote *domain.Vote) error
}
