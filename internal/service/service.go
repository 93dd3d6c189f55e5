package service

import (
	"context"

	"masjidhub-backend/internal/domain"
)

// RegisterAdminInput carries the fields accepted by admin registration.
type RegisterAdminInput struct {
	Name            string                 `json:"name"`
	Username        string                 `json:"username"`
	Email           string                 `json:"email"`
	Password        string                 `json:"password"`
	Role            domain.Role            `json:"role"`
	ManagedEntities domain.ManagedEntities `json:"managed_entities"`
	Location        string                 `json:"location"`
	Latitude        *float64               `json:"latitude"`
	Longitude       *float64               `json:"longitude"`
	CNIC            string                 `json:"cnic"`
	PhoneNumber     string                 `json:"phone_number"`
}

type AdminService interface {
	Register(ctx context.Context, input RegisterAdminInput) (*domain.AdminAccount, error)
	CreateByOperator(ctx context.Context, input RegisterAdminInput) (*domain.AdminAccount, error)
	Approve(ctx context.Context, actingAdminID, targetAdminID int32) (*domain.AdminAccount, error)
	SetStatus(ctx context.Context, actingAdminID, targetAdminID int32, status domain.AccountStatus) (*domain.AdminAccount, error)
	List(ctx context.Context, role domain.Role) ([]domain.AdminAccount, error)
}

type AuthService interface {
	// Login returns the password-stripped account and a signed session token.
	Login(ctx context.Context, username, password string) (*domain.AdminAccount, string, error)
	// CurrentSession re-reads the account behind the token on every call and
	// returns domain.ErrUnauthenticated once the account is gone, demoted or
	// no longer active.
	CurrentSession(ctx context.Context, token string) (*domain.AdminAccount, error)
	Logout(ctx context.Context, token string) error
}

type CommunityService interface {
	CreateSociety(ctx context.Context, society *domain.Society) error
	GetSociety(ctx context.Context, id int32) (*domain.Society, error)
	ListSocieties(ctx context.Context) ([]domain.Society, error)
	RegisterResident(ctx context.Context, resident *domain.Resident) error
	ListResidents(ctx context.Context, societyID int32) ([]domain.Resident, error)
	SetResidentStatus(ctx context.Context, actingAdminID, residentID int32, status domain.ResidentStatus) (*domain.Resident, error)
}

type FinanceService interface {
	ListContributions(ctx context.Context, societyID int32, month string) ([]domain.Contribution, error)
	MarkContributionPaid(ctx context.Context, actingAdminID, contributionID int32) (*domain.Contribution, error)
	RecordExpense(ctx context.Context, expense *domain.Expense) error
	ListExpenses(ctx context.Context, societyID int32, month string) ([]domain.Expense, error)
	RecordDonation(ctx context.Context, donation *domain.Donation) error
	ListDonations(ctx context.Context) ([]domain.Donation, error)
}

type ForumService interface {
	CreateDiscussion(ctx context.Context, discussion *domain.Discussion) error
	ListDiscussions(ctx context.Context, societyID int32) ([]domain.Discussion, error)
	AddReply(ctx context.Context, reply *domain.Reply) error
	ListReplies(ctx context.Context, discussionID int32) ([]domain.Reply, error)
	CreateProposal(ctx context.Context, proposal *domain.Proposal) error
	ListProposals(ctx context.Context, societyID int32) ([]domain.Proposal, error)
	CastVote(ctx context.Context, proposalID, residentID int32, choice domain.VoteChoice) (*domain.Proposal, error)
	CloseProposal(ctx context.Context, actingAdminID, proposalID int32) (*domain.Proposal, error)
}

type EnrollmentService interface {
	Apply(ctx context.Context, enrollment *domain.Enrollment) error
	List(ctx context.Context) ([]domain.Enrollment, error)
	SetStatus(ctx context.Context, id int32, status domain.EnrollmentStatus) (*domain.Enrollment, error)
}

type EmailService interface {
	SendAdminNotification(ctx context.Context, to, subject, message string) error
	SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error
	SendContributionReminder(ctx context.Context, email, name, month string, amountCents int32) error
}
