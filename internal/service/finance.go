package service

import (
	"context"
	"fmt"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"

	"github.com/google/uuid"
)

type financeService struct {
	contributionRepo repository.ContributionRepository
	expenseRepo      repository.ExpenseRepository
	donationRepo     repository.DonationRepository
}

func NewFinanceService(contributionRepo repository.ContributionRepository, expenseRepo repository.ExpenseRepository, donationRepo repository.DonationRepository) FinanceService {
	return &financeService{
		contributionRepo: contributionRepo,
		expenseRepo:      expenseRepo,
		donationRepo:     donationRepo,
	}
}

func (s *financeService) ListContributions(ctx context.Context, societyID int32, month string) ([]domain.Contribution, error) {
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}
	return s.contributionRepo.ListBySocietyMonth(ctx, societyID, month)
}

func (s *financeService) MarkContributionPaid(ctx context.Context, actingAdminID, contributionID int32) (*domain.Contribution, error) {
	contribution, err := s.contributionRepo.GetByID(ctx, contributionID)
	if err != nil {
		return nil, err
	}
	if contribution.Status == domain.ContributionPaid {
		// Marking twice is a no-op, not an error.
		return contribution, nil
	}

	now := time.Now().UTC()
	contribution.Status = domain.ContributionPaid
	contribution.PaidOn = &now
	contribution.RecordedByID = &actingAdminID
	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, err
	}

	logger.Info("contribution marked paid",
		"acting_admin_id", actingAdminID, "contribution_id", contribution.ID, "month", contribution.Month)
	return contribution, nil
}

func (s *financeService) RecordExpense(ctx context.Context, expense *domain.Expense) error {
	if expense.AmountCents <= 0 {
		return fmt.Errorf("%w: expense amount must be positive", domain.ErrInvalidStatus)
	}
	if expense.Month == "" {
		expense.Month = time.Now().UTC().Format("2006-01")
	}
	return s.expenseRepo.Create(ctx, expense)
}

func (s *financeService) ListExpenses(ctx context.Context, societyID int32, month string) ([]domain.Expense, error) {
	return s.expenseRepo.ListBySociety(ctx, societyID, month)
}

func (s *financeService) RecordDonation(ctx context.Context, donation *domain.Donation) error {
	if donation.AmountCents <= 0 {
		return fmt.Errorf("%w: donation amount must be positive", domain.ErrInvalidStatus)
	}
	donation.ReceiptNumber = fmt.Sprintf("MH-%s", uuid.NewString())
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return err
	}

	logger.Info("donation recorded",
		"receipt", donation.ReceiptNumber, "amount_cents", donation.AmountCents)
	return nil
}

func (s *financeService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	return s.donationRepo.List(ctx)
}
