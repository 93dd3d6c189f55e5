package service

import (
	"context"
	"fmt"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"
)

type communityService struct {
	societyRepo  repository.SocietyRepository
	residentRepo repository.ResidentRepository
	emailSvc     EmailService
}

func NewCommunityService(societyRepo repository.SocietyRepository, residentRepo repository.ResidentRepository, emailSvc EmailService) CommunityService {
	return &communityService{
		societyRepo:  societyRepo,
		residentRepo: residentRepo,
		emailSvc:     emailSvc,
	}
}

func (s *communityService) CreateSociety(ctx context.Context, society *domain.Society) error {
	if society.Name == "" || society.CommunityAdmin == "" {
		return fmt.Errorf("%w: society name and community admin are required", domain.ErrInvalidStatus)
	}
	return s.societyRepo.Create(ctx, society)
}

func (s *communityService) GetSociety(ctx context.Context, id int32) (*domain.Society, error) {
	return s.societyRepo.GetByID(ctx, id)
}

func (s *communityService) ListSocieties(ctx context.Context) ([]domain.Society, error) {
	return s.societyRepo.List(ctx)
}

func (s *communityService) RegisterResident(ctx context.Context, resident *domain.Resident) error {
	if _, err := s.societyRepo.GetByID(ctx, resident.SocietyID); err != nil {
		return err
	}
	resident.Status = domain.ResidentPending
	return s.residentRepo.Create(ctx, resident)
}

func (s *communityService) ListResidents(ctx context.Context, societyID int32) ([]domain.Resident, error) {
	return s.residentRepo.ListBySociety(ctx, societyID)
}

func (s *communityService) SetResidentStatus(ctx context.Context, actingAdminID, residentID int32, status domain.ResidentStatus) (*domain.Resident, error) {
	switch status {
	case domain.ResidentPending, domain.ResidentApproved, domain.ResidentRejected:
	default:
		return nil, domain.ErrInvalidStatus
	}

	resident, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	resident.Status = status
	resident.LastStatusChange = &now
	if status == domain.ResidentApproved {
		resident.ApprovedByID = &actingAdminID
	}
	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, err
	}

	logger.Info("resident status changed",
		"acting_admin_id", actingAdminID, "resident_id", resident.ID, "status", status)

	if resident.Email != "" {
		email, name := resident.Email, resident.Name
		go func() {
			err := s.emailSvc.SendAccountStatusNotification(context.Background(), email, name, string(status), "")
			if err != nil {
				logger.Warn("resident status email failed", "resident_id", residentID, "error", err)
			}
		}()
	}

	return resident, nil
}
