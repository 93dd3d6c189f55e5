package service

import (
	"context"
	"fmt"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"
)

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	emailSvc       EmailService
}

func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository, emailSvc EmailService) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		emailSvc:       emailSvc,
	}
}

func (s *enrollmentService) Apply(ctx context.Context, enrollment *domain.Enrollment) error {
	if enrollment.GuardianName == "" || enrollment.StudentName == "" || enrollment.Program == "" {
		return fmt.Errorf("%w: guardian, student and program are required", domain.ErrInvalidStatus)
	}
	enrollment.Status = domain.EnrollmentPending
	return s.enrollmentRepo.Create(ctx, enrollment)
}

func (s *enrollmentService) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.enrollmentRepo.List(ctx)
}

func (s *enrollmentService) SetStatus(ctx context.Context, id int32, status domain.EnrollmentStatus) (*domain.Enrollment, error) {
	switch status {
	case domain.EnrollmentPending, domain.EnrollmentEnrolled, domain.EnrollmentWithdrawn:
	default:
		return nil, domain.ErrInvalidStatus
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	enrollment.Status = status
	enrollment.LastStatusChange = &now
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	if enrollment.GuardianEmail != "" {
		email, name := enrollment.GuardianEmail, enrollment.GuardianName
		go func() {
			err := s.emailSvc.SendAccountStatusNotification(context.Background(), email, name, string(status), "")
			if err != nil {
				logger.Warn("enrollment status email failed", "enrollment_id", id, "error", err)
			}
		}()
	}

	return enrollment, nil
}
