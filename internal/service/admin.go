package service

import (
	"context"
	"fmt"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type adminService struct {
	adminRepo     repository.AdminRepository
	emailSvc      EmailService
	operatorEmail string
}

func NewAdminService(adminRepo repository.AdminRepository, emailSvc EmailService, operatorEmail string) AdminService {
	return &adminService{
		adminRepo:     adminRepo,
		emailSvc:      emailSvc,
		operatorEmail: operatorEmail,
	}
}

func (s *adminService) Register(ctx context.Context, input RegisterAdminInput) (*domain.AdminAccount, error) {
	account, err := s.create(ctx, input, domain.StatusPending)
	if err != nil {
		return nil, err
	}

	if s.operatorEmail != "" {
		subject := fmt.Sprintf("New admin registration: %s", account.Username)
		body := fmt.Sprintf("A new %s registration for %q (%s) is awaiting approval.", account.Role, account.Username, account.Email)
		s.notifyAsync("operator-registration", func(ctx context.Context) error {
			return s.emailSvc.SendAdminNotification(ctx, s.operatorEmail, subject, body)
		})
	}

	return account.Sanitized(), nil
}

func (s *adminService) CreateByOperator(ctx context.Context, input RegisterAdminInput) (*domain.AdminAccount, error) {
	// Operator path skips the approval gate entirely.
	account, err := s.create(ctx, input, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	return account.Sanitized(), nil
}

func (s *adminService) create(ctx context.Context, input RegisterAdminInput, status domain.AccountStatus) (*domain.AdminAccount, error) {
	if !input.Role.Valid() {
		return nil, domain.ErrUnknownRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.AdminAccount{
		Name:            input.Name,
		Username:        input.Username,
		Email:           input.Email,
		PasswordHash:    string(hash),
		Role:            input.Role,
		Status:          status,
		ManagedEntities: input.ManagedEntities,
		Location:        input.Location,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		CNIC:            input.CNIC,
		PhoneNumber:     input.PhoneNumber,
	}

	if err := s.adminRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Approve runs the authorization-critical workflow. The gates run in a fixed
// order and the first failure wins: self-approval, target existence and tier,
// strict rank, geographic jurisdiction.
func (s *adminService) Approve(ctx context.Context, actingAdminID, targetAdminID int32) (*domain.AdminAccount, error) {
	if actingAdminID == targetAdminID {
		return nil, domain.ErrSelfApproval
	}

	target, err := s.adminRepo.GetByID(ctx, targetAdminID)
	if err != nil {
		return nil, err
	}
	if !target.Role.IsAdminTier() {
		// Scope-holder roles are not subject to this approval gate.
		return nil, domain.ErrNotFound
	}

	acting, err := s.adminRepo.GetByID(ctx, actingAdminID)
	if err != nil {
		return nil, fmt.Errorf("failed to load acting admin: %w", err)
	}

	// An unrecognized role on either side denies; levels never default.
	if _, ok := acting.Role.Level(); !ok {
		return nil, domain.ErrUnknownRole
	}
	if _, ok := target.Role.Level(); !ok {
		return nil, domain.ErrUnknownRole
	}
	if !domain.Outranks(acting.Role, target.Role) {
		return nil, domain.ErrInsufficientRank
	}

	if !domain.WithinJurisdiction(acting, target) {
		return nil, domain.ErrOutsideJurisdiction
	}

	now := time.Now().UTC()
	target.Status = domain.StatusActive
	target.LastStatusChange = &now
	target.ApprovedByID = &acting.ID
	if err := s.adminRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	logger.Info("admin approved",
		"acting_admin_id", acting.ID, "acting_role", acting.Role,
		"target_admin_id", target.ID, "target_role", target.Role)

	email, name := target.Email, target.Name
	s.notifyAsync("approval", func(ctx context.Context) error {
		return s.emailSvc.SendAccountStatusNotification(ctx, email, name, string(domain.StatusActive), "Your administrator account has been approved.")
	})

	return target.Sanitized(), nil
}

// SetStatus is the break-glass operator path: no rank or jurisdiction check,
// only status vocabulary and target existence. The acting admin id is logged
// with every override.
func (s *adminService) SetStatus(ctx context.Context, actingAdminID, targetAdminID int32, status domain.AccountStatus) (*domain.AdminAccount, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	target, err := s.adminRepo.GetByID(ctx, targetAdminID)
	if err != nil {
		return nil, err
	}
	if !target.Role.IsAdminTier() {
		return nil, domain.ErrNotFound
	}

	target.Status = status
	if status == domain.StatusActive {
		now := time.Now().UTC()
		target.LastStatusChange = &now
	}
	if err := s.adminRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	logger.Info("admin status override",
		"acting_admin_id", actingAdminID, "target_admin_id", target.ID, "status", status)

	email, name := target.Email, target.Name
	s.notifyAsync("status-change", func(ctx context.Context) error {
		return s.emailSvc.SendAccountStatusNotification(ctx, email, name, string(status), "")
	})

	return target.Sanitized(), nil
}

func (s *adminService) List(ctx context.Context, role domain.Role) ([]domain.AdminAccount, error) {
	var (
		admins []domain.AdminAccount
		err    error
	)
	if role == "" {
		admins, err = s.adminRepo.List(ctx)
	} else {
		if !role.Valid() {
			return nil, domain.ErrUnknownRole
		}
		admins, err = s.adminRepo.ListByRole(ctx, role)
	}
	if err != nil {
		return nil, err
	}

	for i := range admins {
		admins[i].PasswordHash = ""
	}
	return admins, nil
}

// notifyAsync fires an email without blocking or failing the triggering
// operation. A fresh context detaches delivery from the request lifetime.
func (s *adminService) notifyAsync(what string, fn func(ctx context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			logger.Warn("email notification failed", "notification", what, "error", err)
		}
	}()
}
