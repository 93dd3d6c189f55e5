package seed

import (
	"context"
	"errors"
	"fmt"

	"masjidhub-backend/internal/config"
	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// BootstrapGlobalAdmin creates the first global admin when none exists. The
// approval chain needs a root: nobody outranks a global admin, so the first
// one cannot arrive through the registration flow.
func BootstrapGlobalAdmin(ctx context.Context, adminRepo repository.AdminRepository, cfg config.BootstrapConfig) error {
	if cfg.Username == "" {
		return nil
	}

	count, err := adminRepo.CountByRole(ctx, domain.RoleGlobalAdmin)
	if err != nil {
		return fmt.Errorf("failed to count global admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.Password == "" {
		return fmt.Errorf("bootstrap password is required to seed %q", cfg.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := &domain.AdminAccount{
		Name:         cfg.Name,
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleGlobalAdmin,
		Status:       domain.StatusActive,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			// Another instance won the race; that is fine.
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info("bootstrap global admin created", "username", admin.Username)
	return nil
}
