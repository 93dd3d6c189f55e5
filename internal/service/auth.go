package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"masjidhub-backend/internal/domain"
	"masjidhub-backend/internal/logger"
	"masjidhub-backend/internal/repository"
	"masjidhub-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	tokens      security.TokenManager
	sessionTTL  time.Duration
}

func NewAuthService(adminRepo repository.AdminRepository, sessionRepo repository.SessionRepository, tokens security.TokenManager, sessionTTL time.Duration) AuthService {
	return &authService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		sessionTTL:  sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.AdminAccount, string, error) {
	account, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same error as a wrong password; do not reveal which.
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}
	if !account.Role.IsAdminTier() {
		return nil, "", domain.ErrInvalidCredentials
	}

	if account.Status != domain.StatusActive {
		return nil, "", &domain.AccountNotActiveError{Status: account.Status}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.adminRepo.SetLastLogin(ctx, account.ID, now); err != nil {
		logger.Warn("failed to stamp last login", "admin_id", account.ID, "error", err)
	}
	account.LastLogin = &now

	session := &domain.Session{
		ID:        uuid.NewString(),
		AdminID:   account.ID,
		CreatedOn: now,
		ExpiresOn: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokens.GenerateSessionToken(session.ID, session.ExpiresOn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return account.Sanitized(), token, nil
}

func (s *authService) CurrentSession(ctx context.Context, token string) (*domain.AdminAccount, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	sessionID, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.sessionRepo.Delete(ctx, session.ID)
		return nil, domain.ErrUnauthenticated
	}

	// The account is re-read on every call: a suspend or demotion kills the
	// session on the next request, no matter how fresh the cookie is.
	account, err := s.adminRepo.GetByID(ctx, session.AdminID)
	if err != nil || !account.Role.IsAdminTier() || account.Status != domain.StatusActive {
		_ = s.sessionRepo.Delete(ctx, session.ID)
		return nil, domain.ErrUnauthenticated
	}

	return account.Sanitized(), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}
