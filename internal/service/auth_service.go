package service

import (
	"context"
	"fmt"

	"github.com/kazimashinani/kazi-api/internal/domain"
	"github.com/kazimashinani/kazi-api/internal/events"
	"github.com/kazimashinani/kazi-api/internal/platform/auth"
	"github.com/kazimashinani/kazi-api/internal/platform/phone"
	"github.com/kazimashinani/kazi-api/internal/repository"
	"github.com/kazimashinani/kazi-api/pkg/config"
	"github.com/kazimashinani/kazi-api/pkg/logger"
)

type AuthService interface {
	Signup(ctx context.Context, req *domain.SignupRequest) (*domain.User, string, error)
	Signin(ctx context.Context, req *domain.SigninRequest) (*domain.User, string, error)
	PhoneExists(ctx context.Context, rawPhone string) (bool, error)
	UpdateProfile(ctx context.Context, userID int64, req *domain.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int64, req *domain.ChangePasswordRequest) error
	ListEmployees(ctx context.Context) ([]domain.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	eventBus events.Publisher
	config   *config.Config
}

func NewAuthService(userRepo repository.UserRepository, eventBus events.Publisher, config *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		eventBus: eventBus,
		config:   config,
	}
}

func (s *authService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.User, string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	existing, err := s.userRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", domain.ErrConflict
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	// The unique index resolves the race between the check above and this
	// insert: a concurrent signup for the same digits surfaces as Conflict.
	user, err := s.userRepo.Create(ctx, req, passwordHash)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	if err := s.eventBus.Publish(ctx, events.UserRegistered, events.UserRegisteredEvent{
		UserID:       user.ID,
		Phone:        user.Phone,
		Role:         user.Role,
		RegisteredAt: user.JoinDate,
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish user.registered event", "error", err, "user_id", user.ID)
	}

	return user, token, nil
}

func (s *authService) Signin(ctx context.Context, req *domain.SigninRequest) (*domain.User, string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		// Unknown phone and wrong password report identically; the cause is
		// only visible in the logs.
		logger.DebugContext(ctx, "Signin failed: unknown phone")
		return nil, "", domain.ErrInvalidCredential
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		logger.DebugContext(ctx, "Signin failed: password mismatch", "user_id", user.ID)
		return nil, "", domain.ErrInvalidCredential
	}

	updated, err := s.userRepo.TouchLastLogin(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to update last login: %w", err)
	}
	if updated != nil {
		user = updated
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) PhoneExists(ctx context.Context, rawPhone string) (bool, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone.Normalize(rawPhone))
	if err != nil {
		return false, fmt.Errorf("failed to check phone: %w", err)
	}
	return user != nil, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int64, req *domain.UpdateProfileRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	// An employee keeps specialization, an employer keeps jobType; a field
	// sent for the other role never reaches the store.
	req.ClampToRole(existing.Role)

	user, err := s.userRepo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, req *domain.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return domain.ErrNotFound
	}

	if !auth.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredential
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Outstanding tokens stay valid until their expiry; there is no
	// revocation path after a password change.
	return s.userRepo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *authService) ListEmployees(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListEmployees(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return users, nil
}

func (s *authService) issueToken(user *domain.User) (string, error) {
	token, err := auth.NewAccessToken(
		user.ID,
		user.Phone,
		user.Role,
		s.config.Auth.JWTSecret,
		s.config.Auth.AccessTokenTTL,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create access token: %w", err)
	}
	return token, nil
}
