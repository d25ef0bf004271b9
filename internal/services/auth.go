package services

import (
	"context"
	"errors"
	"fmt"

	"events-marketplace/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential checks
type AuthService struct {
	userRepo UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates a new user account. An empty role defaults to client;
// admin accounts cannot be self-registered.
func (s *AuthService) Register(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	if req.Role == "" {
		req.Role = models.RoleClient
	}
	if req.Role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: cannot self-register as admin", models.ErrInvalidInput)
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.Create(ctx, req, string(hash))
}

// Authenticate verifies a user's credentials and returns the account.
// Missing accounts and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsActive {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by id
func (s *AuthService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile updates the caller's own profile
func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req *models.UserUpdateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	return s.userRepo.UpdateProfile(ctx, userID, req)
}
