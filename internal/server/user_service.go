package server

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rafael/jobmatch/internal/config"
	"github.com/rafael/jobmatch/internal/store"
	"github.com/rafael/jobmatch/internal/types"
)

// UserService provides business logic for account registration and login.
type UserService struct {
	store          store.Store
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(s store.Store, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          s,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new account. Employer accounts are assigned a fresh
// company id unless the request names one, so a company's first account
// creates the company implicitly.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if req.Role == types.RoleEmployer {
		if req.CompanyID != nil {
			user.CompanyID = req.CompanyID
		} else {
			companyID := uuid.New()
			user.CompanyID = &companyID
		}
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns the account.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Same error for unknown email and wrong password.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return user, nil
}
