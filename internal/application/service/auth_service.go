package service

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/internal/domain/enum"
	"github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/internal/pkg/auth"
	"github.com/sangkips/till-pos/pkg/apperror"
)

// AuthService handles authentication against the credential store
type AuthService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	vatRate  decimal.Decimal
	logger   *log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, vatRate decimal.Decimal, logger *log.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		vatRate:  vatRate,
		logger:   logger,
	}
}

// Login authenticates a user and opens a session for them. The username
// is trimmed of surrounding whitespace before lookup. On success the
// record's last-login timestamp is updated and the store persisted.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	user, err := s.userRepo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	now := time.Now().Format(time.RFC3339)
	user.LastLogin = &now
	if err := s.userRepo.Put(ctx, username, user); err != nil {
		// The credentials checked out; a failed timestamp write should
		// not lock the cashier out.
		s.logger.WithError(err).WithField("username", username).Warn("failed to record last login")
	}

	return NewSession(entity.NewProfile(username, user), s.vatRate), nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	Username     string
	Password     string
	FullName     string
	Email        string
	Role         string
	ProfileImage string
}

// Register creates a new user account. The role is coerced to cashier if
// it is not one of the recognized values.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) error {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return apperror.NewValidationError("Username cannot be empty")
	}
	if input.Password == "" {
		return apperror.NewValidationError("Password cannot be empty")
	}

	existing, err := s.userRepo.Get(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.NewConflictError("Username already taken")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return apperror.NewValidationError(err.Error())
	}

	user := &entity.User{
		Password:     hash,
		Role:         enum.NormalizeRole(input.Role),
		FullName:     input.FullName,
		Email:        input.Email,
		ProfileImage: input.ProfileImage,
		CreatedDate:  time.Now().Format(time.RFC3339),
	}
	return s.userRepo.Put(ctx, username, user)
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	Username    string
	OldPassword string
	NewPassword string
}

// ChangePassword changes a user's password after verifying the old one
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.Get(ctx, input.Username)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if err := s.hasher.Compare(user.Password, input.OldPassword); err != nil {
		return apperror.NewValidationError("Current password is incorrect")
	}

	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return apperror.NewValidationError(err.Error())
	}

	user.Password = hash
	return s.userRepo.Put(ctx, input.Username, user)
}
