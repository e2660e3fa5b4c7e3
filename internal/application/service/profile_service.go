package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/pkg/apperror"
)

// ProfileService handles user profile reads, updates and avatar images
type ProfileService struct {
	userRepo  repository.UserRepository
	imagesDir string
	logger    *log.Logger
}

// NewProfileService creates a new profile service, ensuring the profile
// images directory exists.
func NewProfileService(userRepo repository.UserRepository, imagesDir string, logger *log.Logger) (*ProfileService, error) {
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, apperror.NewIOError("Failed to create profile images directory", err)
	}
	return &ProfileService{
		userRepo:  userRepo,
		imagesDir: imagesDir,
		logger:    logger,
	}, nil
}

// GetProfile returns the user's profile with the password stripped and
// defaults applied for missing fields.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (*entity.Profile, error) {
	user, err := s.userRepo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	profile := entity.NewProfile(username, user)
	return &profile, nil
}

// ListUsernames returns every username in the store, sorted.
func (s *ProfileService) ListUsernames(ctx context.Context) ([]string, error) {
	return s.userRepo.List(ctx)
}

// UpdateProfileInput represents a partial profile update. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Username     string
	FullName     *string
	Email        *string
	ProfileImage *string
}

// UpdateProfileResult carries the updated profile plus any non-fatal
// warning raised along the way (e.g. the old avatar file could not be
// removed).
type UpdateProfileResult struct {
	Profile entity.Profile
	Warning string
}

// UpdateProfile applies a partial update to a user's profile. When the
// profile image changes, the previous image file is deleted best-effort;
// a failed delete degrades to a warning rather than failing the update.
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileResult, error) {
	user, err := s.userRepo.Get(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	result := &UpdateProfileResult{}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.ProfileImage != nil {
		old := user.ProfileImage
		if old != "" && old != *input.ProfileImage {
			if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
				result.Warning = fmt.Sprintf("could not remove old profile image %s: %v", old, err)
				s.logger.WithError(err).WithField("path", old).Warn("could not remove old profile image")
			}
		}
		user.ProfileImage = *input.ProfileImage
	}

	if err := s.userRepo.Put(ctx, input.Username, user); err != nil {
		return nil, err
	}
	result.Profile = entity.NewProfile(input.Username, user)
	return result, nil
}

// SaveProfileImage copies an avatar image into the images directory under
// a generated name (<username>_<YYYYMMDD_HHMMSS><ext>) and returns the new
// path. The source path is never referenced again after the copy.
func (s *ProfileService) SaveProfileImage(ctx context.Context, username, sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperror.NewValidationError("Image file not found")
		}
		return "", apperror.NewIOError("Failed to open image file", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%s%s", username, time.Now().Format("20060102_150405"), filepath.Ext(sourcePath))
	destPath := filepath.Join(s.imagesDir, name)

	dest, err := os.Create(destPath)
	if err != nil {
		return "", apperror.NewIOError("Failed to save profile image", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return "", apperror.NewIOError("Failed to save profile image", err)
	}
	return destPath, nil
}
