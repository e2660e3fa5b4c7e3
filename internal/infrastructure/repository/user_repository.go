package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sangkips/till-pos/internal/domain/entity"
	"github.com/sangkips/till-pos/internal/domain/enum"
	domainRepo "github.com/sangkips/till-pos/internal/domain/repository"
	"github.com/sangkips/till-pos/internal/pkg/auth"
	"github.com/sangkips/till-pos/pkg/apperror"
)

// Seed account written when the credential file is absent or unreadable.
const (
	SeedUsername = "admin"
	SeedPassword = "admin123"
)

type userRepository struct {
	path   string
	hasher auth.PasswordHasher
	logger *log.Logger
	users  map[string]*entity.User
}

// NewUserRepository opens the flat-JSON credential store at path, loading
// the whole user table into memory. A missing or unparsable file resets
// the store to the single seeded admin account and persists it at once.
func NewUserRepository(path string, hasher auth.PasswordHasher, logger *log.Logger) (domainRepo.UserRepository, error) {
	r := &userRepository{
		path:   path,
		hasher: hasher,
		logger: logger,
		users:  make(map[string]*entity.User),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *userRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.WithError(err).Warn("failed to read users file, reseeding")
		}
		return r.seed()
	}
	if err := json.Unmarshal(data, &r.users); err != nil {
		r.logger.WithError(err).WithField("path", r.path).Warn("users file is corrupt, reseeding")
		return r.seed()
	}
	return nil
}

func (r *userRepository) seed() error {
	hash, err := r.hasher.Hash(SeedPassword)
	if err != nil {
		return err
	}
	r.users = map[string]*entity.User{
		SeedUsername: {
			Password:    hash,
			Role:        enum.RoleAdmin,
			FullName:    "Administrator",
			Email:       "admin@example.com",
			CreatedDate: time.Now().Format(time.RFC3339),
		},
	}
	return r.save()
}

// save rewrites the entire user table as one pretty-printed JSON document.
func (r *userRepository) save() error {
	data, err := json.MarshalIndent(r.users, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return apperror.NewIOError("Failed to save user store", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, username string) (*entity.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	// Copy so callers cannot mutate the table without going through Put.
	u := *user
	return &u, nil
}

func (r *userRepository) Put(ctx context.Context, username string, user *entity.User) error {
	u := *user
	r.users[username] = &u
	return r.save()
}

func (r *userRepository) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(r.users))
	for name := range r.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
