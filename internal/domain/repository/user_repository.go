package repository

import (
	"context"

	"github.com/sangkips/till-pos/internal/domain/entity"
)

// UserRepository defines the interface for the credential store.
// Reads return (nil, nil) for unknown usernames; writes persist the whole
// store to its backing file before returning.
type UserRepository interface {
	Get(ctx context.Context, username string) (*entity.User, error)
	Put(ctx context.Context, username string, user *entity.User) error
	List(ctx context.Context) ([]string, error)
}
