package storage

import (
	"context"
	"errors"

	"github.com/ThomasSalomon/chicosAPP-V2/auth/users"

	"github.com/google/uuid"
)

// ErrEmailTaken reports a registration attempt with an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")

type AuthStorage interface {
	CreateUser(ctx context.Context, user users.User, passwordHash string) error
	GetUser(ctx context.Context, id uuid.UUID) (users.User, error)
	GetUserByEmail(ctx context.Context, email string) (users.User, error)
	GetPasswordHash(ctx context.Context, email string) (string, error)
	ListUsers(ctx context.Context) ([]users.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role users.Role) error
}
