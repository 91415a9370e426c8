package ports

import (
	"context"

	"github.com/userbase/auth-api/internal/core/domain"
)

// UserRepository defines the persistence contract for the user directory.
// Uniqueness of username and email is enforced by the storage layer; Create
// and Update surface a violation as domain.ErrUserExists. Update and Delete
// report a missing target as domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// ListAll returns every user with public fields only; the password hash
	// is excluded at the query projection, not filtered afterwards.
	ListAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
