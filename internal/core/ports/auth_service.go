package ports

import (
	"context"

	"github.com/userbase/auth-api/internal/core/domain"
)

// RegisterInput carries the full set of fields required to create an account.
type RegisterInput struct {
	Username        string
	Email           string
	FullName        string
	Address         string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
	Role            string
}

// UpdateUserInput carries the full-field update payload. Password and
// ConfirmPassword are optional; when either is set both must be set and equal.
type UpdateUserInput struct {
	Username        string
	Email           string
	FullName        string
	Address         string
	PhoneNumber     string
	Role            string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) error
	DeleteUser(ctx context.Context, id int64) error
}
