package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the two accepted variants.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

var (
	ErrMissingFields      = errors.New("all required fields must be provided")
	ErrInvalidRole        = errors.New("invalid role, must be 'admin' or 'user'")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserExists         = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// User models an account in the directory. PasswordHash holds the bcrypt
// hash, never the plaintext, and is excluded from every JSON rendering.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	FullName     string    `json:"full_name"`
	Address      string    `json:"address"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}
