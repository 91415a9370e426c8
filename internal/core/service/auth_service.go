package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/userbase/auth-api/internal/core/domain"
	"github.com/userbase/auth-api/internal/core/ports"
)

// AuthService implements registration, login and user management on top of
// the user directory, the credential hasher and the token issuer.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register validates the input in a fixed order, hashes the password and
// creates the user. All validation happens before any storage write.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.FullName == "" ||
		input.Address == "" || input.PhoneNumber == "" ||
		input.Password == "" || input.ConfirmPassword == "" || input.Role == "" {
		return nil, domain.ErrMissingFields
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}
	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	existing, err := s.repo.FindByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// A concurrent registration with the same username or email loses the
	// race at the UNIQUE constraint and surfaces as ErrUserExists here.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a session token. An unknown
// username and a wrong password produce the identical error so callers
// cannot tell which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListAll(ctx)
}

// UpdateUser applies the full-field update policy: username, email,
// full_name, address, phone_number and role are all required, with an
// optional password change when both password fields are supplied and match.
func (s *AuthService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) error {
	if input.Username == "" || input.Email == "" || input.FullName == "" ||
		input.Address == "" || input.PhoneNumber == "" || input.Role == "" {
		return domain.ErrMissingFields
	}
	if !domain.ValidRole(input.Role) {
		return domain.ErrInvalidRole
	}

	var hash string
	if input.Password != "" || input.ConfirmPassword != "" {
		if input.Password != input.ConfirmPassword {
			return domain.ErrPasswordMismatch
		}
		h, err := s.hasher.Hash(input.Password)
		if err != nil {
			return err
		}
		hash = h
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.Username = input.Username
	user.Email = input.Email
	user.FullName = input.FullName
	user.Address = input.Address
	user.PhoneNumber = input.PhoneNumber
	user.Role = input.Role
	if hash != "" {
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
