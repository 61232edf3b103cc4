package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
)

var (
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service registers and authenticates users.
type Service struct {
	users  storage.UserStore
	tokens *TokenIssuer
}

func NewService(users storage.UserStore, tokens *TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

// SignUpInput is a validated registration request.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     v1.Role
}

// SignUp creates the account and returns it with a fresh token.
// Returns ErrUserExists when the email is taken.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*v1.User, string, error) {
	if _, err := s.users.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = v1.RoleUser
	}

	user, err := s.users.CreateUser(ctx, &v1.NewUser{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// Lost a race with a concurrent sign-up for the same email.
		return nil, "", ErrUserExists
	}
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	slog.Info("[Auth] User signed up", "user_id", user.ID, "role", user.Role)
	return user, token, nil
}

// SignIn checks the credentials and returns the user with a fresh token.
func (s *Service) SignIn(ctx context.Context, email, password string) (*v1.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	slog.Info("[Auth] User signed in", "user_id", user.ID)
	return user, token, nil
}

// Me returns the account behind the claims.
func (s *Service) Me(ctx context.Context, claims *Claims) (*v1.User, error) {
	return s.users.GetUserByID(ctx, claims.ID)
}
