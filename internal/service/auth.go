package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/mdupont/taskboard/internal/auth"
	"github.com/mdupont/taskboard/internal/domain"
)

const minPasswordLength = 8

// AuthService handles signup, login, and resolving bearer tokens to users.
type AuthService struct {
	users      domain.UserRepository
	codec      *auth.TokenCodec
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, codec *auth.TokenCodec, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		codec:      codec,
		bcryptCost: bcryptCost,
	}
}

// Signup validates the input, creates the user with a hashed password, and
// issues a token for it. Validation failures are reported all at once as
// domain.ValidationErrors; nothing is persisted on any failure.
func (s *AuthService) Signup(ctx context.Context, name, email, password, confirmation string) (*domain.User, string, error) {
	var verrs domain.ValidationErrors

	if name == "" {
		verrs = append(verrs, "Name can't be blank")
	}
	if email == "" {
		verrs = append(verrs, "Email can't be blank")
	} else if _, err := mail.ParseAddress(email); err != nil {
		verrs = append(verrs, "Email is invalid")
	}
	if len(password) < minPasswordLength {
		verrs = append(verrs, fmt.Sprintf("Password is too short (minimum is %d characters)", minPasswordLength))
	}
	if password != confirmation {
		verrs = append(verrs, "Password confirmation doesn't match Password")
	}
	if len(verrs) > 0 {
		return nil, "", verrs
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, "", domain.ValidationErrors{"Email has already been taken"}
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.codec.Encode(user.ID, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both return ErrUnauthorized so callers cannot tell them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", domain.ErrUnauthorized
	}

	token, err := s.codec.Encode(user.ID, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// UserFromToken resolves a bearer token to the user it was issued for.
// An invalid token and a token whose user has since been deleted both return
// ErrUnauthorized; a stale token never resolves to a live identity.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.codec.Decode(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
