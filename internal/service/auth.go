// Package service provides business-logic services for accounts and bento
// box records, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// minPasswordLength matches the registration rule enforced by the API.
const minPasswordLength = 6

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// Create inserts a new account; errs.ErrAlreadyExists on a duplicate
	// username or email.
	Create(ctx context.Context, u *models.User) error
	// GetByEmail fetches an account by email; errs.ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID fetches an account by id; errs.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// AuthService implements registration, login, and token issuing.
type AuthService struct {
	users    UserRepository
	signKey  []byte
	tokenTTL time.Duration
}

// NewAuthService constructs an AuthService. signKey signs issued HS256
// tokens; tokenTTL bounds their validity.
func NewAuthService(users UserRepository, signKey []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, signKey: signKey, tokenTTL: tokenTTL}
}

// Register validates the input, stores a new account with a bcrypt password
// hash, and returns a signed token plus the account.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	if strings.TrimSpace(username) == "" {
		return "", nil, fmt.Errorf("%w: username is required", errs.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return "", nil, fmt.Errorf("%w: invalid email", errs.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return "", nil, fmt.Errorf("%w: password must be at least %d characters", errs.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Login verifies the credentials and returns a signed token plus the
// account. Wrong email and wrong password are indistinguishable to the
// caller: both yield errs.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, errs.ErrNotFound) {
		return "", nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
	}
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", errs.ErrUnauthorized)
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// GetUser returns the account for the given id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// issueToken creates a signed HS256 JWT with the user id as subject.
func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
