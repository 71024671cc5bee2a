package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// fakeUserRepo implements UserRepository in memory.
type fakeUserRepo struct {
	users     map[string]*models.User // by email
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.users[u.Email]; exists {
		return errs.ErrAlreadyExists
	}
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

var testSignKey = []byte("test-signing-key")

func newAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, testSignKey, time.Hour)
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@example.com", "secret1"},
		{"blank username", "   ", "a@example.com", "secret1"},
		{"bad email", "alice", "not-an-email", "secret1"},
		{"short password", "alice", "a@example.com", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if !errors.Is(err, errs.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	token, user, err := svc.Register(context.Background(), "alice", "Alice@Example.com", "secret1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email should be normalized, got %q", user.Email)
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("secret1")) != nil {
		t.Error("stored hash does not verify the password")
	}

	// Issued token is a valid HS256 JWT with the user id as subject.
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (any, error) {
		return testSignKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub != user.ID {
		t.Errorf("expected subject %q, got %q", user.ID, sub)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	if _, _, err := svc.Register(context.Background(), "alice", "a@example.com", "secret1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), "alice2", "a@example.com", "secret1")
	if !errors.Is(err, errs.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "alice", "a@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "a@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != registered.ID || token == "" {
		t.Errorf("unexpected login result: user=%+v", user)
	}

	if _, _, err := svc.Login(context.Background(), "a@example.com", "wrong"); !errors.Is(err, errs.ErrUnauthorized) {
		t.Errorf("wrong password: expected ErrUnauthorized, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "secret1"); !errors.Is(err, errs.ErrUnauthorized) {
		t.Errorf("unknown email: expected ErrUnauthorized, got %v", err)
	}
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "alice", "a@example.com", "secret1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.GetUser(context.Background(), registered.ID)
	if err != nil || u.Username != "alice" {
		t.Errorf("GetUser = (%+v, %v)", u, err)
	}
	if _, err := svc.GetUser(context.Background(), "missing"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
