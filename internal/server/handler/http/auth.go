package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/middleware"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// AuthService defines the interface for authentication operations required
// by the HTTP handlers.
type AuthService interface {
	// Register creates a new account and returns a signed token plus the
	// account. errs.ErrValidation on bad input, errs.ErrAlreadyExists on a
	// duplicate username or email.
	Register(ctx context.Context, username, email, password string) (string, *models.User, error)
	// Login verifies credentials and returns a signed token plus the
	// account. errs.ErrUnauthorized on bad credentials.
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	// GetUser fetches the account for a user id.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// AuthHandler handles HTTP requests for registration, login, and the
// current-account endpoint.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the success body for register and login.
type tokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles POST /api/auth/register.
// On success it responds 201 with the issued token and the account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tokenResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login.
// On success it responds 200 with the issued token and the account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token, User: user})
}

// Me handles GET /api/auth/me. It returns the account matching the bearer
// token the middleware already validated.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	user, err := h.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*models.User{"user": user})
}
