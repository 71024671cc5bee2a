package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/middleware"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// BentoBoxService defines the record operations required by the HTTP
// handlers.
type BentoBoxService interface {
	Create(ctx context.Context, ownerID string, in models.BentoBoxInput) (*models.BentoBox, error)
	Get(ctx context.Context, requesterID, id string) (*models.BentoBox, error)
	ListOwned(ctx context.Context, requesterID string) ([]models.BentoBox, error)
	ListPublic(ctx context.Context) ([]models.BentoBox, error)
	Update(ctx context.Context, requesterID, id string, upd models.BentoBoxUpdate) (*models.BentoBox, error)
	Delete(ctx context.Context, requesterID, id string) error
}

// BentoBoxHandler handles HTTP requests for bento box records. All routes
// require an authenticated user; the middleware has already placed the user
// id in the request context.
type BentoBoxHandler struct {
	BentoService BentoBoxService
}

// Create handles POST /api/bentoboxes. Responds 201 with the stored record.
func (h *BentoBoxHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	var in models.BentoBoxInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	box, err := h.BentoService.Create(r.Context(), userID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, box)
}

// My handles GET /api/bentoboxes/my: the requester's records, most recently
// updated first.
func (h *BentoBoxHandler) My(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())

	boxes, err := h.BentoService.ListOwned(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if boxes == nil {
		boxes = []models.BentoBox{}
	}
	writeJSON(w, http.StatusOK, boxes)
}

// Public handles GET /api/bentoboxes/public: the gallery page ordered by
// likes, then creation time, capped at the page size.
func (h *BentoBoxHandler) Public(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.BentoService.ListPublic(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if boxes == nil {
		boxes = []models.BentoBox{}
	}
	writeJSON(w, http.StatusOK, boxes)
}

// Get handles GET /api/bentoboxes/{id}.
func (h *BentoBoxHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	box, err := h.BentoService.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, box)
}

// Update handles PUT /api/bentoboxes/{id}. The body is a partial update;
// omitted fields keep their stored values.
func (h *BentoBoxHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var upd models.BentoBoxUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	box, err := h.BentoService.Update(r.Context(), userID, id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, box)
}

// Delete handles DELETE /api/bentoboxes/{id}.
func (h *BentoBoxHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.BentoService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "bento box deleted"})
}
