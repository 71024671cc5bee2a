package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// Record field bounds and the public gallery page size.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	PublicPageSize       = 50
)

// BentoBoxRepository defines the persistence operations needed by the
// BentoBoxService.
type BentoBoxRepository interface {
	Create(ctx context.Context, box *models.BentoBox) error
	GetByID(ctx context.Context, id string) (*models.BentoBox, error)
	ListByOwner(ctx context.Context, userID string) ([]models.BentoBox, error)
	ListPublic(ctx context.Context, limit int) ([]models.BentoBox, error)
	Update(ctx context.Context, box *models.BentoBox) error
	Delete(ctx context.Context, id string) error
}

// BentoBoxService implements ownership and validation rules over bento box
// records. A save and a concurrent delete of the same record are not
// reconciled; last writer wins at the storage layer.
type BentoBoxService struct {
	boxes BentoBoxRepository
}

// NewBentoBoxService constructs a BentoBoxService over the repository.
func NewBentoBoxService(boxes BentoBoxRepository) *BentoBoxService {
	return &BentoBoxService{boxes: boxes}
}

// Create validates the input and stores a new record owned by ownerID.
func (s *BentoBoxService) Create(ctx context.Context, ownerID string, in models.BentoBoxInput) (*models.BentoBox, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(in.Description) > MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description exceeds %d characters", errs.ErrValidation, MaxDescriptionLength)
	}

	box := &models.BentoBox{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Ingredients: in.Ingredients,
		Thumbnail:   in.Thumbnail,
		IsPublic:    in.IsPublic,
		Likes:       0,
	}
	if err := s.boxes.Create(ctx, box); err != nil {
		return nil, err
	}
	return box, nil
}

// Get returns the record if the requester owns it or it is public.
func (s *BentoBoxService) Get(ctx context.Context, requesterID, id string) (*models.BentoBox, error) {
	box, err := s.boxes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !box.IsPublic && box.UserID != requesterID {
		return nil, fmt.Errorf("%w: access denied", errs.ErrForbidden)
	}
	return box, nil
}

// ListOwned returns the requester's records, most recently updated first.
func (s *BentoBoxService) ListOwned(ctx context.Context, requesterID string) ([]models.BentoBox, error) {
	return s.boxes.ListByOwner(ctx, requesterID)
}

// ListPublic returns the public gallery page, ordered by likes then by
// creation time.
func (s *BentoBoxService) ListPublic(ctx context.Context) ([]models.BentoBox, error) {
	return s.boxes.ListPublic(ctx, PublicPageSize)
}

// Update applies a partial update to an owned record. Only fields present
// in upd change; the rest keep their stored values.
func (s *BentoBoxService) Update(ctx context.Context, requesterID, id string, upd models.BentoBoxUpdate) (*models.BentoBox, error) {
	box, err := s.boxes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if box.UserID != requesterID {
		return nil, fmt.Errorf("%w: access denied", errs.ErrForbidden)
	}

	if upd.Name != nil {
		if err := validateName(*upd.Name); err != nil {
			return nil, err
		}
		box.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Description != nil {
		if utf8.RuneCountInString(*upd.Description) > MaxDescriptionLength {
			return nil, fmt.Errorf("%w: description exceeds %d characters", errs.ErrValidation, MaxDescriptionLength)
		}
		box.Description = *upd.Description
	}
	if upd.Ingredients != nil {
		box.Ingredients = *upd.Ingredients
	}
	if upd.Thumbnail != nil {
		box.Thumbnail = *upd.Thumbnail
	}
	if upd.IsPublic != nil {
		box.IsPublic = *upd.IsPublic
	}

	if err := s.boxes.Update(ctx, box); err != nil {
		return nil, err
	}
	return box, nil
}

// Delete removes an owned record.
func (s *BentoBoxService) Delete(ctx context.Context, requesterID, id string) error {
	box, err := s.boxes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if box.UserID != requesterID {
		return fmt.Errorf("%w: access denied", errs.ErrForbidden)
	}
	return s.boxes.Delete(ctx, id)
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is required", errs.ErrValidation)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", errs.ErrValidation, MaxNameLength)
	}
	return nil
}
