package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/errs"
	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/models"
)

// PostgresBentoBoxRepository implements bento box persistence against a
// PostgreSQL database. The ingredient arrangement is stored as a JSONB
// column, mirroring the wire shape.
type PostgresBentoBoxRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresBentoBoxRepository creates a repository over the given
// connection.
func NewPostgresBentoBoxRepository(db *sql.DB) *PostgresBentoBoxRepository {
	return &PostgresBentoBoxRepository{DB: db}
}

const bentoColumns = `id, user_id, name, description, ingredients, thumbnail, is_public, likes, created_at, updated_at`

// Create inserts a new record and fills in the database-assigned timestamps.
func (r *PostgresBentoBoxRepository) Create(ctx context.Context, box *models.BentoBox) error {
	ingredients, err := marshalIngredients(box.Ingredients)
	if err != nil {
		return err
	}
	err = r.DB.QueryRowContext(ctx, `
		INSERT INTO bento_boxes (id, user_id, name, description, ingredients, thumbnail, is_public, likes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`, box.ID, box.UserID, box.Name, box.Description, ingredients, box.Thumbnail, box.IsPublic, box.Likes).
		Scan(&box.CreatedAt, &box.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create bento box: %w", err)
	}
	return nil
}

// GetByID fetches a single record. Returns errs.ErrNotFound when absent.
func (r *PostgresBentoBoxRepository) GetByID(ctx context.Context, id string) (*models.BentoBox, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+bentoColumns+` FROM bento_boxes WHERE id = $1
	`, id)
	box, err := scanBentoBox(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get bento box: %w", err)
	}
	return box, nil
}

// ListByOwner fetches all records owned by userID, most recently updated
// first.
func (r *PostgresBentoBoxRepository) ListByOwner(ctx context.Context, userID string) ([]models.BentoBox, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+bentoColumns+` FROM bento_boxes
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list owned bento boxes: %w", err)
	}
	defer rows.Close()
	return collectBentoBoxes(rows)
}

// ListPublic fetches up to limit public records ordered by likes, then by
// creation time, newest first.
func (r *PostgresBentoBoxRepository) ListPublic(ctx context.Context, limit int) ([]models.BentoBox, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+bentoColumns+` FROM bento_boxes
		WHERE is_public = true
		ORDER BY likes DESC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list public bento boxes: %w", err)
	}
	defer rows.Close()
	return collectBentoBoxes(rows)
}

// Update rewrites the record's mutable fields and refreshes updated_at.
func (r *PostgresBentoBoxRepository) Update(ctx context.Context, box *models.BentoBox) error {
	ingredients, err := marshalIngredients(box.Ingredients)
	if err != nil {
		return err
	}
	err = r.DB.QueryRowContext(ctx, `
		UPDATE bento_boxes
		SET name = $2, description = $3, ingredients = $4, thumbnail = $5, is_public = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`, box.ID, box.Name, box.Description, ingredients, box.Thumbnail, box.IsPublic).Scan(&box.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update bento box: %w", err)
	}
	return nil
}

// Delete removes the record. Returns errs.ErrNotFound when nothing matched.
func (r *PostgresBentoBoxRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bento_boxes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bento box: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bento box: %w", err)
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBentoBox(row rowScanner) (*models.BentoBox, error) {
	var (
		box models.BentoBox
		raw []byte
	)
	err := row.Scan(&box.ID, &box.UserID, &box.Name, &box.Description, &raw,
		&box.Thumbnail, &box.IsPublic, &box.Likes, &box.CreatedAt, &box.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &box.Ingredients); err != nil {
		return nil, fmt.Errorf("decode ingredients: %w", err)
	}
	return &box, nil
}

func collectBentoBoxes(rows *sql.Rows) ([]models.BentoBox, error) {
	var boxes []models.BentoBox
	for rows.Next() {
		box, err := scanBentoBox(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		boxes = append(boxes, *box)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	return boxes, nil
}

func marshalIngredients(ingredients []models.PlacedIngredient) ([]byte, error) {
	if ingredients == nil {
		ingredients = []models.PlacedIngredient{}
	}
	raw, err := json.Marshal(ingredients)
	if err != nil {
		return nil, fmt.Errorf("encode ingredients: %w", err)
	}
	return raw, nil
}
