// Package models defines the core data structures for accounts and bento box records.
package models

import "time"

// Point is a position in canvas space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec holds per-axis scale multipliers.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlacedIngredient is one serialized placement as it travels over the wire
// and is stored inside a record. The name and category are snapshots taken
// at serialization time so old records stay readable if the catalog changes.
type PlacedIngredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Position Point   `json:"position"`
	Rotation float64 `json:"rotation"`
	Scale    Vec     `json:"scale"`
}

// BentoBox is a persisted, named, user-owned arrangement of ingredients.
type BentoBox struct {
	// ID is the server-assigned unique identifier.
	ID string `json:"id"`
	// UserID identifies the owning account.
	UserID string `json:"userId"`
	// Name is the display name, non-empty, at most 100 runes.
	Name string `json:"name"`
	// Description is optional free text, at most 500 runes.
	Description string `json:"description,omitempty"`
	// Ingredients is the ordered arrangement; order is z-order.
	Ingredients []PlacedIngredient `json:"ingredients"`
	// Thumbnail is an optional base64 PNG data URL preview.
	Thumbnail string `json:"thumbnail,omitempty"`
	// IsPublic makes the record readable by any account.
	IsPublic bool `json:"isPublic"`
	// Likes orders the public gallery.
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BentoBoxInput carries the client-supplied fields for creating a record.
type BentoBoxInput struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Ingredients []PlacedIngredient `json:"ingredients"`
	Thumbnail   string             `json:"thumbnail,omitempty"`
	IsPublic    bool               `json:"isPublic"`
}

// BentoBoxUpdate carries a partial update; nil fields are left unchanged.
type BentoBoxUpdate struct {
	Name        *string             `json:"name,omitempty"`
	Description *string             `json:"description,omitempty"`
	Ingredients *[]PlacedIngredient `json:"ingredients,omitempty"`
	Thumbnail   *string             `json:"thumbnail,omitempty"`
	IsPublic    *bool               `json:"isPublic,omitempty"`
}

// User represents an application account. The password hash never leaves
// the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
