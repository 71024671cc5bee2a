// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels shared by the server layers and the client gateway.
var (
	// ErrValidation indicates malformed or out-of-bounds input (empty name,
	// oversized fields, bad request body).
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates missing or failed authentication.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the requester is authenticated but not allowed
	// to access the record (non-owner of a private box).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation
	// (username or email already taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnknownIngredient indicates a placement references an ingredient id
	// that is not in the catalog.
	ErrUnknownIngredient = errors.New("unknown ingredient")

	// ErrNetwork indicates the backend could not be reached. The failure is
	// terminal for the attempt; no retry is performed.
	ErrNetwork = errors.New("network error")
)
