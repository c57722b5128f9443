package model

import "errors"

var (
	// ErrCardNotFound covers every public-resolution failure: no row,
	// card not public, or a store error. Callers must not be able to
	// tell these apart.
	ErrCardNotFound = errors.New("card not found")

	ErrProfileNotFound  = errors.New("profile not found")
	ErrConnectionExists = errors.New("connection already exists")
	ErrSelfConnection   = errors.New("cannot save own card")
	ErrInvalidUpdate    = errors.New("invalid profile update")
)
