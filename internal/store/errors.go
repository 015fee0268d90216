package store

import "errors"

var (
	// ErrInvalidInput is returned when a mutation input fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrApartmentNotFound is returned when an update targets an unknown id.
	ErrApartmentNotFound = errors.New("apartment not found")
	// ErrDuplicateID is returned when a seed repeats an apartment id.
	ErrDuplicateID = errors.New("duplicate id")
)
