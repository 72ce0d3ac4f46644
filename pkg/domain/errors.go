package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidCatalog is returned when a dataset fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ErrUnknownInput is returned when an input kind is not recognised.
var ErrUnknownInput = errors.New("unknown input kind")

// ErrInvalidState is returned when a decoded state carries an unknown step.
var ErrInvalidState = errors.New("invalid state")

// ErrNotInCatalog is returned when a platform or vendor id is unknown.
var ErrNotInCatalog = errors.New("not in catalog")
