// Package repository holds errors shared by the entity repositories so that
// service layers can classify persistence failures without importing mongo.
package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a compare-and-swap update matched no
	// document because the expected state changed underneath it.
	ErrConflict = errors.New("record modified concurrently")
)
