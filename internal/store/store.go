// Package store defines the collection store interface and its backends.
// All durable state flows through ReadAll/WriteAll on named collections;
// higher layers express every mutation as read-all, compute, write-all.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/sajidul-dev/adboard/backend/internal/models"
)

// Collections is the fixed set of valid collection names. Any other name is
// rejected before I/O is attempted.
var Collections = []string{"users", "ads", "posts", "notifications", "reports"}

var (
	// ErrInvalidCollection marks a collection name outside the fixed set.
	ErrInvalidCollection = errors.New("invalid collection")
	// ErrCorrupted marks stored content that is not a valid document array.
	ErrCorrupted = errors.New("corrupted collection data")
)

// Store is the interface all backends implement. WriteAll must replace the
// stored sequence atomically: a reader never observes a partially written
// collection, and a failed write leaves the previous state intact.
type Store interface {
	// ReadAll returns every document in a collection in insertion order.
	// A collection that has never been written yields an empty slice.
	ReadAll(ctx context.Context, collection string) ([]models.Document, error)

	// WriteAll atomically replaces the entire stored sequence.
	WriteAll(ctx context.Context, collection string, docs []models.Document) error
}

// IsValid reports whether name is one of the fixed collection names.
func IsValid(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

// Validate fails fast with ErrInvalidCollection for unknown names.
func Validate(name string) error {
	if !IsValid(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}
