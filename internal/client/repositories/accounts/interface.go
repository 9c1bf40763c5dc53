// Package accounts persists the registered-account collection of the client.
//
// The collection is small and single-device: it is always read in full and
// rewritten in full, stored as one JSON-encoded array under a fixed key in
// the local metadata table.
package accounts

import (
	"context"

	"github.com/abhisheksit27/agrovest/internal/client/models"
)

// Repository describes read and replace operations over the durable account
// collection.
type Repository interface {
	// List returns every stored account in insertion order. A store that has
	// never been written to yields an empty slice, not an error.
	List(ctx context.Context) ([]models.Account, error)

	// SaveAll replaces the whole persisted collection with the given one.
	SaveAll(ctx context.Context, accounts []models.Account) error

	// FindByEmail returns the first account whose email matches the given one
	// case-insensitively, or common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}
