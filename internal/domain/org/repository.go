package org

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the only component that reads or writes organizations in
// the store.
type Repository interface {
	// FindAll returns one page plus the total matching the same filter.
	// The two reads are independent, not one snapshot.
	FindAll(ctx context.Context, q ListQuery) ([]Organization, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindByName(ctx context.Context, name string) (*Organization, error)
	Create(ctx context.Context, in CreateInput) (*Organization, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Organization, error)
	// Delete reports whether a row existed and was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context, search string) (int, error)
}
