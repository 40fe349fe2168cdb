package person

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the only component that reads or writes persons in the
// store. Identifier generation and timestamps are store-side defaults,
// not repository logic.
type Repository interface {
	// FindAll returns one page plus the total matching the same filter.
	// The page and the total are independent reads, not one snapshot:
	// under concurrent writes the total may disagree with the page.
	FindAll(ctx context.Context, q ListQuery) ([]Person, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Person, error)
	FindByEmail(ctx context.Context, email string) (*Person, error)
	Create(ctx context.Context, in CreateInput) (*Person, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Person, error)
	// Delete reports whether a row existed and was removed. Deleting an
	// absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context, search string) (int, error)
}
