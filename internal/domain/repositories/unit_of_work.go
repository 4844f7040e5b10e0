package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic multi-write operations
type UnitOfWork interface {
	// Do executes the given function within a transaction scope. The
	// transaction is carried through the context passed to fn.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
