// Package db wires the MongoDB client to the repositories used by the
// server and owns connection lifecycle and index bootstrap.
package db

import (
	"context"

	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/thoughts"
	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Thoughts() thoughts.Repository

	// EnsureIndexes creates the unique indexes backing registration
	// uniqueness constraints. Safe to call on every startup.
	EnsureIndexes(ctx context.Context) error

	Close(ctx context.Context) error
}
