package db

import (
	"context"

	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/thoughts"
	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs the repositories with process memory.
// Used in tests and local experiments.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	thoughts *thoughts.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		thoughts: thoughts.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Thoughts() thoughts.Repository {
	return m.thoughts
}

// EnsureIndexes is a no-op: the in-memory user repository enforces
// uniqueness on insert itself.
func (m *InMemoryRepositoryManager) EnsureIndexes(_ context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close(_ context.Context) error {
	return nil
}
