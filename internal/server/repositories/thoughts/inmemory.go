package thoughts

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryRepository is a slice-backed Repository with the same semantics
// as the Mongo one. Used in tests and local experiments.
type InMemoryRepository struct {
	mu       sync.RWMutex
	thoughts []*models.Thought
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(_ context.Context, thought *models.Thought) (*models.Thought, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if thought.ID.IsZero() {
		thought.ID = primitive.NewObjectID()
	}
	if thought.Reactions == nil {
		thought.Reactions = []models.Reaction{}
	}

	r.thoughts = append(r.thoughts, thought)
	return thought, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Thought, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(id)
}

func (r *InMemoryRepository) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*models.Thought, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := []*models.Thought{}
	for _, t := range r.thoughts {
		if _, ok := wanted[t.ID]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) List(_ context.Context, username string) ([]*models.Thought, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.Thought{}
	for _, t := range r.thoughts {
		if username == "" || t.Username == username {
			result = append(result, t)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryRepository) AddReaction(_ context.Context, thoughtID primitive.ObjectID, reaction models.Reaction) (*models.Thought, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	thought, err := r.findLocked(thoughtID)
	if err != nil {
		return nil, err
	}
	thought.Reactions = append(thought.Reactions, reaction)
	return thought, nil
}

func (r *InMemoryRepository) findLocked(id primitive.ObjectID) (*models.Thought, error) {
	for _, t := range r.thoughts {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, common.ErrorNotFound
}
