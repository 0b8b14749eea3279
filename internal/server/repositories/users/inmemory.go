package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryRepository is a map-backed Repository with the same semantics as
// the Mongo one, including the uniqueness constraints the unique indexes
// enforce. Used in tests and local experiments.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Friends == nil {
		user.Friends = []primitive.ObjectID{}
	}
	if user.Thoughts == nil {
		user.Thoughts = []primitive.ObjectID{}
	}

	r.users = append(r.users, user)
	return user, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(u *models.User) bool { return u.ID == id })
}

func (r *InMemoryRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(u *models.User) bool { return u.Username == username })
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findLocked(func(u *models.User) bool { return u.Email == email })
}

func (r *InMemoryRepository) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := []*models.User{}
	for _, u := range r.users {
		if _, ok := wanted[u.ID]; ok {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *InMemoryRepository) GetAll(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*models.User{}, r.users...), nil
}

func (r *InMemoryRepository) AddFriend(_ context.Context, userID, friendID primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.findLocked(func(u *models.User) bool { return u.ID == userID })
	if err != nil {
		return nil, err
	}

	// set semantics: no duplicate entries
	for _, id := range user.Friends {
		if id == friendID {
			return user, nil
		}
	}
	user.Friends = append(user.Friends, friendID)
	return user, nil
}

func (r *InMemoryRepository) AppendThought(_ context.Context, userID, thoughtID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.findLocked(func(u *models.User) bool { return u.ID == userID })
	if err != nil {
		return err
	}
	user.Thoughts = append(user.Thoughts, thoughtID)
	return nil
}

func (r *InMemoryRepository) findLocked(match func(*models.User) bool) (*models.User, error) {
	for _, u := range r.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}
