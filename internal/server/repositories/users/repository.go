package users

import (
	"context"

	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	// Create inserts a new user. A duplicate username or email yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)

	// AddFriend adds friendID to the user's friend set (no duplicates) and
	// returns the post-update document.
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) (*models.User, error)

	// AppendThought pushes thoughtID onto the user's thoughts sequence.
	AppendThought(ctx context.Context, userID, thoughtID primitive.ObjectID) error
}
