package thoughts

import (
	"context"

	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Create(ctx context.Context, thought *models.Thought) (*models.Thought, error)

	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Thought, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Thought, error)

	// List returns thoughts sorted by createdAt descending. An empty
	// username returns all thoughts; otherwise the result is filtered by
	// exact author match.
	List(ctx context.Context, username string) ([]*models.Thought, error)

	// AddReaction appends reaction to the identified thought and returns the
	// post-update document. A missing thought yields common.ErrorNotFound.
	AddReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction models.Reaction) (*models.Thought, error)
}
