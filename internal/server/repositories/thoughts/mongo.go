package thoughts

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "thoughts"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, thought *models.Thought) (*models.Thought, error) {
	if thought.ID.IsZero() {
		thought.ID = primitive.NewObjectID()
	}
	if thought.Reactions == nil {
		thought.Reactions = []models.Reaction{}
	}

	if _, err := r.col.InsertOne(ctx, thought); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return thought, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Thought, error) {
	thought := &models.Thought{}
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(thought); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return thought, nil
}

func (r *MongoRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Thought, error) {
	if len(ids) == 0 {
		return []*models.Thought{}, nil
	}
	return r.getMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoRepository) List(ctx context.Context, username string) ([]*models.Thought, error) {
	filter := bson.M{}
	if username != "" {
		filter["username"] = username
	}
	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.getMany(ctx, filter, sort)
}

func (r *MongoRepository) AddReaction(ctx context.Context, thoughtID primitive.ObjectID, reaction models.Reaction) (*models.Thought, error) {
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": thoughtID},
		bson.M{"$push": bson.M{"reactions": reaction}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	thought := &models.Thought{}
	if err := res.Decode(thought); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return thought, nil
}

func (r *MongoRepository) getMany(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*models.Thought, error) {
	cur, err := r.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	thoughts := []*models.Thought{}
	if err := cur.All(ctx, &thoughts); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return thoughts, nil
}
