package db

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/thoughts"
	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoRepositoryManager struct {
	client   *mongo.Client
	database *mongo.Database
}

func NewMongoRepositoryManager(ctx context.Context, dsn string, dbName string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &MongoRepositoryManager{client: client, database: client.Database(dbName)}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.database)
}

func (m *MongoRepositoryManager) Thoughts() thoughts.Repository {
	return thoughts.NewMongoRepository(m.database)
}

func (m *MongoRepositoryManager) EnsureIndexes(ctx context.Context) error {
	_, err := m.database.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("index init error: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
