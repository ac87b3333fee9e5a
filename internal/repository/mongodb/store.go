package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Cursor is the part of *mongo.Cursor used to stream pages
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val interface{}) error
	Err() error
	Close(ctx context.Context) error
}

type CollectionStore interface {
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error)
}

type CollectionProvider interface {
	Collection(name string) CollectionStore
}

// MongoCollection adapts *mongo.Collection to CollectionStore
type MongoCollection struct {
	*mongo.Collection
}

func (c *MongoCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (Cursor, error) {
	return c.Collection.Find(ctx, filter, opts...)
}

// MongoProvider adapts *mongo.Database to CollectionProvider
type MongoProvider struct {
	database *mongo.Database
}

func NewMongoProvider(database *mongo.Database) *MongoProvider {
	return &MongoProvider{database: database}
}

func (p *MongoProvider) Collection(name string) CollectionStore {
	return &MongoCollection{p.database.Collection(name)}
}
