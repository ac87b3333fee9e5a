package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

type MongoConfig struct {
	URI      string `envconfig:"MONGO_URI" required:"true"`
	Database string `envconfig:"MONGO_DATABASE" default:""`
}

func NewMongoConfigFromEnv() (*MongoConfig, error) {
	config := &MongoConfig{}
	if err := envconfig.Process("", config); err != nil {
		return nil, err
	}
	return config, nil
}

// DatabaseName falls back to the database in the URI path
func (c *MongoConfig) DatabaseName() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	cs, err := connstring.ParseAndValidate(c.URI)
	if err != nil {
		return "", fmt.Errorf("failed to parse mongo uri: %w", err)
	}
	if cs.Database == "" {
		return "", errors.New("no database in MONGO_URI and MONGO_DATABASE is not set")
	}
	return cs.Database, nil
}

func NewMongoClient(ctx context.Context, logger *logrus.Logger, config *MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	logger.Info("connected to mongodb")
	return client, nil
}

// NewMongoDatabaseFromEnv returns the connected client, which the caller disconnects, and the configured database
func NewMongoDatabaseFromEnv(ctx context.Context, logger *logrus.Logger) (*mongo.Client, *mongo.Database, error) {
	config, err := NewMongoConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}
	databaseName, err := config.DatabaseName()
	if err != nil {
		return nil, nil, err
	}
	client, err := NewMongoClient(ctx, logger, config)
	if err != nil {
		return nil, nil, err
	}
	logger.WithField("database", databaseName).Debug("using mongo database")
	return client, client.Database(databaseName), nil
}
