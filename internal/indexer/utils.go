package indexer

import (
	"context"
	"os"

	"github.com/go-redis/redis/v8"
	opensearch "github.com/opensearch-project/opensearch-go"
	mongodb_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/mongodb"
	opensearch_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/opensearch"
	redis_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/redis"
	"github.com/openshift-assisted/assisted-mongodb-sync/pkg/stream"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const notificationSource = "assisted-mongodb-sync"

// Clients holds the long-lived connections shared by every sync job of the process
type Clients struct {
	Mongo            *mongo.Client
	Database         *mongo.Database
	Opensearch       *opensearch.Client
	OpensearchConfig *opensearch_repo.OpensearchConfig
	Redis            *redis.Client
	ValkeyConfig     *redis_repo.ValkeyConfig
	EventWriter      stream.EventStreamWriter
}

func NewClientsFromEnv(ctx context.Context, logger *logrus.Logger) (*Clients, error) {
	clients := &Clients{}
	var err error
	clients.Mongo, clients.Database, err = mongodb_repo.NewMongoDatabaseFromEnv(ctx, logger)
	if err != nil {
		return nil, err
	}
	clients.Opensearch, clients.OpensearchConfig, err = opensearch_repo.NewOpensearchClientFromEnv(logger)
	if err != nil {
		clients.Close(ctx, logger)
		return nil, err
	}
	clients.Redis, clients.ValkeyConfig, err = redis_repo.NewRedisClientFromEnv(ctx, logger)
	if err != nil {
		clients.Close(ctx, logger)
		return nil, err
	}
	clients.EventWriter, err = stream.NewWriterFromEnv(logger)
	if err != nil {
		clients.Close(ctx, logger)
		return nil, err
	}
	return clients, nil
}

func (c *Clients) IndexNaming() opensearch_repo.IndexNaming {
	prefix := opensearch_repo.DefaultIndexPrefix
	if c.OpensearchConfig != nil {
		prefix = c.OpensearchConfig.IndexPrefix
	}
	return opensearch_repo.NewIndexNaming(prefix)
}

func (c *Clients) Close(ctx context.Context, logger *logrus.Logger) {
	if c.EventWriter != nil {
		c.EventWriter.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.WithError(err).Warn("failed to close redis client")
		}
	}
	if c.Mongo != nil {
		if err := c.Mongo.Disconnect(ctx); err != nil {
			logger.WithError(err).Warn("failed to disconnect from mongodb")
		}
	}
}

func NewCollectionIndexerFromClients(logger *logrus.Logger, config *IndexerConfig, clients *Clients) *CollectionIndexer {
	indexer := NewCollectionIndexer(
		logger,
		config,
		clients.IndexNaming(),
		mongodb_repo.NewCollectionRepository(logger, mongodb_repo.NewMongoProvider(clients.Database), config.UpdatedAtField),
		opensearch_repo.NewIndexManager(logger, clients.Opensearch, config.UpdatedAtField),
		opensearch_repo.NewCheckpointRepository(logger, clients.Opensearch, config.UpdatedAtField),
		opensearch_repo.NewBulkWriter(logger, clients.Opensearch),
	)
	if clients.Redis != nil {
		indexer.
			WithRunRepository(redis_repo.NewRunRepository(logger, clients.Redis, clients.ValkeyConfig.Expiration)).
			WithJobLock(redis_repo.NewJobLock(logger, clients.Redis, clients.ValkeyConfig.LockTTL))
	}
	if clients.EventWriter != nil {
		indexer.WithNotifier(stream.NewNotificationStream(clients.EventWriter, logger, notificationMetadata()))
	}
	return indexer
}

// NewCollectionIndexerFromEnv connects every client and hands their ownership to the indexer
func NewCollectionIndexerFromEnv(ctx context.Context, logger *logrus.Logger, config *IndexerConfig) (*CollectionIndexer, error) {
	clients, err := NewClientsFromEnv(ctx, logger)
	if err != nil {
		return nil, err
	}
	indexer := NewCollectionIndexerFromClients(logger, config, clients)
	indexer.closers = append(indexer.closers, func(ctx context.Context) error {
		clients.Close(ctx, logger)
		return nil
	})
	return indexer, nil
}

func NewStatusReporterFromClients(logger *logrus.Logger, config *IndexerConfig, clients *Clients) *StatusReporter {
	var runRepository redis_repo.RunRepositoryInterface
	if clients.Redis != nil {
		runRepository = redis_repo.NewRunRepository(logger, clients.Redis, clients.ValkeyConfig.Expiration)
	}
	return NewStatusReporter(
		logger,
		clients.IndexNaming(),
		mongodb_repo.NewCollectionRepository(logger, mongodb_repo.NewMongoProvider(clients.Database), config.UpdatedAtField),
		opensearch_repo.NewIndexManager(logger, clients.Opensearch, config.UpdatedAtField),
		runRepository,
	)
}

func notificationMetadata() map[string]string {
	metadata := map[string]string{
		"source": notificationSource,
	}
	if hostname, err := os.Hostname(); err == nil {
		metadata["hostname"] = hostname
	}
	return metadata
}
