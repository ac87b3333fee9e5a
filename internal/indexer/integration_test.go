//go:build integration

package indexer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	opensearch "github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"
	mongodb_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/mongodb"
	opensearch_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/opensearch"
	"github.com/ory/dockertest/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	integrationDatabase = "sync_test"
	containerExpiration = 600
)

var _ = Describe("Syncing against real stores", Ordered, Label("integration"), func() {
	var (
		ctx                context.Context
		pool               *dockertest.Pool
		mongoResource      *dockertest.Resource
		opensearchResource *dockertest.Resource
		mongoClient        *mongo.Client
		database           *mongo.Database
		opensearchClient   *opensearch.Client
		indexManager       *opensearch_repo.IndexManager
		naming             opensearch_repo.IndexNaming
	)

	BeforeAll(func() {
		ctx = context.Background()
		var err error
		pool, err = dockertest.NewPool("")
		Expect(err).To(BeNil())
		pool.MaxWait = 3 * time.Minute

		mongoResource, err = pool.RunWithOptions(&dockertest.RunOptions{
			Repository: "mongo",
			Tag:        "7.0",
		})
		Expect(err).To(BeNil())
		Expect(mongoResource.Expire(containerExpiration)).To(Succeed())

		opensearchResource, err = pool.RunWithOptions(&dockertest.RunOptions{
			Repository: "opensearchproject/opensearch",
			Tag:        "2.11.1",
			Env: []string{
				"discovery.type=single-node",
				"DISABLE_SECURITY_PLUGIN=true",
				"DISABLE_INSTALL_DEMO_CONFIG=true",
				"OPENSEARCH_JAVA_OPTS=-Xms512m -Xmx512m",
			},
		})
		Expect(err).To(BeNil())
		Expect(opensearchResource.Expire(containerExpiration)).To(Succeed())

		mongoConfig := &mongodb_repo.MongoConfig{
			URI:      fmt.Sprintf("mongodb://%s/%s", mongoResource.GetHostPort("27017/tcp"), integrationDatabase),
			Database: integrationDatabase,
		}
		err = pool.Retry(func() error {
			var retryErr error
			mongoClient, retryErr = mongodb_repo.NewMongoClient(ctx, getTestLogger(), mongoConfig)
			return retryErr
		})
		Expect(err).To(BeNil())
		database = mongoClient.Database(integrationDatabase)

		opensearchConfig := &opensearch_repo.OpensearchConfig{
			Address:     "http://" + opensearchResource.GetHostPort("9200/tcp"),
			IndexPrefix: opensearch_repo.DefaultIndexPrefix,
		}
		err = pool.Retry(func() error {
			var retryErr error
			opensearchClient, retryErr = opensearch_repo.NewOpensearchClient(getTestLogger(), opensearchConfig)
			return retryErr
		})
		Expect(err).To(BeNil())

		naming = opensearch_repo.NewIndexNaming(opensearchConfig.IndexPrefix)
		indexManager = opensearch_repo.NewIndexManager(getTestLogger(), opensearchClient, "updatedAt")
	})

	AfterAll(func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(ctx)
		}
		if pool != nil {
			for _, resource := range []*dockertest.Resource{mongoResource, opensearchResource} {
				if resource != nil {
					Expect(pool.Purge(resource)).To(Succeed())
				}
			}
		}
	})

	newIndexer := func() *CollectionIndexer {
		config := &IndexerConfig{UpdatedAtField: "updatedAt", BatchSize: 200}
		return NewCollectionIndexer(
			getTestLogger(),
			config,
			naming,
			mongodb_repo.NewCollectionRepository(getTestLogger(), mongodb_repo.NewMongoProvider(database), config.UpdatedAtField),
			indexManager,
			opensearch_repo.NewCheckpointRepository(getTestLogger(), opensearchClient, config.UpdatedAtField),
			opensearch_repo.NewBulkWriter(getTestLogger(), opensearchClient),
		)
	}

	insertProducts := func(collectionName string, from, to int, build func(i int) bson.D) {
		documents := []interface{}{}
		for i := from; i < to; i++ {
			documents = append(documents, build(i))
		}
		_, err := database.Collection(collectionName).InsertMany(ctx, documents)
		Expect(err).To(BeNil())
	}

	product := func(i int) bson.D {
		return bson.D{
			{Key: "name", Value: fmt.Sprintf("product-%d", i)},
			{Key: "quantity", Value: i},
			{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(testBaseTime.Add(time.Duration(i) * time.Second))},
		}
	}

	indexedCount := func(index string) int64 {
		Expect(indexManager.RefreshIndex(ctx, index)).To(Succeed())
		count, exists, err := indexManager.CountDocuments(ctx, index)
		Expect(err).To(BeNil())
		Expect(exists).To(BeTrue())
		return count
	}

	It("should index a full collection and then only the new documents", func() {
		insertProducts("products", 0, 500, product)
		collectionIndexer := newIndexer()
		index := naming.IndexName("products")

		result, err := collectionIndexer.IndexCollection(ctx, "products", IndexOptions{})
		Expect(err).To(BeNil())
		Expect(result.Total).To(Equal(int64(500)))
		Expect(result.NumIndexed).To(Equal(int64(500)))
		Expect(indexedCount(index)).To(Equal(int64(500)))

		insertProducts("products", 500, 502, product)
		result, err = collectionIndexer.IndexCollection(ctx, "products", IndexOptions{})
		Expect(err).To(BeNil())
		Expect(result.Total).To(Equal(int64(2)))
		Expect(result.NumIndexed).To(Equal(int64(2)))
		Expect(indexedCount(index)).To(Equal(int64(502)))

		result, err = collectionIndexer.IndexCollection(ctx, "products", IndexOptions{})
		Expect(err).To(BeNil())
		Expect(result.Total).To(BeZero())
	})

	It("should rebuild the index from scratch when recreating", func() {
		collectionIndexer := newIndexer()
		result, err := collectionIndexer.IndexCollection(ctx, "products", IndexOptions{Recreate: true})
		Expect(err).To(BeNil())
		Expect(result.Total).To(Equal(int64(502)))
		Expect(indexedCount(naming.IndexName("products"))).To(Equal(int64(502)))
	})

	It("should keep indexing the rest of a page when a document is rejected", func() {
		index := naming.IndexName("orders")
		Expect(indexManager.EnsureIndex(ctx, index, false)).To(Succeed())
		res, err := opensearchapi.IndicesPutMappingRequest{
			Index: []string{index},
			Body:  strings.NewReader(`{"properties":{"quantity":{"type":"integer"}}}`),
		}.Do(ctx, opensearchClient)
		Expect(err).To(BeNil())
		res.Body.Close()
		Expect(res.StatusCode).To(Equal(http.StatusOK))

		insertProducts("orders", 0, 10, func(i int) bson.D {
			document := product(i)
			if i == 3 {
				document[1] = bson.E{Key: "quantity", Value: "not-a-number"}
			}
			return document
		})

		result, err := newIndexer().IndexCollection(ctx, "orders", IndexOptions{})
		Expect(err).To(BeNil())
		Expect(result.Total).To(Equal(int64(10)))
		Expect(result.NumIndexed).To(Equal(int64(10)))
		Expect(result.NumFailed).To(Equal(int64(1)))
		Expect(indexedCount(index)).To(Equal(int64(9)))

		Expect(indexManager.DeleteIndex(ctx, index)).To(Succeed())
	})
})
