package opensearch

import (
	"context"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"
)

var _ = Describe("Resolving checkpoints", func() {
	var (
		ctx       context.Context
		transport *routedTransport
		repo      *CheckpointRepository
	)
	newRepo := func(response mockResponse, updatedAtField string) {
		transport = newRoutedTransport(map[string]mockResponse{
			"/mongodb-users/_search": response,
		})
		repo = NewCheckpointRepository(getTestLogger(), getMockOpensearchClient(transport), updatedAtField)
	}
	BeforeEach(func() {
		ctx = context.Background()
	})

	When("the index does not exist", func() {
		It("should return no checkpoint", func() {
			newRepo(mockResponse{status: http.StatusNotFound, body: `{"error":{"type":"index_not_found_exception"},"status":404}`}, "updatedAt")
			checkpoint, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(BeNil())
			Expect(checkpoint).To(BeNil())
		})
	})

	When("the index is empty", func() {
		It("should return no checkpoint", func() {
			newRepo(mockResponse{status: http.StatusOK, body: `{"hits":{"total":{"value":0},"hits":[]}}`}, "updatedAt")
			checkpoint, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(BeNil())
			Expect(checkpoint).To(BeNil())
		})
	})

	When("the index has records", func() {
		It("should return the latest modification time and its id", func() {
			newRepo(mockResponse{status: http.StatusOK, body: `{"hits":{"hits":[{"_id":"65f1","_source":{"updatedAt":"2024-05-01T10:00:00.123Z","id":"65f1a2b3c4d5e6f708091a2b"}}]}}`}, "updatedAt")
			checkpoint, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(BeNil())
			Expect(checkpoint).ToNot(BeNil())
			Expect(checkpoint.UpdatedAt).To(BeTemporally("==", time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC)))
			Expect(checkpoint.ID).To(Equal("65f1a2b3c4d5e6f708091a2b"))
		})
		It("should ask for the most recent record first", func() {
			newRepo(mockResponse{status: http.StatusOK, body: `{"hits":{"hits":[]}}`}, "updatedAt")
			_, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(BeNil())
			searches := transport.RequestsTo("/mongodb-users/_search")
			Expect(searches).To(HaveLen(1))
			body := searches[0].Body
			Expect(gjson.Get(body, "size").Int()).To(Equal(int64(1)))
			Expect(gjson.Get(body, "sort.0.updatedAt.order").String()).To(Equal("desc"))
			Expect(gjson.Get(body, "sort.1.id.order").String()).To(Equal("desc"))
		})
		It("should accept epoch milliseconds", func() {
			newRepo(mockResponse{status: http.StatusOK, body: `{"hits":{"hits":[{"_source":{"updatedAt":1714557600000,"id":"7"}}]}}`}, "updatedAt")
			checkpoint, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(BeNil())
			Expect(checkpoint.UpdatedAt).To(BeTemporally("==", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
		})
		It("should read nested modification fields", func() {
			newRepo(mockResponse{status: http.StatusOK, body: `{"hits":{"hits":[{"_source":{"meta":{"updatedAt":"2024-05-01T10:00:00Z"},"id":"1"}}]}}`}, "meta.updatedAt")
			checkpoint, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(BeNil())
			Expect(checkpoint.UpdatedAt).To(BeTemporally("==", time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
		})
		It("should return no checkpoint when records lack the modification field", func() {
			newRepo(mockResponse{status: http.StatusOK, body: `{"hits":{"hits":[{"_source":{"id":"1"}}]}}`}, "updatedAt")
			checkpoint, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(BeNil())
			Expect(checkpoint).To(BeNil())
		})
		It("should fail on unparseable timestamps", func() {
			newRepo(mockResponse{status: http.StatusOK, body: `{"hits":{"hits":[{"_source":{"updatedAt":"yesterday","id":"1"}}]}}`}, "updatedAt")
			_, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(HaveOccurred())
		})
	})

	When("the search fails", func() {
		It("should propagate the error", func() {
			newRepo(mockResponse{status: http.StatusInternalServerError, body: `{"error":{"type":"search_phase_execution_exception"}}`}, "updatedAt")
			checkpoint, err := repo.GetCheckpoint(ctx, "mongodb-users")
			Expect(err).To(HaveOccurred())
			Expect(checkpoint).To(BeNil())
			Expect(IsNotFound(err)).To(BeFalse())
		})
	})
})
