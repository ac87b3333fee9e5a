package opensearch

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/tidwall/gjson"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func getTestDocuments(n int) []types.Document {
	documents := make([]types.Document, 0, n)
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		documents = append(documents, bson.D{
			{Key: "_id", Value: primitive.NewObjectIDFromTimestamp(base.Add(time.Duration(i) * time.Second))},
			{Key: "name", Value: fmt.Sprintf("product-%d", i)},
			{Key: "price", Value: int32(i)},
			{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(base.Add(time.Duration(i) * time.Minute))},
		})
	}
	return documents
}

func bulkSuccessResponse(n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"index":{"_index":"mongodb-products","_id":"%d","status":201,"result":"created"}}`, i))
	}
	return fmt.Sprintf(`{"took":3,"errors":false,"items":[%s]}`, strings.Join(items, ","))
}

func bulkResponseWithFailures(n int, failed map[int]string) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if item, ok := failed[i]; ok {
			items = append(items, item)
			continue
		}
		items = append(items, fmt.Sprintf(`{"index":{"_index":"mongodb-products","_id":"%d","status":201,"result":"created"}}`, i))
	}
	return fmt.Sprintf(`{"took":3,"errors":true,"items":[%s]}`, strings.Join(items, ","))
}

var _ = Describe("Writing documents in bulk", func() {
	var (
		ctx       context.Context
		transport *routedTransport
		writer    *BulkWriter
	)
	newWriter := func(response mockResponse) {
		transport = newRoutedTransport(map[string]mockResponse{
			"/mongodb-products/_bulk": response,
		})
		writer = NewBulkWriter(getTestLogger(), getMockOpensearchClient(transport))
	}
	BeforeEach(func() {
		ctx = context.Background()
	})

	When("writing an empty page", func() {
		It("should not send any request", func() {
			newWriter(mockResponse{status: http.StatusOK, body: bulkSuccessResponse(0)})
			result, err := writer.WriteDocuments(ctx, "mongodb-products", []types.Document{})
			Expect(err).To(BeNil())
			Expect(result.Attempted).To(BeZero())
			Expect(transport.RequestsTo("/mongodb-products/_bulk")).To(BeEmpty())
		})
	})

	When("every document is accepted", func() {
		It("should send action and record pairs", func() {
			documents := getTestDocuments(3)
			newWriter(mockResponse{status: http.StatusOK, body: bulkSuccessResponse(3)})
			result, err := writer.WriteDocuments(ctx, "mongodb-products", documents)
			Expect(err).To(BeNil())
			Expect(result.Attempted).To(Equal(3))
			Expect(result.Failures).To(BeEmpty())

			requests := transport.RequestsTo("/mongodb-products/_bulk")
			Expect(requests).To(HaveLen(1))
			lines := strings.Split(strings.TrimSuffix(requests[0].Body, "\n"), "\n")
			Expect(lines).To(HaveLen(6))

			firstID := documents[0][0].Value.(primitive.ObjectID).Hex()
			Expect(gjson.Get(lines[0], "index._index").String()).To(Equal("mongodb-products"))
			Expect(gjson.Get(lines[0], "index._id").String()).To(Equal(firstID))
			Expect(gjson.Get(lines[1], "id").String()).To(Equal(firstID))
			Expect(gjson.Get(lines[1], "_id").Exists()).To(BeFalse())
			Expect(gjson.Get(lines[1], "updatedAt").String()).To(Equal("2024-05-01T10:00:00.000Z"))
			Expect(gjson.Get(lines[5], "name").String()).To(Equal("product-2"))
		})
	})

	When("some documents are rejected", func() {
		It("should report them and keep the rest", func() {
			documents := getTestDocuments(10)
			newWriter(mockResponse{status: http.StatusOK, body: bulkResponseWithFailures(10, map[int]string{
				4: `{"index":{"_index":"mongodb-products","_id":"4","status":400,"error":{"type":"mapper_parsing_exception","reason":"failed to parse field [price]"}}}`,
			})})
			result, err := writer.WriteDocuments(ctx, "mongodb-products", documents)
			Expect(err).To(BeNil())
			Expect(result.Attempted).To(Equal(10))
			Expect(result.Failures).To(HaveLen(1))

			failure := result.Failures[0]
			Expect(failure.Status).To(Equal(http.StatusBadRequest))
			Expect(failure.ErrorType).To(Equal("mapper_parsing_exception"))
			Expect(failure.Reason).To(ContainSubstring("price"))
			Expect(failure.Retryable).To(BeFalse())
			Expect(gjson.GetBytes(failure.Document, "name").String()).To(Equal("product-4"))
			Expect(gjson.GetBytes(failure.Action, "index._index").String()).To(Equal("mongodb-products"))
		})
		It("should flag throttled items as retryable", func() {
			documents := getTestDocuments(2)
			newWriter(mockResponse{status: http.StatusOK, body: bulkResponseWithFailures(2, map[int]string{
				1: `{"index":{"_index":"mongodb-products","_id":"1","status":429,"error":{"type":"es_rejected_execution_exception","reason":"rejected execution"}}}`,
			})})
			result, err := writer.WriteDocuments(ctx, "mongodb-products", documents)
			Expect(err).To(BeNil())
			Expect(result.Failures).To(HaveLen(1))
			Expect(result.Failures[0].Retryable).To(BeTrue())
		})
	})

	When("the page is larger than the default flush threshold", func() {
		It("should still send it in a single request", func() {
			documents := getTestDocuments(30)
			padding := strings.Repeat("x", 300*1024)
			for i := range documents {
				documents[i] = append(documents[i], bson.E{Key: "description", Value: padding})
			}
			newWriter(mockResponse{status: http.StatusOK, body: bulkSuccessResponse(30)})
			result, err := writer.WriteDocuments(ctx, "mongodb-products", documents)
			Expect(err).To(BeNil())
			Expect(result.Failures).To(BeEmpty())

			requests := transport.RequestsTo("/mongodb-products/_bulk")
			Expect(requests).To(HaveLen(1))
			Expect(strings.Count(requests[0].Body, "\n")).To(Equal(60))
		})
	})

	When("a document cannot be encoded", func() {
		It("should report it without sending it", func() {
			documents := getTestDocuments(2)
			documents[1] = append(documents[1], bson.E{Key: "ratio", Value: math.NaN()})
			newWriter(mockResponse{status: http.StatusOK, body: bulkSuccessResponse(1)})
			result, err := writer.WriteDocuments(ctx, "mongodb-products", documents)
			Expect(err).To(BeNil())
			Expect(result.Attempted).To(Equal(2))
			Expect(result.Failures).To(HaveLen(1))
			Expect(result.Failures[0].ErrorType).To(Equal(encodingErrorType))

			requests := transport.RequestsTo("/mongodb-products/_bulk")
			Expect(requests).To(HaveLen(1))
			Expect(strings.Count(requests[0].Body, "\n")).To(Equal(2))
		})
	})

	When("the bulk request fails as a whole", func() {
		It("should return an error", func() {
			newWriter(mockResponse{status: http.StatusRequestEntityTooLarge, body: `{"error":{"type":"content_too_long"}}`})
			result, err := writer.WriteDocuments(ctx, "mongodb-products", getTestDocuments(2))
			Expect(err).To(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})
})
