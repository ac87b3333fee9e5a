package indexer

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	mongodb_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/mongodb"
)

var _ = Describe("Indexer config", func() {
	It("should apply defaults", func() {
		GinkgoT().Setenv("MONGO_COLLECTIONS_TO_INDEX", "users, orders,")
		config, err := NewIndexerConfigFromEnv()
		Expect(err).To(BeNil())
		Expect(config.Collections).To(Equal([]string{"users", "orders"}))
		Expect(config.Interval()).To(Equal(30 * time.Second))
		Expect(config.UpdatedAtField).To(Equal("updatedAt"))
		Expect(config.BatchSize).To(Equal(10000))
		Expect(config.ValidateService()).To(Succeed())
	})

	It("should parse exclusions", func() {
		GinkgoT().Setenv("MONGO_EXCLUDE_ATTRIBUTES", "users.email, users.profile.ssn")
		config, err := NewIndexerConfigFromEnv()
		Expect(err).To(BeNil())
		Expect(config.ExcludeAttributes).To(Equal([]string{"users.email", "users.profile.ssn"}))
	})

	It("should reject a malformed interval", func() {
		GinkgoT().Setenv("MONGO_INDEXER_INTERVAL_SECONDS", "soon")
		_, err := NewIndexerConfigFromEnv()
		Expect(err).To(HaveOccurred())
	})

	It("should reject a non positive batch size", func() {
		GinkgoT().Setenv("MONGO_INDEXER_BATCH_SIZE", "0")
		_, err := NewIndexerConfigFromEnv()
		Expect(err).To(HaveOccurred())
	})

	It("should reject a batch size above the page limit", func() {
		GinkgoT().Setenv("MONGO_INDEXER_BATCH_SIZE", "4294967296")
		_, err := NewIndexerConfigFromEnv()
		Expect(err).To(HaveOccurred())
		config := &IndexerConfig{UpdatedAtField: "updatedAt", BatchSize: mongodb_repo.MaxPageSize + 1}
		Expect(config.Validate()).ToNot(Succeed())
		config.BatchSize = mongodb_repo.MaxPageSize
		Expect(config.Validate()).To(Succeed())
	})

	It("should require collections and interval for the service", func() {
		config := &IndexerConfig{UpdatedAtField: "updatedAt", BatchSize: 10, IntervalSeconds: 30}
		Expect(config.Validate()).To(Succeed())
		Expect(config.ValidateService()).ToNot(Succeed())

		config.Collections = []string{"users"}
		config.IntervalSeconds = 0
		Expect(config.ValidateService()).ToNot(Succeed())
	})
})
