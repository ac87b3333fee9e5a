package indexer

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	mongodb_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/mongodb"
	opensearch_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/opensearch"
	redis_repo "github.com/openshift-assisted/assisted-mongodb-sync/internal/repository/redis"
	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
)

var _ = Describe("Reporting collection status", func() {
	var (
		ctx                      context.Context
		ctrl                     *gomock.Controller
		mockCollectionRepository *mongodb_repo.MockCollectionRepositoryInterface
		mockIndexManager         *opensearch_repo.MockIndexManagerInterface
		mockRunRepository        *redis_repo.MockRunRepositoryInterface
		reporter                 *StatusReporter
	)
	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockCollectionRepository = mongodb_repo.NewMockCollectionRepositoryInterface(ctrl)
		mockIndexManager = opensearch_repo.NewMockIndexManagerInterface(ctrl)
		mockRunRepository = redis_repo.NewMockRunRepositoryInterface(ctrl)
		reporter = NewStatusReporter(
			getTestLogger(),
			opensearch_repo.NewIndexNaming(opensearch_repo.DefaultIndexPrefix),
			mockCollectionRepository,
			mockIndexManager,
			mockRunRepository,
		)
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	DescribeTable("comparing counts",
		func(sourceCount, destinationCount int64, expected types.CollectionState) {
			mockCollectionRepository.EXPECT().CountDocuments(ctx, "users", nil).Return(sourceCount, nil).Times(1)
			mockIndexManager.EXPECT().CountDocuments(ctx, "mongodb-users").Return(destinationCount, true, nil).Times(1)
			mockRunRepository.EXPECT().GetRun(ctx, "users").Return(nil, nil).Times(1)

			status, err := reporter.CollectionStatus(ctx, "users")
			Expect(err).To(BeNil())
			Expect(status.State).To(Equal(expected))
			Expect(status.SourceCount).To(Equal(sourceCount))
			Expect(status.DestinationCount).To(Equal(destinationCount))
		},
		Entry("same counts", int64(502), int64(502), types.CollectionStateInSync),
		Entry("index behind", int64(502), int64(500), types.CollectionStateBehind),
		Entry("index ahead", int64(500), int64(502), types.CollectionStateIrregular),
	)

	It("should include the last run", func() {
		lastRun := &types.SyncRunResult{CollectionName: "users", Total: 2}
		mockCollectionRepository.EXPECT().CountDocuments(ctx, "users", nil).Return(int64(2), nil).Times(1)
		mockIndexManager.EXPECT().CountDocuments(ctx, "mongodb-users").Return(int64(2), true, nil).Times(1)
		mockRunRepository.EXPECT().GetRun(ctx, "users").Return(lastRun, nil).Times(1)

		status, err := reporter.CollectionStatus(ctx, "users")
		Expect(err).To(BeNil())
		Expect(status.LastRun).To(Equal(lastRun))
		Expect(status.IndexExists).To(BeTrue())
	})

	It("should report a missing index as behind", func() {
		mockCollectionRepository.EXPECT().CountDocuments(ctx, "users", nil).Return(int64(5), nil).Times(1)
		mockIndexManager.EXPECT().CountDocuments(ctx, "mongodb-users").Return(int64(0), false, nil).Times(1)
		mockRunRepository.EXPECT().GetRun(ctx, "users").Return(nil, errors.New("timeout")).Times(1)

		status, err := reporter.CollectionStatus(ctx, "users")
		Expect(err).To(BeNil())
		Expect(status.IndexExists).To(BeFalse())
		Expect(status.State).To(Equal(types.CollectionStateBehind))
		Expect(status.LastRun).To(BeNil())
	})

	It("should fail when the source cannot be counted", func() {
		mockCollectionRepository.EXPECT().CountDocuments(ctx, "users", nil).Return(int64(0), errors.New("unauthorized")).Times(1)
		statuses, err := reporter.CollectionStatuses(ctx, []string{"users", "orders"})
		Expect(err).To(HaveOccurred())
		Expect(statuses).To(BeEmpty())
	})

	It("should work without a run repository", func() {
		reporter.runRepository = nil
		mockCollectionRepository.EXPECT().CountDocuments(ctx, "users", nil).Return(int64(1), nil).Times(1)
		mockIndexManager.EXPECT().CountDocuments(ctx, "mongodb-users").Return(int64(1), true, nil).Times(1)
		statuses, err := reporter.CollectionStatuses(ctx, []string{"users"})
		Expect(err).To(BeNil())
		Expect(statuses).To(HaveLen(1))
		Expect(statuses[0].State).To(Equal(types.CollectionStateInSync))
	})
})
