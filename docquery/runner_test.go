package docquery_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/metriport/ehr-sync/docquery"
	dqTest "github.com/metriport/ehr-sync/docquery/test"
)

var _ = Describe("DetachedRunner", func() {
	var trigger *dqTest.MockTrigger

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		trigger = dqTest.NewMockTrigger(ctrl)
	})

	newRunner := func() *docquery.DetachedRunner {
		return docquery.NewDetachedRunner(trigger, zap.NewNop().Sugar())
	}

	It("runs every enqueued query before stopping", func() {
		var mu sync.Mutex
		var seen []string
		trigger.EXPECT().
			QueryAcrossSources(gomock.Any(), "cx", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, patientId string) error {
				mu.Lock()
				defer mu.Unlock()
				seen = append(seen, patientId)
				return nil
			}).
			Times(3)

		runner := newRunner()
		runner.Start()
		runner.Enqueue("cx", "p1")
		runner.Enqueue("cx", "p2")
		runner.Enqueue("cx", "p3")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(runner.Stop(ctx)).To(Succeed())

		mu.Lock()
		defer mu.Unlock()
		Expect(seen).To(Equal([]string{"p1", "p2", "p3"}))
	})

	It("sends trigger failures to the sink and keeps going", func() {
		trigger.EXPECT().
			QueryAcrossSources(gomock.Any(), "cx", "p1").
			Return(fmt.Errorf("upstream down"))
		trigger.EXPECT().
			QueryAcrossSources(gomock.Any(), "cx", "p2").
			Return(nil)

		var mu sync.Mutex
		var failed []string
		runner := newRunner().WithErrorSink(func(cxId, patientId string, err error) {
			mu.Lock()
			defer mu.Unlock()
			failed = append(failed, patientId)
		})
		runner.Start()
		runner.Enqueue("cx", "p1")
		runner.Enqueue("cx", "p2")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(runner.Stop(ctx)).To(Succeed())

		mu.Lock()
		defer mu.Unlock()
		Expect(failed).To(Equal([]string{"p1"}))
	})

	It("drops work enqueued after stop", func() {
		runner := newRunner()
		runner.Start()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(runner.Stop(ctx)).To(Succeed())

		// No trigger expectation is set: an enqueue here would fail the test.
		runner.Enqueue("cx", "p1")
	})
})
