package docquery

import (
	"context"
	"sync"

	"github.com/eapache/queue"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type task struct {
	cxId      string
	patientId string
}

// ErrorSink receives trigger failures. The runner never surfaces them to
// the caller that enqueued the work.
type ErrorSink func(cxId, patientId string, err error)

// DetachedRunner fires document queries from a background goroutine so the
// request that resolved the patient never waits on (or fails because of)
// document retrieval.
type DetachedRunner struct {
	trigger Trigger
	sink    ErrorSink

	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue
	closed  bool
	done    chan struct{}
}

func NewDetachedRunner(trigger Trigger, logger *zap.SugaredLogger) *DetachedRunner {
	runner := &DetachedRunner{
		trigger: trigger,
		sink: func(cxId, patientId string, err error) {
			logger.Warnw("document query failed",
				"cxId", cxId,
				"patientId", patientId,
				zap.Error(err),
			)
		},
		pending: queue.New(),
		done:    make(chan struct{}),
	}
	runner.cond = sync.NewCond(&runner.mu)
	return runner
}

// WithErrorSink replaces the default zap-backed sink.
func (r *DetachedRunner) WithErrorSink(sink ErrorSink) *DetachedRunner {
	r.sink = sink
	return r
}

func (r *DetachedRunner) Start() {
	go r.run()
}

// Enqueue schedules a document query and returns immediately. Work enqueued
// after Stop is dropped.
func (r *DetachedRunner) Enqueue(cxId, patientId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.pending.Add(task{cxId: cxId, patientId: patientId})
	r.cond.Signal()
}

func (r *DetachedRunner) run() {
	defer close(r.done)
	for {
		r.mu.Lock()
		for r.pending.Length() == 0 && !r.closed {
			r.cond.Wait()
		}
		if r.pending.Length() == 0 {
			r.mu.Unlock()
			return
		}
		next := r.pending.Remove().(task)
		r.mu.Unlock()

		// Deliberately not the request context: the query must outlive
		// the request that scheduled it.
		if err := r.trigger.QueryAcrossSources(context.Background(), next.cxId, next.patientId); err != nil {
			r.sink(next.cxId, next.patientId, err)
		}
	}
}

// Stop drains queued work before returning. ctx bounds the wait.
func (r *DetachedRunner) Stop(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.cond.Signal()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RegisterLifecycle starts the runner with the application and drains it on
// shutdown.
func RegisterLifecycle(lifecycle fx.Lifecycle, runner *DetachedRunner) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runner.Start()
			return nil
		},
		OnStop: runner.Stop,
	})
}
