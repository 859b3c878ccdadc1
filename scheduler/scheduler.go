package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	gosync "sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/metriport/ehr-sync/config"
	"github.com/metriport/ehr-sync/ehr"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/sync"
)

// LookupMode parameterizes the appointment window of a run.
type LookupMode string

const (
	ModeForward      LookupMode = "forward"
	ModeBackward     LookupMode = "backward"
	ModeSubscription LookupMode = "subscription"
)

func ParseLookupMode(raw string) (LookupMode, error) {
	switch LookupMode(raw) {
	case ModeForward, ModeBackward, ModeSubscription:
		return LookupMode(raw), nil
	}
	return "", fmt.Errorf("%w: unrecognized lookup mode %q", errors.BadRequest, raw)
}

// Failure captures one unit of failed work with enough context to chase it
// down. PracticeId is set for fetch failures, PatientId for sync failures.
type Failure struct {
	CxId       string
	PracticeId string
	PatientId  string
	Err        error
}

type RunReport struct {
	RunId        string
	Source       sources.Source
	Mode         LookupMode
	Practices    int
	Skipped      int
	Appointments int
	Patients     int
	Synced       int
	Failures     []Failure
}

// Resolver is the slice of the identity resolution engine the scheduler
// needs.
type Resolver interface {
	Resolve(ctx context.Context, params sync.ResolveParams) (string, error)
}

// Scheduler runs stateless, re-entrant batch synchronization passes over all
// practices of a source. Partial failures never abort a run.
type Scheduler struct {
	cxMappings mappings.CxMappings
	registry   *ehr.Registry
	resolver   Resolver
	cfg        *config.Config
	logger     *zap.SugaredLogger
}

func NewScheduler(
	cxMappings mappings.CxMappings,
	registry *ehr.Registry,
	resolver Resolver,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) *Scheduler {
	return &Scheduler{
		cxMappings: cxMappings,
		registry:   registry,
		resolver:   resolver,
		cfg:        cfg,
		logger:     logger,
	}
}

type patientTask struct {
	cxId       string
	practiceId string
	externalId string
}

func (s *Scheduler) Run(ctx context.Context, source sources.Source, mode LookupMode) (*RunReport, error) {
	source = source.Base()
	adapter, err := s.registry.Get(source)
	if err != nil {
		return nil, err
	}

	subscriptionClient, hasSubscription := adapter.Client().(ehr.SubscriptionClient)
	if mode == ModeSubscription && !hasSubscription {
		return nil, fmt.Errorf("%w: source %s has no subscription lookups", errors.BadRequest, source)
	}

	practices, err := s.cxMappings.ListBySource(ctx, source)
	if err != nil {
		return nil, err
	}

	report := &RunReport{
		RunId:  uuid.NewString(),
		Source: source,
		Mode:   mode,
	}

	var mu gosync.Mutex
	var tasks []patientTask

	fetch := func(ctx context.Context, practice mappings.CxMapping) ([]ehr.Appointment, error) {
		if mode == ModeSubscription {
			return subscriptionClient.GetAppointmentsFromSubscription(ctx, practice.ExternalId)
		}
		return adapter.Client().GetAppointments(ctx, practice.ExternalId, s.window(mode))
	}

	fetching, fetchCtx := errgroup.WithContext(ctx)
	fetching.SetLimit(s.cfg.PracticeFetchParallelism)
	for _, practice := range practices {
		secondary, err := mappings.DecodeCxSecondary(practice.SecondaryMappings)
		if err != nil {
			mu.Lock()
			report.Failures = append(report.Failures, Failure{CxId: practice.CxId, PracticeId: practice.ExternalId, Err: err})
			mu.Unlock()
			continue
		}
		if secondary.BackgroundDisabled {
			report.Skipped++
			continue
		}

		report.Practices++
		fetching.Go(func() error {
			jitter(s.cfg.PracticeFetchMaxJitter)
			appointments, err := fetch(fetchCtx, practice)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, Failure{CxId: practice.CxId, PracticeId: practice.ExternalId, Err: err})
				return nil
			}
			report.Appointments += len(appointments)
			for _, appointment := range appointments {
				tasks = append(tasks, patientTask{
					cxId:       practice.CxId,
					practiceId: practice.ExternalId,
					externalId: appointment.ExternalPatientId,
				})
			}
			return nil
		})
	}
	_ = fetching.Wait()

	// Identity resolution is idempotent, so last-write-wins dedupe by
	// external patient id is enough.
	seen := mapset.NewSet[string]()
	deduped := tasks[:0]
	for _, task := range tasks {
		if seen.Add(task.externalId) {
			deduped = append(deduped, task)
		}
	}
	report.Patients = len(deduped)

	syncing, syncCtx := errgroup.WithContext(ctx)
	syncing.SetLimit(s.cfg.PatientSyncParallelism)
	for _, task := range deduped {
		syncing.Go(func() error {
			jitter(s.cfg.PatientSyncMaxJitter)
			_, err := s.resolver.Resolve(syncCtx, sync.ResolveParams{
				CxId:                       task.cxId,
				Source:                     source,
				PracticeId:                 task.practiceId,
				ExternalId:                 task.externalId,
				TriggerDocQuery:            true,
				TriggerDocQueryForExisting: true,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, Failure{CxId: task.cxId, PatientId: task.externalId, Err: err})
				return nil
			}
			report.Synced++
			return nil
		})
	}
	_ = syncing.Wait()

	if len(report.Failures) > 0 {
		contexts := make([]string, 0, len(report.Failures))
		for _, failure := range report.Failures {
			contexts = append(contexts, failure.String())
		}
		s.logger.Warnw("batch synchronization completed with failures",
			"runId", report.RunId,
			"source", source,
			"mode", mode,
			"failureCount", len(report.Failures),
			"failures", contexts,
		)
	}

	return report, nil
}

func (s *Scheduler) window(mode LookupMode) ehr.TimeWindow {
	now := time.Now()
	if mode == ModeBackward {
		return ehr.TimeWindow{From: now.Add(-s.cfg.AppointmentLookBack), To: now}
	}
	return ehr.TimeWindow{From: now, To: now.Add(s.cfg.AppointmentLookAhead)}
}

func (f Failure) String() string {
	subject := f.PracticeId
	if f.PatientId != "" {
		subject = f.PatientId
	}
	return fmt.Sprintf("%s/%s: %v", f.CxId, subject, f.Err)
}

func jitter(max time.Duration) {
	if max <= 0 {
		return
	}
	time.Sleep(time.Duration(rand.Int63n(int64(max))))
}
