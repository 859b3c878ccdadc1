package sync

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/metriport/ehr-sync/config"
	"github.com/metriport/ehr-sync/ehr"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

type ResolveParams struct {
	CxId       string
	Source     sources.Source
	PracticeId string
	ExternalId string

	// TriggerDocQuery starts a document query when resolution creates a new
	// mapping. TriggerDocQueryForExisting extends that to already mapped
	// patients, subject to the cooldown window.
	TriggerDocQuery            bool
	TriggerDocQueryForExisting bool
}

// DocQueryScheduler accepts fire-and-forget document query work.
type DocQueryScheduler interface {
	Enqueue(cxId, patientId string)
}

// Engine resolves an external patient identity to a canonical patient id,
// creating the canonical record and the durable mapping when needed.
type Engine struct {
	registry         *ehr.Registry
	patients         patients.Service
	patientMappings  mappings.PatientMappings
	facilityMappings mappings.FacilityMappings
	docQueries       DocQueryScheduler
	cfg              *config.Config
	logger           *zap.SugaredLogger
}

func NewEngine(
	registry *ehr.Registry,
	patientService patients.Service,
	patientMappings mappings.PatientMappings,
	facilityMappings mappings.FacilityMappings,
	docQueries DocQueryScheduler,
	cfg *config.Config,
	logger *zap.SugaredLogger,
) *Engine {
	return &Engine{
		registry:         registry,
		patients:         patientService,
		patientMappings:  patientMappings,
		facilityMappings: facilityMappings,
		docQueries:       docQueries,
		cfg:              cfg,
		logger:           logger,
	}
}

// Resolve maps (source, externalId) to a canonical patient id. Repeated and
// concurrent calls for the same external id are safe: the mapping lookup
// short-circuits, and the persistence step absorbs create races.
func (e *Engine) Resolve(ctx context.Context, params ResolveParams) (string, error) {
	source := params.Source.Base()
	if !source.IsValid() {
		return "", fmt.Errorf("%w: unsupported source %q", errors.BadRequest, params.Source)
	}

	mapping, err := e.patientMappings.Get(ctx, source, params.ExternalId)
	if err != nil {
		return "", err
	}
	if mapping != nil {
		// The canonical record must still exist. A mapping pointing at a
		// patient deleted out-of-band is fatal, not retried.
		if _, err := e.patients.GetById(ctx, params.CxId, mapping.PatientId); err != nil {
			return "", err
		}
		if params.TriggerDocQueryForExisting &&
			IsDocQueryCooldownExpired(mapping.DocQueryStartedAt, time.Now(), e.cfg.DocQueryCooldown) {
			e.startDocQuery(ctx, mapping)
		}
		return mapping.PatientId, nil
	}

	adapter, err := e.registry.Get(source)
	if err != nil {
		return "", err
	}

	raw, err := adapter.Client().GetPatient(ctx, params.PracticeId, params.ExternalId)
	if err != nil {
		return "", fmt.Errorf("error fetching %s patient %s: %w", source, params.ExternalId, err)
	}

	candidates, err := adapter.Demographics(raw)
	if err != nil {
		return "", err
	}

	patientId, err := e.matchOrCreate(ctx, params, source, candidates)
	if err != nil {
		return "", err
	}

	created, err := e.patientMappings.FindOrCreate(ctx, mappings.PatientMapping{
		CxId:       params.CxId,
		Source:     source,
		ExternalId: params.ExternalId,
		PatientId:  patientId,
	})
	if err != nil {
		return "", err
	}

	if params.TriggerDocQuery {
		e.startDocQuery(ctx, created)
	}

	return created.PatientId, nil
}

// matchOrCreate tries every demographic candidate against the canonical
// store before deciding to create.
func (e *Engine) matchOrCreate(ctx context.Context, params ResolveParams, source sources.Source, candidates []patients.Demographics) (string, error) {
	var matched []string
	seen := map[string]bool{}
	for _, candidate := range candidates {
		patient, err := e.patients.GetByDemo(ctx, params.CxId, candidate)
		if err != nil {
			return "", err
		}
		if patient == nil {
			continue
		}
		id := patient.Id.Hex()
		if !seen[id] {
			seen[id] = true
			matched = append(matched, id)
		}
	}

	if len(matched) > 1 {
		// Possible duplicate canonical records. Resolution proceeds with
		// the first match; the anomaly is recorded, not fatal.
		e.logger.Warnw("multiple canonical patients matched one external identity",
			"cxId", params.CxId,
			"source", source,
			"externalId", params.ExternalId,
			"patientIds", matched,
		)
	}
	if len(matched) > 0 {
		return matched[0], nil
	}

	merged := patients.MergeDemographics(candidates)
	facility, err := e.facilityMappings.Resolve(ctx, params.CxId, source, params.PracticeId, merged.FirstState())
	if err != nil {
		return "", err
	}

	patient, err := e.patients.Create(ctx, params.CxId, facility.FacilityId, merged, patients.ExternalId{
		Source: source,
		Id:     params.ExternalId,
	})
	if err != nil {
		return "", err
	}

	e.logger.Infow("created canonical patient",
		"cxId", params.CxId,
		"source", source,
		"patientId", patient.Id.Hex(),
		"name", merged.DisplayName(),
	)

	return patient.Id.Hex(), nil
}

func (e *Engine) startDocQuery(ctx context.Context, mapping *mappings.PatientMapping) {
	if err := e.patientMappings.SetDocQueryStartedAt(ctx, mapping.Id.Hex(), time.Now()); err != nil {
		e.logger.Warnw("unable to record document query start",
			"cxId", mapping.CxId,
			"patientId", mapping.PatientId,
			zap.Error(err),
		)
	}
	e.docQueries.Enqueue(mapping.CxId, mapping.PatientId)
}

// IsDocQueryCooldownExpired reports whether enough time has passed since the
// last document query start. A nil last start always qualifies.
func IsDocQueryCooldownExpired(last *time.Time, now time.Time, cooldown time.Duration) bool {
	if last == nil || last.IsZero() {
		return true
	}
	return now.Sub(*last) >= cooldown
}
