package ehr

import (
	"context"
	"fmt"
	"time"

	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

// Appointment is the subset of a vendor appointment the sync pipeline needs.
type Appointment struct {
	ExternalPatientId string
	DepartmentId      string
	StartsAt          time.Time
}

type TimeWindow struct {
	From time.Time
	To   time.Time
}

//go:generate mockgen --build_flags=--mod=mod -source=./ehr.go -destination=./test/mock_client.go -package test Client,SubscriptionClient

// Client is the wire-level capability of a source. Pagination, vendor auth
// quirks and timeouts are its responsibility.
type Client interface {
	GetPatient(ctx context.Context, practiceId, patientId string) ([]byte, error)
	GetAppointments(ctx context.Context, practiceId string, window TimeWindow) ([]Appointment, error)
}

// SubscriptionClient is the optional capability of sources that expose a
// webhook-subscription appointment delta.
type SubscriptionClient interface {
	Client
	GetAppointmentsFromSubscription(ctx context.Context, practiceId string) ([]Appointment, error)
}

// Adapter couples a source's client with its pure normalization logic.
type Adapter interface {
	Source() sources.Source
	Client() Client
	// Demographics normalizes a raw patient payload into one or more
	// candidate records. All candidates must be tried when matching.
	Demographics(raw []byte) ([]patients.Demographics, error)
}

// Registry holds one adapter per source. Construction fails if any source
// is missing so a partially wired deployment is caught at startup rather
// than surfacing as bad requests at runtime.
type Registry struct {
	adapters map[sources.Source]Adapter
}

func NewRegistry(adapters []Adapter) (*Registry, error) {
	bySource := make(map[sources.Source]Adapter, len(adapters))
	for _, adapter := range adapters {
		if _, ok := bySource[adapter.Source()]; ok {
			return nil, fmt.Errorf("duplicate adapter for source %s", adapter.Source())
		}
		bySource[adapter.Source()] = adapter
	}

	for _, source := range sources.All() {
		if _, ok := bySource[source]; !ok {
			return nil, fmt.Errorf("no adapter registered for source %s", source)
		}
	}

	return &Registry{adapters: bySource}, nil
}

func (r *Registry) Get(source sources.Source) (Adapter, error) {
	adapter, ok := r.adapters[source.Base()]
	if !ok {
		// Unreachable for sources validated at the boundary, kept as a guard.
		return nil, fmt.Errorf("no adapter registered for source %s", source)
	}
	return adapter, nil
}
