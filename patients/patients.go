package patients

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/metriport/ehr-sync/sources"
)

// Patient is the canonical, tenant-owned record external EHR records are
// reconciled against.
type Patient struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty"`
	CxId         string              `bson:"cxId"`
	FacilityId   string              `bson:"facilityId"`
	Demographics Demographics        `bson:"demographics"`
	ExternalIds  []ExternalId        `bson:"externalIds,omitempty"`
}

type ExternalId struct {
	Source sources.Source `bson:"source"`
	Id     string         `bson:"id"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./patients.go -destination=./test/mock_service.go -package test Service

type Service interface {
	GetById(ctx context.Context, cxId, id string) (*Patient, error)
	// GetByDemo returns the canonical patient matching the demographic
	// record, or nil when there is none.
	GetByDemo(ctx context.Context, cxId string, demo Demographics) (*Patient, error)
	Create(ctx context.Context, cxId, facilityId string, demo Demographics, externalId ExternalId) (*Patient, error)
}
