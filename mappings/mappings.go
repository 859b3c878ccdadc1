package mappings

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/store"
)

// SecondaryMappings holds source-specific structured data attached to a
// mapping record. It is persisted as-is and decoded into typed views with
// mapstructure at call sites that care about specific fields.
type SecondaryMappings map[string]interface{}

// CxMapping correlates a tenant with its account (practice) in an external
// source. At most one mapping may exist per (source, externalId).
type CxMapping struct {
	Id                *primitive.ObjectID `bson:"_id,omitempty"`
	CxId              string              `bson:"cxId"`
	Source            sources.Source      `bson:"source"`
	ExternalId        string              `bson:"externalId"`
	SecondaryMappings SecondaryMappings   `bson:"secondaryMappings,omitempty"`
}

// FacilityMapping resolves an external practice, optionally scoped by state
// via a composite external id "{practiceId}-{state}", to a canonical facility.
type FacilityMapping struct {
	Id         *primitive.ObjectID `bson:"_id,omitempty"`
	CxId       string              `bson:"cxId"`
	Source     sources.Source      `bson:"source"`
	ExternalId string              `bson:"externalId"`
	FacilityId string              `bson:"facilityId"`
}

// SecretsMapping holds a pointer to out-of-band credential material. The raw
// secret is never stored here, only the ARN referencing it.
type SecretsMapping struct {
	Id         *primitive.ObjectID `bson:"_id,omitempty"`
	CxId       string              `bson:"cxId"`
	Source     sources.Source      `bson:"source"`
	ExternalId string              `bson:"externalId"`
	SecretArn  string              `bson:"secretArn"`
}

type ClientKeyMapping struct {
	Id           *primitive.ObjectID `bson:"_id,omitempty"`
	CxId         string              `bson:"cxId"`
	Source       sources.Source      `bson:"source"`
	ExternalId   string              `bson:"externalId"`
	ClientKey    string              `bson:"clientKey"`
	ClientSecret string              `bson:"clientSecret"`
	Data         SecondaryMappings   `bson:"data,omitempty"`
}

// PatientMapping is the durable identity correlation the whole pipeline
// upholds: at most one canonical patient per (source, externalId).
type PatientMapping struct {
	Id                *primitive.ObjectID `bson:"_id,omitempty"`
	CxId              string              `bson:"cxId"`
	Source            sources.Source      `bson:"source"`
	ExternalId        string              `bson:"externalId"`
	PatientId         string              `bson:"patientId"`
	SecondaryMappings SecondaryMappings   `bson:"secondaryMappings,omitempty"`
	DocQueryStartedAt *time.Time          `bson:"docQueryStartedAt,omitempty"`
}

// WebhookRegistration is the per-application signing key material stored in
// a CxMapping's secondary mappings, keyed by resource type.
type WebhookRegistration struct {
	ApplicationId string `mapstructure:"applicationId"`
	PublicKey     string `mapstructure:"publicKey"`
}

// CxSecondary is the typed view of a CxMapping's secondary mappings.
type CxSecondary struct {
	BackgroundDisabled bool                           `mapstructure:"backgroundDisabled"`
	Departments        []string                       `mapstructure:"departments"`
	Webhooks           map[string]WebhookRegistration `mapstructure:"webhooks"`
}

func DecodeCxSecondary(raw SecondaryMappings) (*CxSecondary, error) {
	secondary := &CxSecondary{}
	if err := mapstructure.Decode(map[string]interface{}(raw), secondary); err != nil {
		return nil, fmt.Errorf("unable to decode secondary mappings: %w", err)
	}
	return secondary, nil
}

func isDuplicateKey(err error) bool {
	return store.IsDuplicateKeyError(err)
}

func validateSource(source sources.Source) error {
	if !source.Base().IsValid() {
		return fmt.Errorf("%w: unsupported source %q", errors.BadRequest, source)
	}
	return nil
}
