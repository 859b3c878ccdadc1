package mappings

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
)

const facilityMappingsCollection = "facility_mappings"

//go:generate mockgen --build_flags=--mod=mod -source=./facility.go -destination=./test/mock_facility_mappings.go -package test FacilityMappings

type FacilityMappings interface {
	FindOrCreate(ctx context.Context, mapping FacilityMapping) (*FacilityMapping, error)
	Get(ctx context.Context, cxId string, source sources.Source, externalId string) (*FacilityMapping, error)
	GetOrFail(ctx context.Context, cxId string, source sources.Source, externalId string) (*FacilityMapping, error)
	// Resolve returns the facility for "{practiceId}-{state}" when a state
	// is given, falling back to the practice default.
	Resolve(ctx context.Context, cxId string, source sources.Source, practiceId, state string) (*FacilityMapping, error)
	List(ctx context.Context, cxId string, source *sources.Source) ([]FacilityMapping, error)
	Delete(ctx context.Context, cxId, id string) error
}

func NewFacilityMappings(db *mongo.Database, lifecycle fx.Lifecycle) (FacilityMappings, error) {
	repo := &facilityMappingsRepo{
		collection: db.Collection(facilityMappingsCollection),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type facilityMappingsRepo struct {
	collection *mongo.Collection
}

func (r *facilityMappingsRepo) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "cxId", Value: 1},
				{Key: "source", Value: 1},
				{Key: "externalId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueFacilityMapping"),
		},
	})
	return err
}

func (r *facilityMappingsRepo) FindOrCreate(ctx context.Context, mapping FacilityMapping) (*FacilityMapping, error) {
	if err := validateSource(mapping.Source); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, mapping.CxId, mapping.Source, mapping.ExternalId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	mapping.Id = nil
	if _, err := r.collection.InsertOne(ctx, mapping); err != nil {
		if !isDuplicateKey(err) {
			return nil, fmt.Errorf("error creating facility mapping: %w", err)
		}
	}

	return r.GetOrFail(ctx, mapping.CxId, mapping.Source, mapping.ExternalId)
}

func (r *facilityMappingsRepo) Get(ctx context.Context, cxId string, source sources.Source, externalId string) (*FacilityMapping, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	selector := bson.M{
		"cxId":       cxId,
		"source":     source,
		"externalId": externalId,
	}

	mapping := &FacilityMapping{}
	err := r.collection.FindOne(ctx, selector).Decode(mapping)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return mapping, nil
}

func (r *facilityMappingsRepo) GetOrFail(ctx context.Context, cxId string, source sources.Source, externalId string) (*FacilityMapping, error) {
	mapping, err := r.Get(ctx, cxId, source, externalId)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, fmt.Errorf("%w: facility mapping for %s %s", errors.NotFound, source, externalId)
	}
	return mapping, nil
}

func (r *facilityMappingsRepo) Resolve(ctx context.Context, cxId string, source sources.Source, practiceId, state string) (*FacilityMapping, error) {
	if state != "" {
		mapping, err := r.Get(ctx, cxId, source, fmt.Sprintf("%s-%s", practiceId, state))
		if err != nil {
			return nil, err
		}
		if mapping != nil {
			return mapping, nil
		}
	}

	return r.GetOrFail(ctx, cxId, source, practiceId)
}

func (r *facilityMappingsRepo) List(ctx context.Context, cxId string, source *sources.Source) ([]FacilityMapping, error) {
	selector := bson.M{
		"cxId": cxId,
	}
	if source != nil {
		if err := validateSource(*source); err != nil {
			return nil, err
		}
		selector["source"] = *source
	}

	cursor, err := r.collection.Find(ctx, selector)
	if err != nil {
		return nil, fmt.Errorf("error listing facility mappings: %w", err)
	}

	var result []FacilityMapping
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding facility mappings: %w", err)
	}

	return result, nil
}

func (r *facilityMappingsRepo) Delete(ctx context.Context, cxId, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId, "cxId": cxId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: facility mapping %s", errors.NotFound, id)
	}

	return nil
}
