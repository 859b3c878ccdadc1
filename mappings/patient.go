package mappings

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
)

const patientMappingsCollection = "patient_mappings"

//go:generate mockgen --build_flags=--mod=mod -source=./patient.go -destination=./test/mock_patient_mappings.go -package test PatientMappings

type PatientMappings interface {
	// FindOrCreate is the persistence step of identity resolution. Concurrent
	// callers racing to create the same mapping are absorbed: the loser's
	// insert hits the unique index and the winner's row is returned.
	FindOrCreate(ctx context.Context, mapping PatientMapping) (*PatientMapping, error)
	Get(ctx context.Context, source sources.Source, externalId string) (*PatientMapping, error)
	List(ctx context.Context, cxId string, source *sources.Source) ([]PatientMapping, error)
	SetSecondaryMappings(ctx context.Context, cxId, id string, secondary SecondaryMappings) (*PatientMapping, error)
	SetDocQueryStartedAt(ctx context.Context, id string, startedAt time.Time) error
	Delete(ctx context.Context, cxId, id string) error
}

func NewPatientMappings(db *mongo.Database, lifecycle fx.Lifecycle) (PatientMappings, error) {
	repo := &patientMappingsRepo{
		collection: db.Collection(patientMappingsCollection),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type patientMappingsRepo struct {
	collection *mongo.Collection
}

func (r *patientMappingsRepo) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "source", Value: 1},
				{Key: "externalId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniquePatientMapping"),
		},
		{
			Keys: bson.D{
				{Key: "cxId", Value: 1},
				{Key: "source", Value: 1},
			},
			Options: options.Index().
				SetName("PatientMappingsByTenant"),
		},
	})
	return err
}

func (r *patientMappingsRepo) FindOrCreate(ctx context.Context, mapping PatientMapping) (*PatientMapping, error) {
	if err := validateSource(mapping.Source); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, mapping.Source, mapping.ExternalId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	mapping.Id = nil
	if _, err := r.collection.InsertOne(ctx, mapping); err != nil {
		if !isDuplicateKey(err) {
			return nil, fmt.Errorf("error creating patient mapping: %w", err)
		}
	}

	created, err := r.Get(ctx, mapping.Source, mapping.ExternalId)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: patient mapping for %s %s", errors.NotFound, mapping.Source, mapping.ExternalId)
	}
	return created, nil
}

func (r *patientMappingsRepo) Get(ctx context.Context, source sources.Source, externalId string) (*PatientMapping, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	selector := bson.M{
		"source":     source,
		"externalId": externalId,
	}

	mapping := &PatientMapping{}
	err := r.collection.FindOne(ctx, selector).Decode(mapping)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return mapping, nil
}

func (r *patientMappingsRepo) List(ctx context.Context, cxId string, source *sources.Source) ([]PatientMapping, error) {
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
		return nil, fmt.Errorf("error listing patient mappings: %w", err)
	}

	var result []PatientMapping
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding patient mappings: %w", err)
	}

	return result, nil
}

func (r *patientMappingsRepo) SetSecondaryMappings(ctx context.Context, cxId, id string, secondary SecondaryMappings) (*PatientMapping, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	selector := bson.M{
		"_id":  objId,
		"cxId": cxId,
	}
	update := bson.M{
		"$set": bson.M{"secondaryMappings": secondary},
	}

	mapping := &PatientMapping{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.collection.FindOneAndUpdate(ctx, selector, update, opts).Decode(mapping)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: patient mapping %s", errors.NotFound, id)
	} else if err != nil {
		return nil, fmt.Errorf("error updating patient mapping: %w", err)
	}

	return mapping, nil
}

func (r *patientMappingsRepo) SetDocQueryStartedAt(ctx context.Context, id string, startedAt time.Time) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	update := bson.M{
		"$set": bson.M{"docQueryStartedAt": startedAt},
	}
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objId}, update).Err()
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("%w: patient mapping %s", errors.NotFound, id)
	} else if err != nil {
		return fmt.Errorf("error updating patient mapping: %w", err)
	}

	return nil
}

func (r *patientMappingsRepo) Delete(ctx context.Context, cxId, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId, "cxId": cxId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: patient mapping %s", errors.NotFound, id)
	}

	return nil
}
