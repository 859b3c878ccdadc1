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
	"github.com/metriport/ehr-sync/store"
)

const cxMappingsCollection = "cx_mappings"

//go:generate mockgen --build_flags=--mod=mod -source=./cx.go -destination=./test/mock_cx_mappings.go -package test CxMappings

type CxMappings interface {
	// FindOrCreate looks up the mapping by its natural key and inserts it if
	// absent. An existing mapping is returned unchanged.
	FindOrCreate(ctx context.Context, mapping CxMapping) (*CxMapping, error)
	Get(ctx context.Context, source sources.Source, externalId string) (*CxMapping, error)
	GetOrFail(ctx context.Context, source sources.Source, externalId string) (*CxMapping, error)
	GetById(ctx context.Context, cxId, id string) (*CxMapping, error)
	// List pages through a tenant's mappings ordered by external id.
	// ListBySource is unpaged: scheduler runs visit every practice.
	List(ctx context.Context, cxId string, source *sources.Source, page store.Pagination) ([]CxMapping, error)
	ListBySource(ctx context.Context, source sources.Source) ([]CxMapping, error)
	SetExternalId(ctx context.Context, cxId, id, externalId string) (*CxMapping, error)
	SetSecondaryMappings(ctx context.Context, cxId, id string, secondary SecondaryMappings) (*CxMapping, error)
	Delete(ctx context.Context, cxId, id string) error
}

func NewCxMappings(db *mongo.Database, lifecycle fx.Lifecycle) (CxMappings, error) {
	repo := &cxMappingsRepo{
		collection: db.Collection(cxMappingsCollection),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type cxMappingsRepo struct {
	collection *mongo.Collection
}

func (r *cxMappingsRepo) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "source", Value: 1},
				{Key: "externalId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueCxMapping"),
		},
		{
			Keys: bson.D{
				{Key: "cxId", Value: 1},
				{Key: "source", Value: 1},
			},
			Options: options.Index().
				SetName("CxMappingsByTenant"),
		},
	})
	return err
}

func (r *cxMappingsRepo) FindOrCreate(ctx context.Context, mapping CxMapping) (*CxMapping, error) {
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
		// A concurrent caller may have created the mapping after our lookup.
		// The unique index is the source of truth, so re-read the winner.
		if !isDuplicateKey(err) {
			return nil, fmt.Errorf("error creating cx mapping: %w", err)
		}
	}

	return r.GetOrFail(ctx, mapping.Source, mapping.ExternalId)
}

func (r *cxMappingsRepo) Get(ctx context.Context, source sources.Source, externalId string) (*CxMapping, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	selector := bson.M{
		"source":     source,
		"externalId": externalId,
	}

	mapping := &CxMapping{}
	err := r.collection.FindOne(ctx, selector).Decode(mapping)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return mapping, nil
}

func (r *cxMappingsRepo) GetOrFail(ctx context.Context, source sources.Source, externalId string) (*CxMapping, error) {
	mapping, err := r.Get(ctx, source, externalId)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, fmt.Errorf("%w: cx mapping for %s practice %s", errors.NotFound, source, externalId)
	}
	return mapping, nil
}

func (r *cxMappingsRepo) GetById(ctx context.Context, cxId, id string) (*CxMapping, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	selector := bson.M{
		"_id":  objId,
		"cxId": cxId,
	}

	mapping := &CxMapping{}
	err = r.collection.FindOne(ctx, selector).Decode(mapping)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: cx mapping %s", errors.NotFound, id)
	} else if err != nil {
		return nil, err
	}

	return mapping, nil
}

func (r *cxMappingsRepo) List(ctx context.Context, cxId string, source *sources.Source, page store.Pagination) ([]CxMapping, error) {
	selector := bson.M{
		"cxId": cxId,
	}
	if source != nil {
		if err := validateSource(*source); err != nil {
			return nil, err
		}
		selector["source"] = *source
	}

	sort := store.Sort{Attribute: "externalId", Ascending: true}
	opts := options.Find().
		SetSort(bson.D{{Key: sort.Attribute, Value: sort.Order()}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	return r.list(ctx, selector, opts)
}

func (r *cxMappingsRepo) ListBySource(ctx context.Context, source sources.Source) ([]CxMapping, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	return r.list(ctx, bson.M{"source": source})
}

func (r *cxMappingsRepo) list(ctx context.Context, selector bson.M, opts ...*options.FindOptions) ([]CxMapping, error) {
	cursor, err := r.collection.Find(ctx, selector, opts...)
	if err != nil {
		return nil, fmt.Errorf("error listing cx mappings: %w", err)
	}

	var result []CxMapping
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding cx mappings: %w", err)
	}

	return result, nil
}

func (r *cxMappingsRepo) SetExternalId(ctx context.Context, cxId, id, externalId string) (*CxMapping, error) {
	return r.update(ctx, cxId, id, bson.M{"externalId": externalId})
}

func (r *cxMappingsRepo) SetSecondaryMappings(ctx context.Context, cxId, id string, secondary SecondaryMappings) (*CxMapping, error) {
	return r.update(ctx, cxId, id, bson.M{"secondaryMappings": secondary})
}

func (r *cxMappingsRepo) update(ctx context.Context, cxId, id string, set bson.M) (*CxMapping, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	selector := bson.M{
		"_id":  objId,
		"cxId": cxId,
	}

	err = r.collection.FindOneAndUpdate(ctx, selector, bson.M{"$set": set}).Err()
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: cx mapping %s", errors.NotFound, id)
	} else if err != nil {
		return nil, fmt.Errorf("error updating cx mapping: %w", err)
	}

	return r.GetById(ctx, cxId, id)
}

func (r *cxMappingsRepo) Delete(ctx context.Context, cxId, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId, "cxId": cxId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: cx mapping %s", errors.NotFound, id)
	}

	return nil
}
