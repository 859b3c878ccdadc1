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

const (
	secretsMappingsCollection   = "secrets_mappings"
	clientKeyMappingsCollection = "client_key_mappings"
)

//go:generate mockgen --build_flags=--mod=mod -source=./secrets.go -destination=./test/mock_secrets_mappings.go -package test SecretsMappings,ClientKeyMappings

type SecretsMappings interface {
	FindOrCreate(ctx context.Context, mapping SecretsMapping) (*SecretsMapping, error)
	Get(ctx context.Context, cxId string, source sources.Source, externalId string) (*SecretsMapping, error)
	GetOrFail(ctx context.Context, cxId string, source sources.Source, externalId string) (*SecretsMapping, error)
	List(ctx context.Context, cxId string, source *sources.Source) ([]SecretsMapping, error)
	Delete(ctx context.Context, cxId, id string) error
}

type ClientKeyMappings interface {
	FindOrCreate(ctx context.Context, mapping ClientKeyMapping) (*ClientKeyMapping, error)
	Get(ctx context.Context, cxId string, source sources.Source, externalId string) (*ClientKeyMapping, error)
	GetOrFail(ctx context.Context, cxId string, source sources.Source, externalId string) (*ClientKeyMapping, error)
	GetByExternalId(ctx context.Context, source sources.Source, externalId string) (*ClientKeyMapping, error)
	Delete(ctx context.Context, cxId, id string) error
}

func NewSecretsMappings(db *mongo.Database, lifecycle fx.Lifecycle) (SecretsMappings, error) {
	repo := &secretsMappingsRepo{
		collection: db.Collection(secretsMappingsCollection),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type secretsMappingsRepo struct {
	collection *mongo.Collection
}

func (r *secretsMappingsRepo) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "cxId", Value: 1},
				{Key: "source", Value: 1},
				{Key: "externalId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueSecretsMapping"),
		},
	})
	return err
}

func (r *secretsMappingsRepo) FindOrCreate(ctx context.Context, mapping SecretsMapping) (*SecretsMapping, error) {
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
			return nil, fmt.Errorf("error creating secrets mapping: %w", err)
		}
	}

	return r.GetOrFail(ctx, mapping.CxId, mapping.Source, mapping.ExternalId)
}

func (r *secretsMappingsRepo) Get(ctx context.Context, cxId string, source sources.Source, externalId string) (*SecretsMapping, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	selector := bson.M{
		"cxId":       cxId,
		"source":     source,
		"externalId": externalId,
	}

	mapping := &SecretsMapping{}
	err := r.collection.FindOne(ctx, selector).Decode(mapping)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return mapping, nil
}

func (r *secretsMappingsRepo) GetOrFail(ctx context.Context, cxId string, source sources.Source, externalId string) (*SecretsMapping, error) {
	mapping, err := r.Get(ctx, cxId, source, externalId)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, fmt.Errorf("%w: secrets mapping for %s %s", errors.NotFound, source, externalId)
	}
	return mapping, nil
}

func (r *secretsMappingsRepo) List(ctx context.Context, cxId string, source *sources.Source) ([]SecretsMapping, error) {
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
		return nil, fmt.Errorf("error listing secrets mappings: %w", err)
	}

	var result []SecretsMapping
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("error decoding secrets mappings: %w", err)
	}

	return result, nil
}

func (r *secretsMappingsRepo) Delete(ctx context.Context, cxId, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId, "cxId": cxId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: secrets mapping %s", errors.NotFound, id)
	}

	return nil
}

func NewClientKeyMappings(db *mongo.Database, lifecycle fx.Lifecycle) (ClientKeyMappings, error) {
	repo := &clientKeyMappingsRepo{
		collection: db.Collection(clientKeyMappingsCollection),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type clientKeyMappingsRepo struct {
	collection *mongo.Collection
}

func (r *clientKeyMappingsRepo) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "cxId", Value: 1},
				{Key: "source", Value: 1},
				{Key: "externalId", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueClientKeyMapping"),
		},
	})
	return err
}

func (r *clientKeyMappingsRepo) FindOrCreate(ctx context.Context, mapping ClientKeyMapping) (*ClientKeyMapping, error) {
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
			return nil, fmt.Errorf("error creating client key mapping: %w", err)
		}
	}

	return r.GetOrFail(ctx, mapping.CxId, mapping.Source, mapping.ExternalId)
}

func (r *clientKeyMappingsRepo) Get(ctx context.Context, cxId string, source sources.Source, externalId string) (*ClientKeyMapping, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	selector := bson.M{
		"cxId":       cxId,
		"source":     source,
		"externalId": externalId,
	}

	return r.findOne(ctx, selector)
}

// GetByExternalId is used by the webhook authenticator, which knows the
// signing practice but not the tenant yet.
func (r *clientKeyMappingsRepo) GetByExternalId(ctx context.Context, source sources.Source, externalId string) (*ClientKeyMapping, error) {
	if err := validateSource(source); err != nil {
		return nil, err
	}

	selector := bson.M{
		"source":     source,
		"externalId": externalId,
	}

	return r.findOne(ctx, selector)
}

func (r *clientKeyMappingsRepo) findOne(ctx context.Context, selector bson.M) (*ClientKeyMapping, error) {
	mapping := &ClientKeyMapping{}
	err := r.collection.FindOne(ctx, selector).Decode(mapping)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return mapping, nil
}

func (r *clientKeyMappingsRepo) GetOrFail(ctx context.Context, cxId string, source sources.Source, externalId string) (*ClientKeyMapping, error) {
	mapping, err := r.Get(ctx, cxId, source, externalId)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, fmt.Errorf("%w: client key mapping for %s %s", errors.NotFound, source, externalId)
	}
	return mapping, nil
}

func (r *clientKeyMappingsRepo) Delete(ctx context.Context, cxId, id string) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid mapping id", errors.BadRequest)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objId, "cxId": cxId})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: client key mapping %s", errors.NotFound, id)
	}

	return nil
}
