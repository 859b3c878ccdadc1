package tokens

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
	"github.com/metriport/ehr-sync/store"
)

const tokensCollection = "jwt_tokens"

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(tokensCollection),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "token", Value: 1},
				{Key: "source", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("UniqueToken"),
		},
		{
			// Non-unique, used by expiry sweeps.
			Keys: bson.D{
				{Key: "exp", Value: 1},
			},
			Options: options.Index().
				SetName("TokenExpiration"),
		},
	})
	return err
}

func (r *repository) FindOrCreate(ctx context.Context, token JwtToken) (*JwtToken, error) {
	if !token.Source.Base().IsValid() {
		return nil, fmt.Errorf("%w: unsupported source %q", errors.BadRequest, token.Source)
	}

	existing, err := r.Get(ctx, token.Token, token.Source)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	token.Id = nil
	if _, err := r.collection.InsertOne(ctx, token); err != nil {
		if !store.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("error creating token: %w", err)
		}
	}

	created, err := r.Get(ctx, token.Token, token.Source)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: token for source %s", errors.NotFound, token.Source)
	}
	return created, nil
}

func (r *repository) Get(ctx context.Context, token string, source sources.Source) (*JwtToken, error) {
	selector := bson.M{
		"token":  token,
		"source": source,
	}

	result := &JwtToken{}
	err := r.collection.FindOne(ctx, selector).Decode(result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *repository) UpdateExpiration(ctx context.Context, id string, exp time.Time) error {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid token id", errors.BadRequest)
	}

	update := bson.M{
		"$set": bson.M{"exp": exp},
	}
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objId}, update).Err()
	if err == mongo.ErrNoDocuments {
		return fmt.Errorf("%w: token %s", errors.NotFound, id)
	} else if err != nil {
		return fmt.Errorf("error updating token expiration: %w", err)
	}

	return nil
}

func (r *repository) DeleteBySourceAndData(ctx context.Context, source sources.Source, data map[string]interface{}, expiredBefore time.Time) (int64, error) {
	selector := bson.M{
		"source": source,
		"exp":    bson.M{"$lt": expiredBefore},
	}
	for key, value := range data {
		selector["data."+key] = value
	}

	res, err := r.collection.DeleteMany(ctx, selector)
	if err != nil {
		return 0, fmt.Errorf("error sweeping tokens: %w", err)
	}

	return res.DeletedCount, nil
}
