package patients

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/metriport/ehr-sync/errors"
)

const patientsCollection = "patients"

type Repository interface {
	Service
}

func NewRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &repository{
		collection: db.Collection(patientsCollection),
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
				{Key: "cxId", Value: 1},
				{Key: "demographics.dob", Value: 1},
				{Key: "demographics.lastNames", Value: 1},
			},
			Options: options.Index().
				SetName("PatientDemoLookup"),
		},
		{
			Keys: bson.D{
				{Key: "cxId", Value: 1},
				{Key: "externalIds.source", Value: 1},
				{Key: "externalIds.id", Value: 1},
			},
			Options: options.Index().
				SetName("PatientExternalIds"),
		},
	})
	return err
}

func (r *repository) GetById(ctx context.Context, cxId, id string) (*Patient, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid patient id", errors.BadRequest)
	}

	selector := bson.M{
		"_id":  objId,
		"cxId": cxId,
	}

	patient := &Patient{}
	err = r.collection.FindOne(ctx, selector).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("%w: patient %s", errors.NotFound, id)
	} else if err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *repository) GetByDemo(ctx context.Context, cxId string, demo Demographics) (*Patient, error) {
	if demo.DOB == "" || len(demo.LastNames) == 0 || len(demo.FirstNames) == 0 {
		return nil, fmt.Errorf("%w: demographic record is missing required fields", errors.BadRequest)
	}

	selector := bson.M{
		"cxId":                       cxId,
		"demographics.dob":           demo.DOB,
		"demographics.genderAtBirth": demo.GenderAtBirth,
		"demographics.lastNames":     bson.M{"$in": demo.LastNames},
		"demographics.firstNames":    bson.M{"$in": demo.FirstNames},
	}

	patient := &Patient{}
	err := r.collection.FindOne(ctx, selector).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return patient, nil
}

func (r *repository) Create(ctx context.Context, cxId, facilityId string, demo Demographics, externalId ExternalId) (*Patient, error) {
	patient := Patient{
		CxId:         cxId,
		FacilityId:   facilityId,
		Demographics: demo,
		ExternalIds:  []ExternalId{externalId},
	}

	res, err := r.collection.InsertOne(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	id := res.InsertedID.(primitive.ObjectID)
	return r.GetById(ctx, cxId, id.Hex())
}
