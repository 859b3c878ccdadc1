package mappings_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"golang.org/x/sync/errgroup"

	internalErrs "github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	mappingsTest "github.com/metriport/ehr-sync/mappings/test"
	dbTest "github.com/metriport/ehr-sync/store/test"
)

var _ = Describe("Secrets Mappings", func() {
	var repo mappings.SecretsMappings
	var collection *mongo.Collection

	BeforeEach(func() {
		var err error
		database := dbTest.GetTestDatabase()
		collection = database.Collection("secrets_mappings")
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = mappings.NewSecretsMappings(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()
	})

	Describe("FindOrCreate", func() {
		It("creates at most one mapping under concurrent races", func() {
			mapping := mappingsTest.RandomSecretsMapping()

			group := errgroup.Group{}
			results := make([]*mappings.SecretsMapping, 20)
			for i := range results {
				i := i
				group.Go(func() error {
					result, err := repo.FindOrCreate(context.Background(), mapping)
					results[i] = result
					return err
				})
			}
			Expect(group.Wait()).To(Succeed())

			for _, result := range results {
				Expect(result).ToNot(BeNil())
				Expect(result.Id).To(Equal(results[0].Id))
				Expect(result.SecretArn).To(Equal(mapping.SecretArn))
			}

			count, err := collection.CountDocuments(context.Background(), bson.M{
				"cxId":       mapping.CxId,
				"source":     mapping.Source,
				"externalId": mapping.ExternalId,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("does not overwrite the winner's secret reference", func() {
			mapping := mappingsTest.RandomSecretsMapping()
			winner, err := repo.FindOrCreate(context.Background(), mapping)
			Expect(err).ToNot(HaveOccurred())

			loser := mapping
			loser.SecretArn = "arn:aws:secretsmanager:us-east-1:000000000000:secret:other"
			result, err := repo.FindOrCreate(context.Background(), loser)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.SecretArn).To(Equal(winner.SecretArn))
		})

		It("rejects unknown sources", func() {
			mapping := mappingsTest.RandomSecretsMapping()
			mapping.Source = "cerner"
			_, err := repo.FindOrCreate(context.Background(), mapping)
			Expect(err).To(MatchError(internalErrs.BadRequest))
		})
	})

	Describe("List", func() {
		It("returns the tenant's mappings, optionally filtered by source", func() {
			mapping := mappingsTest.RandomSecretsMapping()
			created, err := repo.FindOrCreate(context.Background(), mapping)
			Expect(err).ToNot(HaveOccurred())

			result, err := repo.List(context.Background(), mapping.CxId, &mapping.Source)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Id).To(Equal(created.Id))

			result, err = repo.List(context.Background(), "another-tenant", nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeEmpty())
		})
	})

	Describe("Delete", func() {
		It("removes the mapping within the tenant", func() {
			mapping := mappingsTest.RandomSecretsMapping()
			created, err := repo.FindOrCreate(context.Background(), mapping)
			Expect(err).ToNot(HaveOccurred())

			Expect(repo.Delete(context.Background(), "another-tenant", created.Id.Hex())).To(MatchError(internalErrs.NotFound))
			Expect(repo.Delete(context.Background(), created.CxId, created.Id.Hex())).To(Succeed())

			result, err := repo.Get(context.Background(), mapping.CxId, mapping.Source, mapping.ExternalId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})
})

var _ = Describe("Client Key Mappings", func() {
	var repo mappings.ClientKeyMappings
	var collection *mongo.Collection

	BeforeEach(func() {
		var err error
		database := dbTest.GetTestDatabase()
		collection = database.Collection("client_key_mappings")
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = mappings.NewClientKeyMappings(database, lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()
	})

	Describe("FindOrCreate", func() {
		It("creates at most one mapping under concurrent races", func() {
			mapping := mappingsTest.RandomClientKeyMapping()

			group := errgroup.Group{}
			results := make([]*mappings.ClientKeyMapping, 20)
			for i := range results {
				i := i
				group.Go(func() error {
					result, err := repo.FindOrCreate(context.Background(), mapping)
					results[i] = result
					return err
				})
			}
			Expect(group.Wait()).To(Succeed())

			for _, result := range results {
				Expect(result).ToNot(BeNil())
				Expect(result.Id).To(Equal(results[0].Id))
				Expect(result.ClientKey).To(Equal(mapping.ClientKey))
			}

			count, err := collection.CountDocuments(context.Background(), bson.M{
				"cxId":       mapping.CxId,
				"source":     mapping.Source,
				"externalId": mapping.ExternalId,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("does not overwrite the winner's credentials", func() {
			mapping := mappingsTest.RandomClientKeyMapping()
			winner, err := repo.FindOrCreate(context.Background(), mapping)
			Expect(err).ToNot(HaveOccurred())

			loser := mapping
			loser.ClientSecret = "some-other-secret"
			result, err := repo.FindOrCreate(context.Background(), loser)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.ClientSecret).To(Equal(winner.ClientSecret))
		})
	})

	Describe("GetByExternalId", func() {
		It("finds the mapping without knowing the tenant", func() {
			mapping := mappingsTest.RandomClientKeyMapping()
			created, err := repo.FindOrCreate(context.Background(), mapping)
			Expect(err).ToNot(HaveOccurred())

			result, err := repo.GetByExternalId(context.Background(), mapping.Source, mapping.ExternalId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
			Expect(result.Id).To(Equal(created.Id))
			Expect(result.CxId).To(Equal(mapping.CxId))
		})

		It("returns nil when the practice has no key", func() {
			result, err := repo.GetByExternalId(context.Background(), mappingsTest.RandomSource(), "does-not-exist")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})
})
