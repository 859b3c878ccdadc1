package sync_test

import (
	"context"
	"fmt"
	gosync "sync"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/metriport/ehr-sync/config"
	"github.com/metriport/ehr-sync/ehr"
	ehrTest "github.com/metriport/ehr-sync/ehr/test"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	mappingsTest "github.com/metriport/ehr-sync/mappings/test"
	"github.com/metriport/ehr-sync/patients"
	patientsTest "github.com/metriport/ehr-sync/patients/test"
	"github.com/metriport/ehr-sync/pointer"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/sync"
)

type docQueryRecorder struct {
	mu      gosync.Mutex
	entries []string
}

func (r *docQueryRecorder) Enqueue(cxId, patientId string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, fmt.Sprintf("%s/%s", cxId, patientId))
}

func (r *docQueryRecorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.entries...)
}

const athenaPayload = `{
	"firstname": "Jane",
	"lastname": "Doe",
	"dob": "1984-01-15",
	"sex": "F",
	"address1": "100 Main St",
	"city": "Oakland",
	"state": "CA",
	"zip": "94607"
}`

const canvasPayload = `{
	"name": [
		{"use": "official", "given": ["Janet"], "family": "Doe"},
		{"use": "usual", "given": ["Jane"], "family": "Doe"}
	],
	"birthDate": "1984-01-15",
	"gender": "female",
	"address": [{"line": ["100 Main St"], "city": "Oakland", "state": "CA", "postalCode": "94607"}]
}`

var _ = Describe("Engine", func() {
	var client *ehrTest.MockClient
	var subscriptionClient *ehrTest.MockSubscriptionClient
	var patientService *patientsTest.MockService
	var patientMappings *mappingsTest.MockPatientMappings
	var facilityMappings *mappingsTest.MockFacilityMappings
	var docQueries *docQueryRecorder
	var engine *sync.Engine

	var cxId string
	var practiceId string
	var externalId string

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		client = ehrTest.NewMockClient(ctrl)
		subscriptionClient = ehrTest.NewMockSubscriptionClient(ctrl)
		patientService = patientsTest.NewMockService(ctrl)
		patientMappings = mappingsTest.NewMockPatientMappings(ctrl)
		facilityMappings = mappingsTest.NewMockFacilityMappings(ctrl)
		docQueries = &docQueryRecorder{}

		registry, err := ehr.NewRegistry([]ehr.Adapter{
			ehr.NewAthenaAdapter(client),
			ehr.NewCanvasAdapter(client),
			ehr.NewElationAdapter(subscriptionClient),
			ehr.NewHealthieAdapter(subscriptionClient),
			ehr.NewEpicAdapter(client),
			ehr.NewSalesforceAdapter(client),
			ehr.NewTouchWorksAdapter(client),
			ehr.NewEClinicalWorksAdapter(client),
		})
		Expect(err).ToNot(HaveOccurred())

		cfg := &config.Config{DocQueryCooldown: 24 * time.Hour}
		engine = sync.NewEngine(registry, patientService, patientMappings, facilityMappings, docQueries, cfg, zap.NewNop().Sugar())

		cxId = uuid.NewString()
		practiceId = uuid.NewString()
		externalId = uuid.NewString()
	})

	existingMapping := func(startedAt *time.Time) *mappings.PatientMapping {
		return &mappings.PatientMapping{
			Id:                pointer.FromAny(primitive.NewObjectID()),
			CxId:              cxId,
			Source:            sources.Athena,
			ExternalId:        externalId,
			PatientId:         uuid.NewString(),
			DocQueryStartedAt: startedAt,
		}
	}

	Describe("Resolve", func() {
		It("short-circuits on an existing mapping", func() {
			mapping := existingMapping(nil)
			patientMappings.EXPECT().Get(gomock.Any(), sources.Athena, externalId).Return(mapping, nil)
			patientService.EXPECT().GetById(gomock.Any(), cxId, mapping.PatientId).Return(&patients.Patient{}, nil)

			patientId, err := engine.Resolve(context.Background(), sync.ResolveParams{
				CxId:       cxId,
				Source:     sources.Athena,
				PracticeId: practiceId,
				ExternalId: externalId,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(patientId).To(Equal(mapping.PatientId))
			Expect(docQueries.Entries()).To(BeEmpty())
		})

		It("fails when the canonical record was deleted out-of-band", func() {
			mapping := existingMapping(nil)
			patientMappings.EXPECT().Get(gomock.Any(), sources.Athena, externalId).Return(mapping, nil)
			patientService.EXPECT().GetById(gomock.Any(), cxId, mapping.PatientId).
				Return(nil, fmt.Errorf("%w: patient %s", errors.NotFound, mapping.PatientId))

			_, err := engine.Resolve(context.Background(), sync.ResolveParams{
				CxId:       cxId,
				Source:     sources.Athena,
				PracticeId: practiceId,
				ExternalId: externalId,
			})
			Expect(err).To(MatchError(errors.NotFound))
		})

		It("resolves dash sources through the base mapping", func() {
			mapping := existingMapping(nil)
			patientMappings.EXPECT().Get(gomock.Any(), sources.Athena, externalId).Return(mapping, nil)
			patientService.EXPECT().GetById(gomock.Any(), cxId, mapping.PatientId).Return(&patients.Patient{}, nil)

			patientId, err := engine.Resolve(context.Background(), sync.ResolveParams{
				CxId:       cxId,
				Source:     sources.Athena.Dash(),
				PracticeId: practiceId,
				ExternalId: externalId,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(patientId).To(Equal(mapping.PatientId))
		})

		It("rejects unsupported sources", func() {
			_, err := engine.Resolve(context.Background(), sync.ResolveParams{
				CxId:       cxId,
				Source:     sources.Source("cerner"),
				PracticeId: practiceId,
				ExternalId: externalId,
			})
			Expect(err).To(MatchError(errors.BadRequest))
		})

		When("the existing patient is due a document query", func() {
			It("starts one when the cooldown has elapsed", func() {
				startedAt := time.Now().Add(-25 * time.Hour)
				mapping := existingMapping(&startedAt)
				patientMappings.EXPECT().Get(gomock.Any(), sources.Athena, externalId).Return(mapping, nil)
				patientService.EXPECT().GetById(gomock.Any(), cxId, mapping.PatientId).Return(&patients.Patient{}, nil)
				patientMappings.EXPECT().SetDocQueryStartedAt(gomock.Any(), mapping.Id.Hex(), gomock.Any()).Return(nil)

				_, err := engine.Resolve(context.Background(), sync.ResolveParams{
					CxId:                       cxId,
					Source:                     sources.Athena,
					PracticeId:                 practiceId,
					ExternalId:                 externalId,
					TriggerDocQueryForExisting: true,
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(docQueries.Entries()).To(ConsistOf(fmt.Sprintf("%s/%s", cxId, mapping.PatientId)))
			})

			It("skips the query within the cooldown window", func() {
				startedAt := time.Now().Add(-time.Hour)
				mapping := existingMapping(&startedAt)
				patientMappings.EXPECT().Get(gomock.Any(), sources.Athena, externalId).Return(mapping, nil)
				patientService.EXPECT().GetById(gomock.Any(), cxId, mapping.PatientId).Return(&patients.Patient{}, nil)

				_, err := engine.Resolve(context.Background(), sync.ResolveParams{
					CxId:                       cxId,
					Source:                     sources.Athena,
					PracticeId:                 practiceId,
					ExternalId:                 externalId,
					TriggerDocQueryForExisting: true,
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(docQueries.Entries()).To(BeEmpty())
			})
		})

		When("the external patient is unmapped", func() {
			BeforeEach(func() {
				patientMappings.EXPECT().Get(gomock.Any(), sources.Athena, externalId).Return(nil, nil).AnyTimes()
				patientMappings.EXPECT().Get(gomock.Any(), sources.Canvas, externalId).Return(nil, nil).AnyTimes()
			})

			It("links to a demographic match without creating", func() {
				matchId := primitive.NewObjectID()
				client.EXPECT().GetPatient(gomock.Any(), practiceId, externalId).Return([]byte(athenaPayload), nil)
				patientService.EXPECT().GetByDemo(gomock.Any(), cxId, gomock.Any()).Return(&patients.Patient{Id: &matchId, CxId: cxId}, nil)

				mappingId := primitive.NewObjectID()
				patientMappings.EXPECT().
					FindOrCreate(gomock.Any(), mappings.PatientMapping{
						CxId:       cxId,
						Source:     sources.Athena,
						ExternalId: externalId,
						PatientId:  matchId.Hex(),
					}).
					DoAndReturn(func(_ context.Context, mapping mappings.PatientMapping) (*mappings.PatientMapping, error) {
						mapping.Id = &mappingId
						return &mapping, nil
					})

				patientId, err := engine.Resolve(context.Background(), sync.ResolveParams{
					CxId:       cxId,
					Source:     sources.Athena,
					PracticeId: practiceId,
					ExternalId: externalId,
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(patientId).To(Equal(matchId.Hex()))
				Expect(docQueries.Entries()).To(BeEmpty())
			})

			It("creates a canonical patient from merged candidates", func() {
				client.EXPECT().GetPatient(gomock.Any(), practiceId, externalId).Return([]byte(canvasPayload), nil)
				patientService.EXPECT().GetByDemo(gomock.Any(), cxId, gomock.Any()).Return(nil, nil).Times(2)

				facility := mappingsTest.RandomFacilityMapping()
				facilityMappings.EXPECT().Resolve(gomock.Any(), cxId, sources.Canvas, practiceId, "CA").Return(&facility, nil)

				createdId := primitive.NewObjectID()
				patientService.EXPECT().
					Create(gomock.Any(), cxId, facility.FacilityId, gomock.Any(), patients.ExternalId{Source: sources.Canvas, Id: externalId}).
					DoAndReturn(func(_ context.Context, _, _ string, demo patients.Demographics, _ patients.ExternalId) (*patients.Patient, error) {
						Expect(demo.FirstNames).To(Equal([]string{"jane", "janet"}))
						Expect(demo.LastNames).To(Equal([]string{"doe"}))
						return &patients.Patient{Id: &createdId, CxId: cxId, Demographics: demo}, nil
					})

				mappingId := primitive.NewObjectID()
				patientMappings.EXPECT().
					FindOrCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mapping mappings.PatientMapping) (*mappings.PatientMapping, error) {
						Expect(mapping.PatientId).To(Equal(createdId.Hex()))
						mapping.Id = &mappingId
						return &mapping, nil
					})
				patientMappings.EXPECT().SetDocQueryStartedAt(gomock.Any(), mappingId.Hex(), gomock.Any()).Return(nil)

				patientId, err := engine.Resolve(context.Background(), sync.ResolveParams{
					CxId:            cxId,
					Source:          sources.Canvas,
					PracticeId:      practiceId,
					ExternalId:      externalId,
					TriggerDocQuery: true,
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(patientId).To(Equal(createdId.Hex()))
				Expect(docQueries.Entries()).To(ConsistOf(fmt.Sprintf("%s/%s", cxId, createdId.Hex())))
			})

			It("uses the first match when candidates hit distinct patients", func() {
				firstId := primitive.NewObjectID()
				secondId := primitive.NewObjectID()
				client.EXPECT().GetPatient(gomock.Any(), practiceId, externalId).Return([]byte(canvasPayload), nil)

				gomock.InOrder(
					patientService.EXPECT().GetByDemo(gomock.Any(), cxId, gomock.Any()).Return(&patients.Patient{Id: &firstId, CxId: cxId}, nil),
					patientService.EXPECT().GetByDemo(gomock.Any(), cxId, gomock.Any()).Return(&patients.Patient{Id: &secondId, CxId: cxId}, nil),
				)

				mappingId := primitive.NewObjectID()
				patientMappings.EXPECT().
					FindOrCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mapping mappings.PatientMapping) (*mappings.PatientMapping, error) {
						mapping.Id = &mappingId
						return &mapping, nil
					})

				patientId, err := engine.Resolve(context.Background(), sync.ResolveParams{
					CxId:       cxId,
					Source:     sources.Canvas,
					PracticeId: practiceId,
					ExternalId: externalId,
				})
				Expect(err).ToNot(HaveOccurred())
				Expect(patientId).To(Equal(firstId.Hex()))
			})

			It("treats adapter validation failures as fatal", func() {
				client.EXPECT().GetPatient(gomock.Any(), practiceId, externalId).Return([]byte(`{"dob": "1984-01-15"}`), nil)

				_, err := engine.Resolve(context.Background(), sync.ResolveParams{
					CxId:       cxId,
					Source:     sources.Athena,
					PracticeId: practiceId,
					ExternalId: externalId,
				})
				Expect(err).To(MatchError(errors.BadRequest))
			})

			It("propagates fetch failures", func() {
				client.EXPECT().GetPatient(gomock.Any(), practiceId, externalId).Return(nil, fmt.Errorf("vendor timeout"))

				_, err := engine.Resolve(context.Background(), sync.ResolveParams{
					CxId:       cxId,
					Source:     sources.Athena,
					PracticeId: practiceId,
					ExternalId: externalId,
				})
				Expect(err).To(MatchError(ContainSubstring("vendor timeout")))
			})
		})
	})
})

var _ = Describe("IsDocQueryCooldownExpired", func() {
	now := time.Now()
	cooldown := 24 * time.Hour

	It("is true when no query was ever started", func() {
		Expect(sync.IsDocQueryCooldownExpired(nil, now, cooldown)).To(BeTrue())
		Expect(sync.IsDocQueryCooldownExpired(&time.Time{}, now, cooldown)).To(BeTrue())
	})

	It("is false within the window", func() {
		last := now.Add(-23 * time.Hour)
		Expect(sync.IsDocQueryCooldownExpired(&last, now, cooldown)).To(BeFalse())
	})

	It("is true at exactly the window boundary", func() {
		last := now.Add(-24 * time.Hour)
		Expect(sync.IsDocQueryCooldownExpired(&last, now, cooldown)).To(BeTrue())
	})

	It("is true past the window", func() {
		last := now.Add(-24*time.Hour - time.Second)
		Expect(sync.IsDocQueryCooldownExpired(&last, now, cooldown)).To(BeTrue())
	})
})
