package patients_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/fx/fxtest"

	internalErrs "github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/patients"
	patientsTest "github.com/metriport/ehr-sync/patients/test"
	"github.com/metriport/ehr-sync/sources"
	dbTest "github.com/metriport/ehr-sync/store/test"
)

var _ = Describe("Patients Repository", func() {
	var repo patients.Repository

	BeforeEach(func() {
		var err error
		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err = patients.NewRepository(dbTest.GetTestDatabase(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()
	})

	Describe("Create", func() {
		It("returns the created patient with the external id attached", func() {
			patient := patientsTest.RandomPatient()
			externalId := patients.ExternalId{Source: sources.Elation, Id: "ext-1"}

			result, err := repo.Create(context.Background(), patient.CxId, patient.FacilityId, patient.Demographics, externalId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Id).ToNot(BeNil())
			Expect(result.ExternalIds).To(ConsistOf(externalId))
		})
	})

	Describe("GetById", func() {
		It("is scoped to the tenant", func() {
			patient := patientsTest.RandomPatient()
			created, err := repo.Create(context.Background(), patient.CxId, patient.FacilityId, patient.Demographics, patient.ExternalIds[0])
			Expect(err).ToNot(HaveOccurred())

			_, err = repo.GetById(context.Background(), "another-tenant", created.Id.Hex())
			Expect(err).To(MatchError(internalErrs.NotFound))
		})
	})

	Describe("GetByDemo", func() {
		var created *patients.Patient
		var demo patients.Demographics
		var cxId string

		BeforeEach(func() {
			patient := patientsTest.RandomPatient()
			cxId = patient.CxId
			demo = patient.Demographics

			var err error
			created, err = repo.Create(context.Background(), cxId, patient.FacilityId, demo, patient.ExternalIds[0])
			Expect(err).ToNot(HaveOccurred())
		})

		It("finds the patient by exact demographics", func() {
			result, err := repo.GetByDemo(context.Background(), cxId, demo)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
			Expect(result.Id).To(Equal(created.Id))
		})

		It("matches any of the candidate's name tokens", func() {
			candidate := demo
			candidate.FirstNames = append([]string{"unrelated"}, candidate.FirstNames...)
			result, err := repo.GetByDemo(context.Background(), cxId, candidate)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).ToNot(BeNil())
		})

		It("returns nil when the date of birth differs", func() {
			candidate := demo
			candidate.DOB = "1900-01-01"
			result, err := repo.GetByDemo(context.Background(), cxId, candidate)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeNil())
		})

		It("does not cross tenant boundaries", func() {
			result, err := repo.GetByDemo(context.Background(), "another-tenant", demo)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(BeNil())
		})

		It("rejects records with missing required fields", func() {
			candidate := demo
			candidate.DOB = ""
			_, err := repo.GetByDemo(context.Background(), cxId, candidate)
			Expect(err).To(MatchError(internalErrs.BadRequest))
		})
	})
})
