package test

import (
	"time"

	"github.com/google/uuid"

	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/store/test"
)

func RandomDemographics() patients.Demographics {
	person := test.Faker.Person()
	address := test.Faker.Address()
	return patients.Demographics{
		FirstNames:    patients.NormalizeName(person.FirstName()),
		LastNames:     patients.NormalizeName(person.LastName()),
		DOB:           test.Faker.Time().ISO8601(time.Now())[:10],
		GenderAtBirth: test.Faker.RandomStringElement([]string{"M", "F"}),
		Addresses: []patients.Address{
			{
				AddressLine1: address.StreetAddress(),
				City:         address.City(),
				State:        address.State(),
				Zip:          address.PostCode(),
				Country:      "USA",
			},
		},
		Contacts: []patients.Contact{
			{
				Phone: test.Faker.Phone().Number(),
				Email: test.Faker.Internet().Email(),
			},
		},
	}
}

func RandomPatient() patients.Patient {
	return patients.Patient{
		CxId:         uuid.NewString(),
		FacilityId:   uuid.NewString(),
		Demographics: RandomDemographics(),
		ExternalIds: []patients.ExternalId{
			{Source: sources.Athena, Id: test.Faker.RandomStringWithLength(12)},
		},
	}
}
