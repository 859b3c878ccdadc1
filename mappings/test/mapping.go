package test

import (
	"github.com/google/uuid"

	"github.com/metriport/ehr-sync/mappings"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/store/test"
)

func RandomSource() sources.Source {
	all := sources.All()
	return all[test.Faker.IntBetween(0, len(all)-1)]
}

func RandomCxMapping() mappings.CxMapping {
	return mappings.CxMapping{
		CxId:       uuid.NewString(),
		Source:     RandomSource(),
		ExternalId: test.Faker.RandomStringWithLength(12),
		SecondaryMappings: mappings.SecondaryMappings{
			"departments": []string{test.Faker.RandomStringWithLength(4)},
		},
	}
}

func RandomFacilityMapping() mappings.FacilityMapping {
	return mappings.FacilityMapping{
		CxId:       uuid.NewString(),
		Source:     RandomSource(),
		ExternalId: test.Faker.RandomStringWithLength(12),
		FacilityId: uuid.NewString(),
	}
}

func RandomSecretsMapping() mappings.SecretsMapping {
	return mappings.SecretsMapping{
		CxId:       uuid.NewString(),
		Source:     RandomSource(),
		ExternalId: test.Faker.RandomStringWithLength(12),
		SecretArn:  "arn:aws:secretsmanager:us-east-1:000000000000:secret:" + test.Faker.RandomStringWithLength(8),
	}
}

func RandomClientKeyMapping() mappings.ClientKeyMapping {
	return mappings.ClientKeyMapping{
		CxId:         uuid.NewString(),
		Source:       RandomSource(),
		ExternalId:   test.Faker.RandomStringWithLength(12),
		ClientKey:    test.Faker.RandomStringWithLength(20),
		ClientSecret: test.Faker.RandomStringWithLength(40),
	}
}

func RandomPatientMapping() mappings.PatientMapping {
	return mappings.PatientMapping{
		CxId:       uuid.NewString(),
		Source:     RandomSource(),
		ExternalId: test.Faker.RandomStringWithLength(12),
		PatientId:  uuid.NewString(),
	}
}
