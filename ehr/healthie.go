package ehr

import (
	"encoding/json"
	"fmt"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

type HealthieAdapter struct {
	adapterBase
}

func NewHealthieAdapter(client SubscriptionClient) *HealthieAdapter {
	return &HealthieAdapter{adapterBase{source: sources.Healthie, client: client}}
}

type healthiePatient struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DOB       string `json:"dob"`
	Gender    string `json:"gender"`
	Locations []struct {
		Line1   string `json:"line1"`
		Line2   string `json:"line2"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zip     string `json:"zip"`
		Country string `json:"country"`
	} `json:"locations"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (a *HealthieAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	payload := healthiePatient{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: unable to decode healthie patient", errors.BadRequest)
	}

	var addresses []patients.Address
	for _, location := range payload.Locations {
		addresses = append(addresses, patients.Address{
			AddressLine1: location.Line1,
			AddressLine2: location.Line2,
			City:         location.City,
			State:        location.State,
			Zip:          location.Zip,
			Country:      location.Country,
		})
	}

	var contacts []patients.Contact
	if payload.PhoneNumber != "" || payload.Email != "" {
		contacts = append(contacts, patients.Contact{Phone: payload.PhoneNumber, Email: payload.Email})
	}

	demo, err := buildDemographics(a.source, payload.FirstName, payload.LastName, payload.DOB, payload.Gender, addresses, contacts)
	if err != nil {
		return nil, err
	}

	return []patients.Demographics{demo}, nil
}
