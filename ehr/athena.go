package ehr

import (
	"encoding/json"
	"fmt"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

type AthenaAdapter struct {
	adapterBase
}

func NewAthenaAdapter(client Client) *AthenaAdapter {
	return &AthenaAdapter{adapterBase{source: sources.Athena, client: client}}
}

type athenaPatient struct {
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	DOB         string `json:"dob"`
	Sex         string `json:"sex"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	CountryCode string `json:"countrycode3166"`
	HomePhone   string `json:"homephone"`
	Email       string `json:"email"`
}

func (a *AthenaAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	payload := athenaPatient{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: unable to decode athena patient", errors.BadRequest)
	}

	var contacts []patients.Contact
	if payload.HomePhone != "" || payload.Email != "" {
		contacts = append(contacts, patients.Contact{Phone: payload.HomePhone, Email: payload.Email})
	}

	demo, err := buildDemographics(a.source, payload.FirstName, payload.LastName, payload.DOB, payload.Sex, []patients.Address{{
		AddressLine1: payload.Address1,
		AddressLine2: payload.Address2,
		City:         payload.City,
		State:        payload.State,
		Zip:          payload.Zip,
		Country:      payload.CountryCode,
	}}, contacts)
	if err != nil {
		return nil, err
	}

	return []patients.Demographics{demo}, nil
}
