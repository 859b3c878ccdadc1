package ehr

import (
	"encoding/json"
	"fmt"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

type SalesforceAdapter struct {
	adapterBase
}

func NewSalesforceAdapter(client Client) *SalesforceAdapter {
	return &SalesforceAdapter{adapterBase{source: sources.Salesforce, client: client}}
}

type salesforcePatient struct {
	FirstName         string `json:"FirstName"`
	LastName          string `json:"LastName"`
	Birthdate         string `json:"Birthdate"`
	Gender            string `json:"Gender"`
	MailingStreet     string `json:"MailingStreet"`
	MailingCity       string `json:"MailingCity"`
	MailingState      string `json:"MailingState"`
	MailingPostalCode string `json:"MailingPostalCode"`
	MailingCountry    string `json:"MailingCountry"`
	Phone             string `json:"Phone"`
	Email             string `json:"Email"`
}

func (a *SalesforceAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	payload := salesforcePatient{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: unable to decode salesforce patient", errors.BadRequest)
	}

	var contacts []patients.Contact
	if payload.Phone != "" || payload.Email != "" {
		contacts = append(contacts, patients.Contact{Phone: payload.Phone, Email: payload.Email})
	}

	demo, err := buildDemographics(a.source, payload.FirstName, payload.LastName, payload.Birthdate, payload.Gender, []patients.Address{{
		AddressLine1: payload.MailingStreet,
		City:         payload.MailingCity,
		State:        payload.MailingState,
		Zip:          payload.MailingPostalCode,
		Country:      payload.MailingCountry,
	}}, contacts)
	if err != nil {
		return nil, err
	}

	return []patients.Demographics{demo}, nil
}
