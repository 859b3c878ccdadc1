package ehr

import (
	"encoding/json"
	"fmt"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

type TouchWorksAdapter struct {
	adapterBase
}

func NewTouchWorksAdapter(client Client) *TouchWorksAdapter {
	return &TouchWorksAdapter{adapterBase{source: sources.TouchWorks, client: client}}
}

type touchWorksPatient struct {
	FirstName    string `json:"Firstname"`
	LastName     string `json:"LastName"`
	BirthDate    string `json:"BirthDate"`
	Gender       string `json:"Gender"`
	AddressLine1 string `json:"AddressLine1"`
	AddressLine2 string `json:"AddressLine2"`
	City         string `json:"City"`
	State        string `json:"State"`
	ZipCode      string `json:"ZipCode"`
	HomePhone    string `json:"HomePhone"`
	EmailAddress string `json:"EmailAddress"`
}

func (a *TouchWorksAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	payload := touchWorksPatient{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: unable to decode touchworks patient", errors.BadRequest)
	}

	var contacts []patients.Contact
	if payload.HomePhone != "" || payload.EmailAddress != "" {
		contacts = append(contacts, patients.Contact{Phone: payload.HomePhone, Email: payload.EmailAddress})
	}

	demo, err := buildDemographics(a.source, payload.FirstName, payload.LastName, payload.BirthDate, payload.Gender, []patients.Address{{
		AddressLine1: payload.AddressLine1,
		AddressLine2: payload.AddressLine2,
		City:         payload.City,
		State:        payload.State,
		Zip:          payload.ZipCode,
	}}, contacts)
	if err != nil {
		return nil, err
	}

	return []patients.Demographics{demo}, nil
}
