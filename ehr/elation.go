package ehr

import (
	"encoding/json"
	"fmt"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

type ElationAdapter struct {
	adapterBase
}

func NewElationAdapter(client SubscriptionClient) *ElationAdapter {
	return &ElationAdapter{adapterBase{source: sources.Elation, client: client}}
}

type elationPatient struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PreferredName string `json:"preferred_name"`
	DOB           string `json:"dob"`
	Sex           string `json:"sex"`
	Address       struct {
		AddressLine1 string `json:"address_line1"`
		AddressLine2 string `json:"address_line2"`
		City         string `json:"city"`
		State        string `json:"state"`
		Zip          string `json:"zip"`
	} `json:"address"`
	Phones []struct {
		Phone string `json:"phone"`
	} `json:"phones"`
	Emails []struct {
		Email string `json:"email"`
	} `json:"emails"`
}

// Demographics yields one candidate per known name variant: the legal name
// and, when present, the preferred name. Both are matched against the
// canonical store.
func (a *ElationAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	payload := elationPatient{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: unable to decode elation patient", errors.BadRequest)
	}

	addresses := []patients.Address{{
		AddressLine1: payload.Address.AddressLine1,
		AddressLine2: payload.Address.AddressLine2,
		City:         payload.Address.City,
		State:        payload.Address.State,
		Zip:          payload.Address.Zip,
	}}

	var contacts []patients.Contact
	for _, phone := range payload.Phones {
		contacts = append(contacts, patients.Contact{Phone: phone.Phone})
	}
	for _, email := range payload.Emails {
		contacts = append(contacts, patients.Contact{Email: email.Email})
	}

	firstNames := []string{payload.FirstName}
	if payload.PreferredName != "" && payload.PreferredName != payload.FirstName {
		firstNames = append(firstNames, payload.PreferredName)
	}

	var candidates []patients.Demographics
	for _, first := range firstNames {
		demo, err := buildDemographics(a.source, first, payload.LastName, payload.DOB, payload.Sex, addresses, contacts)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, demo)
	}

	return candidates, nil
}
