package ehr

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

const homeCountry = "USA"

var dobLayouts = []string{"2006-01-02", "01/02/2006", "2006-01-02T15:04:05Z07:00"}

func normalizeDOB(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: date of birth is missing", errors.BadRequest)
	}
	for _, layout := range dobLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("%w: unrecognized date of birth %q", errors.BadRequest, raw)
}

func normalizeGender(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "M", "MALE":
		return "M"
	case "F", "FEMALE":
		return "F"
	case "":
		return "U"
	default:
		return "O"
	}
}

// normalizeAddress applies the source's home country when the payload leaves
// it empty and drops addresses with no usable street line.
func normalizeAddress(address patients.Address) *patients.Address {
	if strings.TrimSpace(address.AddressLine1) == "" {
		return nil
	}
	if strings.TrimSpace(address.Country) == "" {
		address.Country = homeCountry
	}
	return &address
}

func buildDemographics(source sources.Source, first, last, dob, gender string, addresses []patients.Address, contacts []patients.Contact) (patients.Demographics, error) {
	demo := patients.Demographics{
		FirstNames:    patients.NormalizeName(first),
		LastNames:     patients.NormalizeName(last),
		GenderAtBirth: normalizeGender(gender),
		Contacts:      contacts,
	}

	if len(demo.FirstNames) == 0 || len(demo.LastNames) == 0 {
		return demo, fmt.Errorf("%w: %s patient has no valid name", errors.BadRequest, source)
	}

	normalizedDOB, err := normalizeDOB(dob)
	if err != nil {
		return demo, err
	}
	demo.DOB = normalizedDOB

	for _, address := range addresses {
		if normalized := normalizeAddress(address); normalized != nil {
			demo.Addresses = append(demo.Addresses, *normalized)
		}
	}
	if len(demo.Addresses) == 0 {
		return demo, fmt.Errorf("%w: %s patient has no valid address", errors.BadRequest, source)
	}

	return demo, nil
}

// fhirPatient is the shape shared by the FHIR-flavored sources (canvas,
// epic, eclinicalworks).
type fhirPatient struct {
	Name []struct {
		Use    string   `json:"use"`
		Given  []string `json:"given"`
		Family string   `json:"family"`
	} `json:"name"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
	Address   []struct {
		Line       []string `json:"line"`
		City       string   `json:"city"`
		State      string   `json:"state"`
		PostalCode string   `json:"postalCode"`
		Country    string   `json:"country"`
	} `json:"address"`
	Telecom []struct {
		System string `json:"system"`
		Value  string `json:"value"`
	} `json:"telecom"`
}

// fhirDemographics yields one candidate per name entry: official and usual
// names frequently disagree in these systems and all permutations must be
// tried against the canonical store.
func fhirDemographics(source sources.Source, raw []byte) ([]patients.Demographics, error) {
	payload := fhirPatient{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: unable to decode %s patient", errors.BadRequest, source)
	}

	var addresses []patients.Address
	for _, address := range payload.Address {
		line1 := ""
		line2 := ""
		if len(address.Line) > 0 {
			line1 = address.Line[0]
		}
		if len(address.Line) > 1 {
			line2 = address.Line[1]
		}
		addresses = append(addresses, patients.Address{
			AddressLine1: line1,
			AddressLine2: line2,
			City:         address.City,
			State:        address.State,
			Zip:          address.PostalCode,
			Country:      address.Country,
		})
	}

	var contacts []patients.Contact
	for _, telecom := range payload.Telecom {
		switch telecom.System {
		case "phone":
			contacts = append(contacts, patients.Contact{Phone: telecom.Value})
		case "email":
			contacts = append(contacts, patients.Contact{Email: telecom.Value})
		}
	}

	var candidates []patients.Demographics
	var lastErr error
	for _, name := range payload.Name {
		demo, err := buildDemographics(source, strings.Join(name.Given, " "), name.Family, payload.BirthDate, payload.Gender, addresses, contacts)
		if err != nil {
			lastErr = err
			continue
		}
		candidates = append(candidates, demo)
	}

	if len(candidates) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, fmt.Errorf("%w: %s patient has no name entries", errors.BadRequest, source)
	}

	return candidates, nil
}
