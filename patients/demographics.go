package patients

import (
	"sort"
	"strings"

	"github.com/mohae/deepcopy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Demographics is the matching key and creation payload produced by source
// adapters. Names are kept as token lists so candidate permutations can be
// collapsed without losing information.
type Demographics struct {
	FirstNames    []string  `bson:"firstNames"`
	LastNames     []string  `bson:"lastNames"`
	DOB           string    `bson:"dob"`
	GenderAtBirth string    `bson:"genderAtBirth"`
	Addresses     []Address `bson:"addresses,omitempty"`
	Contacts      []Contact `bson:"contacts,omitempty"`
}

type Address struct {
	AddressLine1 string `bson:"addressLine1"`
	AddressLine2 string `bson:"addressLine2,omitempty"`
	City         string `bson:"city"`
	State        string `bson:"state"`
	Zip          string `bson:"zip"`
	Country      string `bson:"country"`
}

type Contact struct {
	Phone string `bson:"phone,omitempty"`
	Email string `bson:"email,omitempty"`
}

// NormalizeName splits a raw name into lowercase tokens suitable for
// matching, dropping empty fragments.
func NormalizeName(raw string) []string {
	var tokens []string
	for _, token := range strings.Fields(raw) {
		token = strings.ToLower(strings.Trim(token, " .,'\""))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// DisplayName renders normalized tokens back into a human-readable form.
func DisplayName(tokens []string) string {
	return titleCaser.String(strings.Join(tokens, " "))
}

func (d Demographics) DisplayName() string {
	return strings.TrimSpace(DisplayName(d.FirstNames) + " " + DisplayName(d.LastNames))
}

func (d Demographics) FirstState() string {
	for _, address := range d.Addresses {
		if address.State != "" {
			return address.State
		}
	}
	return ""
}

// MergeDemographics collapses multiple candidate records into one creation
// payload. Name tokens are unioned without duplication and sorted, so the
// result does not depend on candidate order. DOB, gender, addresses and
// contacts are taken from the first candidate that has them.
func MergeDemographics(candidates []Demographics) Demographics {
	merged := Demographics{}
	firstNames := map[string]bool{}
	lastNames := map[string]bool{}

	for _, candidate := range candidates {
		candidate = deepcopy.Copy(candidate).(Demographics)
		for _, token := range candidate.FirstNames {
			if !firstNames[token] {
				firstNames[token] = true
				merged.FirstNames = append(merged.FirstNames, token)
			}
		}
		for _, token := range candidate.LastNames {
			if !lastNames[token] {
				lastNames[token] = true
				merged.LastNames = append(merged.LastNames, token)
			}
		}
		if merged.DOB == "" {
			merged.DOB = candidate.DOB
		}
		if merged.GenderAtBirth == "" {
			merged.GenderAtBirth = candidate.GenderAtBirth
		}
		if len(merged.Addresses) == 0 {
			merged.Addresses = candidate.Addresses
		}
		if len(merged.Contacts) == 0 {
			merged.Contacts = candidate.Contacts
		}
	}

	sort.Strings(merged.FirstNames)
	sort.Strings(merged.LastNames)
	return merged
}
