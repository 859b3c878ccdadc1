package ehr

import (
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/sources"
)

// The FHIR-flavored sources share one payload shape; only the wire client
// and the source tag differ.

type CanvasAdapter struct {
	adapterBase
}

func NewCanvasAdapter(client Client) *CanvasAdapter {
	return &CanvasAdapter{adapterBase{source: sources.Canvas, client: client}}
}

func (a *CanvasAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	return fhirDemographics(a.source, raw)
}

type EpicAdapter struct {
	adapterBase
}

func NewEpicAdapter(client Client) *EpicAdapter {
	return &EpicAdapter{adapterBase{source: sources.Epic, client: client}}
}

func (a *EpicAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	return fhirDemographics(a.source, raw)
}

type EClinicalWorksAdapter struct {
	adapterBase
}

func NewEClinicalWorksAdapter(client Client) *EClinicalWorksAdapter {
	return &EClinicalWorksAdapter{adapterBase{source: sources.EClinicalWorks, client: client}}
}

func (a *EClinicalWorksAdapter) Demographics(raw []byte) ([]patients.Demographics, error) {
	return fhirDemographics(a.source, raw)
}
