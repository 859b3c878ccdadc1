package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Practice-level appointment fetches and patient-level syncs have
	// different per-call cost and different vendor rate limits, so the
	// two pools are tuned independently.
	PracticeFetchParallelism int           `envconfig:"METRIPORT_EHR_PRACTICE_FETCH_PARALLELISM" default:"10"`
	PatientSyncParallelism   int           `envconfig:"METRIPORT_EHR_PATIENT_SYNC_PARALLELISM" default:"100"`
	PracticeFetchMaxJitter   time.Duration `envconfig:"METRIPORT_EHR_PRACTICE_FETCH_MAX_JITTER" default:"5s"`
	PatientSyncMaxJitter     time.Duration `envconfig:"METRIPORT_EHR_PATIENT_SYNC_MAX_JITTER" default:"500ms"`

	AppointmentLookAhead time.Duration `envconfig:"METRIPORT_EHR_APPOINTMENT_LOOK_AHEAD" default:"168h"`
	AppointmentLookBack  time.Duration `envconfig:"METRIPORT_EHR_APPOINTMENT_LOOK_BACK" default:"336h"`

	DocQueryCooldown time.Duration `envconfig:"METRIPORT_EHR_DOC_QUERY_COOLDOWN" default:"24h"`

	TokenShortDuration time.Duration `envconfig:"METRIPORT_EHR_TOKEN_SHORT_DURATION" default:"10h"`
	TokenLongDuration  time.Duration `envconfig:"METRIPORT_EHR_TOKEN_LONG_DURATION" default:"7200h"`

	InternalAPIKey string `envconfig:"METRIPORT_EHR_INTERNAL_API_KEY"`

	DocQueryAPIURL string `envconfig:"METRIPORT_EHR_DOC_QUERY_API_URL" default:"http://localhost:8080"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
