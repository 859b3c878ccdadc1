package ehr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
)

const defaultRequestTimeout = 30 * time.Second

// ClientConfig describes a source's API surface. The shared client covers
// the common two-legged OAuth + JSON shape; sources with stranger wire
// formats supply their own Client implementation instead.
type ClientConfig struct {
	Source           sources.Source `ignored:"true"`
	BaseURL          string         `envconfig:"BASE_URL"`
	TokenURL         string         `envconfig:"TOKEN_URL"`
	ClientID         string         `envconfig:"CLIENT_ID"`
	ClientSecret     string         `envconfig:"CLIENT_SECRET"`
	Scopes           []string       `envconfig:"SCOPES"`
	PatientPath      string         `envconfig:"PATIENT_PATH" default:"/practices/%s/patients/%s"`
	AppointmentsPath string         `envconfig:"APPOINTMENTS_PATH" default:"/practices/%s/appointments"`
	SubscriptionPath string         `envconfig:"SUBSCRIPTION_PATH" default:"/practices/%s/appointments/subscription"`
}

// NewHTTPClient returns a Client backed by an oauth2 client-credentials
// token source. Each request carries its own timeout.
func NewHTTPClient(cfg ClientConfig) Client {
	oauth := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}

	return &httpClient{
		cfg:  cfg,
		http: oauth.Client(context.Background()),
	}
}

type httpClient struct {
	cfg  ClientConfig
	http *http.Client
}

func (c *httpClient) GetPatient(ctx context.Context, practiceId, patientId string) ([]byte, error) {
	path := fmt.Sprintf(c.cfg.PatientPath, url.PathEscape(practiceId), url.PathEscape(patientId))
	return c.get(ctx, path, nil)
}

func (c *httpClient) GetAppointments(ctx context.Context, practiceId string, window TimeWindow) ([]Appointment, error) {
	path := fmt.Sprintf(c.cfg.AppointmentsPath, url.PathEscape(practiceId))
	query := url.Values{
		"from": []string{window.From.UTC().Format(time.RFC3339)},
		"to":   []string{window.To.UTC().Format(time.RFC3339)},
	}

	raw, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return c.decodeAppointments(raw)
}

func (c *httpClient) decodeAppointments(raw []byte) ([]Appointment, error) {
	var payload struct {
		Appointments []struct {
			PatientId    string    `json:"patientId"`
			DepartmentId string    `json:"departmentId"`
			StartsAt     time.Time `json:"startsAt"`
		} `json:"appointments"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("unable to decode %s appointments: %w", c.cfg.Source, err)
	}

	appointments := make([]Appointment, 0, len(payload.Appointments))
	for _, appointment := range payload.Appointments {
		appointments = append(appointments, Appointment{
			ExternalPatientId: appointment.PatientId,
			DepartmentId:      appointment.DepartmentId,
			StartsAt:          appointment.StartsAt,
		})
	}

	return appointments, nil
}

// httpSubscriptionClient is a separate type so the subscription capability
// stays a compile-time property of the sources that actually have it.
type httpSubscriptionClient struct {
	httpClient
}

// NewHTTPSubscriptionClient returns a client for sources that additionally
// expose a webhook-subscription appointment delta.
func NewHTTPSubscriptionClient(cfg ClientConfig) SubscriptionClient {
	oauth := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		Scopes:       cfg.Scopes,
	}

	return &httpSubscriptionClient{httpClient{
		cfg:  cfg,
		http: oauth.Client(context.Background()),
	}}
}

func (c *httpSubscriptionClient) GetAppointmentsFromSubscription(ctx context.Context, practiceId string) ([]Appointment, error) {
	path := fmt.Sprintf(c.cfg.SubscriptionPath, url.PathEscape(practiceId))
	raw, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	return c.decodeAppointments(raw)
}

func (c *httpClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultRequestTimeout)
	defer cancel()

	endpoint := c.cfg.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", c.cfg.Source, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s returned 404", errors.NotFound, c.cfg.Source)
	case res.StatusCode >= 400:
		return nil, fmt.Errorf("%s returned status %d", c.cfg.Source, res.StatusCode)
	}

	return body, nil
}
