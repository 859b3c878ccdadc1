package docquery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/metriport/ehr-sync/errors"
)

//go:generate mockgen --build_flags=--mod=mod -source=./docquery.go -destination=./test/mock_trigger.go -package test Trigger

// Trigger starts a document query for a patient across all connected data
// sources. Retrieval itself happens elsewhere; callers only initiate.
type Trigger interface {
	QueryAcrossSources(ctx context.Context, cxId, patientId string) error
}

type apiTrigger struct {
	baseURL string
	client  *http.Client
}

// NewAPITrigger returns a Trigger backed by the internal document query API.
func NewAPITrigger(baseURL string, client *http.Client) Trigger {
	if client == nil {
		client = http.DefaultClient
	}
	return &apiTrigger{baseURL: baseURL, client: client}
}

func (t *apiTrigger) QueryAcrossSources(ctx context.Context, cxId, patientId string) error {
	params := url.Values{}
	params.Set("cxId", cxId)
	params.Set("patientId", patientId)

	endpoint := fmt.Sprintf("%s/internal/docs/query?%s", t.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: document query returned %d", errors.InternalServerError, res.StatusCode)
	}
	return nil
}
