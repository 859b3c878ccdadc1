package auth

import (
	"context"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	"github.com/metriport/ehr-sync/sources"
)

const (
	HealthieSignatureHeader = "x-healthie-ed25519-signature"

	ElationSignatureHeader   = "x-elation-signature"
	ElationTimestampHeader   = "x-elation-timestamp"
	ElationApplicationHeader = "x-elation-application-id"
)

// WebhookVerifier authenticates an inbound webhook for one source. Like the
// bearer protocol, every failure mode collapses to Forbidden.
type WebhookVerifier interface {
	Source() sources.Source
	Verify(ctx context.Context, headers http.Header, body []byte) (*Auth, error)
}

type WebhookRegistry struct {
	verifiers map[sources.Source]WebhookVerifier
}

func NewWebhookRegistry(verifiers []WebhookVerifier) (*WebhookRegistry, error) {
	bySource := make(map[sources.Source]WebhookVerifier, len(verifiers))
	for _, verifier := range verifiers {
		if _, ok := bySource[verifier.Source()]; ok {
			return nil, fmt.Errorf("duplicate webhook verifier for source %s", verifier.Source())
		}
		bySource[verifier.Source()] = verifier
	}
	return &WebhookRegistry{verifiers: bySource}, nil
}

func (r *WebhookRegistry) Verify(ctx context.Context, source sources.Source, headers http.Header, body []byte) (*Auth, error) {
	verifier, ok := r.verifiers[source.Base()]
	if !ok {
		return nil, fmt.Errorf("%w: no webhook support for %s", errors.Forbidden, source)
	}
	return verifier.Verify(ctx, headers, body)
}

// healthieVerifier checks an Ed25519 signature over the raw body against the
// per-application public key registered in the practice's secondary
// mappings, keyed by the event's resource type.
type healthieVerifier struct {
	cxMappings mappings.CxMappings
}

func NewHealthieWebhookVerifier(cxMappings mappings.CxMappings) WebhookVerifier {
	return &healthieVerifier{cxMappings: cxMappings}
}

func (v *healthieVerifier) Source() sources.Source {
	return sources.Healthie
}

type healthieEvent struct {
	ResourceType  string `json:"resource_type"`
	ApplicationId string `json:"application_id"`
	PracticeId    string `json:"practice_id"`
}

func (v *healthieVerifier) Verify(ctx context.Context, headers http.Header, body []byte) (*Auth, error) {
	signature, err := base64.StdEncoding.DecodeString(headers.Get(HealthieSignatureHeader))
	if err != nil || len(signature) == 0 {
		return nil, fmt.Errorf("%w: malformed signature header", errors.Forbidden)
	}

	event := healthieEvent{}
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: malformed event body", errors.Forbidden)
	}
	if event.ResourceType == "" || event.ApplicationId == "" || event.PracticeId == "" {
		return nil, fmt.Errorf("%w: event is missing identity fields", errors.Forbidden)
	}

	cxMapping, err := v.cxMappings.Get(ctx, sources.Healthie, event.PracticeId)
	if err != nil || cxMapping == nil {
		return nil, fmt.Errorf("%w: unknown practice", errors.Forbidden)
	}

	secondary, err := mappings.DecodeCxSecondary(cxMapping.SecondaryMappings)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable secondary mappings", errors.Forbidden)
	}

	registration, ok := secondary.Webhooks[event.ResourceType]
	if !ok || registration.ApplicationId != event.ApplicationId {
		return nil, fmt.Errorf("%w: unknown resource registration", errors.Forbidden)
	}

	publicKey, err := base64.StdEncoding.DecodeString(registration.PublicKey)
	if err != nil || len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: invalid signing key", errors.Forbidden)
	}

	if !ed25519.Verify(ed25519.PublicKey(publicKey), body, signature) {
		return nil, fmt.Errorf("%w: signature mismatch", errors.Forbidden)
	}

	return &Auth{
		CxId:       cxMapping.CxId,
		Source:     sources.Healthie,
		PracticeId: event.PracticeId,
	}, nil
}

// elationVerifier checks an HMAC-SHA256 signature over the canonical
// "{timestamp}.{body}" request string using the application's client secret.
type elationVerifier struct {
	clientKeys mappings.ClientKeyMappings
}

func NewElationWebhookVerifier(clientKeys mappings.ClientKeyMappings) WebhookVerifier {
	return &elationVerifier{clientKeys: clientKeys}
}

func (v *elationVerifier) Source() sources.Source {
	return sources.Elation
}

func (v *elationVerifier) Verify(ctx context.Context, headers http.Header, body []byte) (*Auth, error) {
	signature := headers.Get(ElationSignatureHeader)
	timestamp := headers.Get(ElationTimestampHeader)
	applicationId := headers.Get(ElationApplicationHeader)
	if signature == "" || timestamp == "" || applicationId == "" {
		return nil, fmt.Errorf("%w: missing signature headers", errors.Forbidden)
	}

	presented, err := hex.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed signature header", errors.Forbidden)
	}

	mapping, err := v.clientKeys.GetByExternalId(ctx, sources.Elation, applicationId)
	if err != nil || mapping == nil {
		return nil, fmt.Errorf("%w: unknown application", errors.Forbidden)
	}

	mac := hmac.New(sha256.New, []byte(mapping.ClientSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	if !hmac.Equal(presented, mac.Sum(nil)) {
		return nil, fmt.Errorf("%w: signature mismatch", errors.Forbidden)
	}

	return &Auth{
		CxId:       mapping.CxId,
		Source:     sources.Elation,
		PracticeId: mapping.ExternalId,
	}, nil
}
