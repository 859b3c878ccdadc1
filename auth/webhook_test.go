package auth_test

import (
	"context"
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/metriport/ehr-sync/auth"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	mappingsTest "github.com/metriport/ehr-sync/mappings/test"
	"github.com/metriport/ehr-sync/sources"
)

var _ = Describe("WebhookRegistry", func() {
	var cxMappings *mappingsTest.MockCxMappings
	var clientKeys *mappingsTest.MockClientKeyMappings
	var registry *auth.WebhookRegistry

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		cxMappings = mappingsTest.NewMockCxMappings(ctrl)
		clientKeys = mappingsTest.NewMockClientKeyMappings(ctrl)

		var err error
		registry, err = auth.NewWebhookRegistry([]auth.WebhookVerifier{
			auth.NewHealthieWebhookVerifier(cxMappings),
			auth.NewElationWebhookVerifier(clientKeys),
		})
		Expect(err).ToNot(HaveOccurred())
	})

	It("rejects sources without webhook support", func() {
		_, err := registry.Verify(context.Background(), sources.Athena, http.Header{}, []byte(`{}`))
		Expect(err).To(MatchError(errors.Forbidden))
	})

	It("fails construction on duplicate verifiers", func() {
		_, err := auth.NewWebhookRegistry([]auth.WebhookVerifier{
			auth.NewHealthieWebhookVerifier(cxMappings),
			auth.NewHealthieWebhookVerifier(cxMappings),
		})
		Expect(err).To(MatchError(ContainSubstring("duplicate webhook verifier")))
	})

	Describe("Healthie", func() {
		var publicKey ed25519.PublicKey
		var privateKey ed25519.PrivateKey
		var applicationId string
		var practiceId string
		var cxMapping mappings.CxMapping
		var body []byte

		BeforeEach(func() {
			var err error
			publicKey, privateKey, err = ed25519.GenerateKey(nil)
			Expect(err).ToNot(HaveOccurred())

			applicationId = uuid.NewString()
			practiceId = uuid.NewString()
			body = []byte(fmt.Sprintf(
				`{"resource_type": "Appointment", "application_id": %q, "practice_id": %q, "resource_id": "123"}`,
				applicationId, practiceId,
			))

			cxMapping = mappingsTest.RandomCxMapping()
			cxMapping.Source = sources.Healthie
			cxMapping.ExternalId = practiceId
			cxMapping.SecondaryMappings = mappings.SecondaryMappings{
				"webhooks": map[string]interface{}{
					"Appointment": map[string]interface{}{
						"applicationId": applicationId,
						"publicKey":     base64.StdEncoding.EncodeToString(publicKey),
					},
				},
			}
		})

		signed := func(body []byte, key ed25519.PrivateKey) http.Header {
			headers := http.Header{}
			headers.Set(auth.HealthieSignatureHeader, base64.StdEncoding.EncodeToString(ed25519.Sign(key, body)))
			return headers
		}

		It("accepts a correctly signed event", func() {
			cxMappings.EXPECT().Get(gomock.Any(), sources.Healthie, practiceId).Return(&cxMapping, nil)

			result, err := registry.Verify(context.Background(), sources.Healthie, signed(body, privateKey), body)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.CxId).To(Equal(cxMapping.CxId))
			Expect(result.PracticeId).To(Equal(practiceId))
		})

		It("rejects a signature from the wrong key", func() {
			_, forgedKey, err := ed25519.GenerateKey(nil)
			Expect(err).ToNot(HaveOccurred())
			cxMappings.EXPECT().Get(gomock.Any(), sources.Healthie, practiceId).Return(&cxMapping, nil)

			_, err = registry.Verify(context.Background(), sources.Healthie, signed(body, forgedKey), body)
			Expect(err).To(MatchError(errors.Forbidden))
		})

		It("rejects a missing signature header", func() {
			_, err := registry.Verify(context.Background(), sources.Healthie, http.Header{}, body)
			Expect(err).To(MatchError(errors.Forbidden))
		})

		It("rejects an unregistered resource type", func() {
			other := []byte(fmt.Sprintf(
				`{"resource_type": "Form", "application_id": %q, "practice_id": %q}`,
				applicationId, practiceId,
			))
			cxMappings.EXPECT().Get(gomock.Any(), sources.Healthie, practiceId).Return(&cxMapping, nil)

			_, err := registry.Verify(context.Background(), sources.Healthie, signed(other, privateKey), other)
			Expect(err).To(MatchError(errors.Forbidden))
		})

		It("rejects an unknown practice", func() {
			cxMappings.EXPECT().Get(gomock.Any(), sources.Healthie, practiceId).Return(nil, nil)

			_, err := registry.Verify(context.Background(), sources.Healthie, signed(body, privateKey), body)
			Expect(err).To(MatchError(errors.Forbidden))
		})
	})

	Describe("Elation", func() {
		var applicationId string
		var mapping mappings.ClientKeyMapping
		var body []byte
		var timestamp string

		BeforeEach(func() {
			applicationId = uuid.NewString()
			mapping = mappingsTest.RandomClientKeyMapping()
			mapping.Source = sources.Elation
			mapping.ExternalId = applicationId
			body = []byte(`{"action": "saved", "resource": "appointments"}`)
			timestamp = "1725100000"
		})

		signed := func(secret string) http.Header {
			mac := hmac.New(sha256.New, []byte(secret))
			mac.Write([]byte(timestamp + "." + string(body)))

			headers := http.Header{}
			headers.Set(auth.ElationSignatureHeader, hex.EncodeToString(mac.Sum(nil)))
			headers.Set(auth.ElationTimestampHeader, timestamp)
			headers.Set(auth.ElationApplicationHeader, applicationId)
			return headers
		}

		It("accepts a correctly signed event", func() {
			clientKeys.EXPECT().GetByExternalId(gomock.Any(), sources.Elation, applicationId).Return(&mapping, nil)

			result, err := registry.Verify(context.Background(), sources.Elation, signed(mapping.ClientSecret), body)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.CxId).To(Equal(mapping.CxId))
			Expect(result.PracticeId).To(Equal(applicationId))
		})

		It("rejects a signature minted with the wrong secret", func() {
			clientKeys.EXPECT().GetByExternalId(gomock.Any(), sources.Elation, applicationId).Return(&mapping, nil)

			_, err := registry.Verify(context.Background(), sources.Elation, signed("not-the-secret"), body)
			Expect(err).To(MatchError(errors.Forbidden))
		})

		It("rejects a tampered body", func() {
			clientKeys.EXPECT().GetByExternalId(gomock.Any(), sources.Elation, applicationId).Return(&mapping, nil)

			_, err := registry.Verify(context.Background(), sources.Elation, signed(mapping.ClientSecret), []byte(`{"action": "deleted"}`))
			Expect(err).To(MatchError(errors.Forbidden))
		})

		It("rejects missing signature headers", func() {
			_, err := registry.Verify(context.Background(), sources.Elation, http.Header{}, body)
			Expect(err).To(MatchError(errors.Forbidden))
		})

		It("rejects an unknown application", func() {
			clientKeys.EXPECT().GetByExternalId(gomock.Any(), sources.Elation, applicationId).Return(nil, nil)

			_, err := registry.Verify(context.Background(), sources.Elation, signed(mapping.ClientSecret), body)
			Expect(err).To(MatchError(errors.Forbidden))
		})
	})
})
