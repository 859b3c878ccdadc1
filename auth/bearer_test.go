package auth_test

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/metriport/ehr-sync/auth"
	"github.com/metriport/ehr-sync/config"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	mappingsTest "github.com/metriport/ehr-sync/mappings/test"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/tokens"
	tokensTest "github.com/metriport/ehr-sync/tokens/test"
)

var _ = Describe("StoreAuthenticator", func() {
	var tokenRepo *tokensTest.MockRepository
	var cxMappings *mappingsTest.MockCxMappings
	var authenticator auth.Authenticator

	var token string
	var practiceId string
	var cxMapping mappings.CxMapping

	expected := sources.Athena.Dash()

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		tokenRepo = tokensTest.NewMockRepository(ctrl)
		cxMappings = mappingsTest.NewMockCxMappings(ctrl)
		cfg := &config.Config{TokenShortDuration: 10 * time.Hour}
		authenticator = auth.NewStoreAuthenticator(tokenRepo, cxMappings, cfg)

		token = uuid.NewString()
		practiceId = uuid.NewString()
		cxMapping = mappingsTest.RandomCxMapping()
		cxMapping.Source = sources.Athena
		cxMapping.ExternalId = practiceId
	})

	record := func(exp time.Time, data map[string]interface{}) *tokens.JwtToken {
		id := primitive.NewObjectID()
		return &tokens.JwtToken{
			Id:     &id,
			Token:  token,
			Source: expected,
			Exp:    exp,
			Data:   data,
		}
	}

	validData := func() map[string]interface{} {
		return map[string]interface{}{
			"source":     string(expected),
			"practiceId": practiceId,
			"patientId":  "ext-patient",
		}
	}

	It("resolves the identity carried by a valid token", func() {
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(record(time.Now().Add(time.Hour), validData()), nil)
		cxMappings.EXPECT().Get(gomock.Any(), sources.Athena, practiceId).Return(&cxMapping, nil)

		result, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.CxId).To(Equal(cxMapping.CxId))
		Expect(result.Source).To(Equal(expected))
		Expect(result.PracticeId).To(Equal(practiceId))
		Expect(result.PatientId).To(Equal("ext-patient"))
		Expect(result.ServerAccess).To(BeFalse())
	})

	It("rejects an unknown token", func() {
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(nil, nil)

		_, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).To(MatchError(errors.Forbidden))
	})

	It("rejects an expired token", func() {
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(record(time.Now().Add(-time.Minute), validData()), nil)

		_, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).To(MatchError(errors.Forbidden))
	})

	It("rejects a token whose payload declares a different source", func() {
		data := validData()
		data["source"] = string(sources.Canvas.Dash())
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(record(time.Now().Add(time.Hour), data), nil)

		_, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).To(MatchError(errors.Forbidden))
	})

	It("rejects a token without a practice", func() {
		data := validData()
		delete(data, "practiceId")
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(record(time.Now().Add(time.Hour), data), nil)

		_, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).To(MatchError(errors.Forbidden))
	})

	It("rejects a token for an unmapped practice", func() {
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(record(time.Now().Add(time.Hour), validData()), nil)
		cxMappings.EXPECT().Get(gomock.Any(), sources.Athena, practiceId).Return(nil, nil)

		_, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).To(MatchError(errors.Forbidden))
	})

	It("rejects non-dash expected sources", func() {
		_, err := authenticator.Authenticate(context.Background(), token, sources.Athena)
		Expect(err).To(MatchError(errors.Forbidden))
	})

	It("shortens long-lived tokens on first use", func() {
		tokenRecord := record(time.Now().Add(300*24*time.Hour), validData())
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(tokenRecord, nil)
		cxMappings.EXPECT().Get(gomock.Any(), sources.Athena, practiceId).Return(&cxMapping, nil)
		tokenRepo.EXPECT().
			UpdateExpiration(gomock.Any(), tokenRecord.Id.Hex(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, exp time.Time) error {
				Expect(exp).To(BeTemporally("~", time.Now().Add(10*time.Hour), time.Minute))
				return nil
			})

		_, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).ToNot(HaveOccurred())
	})

	It("leaves already short tokens alone", func() {
		tokenRepo.EXPECT().Get(gomock.Any(), token, expected).Return(record(time.Now().Add(time.Hour), validData()), nil)
		cxMappings.EXPECT().Get(gomock.Any(), sources.Athena, practiceId).Return(&cxMapping, nil)

		_, err := authenticator.Authenticate(context.Background(), token, expected)
		Expect(err).ToNot(HaveOccurred())
	})
})

type countingAuthenticator struct {
	calls atomic.Int64
	auth  *auth.Auth
	err   error
}

func (c *countingAuthenticator) Authenticate(_ context.Context, _ string, _ sources.Source) (*auth.Auth, error) {
	c.calls.Add(1)
	return c.auth, c.err
}

var _ = Describe("CachingAuthenticator", func() {
	It("serves repeat authentications from the cache", func() {
		delegate := &countingAuthenticator{auth: &auth.Auth{CxId: uuid.NewString()}}
		caching, err := auth.NewDefaultCachingAuthenticator(delegate)
		Expect(err).ToNot(HaveOccurred())

		token := uuid.NewString()
		for i := 0; i < 3; i++ {
			result, err := caching.Authenticate(context.Background(), token, sources.Athena.Dash())
			Expect(err).ToNot(HaveOccurred())
			Expect(result.CxId).To(Equal(delegate.auth.CxId))
		}
		Expect(delegate.calls.Load()).To(Equal(int64(1)))
	})

	It("does not cache failures", func() {
		delegate := &countingAuthenticator{err: errors.Forbidden}
		caching, err := auth.NewDefaultCachingAuthenticator(delegate)
		Expect(err).ToNot(HaveOccurred())

		token := uuid.NewString()
		for i := 0; i < 2; i++ {
			_, err := caching.Authenticate(context.Background(), token, sources.Athena.Dash())
			Expect(err).To(MatchError(errors.Forbidden))
		}
		Expect(delegate.calls.Load()).To(Equal(int64(2)))
	})

	It("keys the cache by token and source", func() {
		delegate := &countingAuthenticator{auth: &auth.Auth{CxId: uuid.NewString()}}
		caching, err := auth.NewDefaultCachingAuthenticator(delegate)
		Expect(err).ToNot(HaveOccurred())

		token := uuid.NewString()
		_, err = caching.Authenticate(context.Background(), token, sources.Athena.Dash())
		Expect(err).ToNot(HaveOccurred())
		_, err = caching.Authenticate(context.Background(), token, sources.Canvas.Dash())
		Expect(err).ToNot(HaveOccurred())
		Expect(delegate.calls.Load()).To(Equal(int64(2)))
	})
})
