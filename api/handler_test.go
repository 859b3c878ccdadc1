package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/metriport/ehr-sync/api"
	"github.com/metriport/ehr-sync/config"
	internalErrs "github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/tokens"
	tokensTest "github.com/metriport/ehr-sync/tokens/test"
)

var _ = Describe("CreateToken", func() {
	var handler *api.Handler
	var tokenRepo *tokensTest.MockRepository
	var stored tokens.JwtToken

	newContext := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/internal/token", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return echo.New().NewContext(req, rec), rec
	}

	expectStore := func() {
		tokenRepo.EXPECT().
			FindOrCreate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token tokens.JwtToken) (*tokens.JwtToken, error) {
				stored = token
				return &token, nil
			})
	}

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		tokenRepo = tokensTest.NewMockRepository(ctrl)
		cfg := &config.Config{TokenLongDuration: 7200 * time.Hour}
		handler = api.NewHandler(nil, tokenRepo, cfg, zap.NewNop().Sugar())
		stored = tokens.JwtToken{}
	})

	It("stores the token under the dash variant of its source", func() {
		expectStore()

		c, rec := newContext(`{"token":"opaque-access-token","source":"athena","practiceId":"practice-1","patientId":"patient-9"}`)
		Expect(handler.CreateToken(c)).To(Succeed())
		Expect(rec.Code).To(Equal(http.StatusOK))

		Expect(stored.Token).To(Equal("opaque-access-token"))
		Expect(stored.Source).To(Equal(sources.Athena.Dash()))
		Expect(stored.Data["source"]).To(Equal(sources.Athena.Dash().String()))
		Expect(stored.Data["practiceId"]).To(Equal("practice-1"))
		Expect(stored.Data["patientId"]).To(Equal("patient-9"))
		Expect(stored.Data).ToNot(HaveKey("departmentId"))
		Expect(stored.Exp).To(BeTemporally("~", time.Now().Add(7200*time.Hour), time.Minute))
	})

	It("keeps the token's own expiry claim when it is shorter", func() {
		expectStore()

		claimed := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": claimed.Unix(),
		}).SignedString([]byte("test-key"))
		Expect(err).ToNot(HaveOccurred())

		c, _ := newContext(`{"token":"` + raw + `","source":"canvas","practiceId":"practice-1"}`)
		Expect(handler.CreateToken(c)).To(Succeed())
		Expect(stored.Exp.Unix()).To(Equal(claimed.Unix()))
	})

	It("rejects dash variants of the source", func() {
		c, _ := newContext(`{"token":"t","source":"athena-dash","practiceId":"practice-1"}`)
		Expect(handler.CreateToken(c)).To(MatchError(internalErrs.BadRequest))
	})

	It("rejects unknown sources", func() {
		c, _ := newContext(`{"token":"t","source":"cerner","practiceId":"practice-1"}`)
		Expect(handler.CreateToken(c)).To(MatchError(internalErrs.BadRequest))
	})

	It("requires a token and a practice", func() {
		c, _ := newContext(`{"source":"athena","practiceId":"practice-1"}`)
		Expect(handler.CreateToken(c)).To(MatchError(internalErrs.BadRequest))

		c, _ = newContext(`{"token":"t","source":"athena"}`)
		Expect(handler.CreateToken(c)).To(MatchError(internalErrs.BadRequest))
	})
})
