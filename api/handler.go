package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/metriport/ehr-sync/auth"
	"github.com/metriport/ehr-sync/config"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/sync"
	"github.com/metriport/ehr-sync/tokens"
)

type Handler struct {
	engine *sync.Engine
	tokens tokens.Repository
	cfg    *config.Config
	logger *zap.SugaredLogger
}

var _ Server = &Handler{}

func NewHandler(engine *sync.Engine, tokenRepo tokens.Repository, cfg *config.Config, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		engine: engine,
		tokens: tokenRepo,
		cfg:    cfg,
		logger: logger,
	}
}

// Server is the set of routes the HTTP layer exposes.
type Server interface {
	InternalPatientSync(c echo.Context) error
	CreateToken(c echo.Context) error
	DashboardPatientSync(c echo.Context) error
	Webhook(c echo.Context) error
}

type internalSyncRequest struct {
	CxId            string `json:"cxId"`
	Source          string `json:"source"`
	PracticeId      string `json:"practiceId"`
	PatientId       string `json:"patientId"`
	TriggerDocQuery bool   `json:"triggerDocQuery"`
}

type syncResponse struct {
	PatientId string `json:"patientId"`
}

// InternalPatientSync resolves an external patient on behalf of another
// service. The caller supplies the full identity.
func (h *Handler) InternalPatientSync(c echo.Context) error {
	request := internalSyncRequest{}
	if err := c.Bind(&request); err != nil {
		return fmt.Errorf("%w: %s", errors.BadRequest, err)
	}
	if request.CxId == "" || request.PracticeId == "" || request.PatientId == "" {
		return fmt.Errorf("%w: cxId, practiceId and patientId are required", errors.BadRequest)
	}

	source, err := sources.Parse(request.Source)
	if err != nil {
		return err
	}

	patientId, err := h.engine.Resolve(c.Request().Context(), sync.ResolveParams{
		CxId:            request.CxId,
		Source:          source,
		PracticeId:      request.PracticeId,
		ExternalId:      request.PatientId,
		TriggerDocQuery: request.TriggerDocQuery,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, syncResponse{PatientId: patientId})
}

type createTokenRequest struct {
	Token        string `json:"token"`
	Source       string `json:"source"`
	PracticeId   string `json:"practiceId"`
	PatientId    string `json:"patientId"`
	DepartmentId string `json:"departmentId"`
	InstanceUrl  string `json:"instanceUrl"`
}

type createTokenResponse struct {
	Exp time.Time `json:"exp"`
}

// CreateToken registers an access token minted during a source's OAuth
// exchange so later dashboard calls can present it as a bearer credential.
// The token is tagged with the dash variant of its source and its expiry is
// capped by the configured long duration, whatever its own claim says.
func (h *Handler) CreateToken(c echo.Context) error {
	request := createTokenRequest{}
	if err := c.Bind(&request); err != nil {
		return fmt.Errorf("%w: %s", errors.BadRequest, err)
	}
	if request.Token == "" || request.PracticeId == "" {
		return fmt.Errorf("%w: token and practiceId are required", errors.BadRequest)
	}

	source, err := sources.Parse(request.Source)
	if err != nil {
		return err
	}
	if source.IsDash() {
		return fmt.Errorf("%w: unsupported source %q", errors.BadRequest, request.Source)
	}

	data := map[string]interface{}{
		"source":     source.Dash().String(),
		"practiceId": request.PracticeId,
	}
	if request.PatientId != "" {
		data["patientId"] = request.PatientId
	}
	if request.DepartmentId != "" {
		data["departmentId"] = request.DepartmentId
	}
	if request.InstanceUrl != "" {
		data["instanceUrl"] = request.InstanceUrl
	}

	token := tokens.NewFromRaw(request.Token, source.Dash(), data, time.Now(), h.cfg.TokenLongDuration)
	created, err := h.tokens.FindOrCreate(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createTokenResponse{Exp: created.Exp})
}

type dashboardSyncRequest struct {
	PatientId string `json:"patientId"`
}

// DashboardPatientSync resolves the patient bound to the caller's session.
// Tenant, practice and the default patient come from the authenticated
// identity, never from the payload.
func (h *Handler) DashboardPatientSync(c echo.Context) error {
	authData := auth.GetAuthData(c.Request().Context())
	if authData == nil {
		return fmt.Errorf("%w: no authenticated identity", errors.Forbidden)
	}

	request := dashboardSyncRequest{}
	if err := c.Bind(&request); err != nil {
		return fmt.Errorf("%w: %s", errors.BadRequest, err)
	}

	externalId := request.PatientId
	if externalId == "" {
		externalId = authData.PatientId
	}
	if externalId == "" {
		return fmt.Errorf("%w: patientId is required", errors.BadRequest)
	}

	patientId, err := h.engine.Resolve(c.Request().Context(), sync.ResolveParams{
		CxId:                       authData.CxId,
		Source:                     authData.Source,
		PracticeId:                 authData.PracticeId,
		ExternalId:                 externalId,
		TriggerDocQuery:            true,
		TriggerDocQueryForExisting: true,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, syncResponse{PatientId: patientId})
}

type webhookEvent struct {
	PatientId  string `json:"patient_id"`
	ResourceId string `json:"resource_id"`
}

// Webhook resolves the patient referenced by a verified webhook event. The
// signature middleware has already bound the event to a tenant and practice.
func (h *Handler) Webhook(c echo.Context) error {
	authData := auth.GetAuthData(c.Request().Context())
	if authData == nil {
		return fmt.Errorf("%w: no authenticated identity", errors.Forbidden)
	}

	event := webhookEvent{}
	if err := c.Bind(&event); err != nil {
		return fmt.Errorf("%w: %s", errors.BadRequest, err)
	}

	externalId := event.PatientId
	if externalId == "" {
		externalId = event.ResourceId
	}
	if externalId == "" {
		return fmt.Errorf("%w: event does not reference a patient", errors.BadRequest)
	}

	patientId, err := h.engine.Resolve(c.Request().Context(), sync.ResolveParams{
		CxId:                       authData.CxId,
		Source:                     authData.Source,
		PracticeId:                 authData.PracticeId,
		ExternalId:                 externalId,
		TriggerDocQuery:            true,
		TriggerDocQueryForExisting: true,
	})
	if err != nil {
		return err
	}

	h.logger.Infow("webhook patient sync",
		"cxId", authData.CxId,
		"source", authData.Source,
		"patientId", patientId,
	)

	return c.JSON(http.StatusOK, syncResponse{PatientId: patientId})
}
