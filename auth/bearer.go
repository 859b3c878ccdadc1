package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/metriport/ehr-sync/config"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/mappings"
	"github.com/metriport/ehr-sync/sources"
	"github.com/metriport/ehr-sync/tokens"
)

// Authenticator validates a bearer token issued for a dash source and
// resolves the identity it carries. Every failure mode collapses to
// Forbidden so callers cannot distinguish why verification failed.
type Authenticator interface {
	Authenticate(ctx context.Context, token string, expected sources.Source) (*Auth, error)
}

type tokenPayload struct {
	Source       string `mapstructure:"source"`
	PracticeId   string `mapstructure:"practiceId"`
	PatientId    string `mapstructure:"patientId"`
	DepartmentId string `mapstructure:"departmentId"`
	InstanceUrl  string `mapstructure:"instanceUrl"`
}

type storeAuthenticator struct {
	tokens     tokens.Repository
	cxMappings mappings.CxMappings
	cfg        *config.Config
}

func NewStoreAuthenticator(tokenRepo tokens.Repository, cxMappings mappings.CxMappings, cfg *config.Config) Authenticator {
	return &storeAuthenticator{
		tokens:     tokenRepo,
		cxMappings: cxMappings,
		cfg:        cfg,
	}
}

func (a *storeAuthenticator) Authenticate(ctx context.Context, token string, expected sources.Source) (*Auth, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is missing", errors.Forbidden)
	}
	if !expected.IsDash() {
		return nil, fmt.Errorf("%w: %s is not a dash source", errors.Forbidden, expected)
	}

	record, err := a.tokens.Get(ctx, token, expected)
	if err != nil {
		return nil, fmt.Errorf("%w: token lookup failed", errors.Forbidden)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: token not found", errors.Forbidden)
	}

	now := time.Now()
	if !record.Exp.IsZero() && record.Exp.Before(now) {
		return nil, fmt.Errorf("%w: token expired", errors.Forbidden)
	}

	payload := tokenPayload{}
	if err := mapstructure.Decode(record.Data, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed token payload", errors.Forbidden)
	}
	if payload.Source != string(expected) {
		return nil, fmt.Errorf("%w: token source mismatch", errors.Forbidden)
	}
	if payload.PracticeId == "" {
		return nil, fmt.Errorf("%w: token payload has no practice", errors.Forbidden)
	}

	cxMapping, err := a.cxMappings.Get(ctx, expected.Base(), payload.PracticeId)
	if err != nil {
		return nil, fmt.Errorf("%w: practice lookup failed", errors.Forbidden)
	}
	if cxMapping == nil {
		return nil, fmt.Errorf("%w: unknown practice", errors.Forbidden)
	}

	// Write-through shortening. Tokens are minted with a long expiry so
	// dashboard sessions survive, but once one is actually used the window
	// shrinks to bound the blast radius of a leaked token.
	if short := now.Add(a.cfg.TokenShortDuration); record.Exp.After(short) {
		if err := a.tokens.UpdateExpiration(ctx, record.Id.Hex(), short); err != nil {
			return nil, fmt.Errorf("%w: token update failed", errors.Forbidden)
		}
	}

	return &Auth{
		CxId:         cxMapping.CxId,
		Source:       expected,
		PracticeId:   payload.PracticeId,
		PatientId:    payload.PatientId,
		DepartmentId: payload.DepartmentId,
		InstanceUrl:  payload.InstanceUrl,
	}, nil
}
