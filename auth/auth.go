package auth

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/metriport/ehr-sync/sources"
)

type AuthKey string

var AuthContextKey = AuthKey("auth")

// Auth is the identity attached to a request after authentication. Tenant
// and practice always come from the credential, never from caller-supplied
// identifiers.
type Auth struct {
	CxId         string         `json:"cxId"`
	Source       sources.Source `json:"source"`
	PracticeId   string         `json:"practiceId"`
	PatientId    string         `json:"patientId,omitempty"`
	DepartmentId string         `json:"departmentId,omitempty"`
	InstanceUrl  string         `json:"instanceUrl,omitempty"`
	ServerAccess bool           `json:"serverAccess"`
}

func IsServerAuth(a *Auth) bool {
	return a != nil && a.ServerAccess
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}
