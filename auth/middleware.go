package auth

import (
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/sources"
)

const bearerPrefix = "Bearer "

func parseRouteSource(raw string) (sources.Source, error) {
	source, err := sources.Parse(raw)
	if err != nil {
		return "", err
	}
	if source.IsDash() {
		return "", fmt.Errorf("%w: unsupported source %q", errors.BadRequest, raw)
	}
	return source, nil
}

type MiddlewareOpts struct {
	Skipper middleware.Skipper
}

// NewDashboardAuthMiddleware protects dashboard routes with the bearer-token
// protocol. The expected source comes from the :source path parameter and
// must be a base source name; the dash variant is internal to the token tag.
func NewDashboardAuthMiddleware(authenticator Authenticator, opts MiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if opts.Skipper != nil && opts.Skipper(c) {
				return next(c)
			}

			source, err := parseRouteSource(c.Param("source"))
			if err != nil {
				return err
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return fmt.Errorf("%w: bearer token is missing", errors.Forbidden)
			}

			auth, err := authenticator.Authenticate(c.Request().Context(), strings.TrimPrefix(header, bearerPrefix), source.Dash())
			if err != nil {
				return err
			}

			SetAuthData(c, auth)
			return next(c)
		}
	}
}

// NewServerAuthMiddleware protects internal routes with the shared service
// key.
func NewServerAuthMiddleware(apiKey string, opts MiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if opts.Skipper != nil && opts.Skipper(c) {
				return next(c)
			}

			presented := c.Request().Header.Get("x-api-key")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				return fmt.Errorf("%w: invalid api key", errors.Forbidden)
			}

			SetAuthData(c, &Auth{ServerAccess: true})
			return next(c)
		}
	}
}

// NewWebhookAuthMiddleware protects webhook routes with the signed-payload
// protocol. The body is read here so the verifier sees the exact bytes that
// were signed; handlers downstream rebind it from the request context.
func NewWebhookAuthMiddleware(registry *WebhookRegistry, opts MiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if opts.Skipper != nil && opts.Skipper(c) {
				return next(c)
			}

			source, err := parseRouteSource(c.Param("source"))
			if err != nil {
				return err
			}

			body, err := io.ReadAll(c.Request().Body)
			if err != nil {
				return fmt.Errorf("%w: unable to read body", errors.Forbidden)
			}
			c.Request().Body = io.NopCloser(strings.NewReader(string(body)))

			auth, err := registry.Verify(c.Request().Context(), source, c.Request().Header, body)
			if err != nil {
				return err
			}

			SetAuthData(c, auth)
			return next(c)
		}
	}
}
