package authz

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"strings"

	"github.com/fatih/structs"
	"github.com/labstack/echo/v4"
	"github.com/open-policy-agent/opa/ast"
	"github.com/open-policy-agent/opa/rego"
	"go.uber.org/zap"

	"github.com/metriport/ehr-sync/auth"
	"github.com/metriport/ehr-sync/errors"
)

//go:embed policy.rego
var authzPolicy string

type RequestAuthorizer interface {
	Authorize(context.Context, *http.Request) error
	EvaluatePolicy(context.Context, map[string]interface{}) error
}

// NewRequestAuthorizer compiles the embedded policy. A broken policy fails
// startup rather than surfacing as denied requests at runtime.
func NewRequestAuthorizer(logger *zap.SugaredLogger) (RequestAuthorizer, error) {
	compiler, err := ast.CompileModules(map[string]string{
		"policy.rego": authzPolicy,
	})
	if err != nil {
		return nil, err
	}

	return &embeddedOpaAuthorizer{
		logger: logger,
		policy: compiler,
	}, nil
}

type embeddedOpaAuthorizer struct {
	logger *zap.SugaredLogger
	policy *ast.Compiler
}

func (e *embeddedOpaAuthorizer) Authorize(ctx context.Context, req *http.Request) error {
	in := map[string]interface{}{
		"path":   splitPath(req.URL.Path),
		"method": strings.ToUpper(req.Method),
	}

	if a := auth.GetAuthData(req.Context()); a != nil {
		authStruct := structs.New(*a)
		authStruct.TagName = "json"
		in["auth"] = authStruct.Map()
	}

	return e.EvaluatePolicy(ctx, in)
}

func (e *embeddedOpaAuthorizer) EvaluatePolicy(ctx context.Context, input map[string]interface{}) error {
	r := rego.New(
		rego.Package("http.authz.ehrsync"),
		rego.Query("allow"),
		rego.Compiler(e.policy),
		rego.Input(input),
	)

	results, err := r.Eval(ctx)
	if err != nil {
		return fmt.Errorf("unable to evaluate authorization policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return fmt.Errorf("evaluating authorization policy returned no results")
	}

	val, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return fmt.Errorf("unexpected authorization result: %v", results[0].Expressions[0].Value)
	}

	e.logger.Debugw("authorization policy eval", zap.Any("input", input), zap.Bool("allow", val))

	if !val {
		return fmt.Errorf("%w: request is out of the credential's scope", errors.Forbidden)
	}

	return nil
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	return parts
}

// NewMiddleware enforces the policy after authentication has attached the
// request identity.
func NewMiddleware(authorizer RequestAuthorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authorizer.Authorize(c.Request().Context(), c.Request()); err != nil {
				return err
			}
			return next(c)
		}
	}
}
