package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/metriport/ehr-sync/auth"
	"github.com/metriport/ehr-sync/authz"
	"github.com/metriport/ehr-sync/config"
	"github.com/metriport/ehr-sync/docquery"
	"github.com/metriport/ehr-sync/ehr"
	"github.com/metriport/ehr-sync/errors"
	"github.com/metriport/ehr-sync/logger"
	"github.com/metriport/ehr-sync/mappings"
	"github.com/metriport/ehr-sync/patients"
	"github.com/metriport/ehr-sync/scheduler"
	"github.com/metriport/ehr-sync/store"
	"github.com/metriport/ehr-sync/sync"
	"github.com/metriport/ehr-sync/tokens"
)

var (
	ServerString = ":8080"
)

func Start(e *echo.Echo, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(ServerString); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func NewServer(
	handler *Handler,
	healthCheck *HealthCheck,
	authenticator auth.Authenticator,
	webhooks *auth.WebhookRegistry,
	authorizer authz.RequestAuthorizer,
	cfg *config.Config,
	zapLogger *zap.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Skip auth and logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	loggerMiddleware := echozap.ZapLogger(zapLogger)

	e.Use(middleware.Recover())
	e.Use(loggerMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)

	authorize := authz.NewMiddleware(authorizer)

	internal := e.Group("/internal",
		auth.NewServerAuthMiddleware(cfg.InternalAPIKey, auth.MiddlewareOpts{Skipper: skipper}),
		authorize,
	)
	internal.POST("/patient/sync", handler.InternalPatientSync)
	internal.POST("/token", handler.CreateToken)

	dashboard := e.Group("/dashboard/:source/practice/:practiceId",
		auth.NewDashboardAuthMiddleware(authenticator, auth.MiddlewareOpts{Skipper: skipper}),
		authorize,
	)
	dashboard.POST("/patient/sync", handler.DashboardPatientSync)

	webhook := e.Group("/webhook/:source",
		auth.NewWebhookAuthMiddleware(webhooks, auth.MiddlewareOpts{Skipper: skipper}),
	)
	webhook.POST("", handler.Webhook)

	return e, nil
}

func NewAuthenticator(tokenRepo tokens.Repository, cxMappings mappings.CxMappings, cfg *config.Config) (auth.Authenticator, error) {
	return auth.NewDefaultCachingAuthenticator(auth.NewStoreAuthenticator(tokenRepo, cxMappings, cfg))
}

func NewWebhookRegistry(cxMappings mappings.CxMappings, clientKeys mappings.ClientKeyMappings) (*auth.WebhookRegistry, error) {
	return auth.NewWebhookRegistry([]auth.WebhookVerifier{
		auth.NewHealthieWebhookVerifier(cxMappings),
		auth.NewElationWebhookVerifier(clientKeys),
	})
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Sugar,
			config.NewConfig,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			mappings.NewCxMappings,
			mappings.NewFacilityMappings,
			mappings.NewSecretsMappings,
			mappings.NewClientKeyMappings,
			mappings.NewPatientMappings,
			tokens.NewRepository,
			patients.NewRepository,
			func(repo patients.Repository) patients.Service { return repo },
			ehr.NewEndpoints,
			ehr.NewDefaultRegistry,
			func(cfg *config.Config) docquery.Trigger {
				return docquery.NewAPITrigger(cfg.DocQueryAPIURL, http.DefaultClient)
			},
			docquery.NewDetachedRunner,
			func(runner *docquery.DetachedRunner) sync.DocQueryScheduler { return runner },
			sync.NewEngine,
			func(engine *sync.Engine) scheduler.Resolver { return engine },
			scheduler.NewScheduler,
			NewAuthenticator,
			NewWebhookRegistry,
			authz.NewRequestAuthorizer,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		fx.Invoke(docquery.RegisterLifecycle),
	}
}

func MainLoop() {
	fx.New(
		append(
			Dependencies(),
			fx.Invoke(SetReady),
			fx.Invoke(Start),
		)...,
	).Run()
}
