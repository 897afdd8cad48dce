// @title        AgendaRep API
// @version      1.0
// @description  Agenda de visitas de representantes comerciais.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/jhoicas/agendarep-api/docs"
	appanalytics "github.com/jhoicas/agendarep-api/internal/application/analytics"
	"github.com/jhoicas/agendarep-api/internal/application/auth"
	"github.com/jhoicas/agendarep-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/agendarep-api/internal/infrastructure/pdf"
	"github.com/jhoicas/agendarep-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/agendarep-api/internal/interfaces/http"
	"github.com/jhoicas/agendarep-api/pkg/config"
	"github.com/jhoicas/agendarep-api/pkg/logger"
	"github.com/jhoicas/agendarep-api/pkg/password"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("reporting_chain", cfg.Access.EnforceReportingChain).
		Bool("scope_writes", cfg.Access.ScopeWrites).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)

	scopes := usecase.NewScopeResolver(userRepo, usecase.AccessPolicy{
		EnforceReportingChain: cfg.Access.EnforceReportingChain,
		ScopeWrites:           cfg.Access.ScopeWrites,
	})
	scheme := password.Scheme{
		UppercasePassword:     cfg.Auth.UppercasePassword,
		AcceptAlternateDigest: cfg.Auth.AcceptRawPasswordDigest,
		UpgradeToBcrypt:       cfg.Auth.UpgradeToBcrypt,
	}

	authUC := auth.NewAuthUseCase(userRepo, scheme, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	customerUC := usecase.NewCustomerUseCase(customerRepo, scopes)
	visitUC := usecase.NewVisitUseCase(visitRepo, scopes)
	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := usecase.NewReportUseCase(visitUC, infrapdf.NewMarotoAgendaGenerator())
	dashboardUC := appanalytics.NewDashboardUseCase(customerRepo, visitRepo, scopes)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: httpRouter.LocalRequestID,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: strings.Join([]string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization}, ","),
		AllowMethods: "GET,POST,PUT,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "AgendaRep API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:               authUC,
		CustomerUC:           customerUC,
		VisitUC:              visitUC,
		UserUC:               userUC,
		ReportUC:             reportUC,
		DashboardUC:          dashboardUC,
		Log:                  log,
		JWTSecret:            cfg.JWT.Secret,
		ExposeInternalErrors: cfg.HTTP.ExposeInternalErrors,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
