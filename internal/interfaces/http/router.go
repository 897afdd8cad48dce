package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/agendarep-api/internal/application/analytics"
	"github.com/jhoicas/agendarep-api/internal/application/auth"
	"github.com/jhoicas/agendarep-api/internal/application/usecase"
	"github.com/jhoicas/agendarep-api/internal/domain/entity"
	"github.com/jhoicas/agendarep-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *usecase.CustomerUseCase
	VisitUC     *usecase.VisitUseCase
	UserUC      *usecase.UserUseCase
	ReportUC    *usecase.ReportUseCase
	DashboardUC *appanalytics.DashboardUseCase
	Log         *logger.Logger
	JWTSecret   string
	// ExposeInternalErrors devuelve el mensaje crudo en las respuestas 500.
	ExposeInternalErrors bool
}

// Router registra las rutas de la API en la raíz (/auth, /clientes, /usuarios, /visitas, /dashboard).
func Router(app *fiber.App, deps RouterDeps) {
	ew := newErrorWriter(deps.Log, deps.ExposeInternalErrors)
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, ew)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/verificar-token", requireAuth, authHandler.VerifyToken)

	// Clientes (protegido)
	customerHandler := NewCustomerHandler(deps.CustomerUC, ew)
	clientes := app.Group("/clientes", requireAuth)
	clientes.Get("/", customerHandler.List)
	clientes.Put("/:id_cliente/grupos/:id_grupo", customerHandler.UpdatePotential)

	// Usuarios (solo gestión)
	userHandler := NewUserHandler(deps.UserUC, ew)
	usuarios := app.Group("/usuarios", requireAuth)
	usuarios.Get("/representantes", RequireRole(entity.RoleCoordenador, entity.RoleDiretor), userHandler.ListRepresentatives)

	// Visitas (protegido); las rutas fijas van antes que /:id
	visitHandler := NewVisitHandler(deps.VisitUC, deps.ReportUC, ew)
	visitas := app.Group("/visitas", requireAuth)
	visitas.Get("/clientes/representante", customerHandler.ListForScheduling)
	visitas.Get("/relatorio", visitHandler.Report)
	visitas.Get("/", visitHandler.List)
	visitas.Post("/", visitHandler.Create)
	visitas.Put("/:id/confirmar", visitHandler.Confirm)
	visitas.Put("/:id/observacao", visitHandler.UpdateNote)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, ew)
	app.Group("/dashboard", requireAuth).Get("/resumo", dashboardHandler.GetSummary)
}
