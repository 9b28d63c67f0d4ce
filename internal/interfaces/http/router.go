package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/staff"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProfileUC     *usecase.ProfileUseCase
	GroupUC       *usecase.GroupUseCase
	Provisioner   *staff.ProvisioningOrchestrator
	Deprovisioner *staff.DeprovisioningOrchestrator
	JWTSecret     string
	Production    bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Métricas Prometheus (público)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Staff: ciclo de vida (solo admin y rrhh) y consultas
	staffGroup := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.Provisioner, deps.Deprovisioner, deps.Production)
	staffGroup.Post("/provision", RequireRole("admin", "rrhh"), staffHandler.Provision)
	staffGroup.Post("/deprovision", RequireRole("admin", "rrhh"), staffHandler.Deprovision)

	profileHandler := NewProfileHandler(deps.ProfileUC)
	staffGroup.Get("/profiles", profileHandler.List)
	staffGroup.Get("/profiles/:id", profileHandler.GetByID)

	// Grupos de asignación (picker)
	groups := protected.Group("/groups")
	groupHandler := NewGroupHandler(deps.GroupUC)
	groups.Get("/", groupHandler.List)
}
