package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/Girofle-api/internal/application/analytics"
	"github.com/jhoicas/Girofle-api/internal/application/auth"
	"github.com/jhoicas/Girofle-api/internal/application/reception"
	"github.com/jhoicas/Girofle-api/internal/application/usecase"
	"github.com/jhoicas/Girofle-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ReceptionUC  *reception.ReceptionUseCase
	ReceiptPDF   reception.ReceiptGenerator
	CollecteUC   *usecase.CollecteUseCase
	ExpeditionUC *usecase.ExpeditionUseCase
	VenteUC      *usecase.VenteUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Cada grupo protegido queda ligado a una
// página de la aplicación vía RequirePage: la misma tabla rol → páginas decide
// la navegación del cliente y la autorización del servidor.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/navigation", authHandler.Navigation)

	// Dashboard (página /dashboard, solo admin)
	dashboard := protected.Group("/dashboard", RequirePage(access.PageDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/resume", dashboardHandler.GetResume)

	// Collectes (página /collecte)
	collectes := protected.Group("/collectes", RequirePage(access.PageCollecte))
	collecteHandler := NewCollecteHandler(deps.CollecteUC)
	collectes.Post("/", collecteHandler.Create)
	collectes.Get("/", collecteHandler.List)
	collectes.Get("/:id", collecteHandler.GetByID)

	// Réceptions (página /reception)
	receptions := protected.Group("/receptions", RequirePage(access.PageReception))
	receptionHandler := NewReceptionHandler(deps.ReceptionUC, deps.ReceiptPDF)
	receptions.Post("/", receptionHandler.Create)
	receptions.Get("/", receptionHandler.List)
	receptions.Get("/id-fiscales", receptionHandler.ListIDFiscales)
	receptions.Get("/:id", receptionHandler.GetByID)
	receptions.Get("/:id/recu", receptionHandler.Recu)

	// Expéditions (página /expedition)
	expeditions := protected.Group("/expeditions", RequirePage(access.PageExpedition))
	expeditionHandler := NewExpeditionHandler(deps.ExpeditionUC)
	expeditions.Post("/", expeditionHandler.Create)
	expeditions.Get("/", expeditionHandler.List)
	expeditions.Get("/:id", expeditionHandler.GetByID)
	expeditions.Patch("/:id/livree", expeditionHandler.MarkLivree)

	// Ventes (página /ventes)
	ventes := protected.Group("/ventes", RequirePage(access.PageVentes))
	venteHandler := NewVenteHandler(deps.VenteUC)
	ventes.Post("/", venteHandler.Create)
	ventes.Get("/", venteHandler.List)
	ventes.Get("/:id", venteHandler.GetByID)

	// Comptes (página /comptes, solo admin)
	comptes := protected.Group("/comptes", RequirePage(access.PageComptes))
	comptes.Post("/", authHandler.CreateAccount)
	comptes.Get("/", authHandler.ListUsers)
	comptes.Post("/verify-admin", authHandler.VerifyAdmin)
}
