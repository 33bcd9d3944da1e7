package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/Girofle-api/internal/application/analytics"
	"github.com/jhoicas/Girofle-api/internal/application/auth"
	"github.com/jhoicas/Girofle-api/internal/application/reception"
	"github.com/jhoicas/Girofle-api/internal/application/usecase"
	"github.com/jhoicas/Girofle-api/internal/domain/repository"
	"github.com/jhoicas/Girofle-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Girofle-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Girofle-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Girofle-api/internal/interfaces/http"
	"github.com/jhoicas/Girofle-api/pkg/config"
	"github.com/jhoicas/Girofle-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		userRepo       repository.UserRepository
		receptionRepo  repository.ReceptionRepository
		collecteRepo   repository.CollecteRepository
		expeditionRepo repository.ExpeditionRepository
		venteRepo      repository.VenteRepository
		statsRepo      repository.StatsRepository
		txRunner       usecase.TxRunner
	)

	if cfg.DB.InMemory() {
		// Sin base de datos configurada: repositorios en memoria (desarrollo).
		log.Warn().Msg("sin DATABASE_URL ni DB_HOST: arrancando en modo memoria")
		memUsers := memory.NewUserRepository()
		memReceptions := memory.NewReceptionRepository()
		memCollectes := memory.NewCollecteRepository()
		memExpeditions := memory.NewExpeditionRepository()
		memVentes := memory.NewVenteRepository()
		if cfg.Seed.OnStart {
			if err := memUsers.Seed(cfg.Seed.AdminPassword); err != nil {
				log.Fatal().Err(err).Msg("sembrar directorio de cuentas")
			}
			log.Info().Msg("directorio de cuentas inicial sembrado")
		}
		userRepo = memUsers
		receptionRepo = memReceptions
		collecteRepo = memCollectes
		expeditionRepo = memExpeditions
		venteRepo = memVentes
		statsRepo = memory.NewStatsRepository(memReceptions, memCollectes, memVentes, memExpeditions)
		txRunner = memory.NewTxRunner(memReceptions, memCollectes, memExpeditions, memUsers)
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		userRepo = postgres.NewUserRepository(pool)
		receptionRepo = postgres.NewReceptionRepository(pool)
		collecteRepo = postgres.NewCollecteRepository(pool)
		expeditionRepo = postgres.NewExpeditionRepository(pool)
		venteRepo = postgres.NewVenteRepository(pool)
		statsRepo = postgres.NewStatsRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	receptionUC := reception.NewReceptionUseCase(receptionRepo)
	collecteUC := usecase.NewCollecteUseCase(txRunner, collecteRepo)
	expeditionUC := usecase.NewExpeditionUseCase(txRunner, expeditionRepo)
	venteUC := usecase.NewVenteUseCase(venteRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(statsRepo)

	// PDF: bon de réception descargable por recepción
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ReceptionUC:  receptionUC,
		ReceiptPDF:   pdfGenerator,
		CollecteUC:   collecteUC,
		ExpeditionUC: expeditionUC,
		VenteUC:      venteUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
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

// mountSwagger publica la UI de Swagger en /docs a partir del spec generado.
// El middleware de gofiber/contrib/swagger hace panic si el archivo no existe,
// así que solo se monta cuando el spec está en disco; si falta, se avisa y la
// API sigue arrancando sin documentación.
func mountSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("spec de swagger no encontrado, /docs deshabilitado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Girofle API",
	}))
}
