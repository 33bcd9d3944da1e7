package main

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Girofle-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// ── mountSwagger ──────────────────────────────────────────────────────────────

// Sin spec en disco la API debe arrancar igual: el middleware de swagger hace
// panic con archivo inexistente, así que no se monta y /docs queda deshabilitado.
func TestMountSwagger_SinSpecEnDiscoNoMonta(t *testing.T) {
	app := fiber.New()

	require.NotPanics(t, func() {
		mountSwagger(app, testLogger(), filepath.Join(t.TempDir(), "swagger.json"))
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// El spec generado viaja en el repo: con él presente la UI se sirve en /docs.
func TestMountSwagger_ConSpecEnDiscoSirveLaUI(t *testing.T) {
	app := fiber.New()

	require.NotPanics(t, func() {
		mountSwagger(app, testLogger(), filepath.Join("..", "..", "docs", "swagger.json"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
