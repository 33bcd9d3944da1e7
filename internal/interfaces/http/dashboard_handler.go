package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Girofle-api/internal/application/analytics"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
)

// DashboardHandler maneja el resumen del tablero (solo admin).
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetResume devuelve el resumen del mes en curso.
// GET /api/dashboard/resume
//
// Respuesta: ResumeDTO (poids_net por tipo, montant_collectes, montant_ventes,
// expeditions_en_cours). No requiere parámetros; el rango de fechas se calcula
// en el servidor.
func (h *DashboardHandler) GetResume(c *fiber.Ctx) error {
	resume, err := h.uc.GetResume(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(resume)
}
