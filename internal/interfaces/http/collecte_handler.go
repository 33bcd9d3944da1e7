package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/application/usecase"
	"github.com/jhoicas/Girofle-api/internal/domain"
)

// CollecteHandler maneja las compras de materia prima en terreno (protegido).
type CollecteHandler struct {
	uc *usecase.CollecteUseCase
}

// NewCollecteHandler construye el handler.
func NewCollecteHandler(uc *usecase.CollecteUseCase) *CollecteHandler {
	return &CollecteHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar una collecte
// @Tags         collectes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCollecteRequest  true  "Datos de la collecte"
// @Success      201   {object}  dto.CollecteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/collectes [post]
func (h *CollecteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCollecteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// La collecte se acredita al collecteur en sesión; no se acepta otro del body.
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo un collecteur puede registrar collectes"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener collecte por ID
// @Tags         collectes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la collecte"
// @Success      200  {object}  dto.CollecteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/collectes/{id} [get]
func (h *CollecteHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "collecte no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar collectes
// @Tags         collectes
// @Security     Bearer
// @Produce      json
// @Param        collecteur_id  query  string  false  "Filtro por collecteur"
// @Param        limit          query  int     false  "Límite"   default(20)
// @Param        offset         query  int     false  "Offset"   default(0)
// @Success      200            {object}  dto.CollecteListResponse
// @Router       /api/collectes [get]
func (h *CollecteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("collecteur_id"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
