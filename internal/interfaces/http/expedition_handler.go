package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/application/usecase"
	"github.com/jhoicas/Girofle-api/internal/domain"
)

// ExpeditionHandler maneja las expediciones de lotes recibidos (protegido).
type ExpeditionHandler struct {
	uc *usecase.ExpeditionUseCase
}

// NewExpeditionHandler construye el handler.
func NewExpeditionHandler(uc *usecase.ExpeditionUseCase) *ExpeditionHandler {
	return &ExpeditionHandler{uc: uc}
}

// Create godoc
// @Summary      Armar una expedición con recepciones existentes
// @Tags         expeditions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpeditionRequest  true  "destination, reception_ids"
// @Success      201   {object}  dto.ExpeditionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/expeditions [post]
func (h *ExpeditionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpeditionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Destination == "" || len(in.ReceptionIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "destination y reception_ids son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alguna recepción no existe"})
		}
		if errors.Is(err, domain.ErrAlreadyShipped) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SHIPPED", Message: "alguna recepción ya fue expedida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener expedición por ID
// @Tags         expeditions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la expedición"
// @Success      200  {object}  dto.ExpeditionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expeditions/{id} [get]
func (h *ExpeditionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "expedición no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar expediciones
// @Tags         expeditions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ExpeditionListResponse
// @Router       /api/expeditions [get]
func (h *ExpeditionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkLivree godoc
// @Summary      Marcar una expedición como entregada
// @Tags         expeditions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la expedición"
// @Success      200  {object}  dto.ExpeditionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/expeditions/{id}/livree [patch]
func (h *ExpeditionHandler) MarkLivree(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.MarkLivree(id)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la expedición ya fue entregada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "expedición no encontrada"})
	}
	return c.JSON(out)
}
