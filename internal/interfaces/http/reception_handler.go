package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Girofle-api/internal/application/dto"
	"github.com/jhoicas/Girofle-api/internal/application/reception"
	"github.com/jhoicas/Girofle-api/internal/domain"
	"github.com/jhoicas/Girofle-api/internal/domain/entity"
)

// ReceptionHandler maneja las recepciones de materia prima (protegido).
type ReceptionHandler struct {
	uc  *reception.ReceptionUseCase
	pdf reception.ReceiptGenerator
}

// NewReceptionHandler construye el handler.
func NewReceptionHandler(uc *reception.ReceptionUseCase, pdf reception.ReceiptGenerator) *ReceptionHandler {
	return &ReceptionHandler{uc: uc, pdf: pdf}
}

// Create godoc
// @Summary      Registrar una recepción
// @Tags         receptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceptionRequest  true  "Datos de la recepción"
// @Success      201   {object}  dto.ReceptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receptions [post]
func (h *ReceptionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateReception(c.Context(), in)
	if err != nil {
		// El mensaje del 409 nombra id_fiscale: los clientes clasifican el
		// conflicto por el texto del error.
		if errors.Is(err, domain.ErrIDFiscaleExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ID_FISCALE_EXISTS", Message: "id_fiscale ya registrado (duplicate)"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener recepción por ID
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.ReceptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id} [get]
func (h *ReceptionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recepción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recepciones
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Param        type    query  string  false  "Filtro por tipo (FG, GG, CG)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.ReceptionListResponse
// @Router       /api/receptions [get]
func (h *ReceptionHandler) List(c *fiber.Ctx) error {
	typ := c.Query("type")
	if typ != "" && !entity.ValidReceptionType(typ) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser FG, GG o CG"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.uc.List(typ, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListIDFiscales godoc
// @Summary      Listar los id_fiscale registrados (para la detección de duplicados)
// @Tags         receptions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/receptions/id-fiscales [get]
func (h *ReceptionHandler) ListIDFiscales(c *fiber.Ctx) error {
	ids, err := h.uc.ListIDFiscales()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(ids)
}

// Recu godoc
// @Summary      Descargar el bon de réception en PDF
// @Tags         receptions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receptions/{id}/recu [get]
func (h *ReceptionHandler) Recu(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	rec, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recepción no encontrada"})
	}
	pdfBytes, err := h.pdf.GenerateRecu(c.Context(), rec)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recu-`+rec.ID+`.pdf"`)
	return c.Send(pdfBytes)
}
