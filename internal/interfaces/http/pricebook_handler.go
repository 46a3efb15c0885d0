package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
)

// PricebookHandler maneja el catálogo de servicios/materiales/mano de obra.
type PricebookHandler struct {
	uc *usecase.PricebookUseCase
}

// NewPricebookHandler construye el handler.
func NewPricebookHandler(uc *usecase.PricebookUseCase) *PricebookHandler {
	return &PricebookHandler{uc: uc}
}

// Create POST /api/pricebook
func (h *PricebookHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.CreatePricebookItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(tenantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, price >= 0 y type (service|material|labor) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List GET /api/pricebook?type=service&category=HVAC&limit=50&offset=0
func (h *PricebookHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(tenantID, c.Query("type"), c.Query("category"), dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Update PUT /api/pricebook/:id
func (h *PricebookHandler) Update(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.UpdatePricebookItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(tenantID, c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "valores inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}

// Delete DELETE /api/pricebook/:id — las facturas ya emitidas conservan su precio copiado.
func (h *PricebookHandler) Delete(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if err := h.uc.Delete(tenantID, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
