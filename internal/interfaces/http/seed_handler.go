package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
)

// SeedHandler maneja los datos de demostración del tenant (solo admin).
type SeedHandler struct {
	uc *usecase.SeedUseCase
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *usecase.SeedUseCase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Seed POST /api/seed — puebla técnicos, clientes, pricebook, trabajos y equipos demo.
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	summary, err := h.uc.Seed(c.UserContext(), tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(summary)
}

// Reset DELETE /api/seed — borra los datos de negocio del tenant (cascada por cliente + pricebook).
func (h *SeedHandler) Reset(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if err := h.uc.Reset(c.UserContext(), tenantID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
