package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dispatch"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
)

// DispatchHandler maneja el recomendador de técnicos y su listado.
type DispatchHandler struct {
	uc     *dispatch.RecommendUseCase
	userUC *usecase.UserUseCase
}

// NewDispatchHandler construye el handler.
func NewDispatchHandler(uc *dispatch.RecommendUseCase, userUC *usecase.UserUseCase) *DispatchHandler {
	return &DispatchHandler{uc: uc, userUC: userUC}
}

// Recommend GET /api/dispatch/recommend?jobId=…&customerId=…
// Ordena los técnicos del tenant por distancia Haversine ascendente al objetivo.
func (h *DispatchHandler) Recommend(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	jobID := c.Query("jobId", c.Query("job_id"))
	customerID := c.Query("customerId", c.Query("customer_id"))

	resp, err := h.uc.Recommend(tenantID, jobID, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere job_id o customer_id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Technicians GET /api/dispatch/technicians — técnicos del tenant con su posición simulada.
func (h *DispatchHandler) Technicians(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	list, err := h.uc.Technicians(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListTechnicians GET /api/users/technicians — listado plano para asignación.
func (h *DispatchHandler) ListTechnicians(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	list, err := h.userUC.ListTechnicians(tenantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
