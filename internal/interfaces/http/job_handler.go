package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
)

// JobHandler maneja las peticiones HTTP de trabajos (tablero Kanban, protegido).
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// Create POST /api/jobs — el trabajo siempre nace en Draft.
func (h *JobHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	job, err := h.uc.Create(tenantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id y scheduled_start son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// List GET /api/jobs?limit=50&offset=0
func (h *JobHandler) List(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(tenantID, dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/jobs/:id
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	job, err := h.uc.GetByID(tenantID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(job)
}

// Update PUT /api/jobs/:id — emite job_update a la sala realtime del tenant.
func (h *JobHandler) Update(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	job, err := h.uc.Update(tenantID, c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajo no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(job)
}

// UpdateStatus PATCH /api/jobs/:id/status — drag-and-drop del tablero; sin máquina
// de estados, cualquier columna acepta la tarjeta. Emite job_update.
func (h *JobHandler) UpdateStatus(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.UpdateJobStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	job, err := h.uc.UpdateStatus(tenantID, c.Params("id"), in.Status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajo no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser Draft, Scheduled, EnRoute, Working o Done"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(job)
}

// Delete DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if err := h.uc.Delete(tenantID, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
