package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
)

// SearchHandler maneja la búsqueda global (clientes, trabajos, pricebook).
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search GET /api/search?q=… — resultados agrupados, máx 10 por grupo.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q es requerido"})
	}
	resp, err := h.uc.Search(tenantID, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
