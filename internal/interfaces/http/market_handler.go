package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
)

// MarketHandler expone tarifas de mercado y sugerencias de upsell (público, datos estáticos).
type MarketHandler struct {
	uc *usecase.MarketUseCase
}

// NewMarketHandler construye el handler.
func NewMarketHandler(uc *usecase.MarketUseCase) *MarketHandler {
	return &MarketHandler{uc: uc}
}

// MarketRates GET /pricing/market
func (h *MarketHandler) MarketRates(c *fiber.Ctx) error {
	return c.JSON(h.uc.MarketRates())
}

// UpsellSuggestions GET /upsells/suggestions?category=HVAC
func (h *MarketHandler) UpsellSuggestions(c *fiber.Ctx) error {
	return c.JSON(h.uc.UpsellSuggestions(c.Query("category")))
}
