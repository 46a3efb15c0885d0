package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
)

// MarketUseCase tarjeta pública de precios de mercado y sugerencias de upsell.
// Los datos son una tabla estática de referencia (no consultan tenants): estos
// endpoints son públicos y alimentan la landing del producto.
type MarketUseCase struct{}

// NewMarketUseCase construye el caso de uso.
func NewMarketUseCase() *MarketUseCase { return &MarketUseCase{} }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var marketRates = []dto.MarketRateDTO{
	{Category: "HVAC", Low: d("89.00"), Typical: d("149.00"), High: d("320.00")},
	{Category: "Plumbing", Low: d("75.00"), Typical: d("125.00"), High: d("280.00")},
	{Category: "Electrical", Low: d("95.00"), Typical: d("160.00"), High: d("350.00")},
	{Category: "Appliance", Low: d("65.00"), Typical: d("110.00"), High: d("240.00")},
}

var upsellSuggestions = []dto.UpsellSuggestionDTO{
	{Category: "HVAC", Name: "Filtro de alta eficiencia", Pitch: "Mejora la calidad del aire y alarga la vida del equipo.", FromPrice: d("39.00")},
	{Category: "HVAC", Name: "Plan de mantenimiento anual", Pitch: "Dos visitas preventivas al año con prioridad de agenda.", FromPrice: d("189.00")},
	{Category: "Plumbing", Name: "Inspección de cámara de drenaje", Pitch: "Detecta raíces y obstrucciones antes de que revienten.", FromPrice: d("99.00")},
	{Category: "Electrical", Name: "Protector de sobretensión integral", Pitch: "Protege todos los electrodomésticos desde el panel.", FromPrice: d("249.00")},
	{Category: "Appliance", Name: "Garantía extendida a 2 años", Pitch: "Cubre repuestos y mano de obra de la reparación.", FromPrice: d("59.00")},
}

// MarketRates devuelve la tarjeta de precios por categoría.
func (uc *MarketUseCase) MarketRates() []dto.MarketRateDTO {
	return marketRates
}

// UpsellSuggestions devuelve las sugerencias, filtradas por categoría si se indica.
func (uc *MarketUseCase) UpsellSuggestions(category string) []dto.UpsellSuggestionDTO {
	if category == "" {
		return upsellSuggestions
	}
	out := []dto.UpsellSuggestionDTO{}
	for _, s := range upsellSuggestions {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
