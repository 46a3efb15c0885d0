package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePricebookItemRequest entrada para crear un ítem del pricebook.
type CreatePricebookItemRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Type     string          `json:"type" validate:"required,oneof=service material labor"`
	Category string          `json:"category" validate:"omitempty,max=100"`
}

// UpdatePricebookItemRequest entrada para actualizar un ítem.
type UpdatePricebookItemRequest struct {
	Name     string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price    decimal.Decimal `json:"price"`
	Type     string          `json:"type" validate:"omitempty,oneof=service material labor"`
	Category string          `json:"category" validate:"omitempty,max=100"`
}

// PricebookItemResponse salida de un ítem del pricebook.
type PricebookItemResponse struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Type      string          `json:"type"`
	Category  string          `json:"category,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// MarketRateDTO fila de la tarjeta pública de precios de mercado.
type MarketRateDTO struct {
	Category string          `json:"category"`
	Low      decimal.Decimal `json:"low"`
	Typical  decimal.Decimal `json:"typical"`
	High     decimal.Decimal `json:"high"`
}

// UpsellSuggestionDTO sugerencia pública de venta adicional por categoría.
type UpsellSuggestionDTO struct {
	Category   string          `json:"category"`
	Name       string          `json:"name"`
	Pitch      string          `json:"pitch"`
	FromPrice  decimal.Decimal `json:"from_price"`
}
