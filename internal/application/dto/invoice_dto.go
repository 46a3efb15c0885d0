package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura vacía en Draft.
type CreateInvoiceRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// GenerateInvoiceRequest entrada para POST /api/invoices/generate.
// El precio unitario de cada línea se consulta en vivo del pricebook.
// Items vacío ⇒ línea única "Service Call" al precio fijo por defecto.
type GenerateInvoiceRequest struct {
	JobID string                `json:"job_id" validate:"required,uuid"`
	Items []GenerateInvoiceItem `json:"items" validate:"dive"`
}

// GenerateInvoiceItem referencia a un ítem del pricebook con cantidad.
type GenerateInvoiceItem struct {
	PricebookItemID string          `json:"pricebook_item_id" validate:"required,uuid"`
	Quantity        decimal.Decimal `json:"quantity" validate:"required"`
}

// InvoiceItemResponse línea de factura en respuestas.
type InvoiceItemResponse struct {
	ID              string          `json:"id"`
	PricebookItemID string          `json:"pricebook_item_id,omitempty"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Total           decimal.Decimal `json:"total"`
}

// InvoiceResponse salida de una factura con sus líneas ordenadas.
type InvoiceResponse struct {
	ID        string                `json:"id"`
	TenantID  string                `json:"tenant_id"`
	JobID     string                `json:"job_id"`
	Amount    decimal.Decimal       `json:"amount"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	Items     []InvoiceItemResponse `json:"items"`
}

// PaymentLinkRequest entrada para POST /api/invoices/stripe|paypal.
type PaymentLinkRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required,uuid"`
}

// PaymentLinkResponse link de pago creado en la pasarela.
// Provider es "stripe" o "paypal"; Mocked indica que no hay API key configurada
// y el link es simulado (conveniencia de desarrollo local).
type PaymentLinkResponse struct {
	InvoiceID string `json:"invoice_id"`
	Provider  string `json:"provider"`
	URL       string `json:"url"`
	Mocked    bool   `json:"mocked,omitempty"`
}
