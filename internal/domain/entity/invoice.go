package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft = "Draft"
	InvoiceStatusPaid  = "Paid"
	InvoiceStatusVoid  = "Void"
)

// Invoice representa la cabecera de una factura de un trabajo.
type Invoice struct {
	ID        string
	TenantID  string
	JobID     string
	Amount    decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Items ordenados por Position cuando el repositorio los carga.
	Items []*InvoiceItem
}

// InvoiceItem línea de factura. Total = UnitPrice × Quantity.
// PricebookItemID queda vacío para la línea por defecto "Service Call".
type InvoiceItem struct {
	ID              string
	InvoiceID       string
	PricebookItemID string
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	Total           decimal.Decimal
	Position        int
}
