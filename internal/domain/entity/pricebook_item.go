package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ítem del pricebook.
const (
	PricebookTypeService  = "service"
	PricebookTypeMaterial = "material"
	PricebookTypeLabor    = "labor"
)

// PricebookItem catálogo de servicios/materiales/mano de obra con precio fijo.
// El precio se consulta en vivo al generar la factura (no se congela antes).
type PricebookItem struct {
	ID        string
	TenantID  string
	Name      string
	Price     decimal.Decimal
	Type      string // service, material, labor
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
