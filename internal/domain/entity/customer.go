package entity

import "time"

// Customer representa un cliente del tenant (destino de trabajos y facturas).
// Lat/Lng se asignan al crear con geocoding SIMULADO: jitter acotado alrededor
// del centro de ciudad configurado, no una geocodificación real.
type Customer struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Phone     string
	Email     string
	Lat       *float64
	Lng       *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
