package entity

import "time"

// Asset equipo instalado en el domicilio de un cliente (historial de equipos).
type Asset struct {
	ID          string
	TenantID    string
	CustomerID  string
	Type        string // furnace, ac_unit, water_heater...
	Make        string
	Model       string
	Serial      string
	InstallDate time.Time
	CreatedAt   time.Time
}
