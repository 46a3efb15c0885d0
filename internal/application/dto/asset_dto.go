package dto

import "time"

// CreateAssetRequest entrada para registrar un equipo instalado en un cliente.
type CreateAssetRequest struct {
	CustomerID  string    `json:"customer_id" validate:"required,uuid"`
	Type        string    `json:"type" validate:"required,max=100"`
	Make        string    `json:"make" validate:"omitempty,max=100"`
	Model       string    `json:"model" validate:"omitempty,max=100"`
	Serial      string    `json:"serial" validate:"omitempty,max=100"`
	InstallDate time.Time `json:"install_date"`
}

// AssetResponse salida de un equipo.
type AssetResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Type        string    `json:"type"`
	Make        string    `json:"make,omitempty"`
	Model       string    `json:"model,omitempty"`
	Serial      string    `json:"serial,omitempty"`
	InstallDate time.Time `json:"install_date"`
}
