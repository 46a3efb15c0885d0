package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente.
// lat/lng no se aceptan del cliente: se asignan con el geocoder (simulado).
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address" validate:"required,min=1,max=300"`
	Phone   string `json:"phone" validate:"required,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdateCustomerRequest entrada para editar un cliente. Solo los campos
// presentes se modifican; un cambio de address re-geocodifica lat/lng.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address" validate:"omitempty,min=1,max=300"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
