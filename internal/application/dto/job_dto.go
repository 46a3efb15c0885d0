package dto

import "time"

// CreateJobRequest entrada para crear un trabajo. Status siempre nace en Draft.
type CreateJobRequest struct {
	CustomerID     string    `json:"customer_id" validate:"required,uuid"`
	TechnicianID   string    `json:"technician_id" validate:"omitempty,uuid"`
	ScheduledStart time.Time `json:"scheduled_start" validate:"required"`
	Description    string    `json:"description" validate:"omitempty,max=2000"`
}

// UpdateJobRequest entrada para PUT /api/jobs/:id (reemplazo de campos mutables).
type UpdateJobRequest struct {
	TechnicianID   string    `json:"technician_id" validate:"omitempty,uuid"`
	Status         string    `json:"status" validate:"omitempty,oneof=Draft Scheduled EnRoute Working Done"`
	ScheduledStart time.Time `json:"scheduled_start"`
	Description    string    `json:"description" validate:"omitempty,max=2000"`
}

// UpdateJobStatusRequest entrada para PATCH /api/jobs/:id/status (tablero Kanban).
// Cualquier estado puede seguir a cualquier otro; solo se valida que sea uno de los cinco.
type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Draft Scheduled EnRoute Working Done"`
}

// JobResponse salida de un trabajo con el cliente anidado.
// Es también el payload del evento realtime job_update.
type JobResponse struct {
	ID             string            `json:"id"`
	TenantID       string            `json:"tenant_id"`
	CustomerID     string            `json:"customer_id"`
	TechnicianID   string            `json:"technician_id,omitempty"`
	Status         string            `json:"status"`
	ScheduledStart time.Time         `json:"scheduled_start"`
	Description    string            `json:"description,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Customer       *CustomerResponse `json:"customer,omitempty"`
}
