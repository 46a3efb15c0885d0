package entity

import "time"

// Estados de un trabajo. Las transiciones NO están restringidas: cualquier
// estado puede seguir a cualquier otro (el tablero Kanban mueve tarjetas
// libremente), así que no existe máquina de estados.
const (
	JobStatusDraft     = "Draft"
	JobStatusScheduled = "Scheduled"
	JobStatusEnRoute   = "EnRoute"
	JobStatusWorking   = "Working"
	JobStatusDone      = "Done"
)

// ValidJobStatus informa si s es uno de los cinco estados del tablero.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusDraft, JobStatusScheduled, JobStatusEnRoute, JobStatusWorking, JobStatusDone:
		return true
	}
	return false
}

// Job representa una orden de trabajo de campo.
type Job struct {
	ID             string
	TenantID       string
	CustomerID     string
	TechnicianID   string // vacío = sin asignar
	Status         string
	ScheduledStart time.Time
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Customer anidado cuando el repositorio lo carga con JOIN (listados y realtime).
	Customer *Customer
}
