package ports

import "github.com/tu-usuario/fieldops-pro/internal/application/dto"

// JobEventPublisher publica mutaciones de trabajos al canal realtime.
//
// El broadcast está acotado al room del tenant: un cliente conectado de otro
// tenant nunca recibe el evento. Entrega fire-and-forget, sin ack ni orden
// garantizado; el cliente reconcilia por id (upsert).
type JobEventPublisher interface {
	PublishJobUpdate(tenantID string, job *dto.JobResponse)
}

// NopJobEventPublisher descarta eventos (tests y herramientas CLI).
type NopJobEventPublisher struct{}

// PublishJobUpdate no hace nada.
func (NopJobEventPublisher) PublishJobUpdate(string, *dto.JobResponse) {}
