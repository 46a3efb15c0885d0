package entity

import "time"

// Estados de suscripción del tenant (ciclo de vida manejado por el webhook de LemonSqueezy).
const (
	SubscriptionTrial    = "trial"
	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Tenant representa una organización cliente del SaaS. Todo dato de negocio
// pertenece transitivamente a exactamente un tenant; el borrado cascadea
// Customer → Asset/Job → Invoice → InvoiceItem.
type Tenant struct {
	ID                 string
	Name               string
	SubscriptionStatus string // trial, active, past_due, canceled
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
