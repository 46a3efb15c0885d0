package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleDispatcher = "dispatcher"
	RoleTechnician = "technician"
)

// User representa un usuario del sistema (pertenece a un Tenant).
// Un usuario con rol technician es candidato de despacho.
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, dispatcher, technician
	Skills       string // lista separada por comas, ej: "HVAC,Plumbing" (opcional)
	PayoutEmail  string // email de pago del técnico (opcional)
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SkillList devuelve los skills como slice (vacío si no hay, nunca nil).
func (u *User) SkillList() []string {
	out := []string{}
	for _, s := range strings.Split(u.Skills, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
