package dto

import "time"

// RegisterRequest entrada para registro: crea el Tenant y su usuario admin en una transacción.
type RegisterRequest struct {
	TenantName string `json:"tenant_name" validate:"required,min=1,max=200"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Skills      []string  `json:"skills"`
	PayoutEmail string    `json:"payout_email,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthResponse salida de register/login/quick-access: token JWT + usuario + tenant.
type AuthResponse struct {
	Token  string         `json:"token"`
	User   UserResponse   `json:"user"`
	Tenant TenantResponse `json:"tenant"`
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	SubscriptionStatus string `json:"subscription_status"`
}

// CreateUserRequest entrada para que un admin cree usuarios adicionales (técnicos).
type CreateUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Role        string `json:"role" validate:"required,oneof=admin dispatcher technician"`
	Skills      string `json:"skills" validate:"omitempty,max=500"`
	PayoutEmail string `json:"payout_email" validate:"omitempty,email"`
}
