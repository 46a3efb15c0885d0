package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// UserUseCase gestión de usuarios del tenant (alta de técnicos/despachadores).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario dentro del tenant del token. El email debe ser único en el tenant.
func (uc *UserUseCase) Create(tenantID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleDispatcher && in.Role != entity.RoleTechnician {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmailAndTenant(in.Email, tenantID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Skills:       in.Skills,
		PayoutEmail:  in.PayoutEmail,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListTechnicians lista los técnicos del tenant.
func (uc *UserUseCase) ListTechnicians(tenantID string) ([]*dto.UserResponse, error) {
	list, err := uc.repo.ListByTenantAndRole(tenantID, entity.RoleTechnician)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Skills:      u.SkillList(),
		PayoutEmail: u.PayoutEmail,
		Status:      u.Status,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
