package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
	"github.com/tu-usuario/fieldops-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegisterTxRunner ejecuta el alta de tenant + usuario admin en una transacción.
type RegisterTxRunner interface {
	RunRegister(ctx context.Context, fn func(
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login y acceso demo.
type AuthUseCase struct {
	txRunner   RegisterTxRunner
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(txRunner RegisterTxRunner, userRepo repository.UserRepository, tenantRepo repository.TenantRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, userRepo: userRepo, tenantRepo: tenantRepo, jwtCfg: jwtCfg}
}

// Register crea el Tenant (suscripción trial) y su usuario admin en una sola
// transacción, y devuelve el token JWT listo para usar.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.TenantName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	tenant := &entity.Tenant{
		ID:                 uuid.New().String(),
		Name:               in.TenantName,
		SubscriptionStatus: entity.SubscriptionTrial,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunRegister(ctx, func(tenantRepo repository.TenantRepository, userRepo repository.UserRepository) error {
		if err := tenantRepo.Create(tenant); err != nil {
			return err
		}
		return userRepo.Create(user)
	})
	if err != nil {
		return nil, err
	}

	return uc.buildAuthResponse(user, tenant)
}

// Login verifica email/password, genera JWT y retorna token + usuario + tenant.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	tenant, err := uc.tenantRepo.GetByID(user.TenantID)
	if err != nil || tenant == nil {
		return nil, domain.ErrNotFound
	}
	return uc.buildAuthResponse(user, tenant)
}

// QuickAccess aprovisiona un tenant de demostración con un admin desechable y
// devuelve el token de inmediato. La siembra de datos demo ocurre en la capa
// HTTP, que compone este caso de uso con el de seed.
func (uc *AuthUseCase) QuickAccess(ctx context.Context) (*dto.AuthResponse, error) {
	short := uuid.New().String()[:8]
	in := dto.RegisterRequest{
		TenantName: "Demo " + short,
		Email:      fmt.Sprintf("demo-%s@fieldops.local", short),
		Password:   uuid.New().String(),
		Name:       "Demo Admin",
	}
	return uc.Register(ctx, in)
}

func (uc *AuthUseCase) buildAuthResponse(user *entity.User, tenant *entity.Tenant) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User:  *ToUserResponse(user),
		Tenant: dto.TenantResponse{
			ID:                 tenant.ID,
			Name:               tenant.Name,
			SubscriptionStatus: tenant.SubscriptionStatus,
		},
	}, nil
}

// ToUserResponse mapea la entidad a su DTO (sin password hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
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
