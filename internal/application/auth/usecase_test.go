package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fieldops-pro/internal/application/auth"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
	pkgjwt "github.com/tu-usuario/fieldops-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byEmail map[string]*entity.User
	created *entity.User
}

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	m := &memUserRepo{byEmail: map[string]*entity.User{}}
	for _, u := range users {
		m.byEmail[u.Email] = u
	}
	return m
}

func (m *memUserRepo) Create(u *entity.User) error {
	m.created = u
	m.byEmail[u.Email] = u
	return nil
}
func (m *memUserRepo) GetByID(string) (*entity.User, error) { return nil, nil }
func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	return m.byEmail[email], nil
}
func (m *memUserRepo) GetByEmailAndTenant(email, _ string) (*entity.User, error) {
	return m.byEmail[email], nil
}
func (m *memUserRepo) ListByTenantAndRole(_, _ string) ([]*entity.User, error) {
	return nil, nil
}
func (m *memUserRepo) Update(*entity.User) error { return nil }

type memTenantRepo struct {
	byID    map[string]*entity.Tenant
	created *entity.Tenant
}

func newMemTenantRepo(tenants ...*entity.Tenant) *memTenantRepo {
	m := &memTenantRepo{byID: map[string]*entity.Tenant{}}
	for _, t := range tenants {
		m.byID[t.ID] = t
	}
	return m
}

func (m *memTenantRepo) Create(t *entity.Tenant) error {
	m.created = t
	m.byID[t.ID] = t
	return nil
}
func (m *memTenantRepo) GetByID(id string) (*entity.Tenant, error) {
	return m.byID[id], nil
}
func (m *memTenantRepo) UpdateSubscriptionStatus(_, _ string) error { return nil }
func (m *memTenantRepo) Delete(string) error                        { return nil }

// directRegisterRunner ejecuta el alta sin transacción real.
type directRegisterRunner struct {
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
}

func (r *directRegisterRunner) RunRegister(_ context.Context, fn func(
	repository.TenantRepository,
	repository.UserRepository,
) error) error {
	return fn(r.tenantRepo, r.userRepo)
}

var testJWT = auth.JWTConfig{Secret: "secreto-de-tests", ExpMinutes: 60, Issuer: "fieldops-pro-test"}

func buildAuthUseCase(userRepo *memUserRepo, tenantRepo *memTenantRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		&directRegisterRunner{tenantRepo: tenantRepo, userRepo: userRepo},
		userRepo,
		tenantRepo,
		testJWT,
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaTenantTrialYAdminConToken(t *testing.T) {
	userRepo := newMemUserRepo()
	tenantRepo := newMemTenantRepo()
	uc := buildAuthUseCase(userRepo, tenantRepo)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		TenantName: "Acme Field Services",
		Email:      "owner@acme.co",
		Password:   "hunter2-pero-larga",
		Name:       "Dana",
	})
	require.NoError(t, err)

	require.NotNil(t, tenantRepo.created)
	assert.Equal(t, entity.SubscriptionTrial, tenantRepo.created.SubscriptionStatus,
		"todo tenant nuevo nace en trial")
	require.NotNil(t, userRepo.created)
	assert.Equal(t, entity.RoleAdmin, userRepo.created.Role)
	assert.NotEqual(t, "hunter2-pero-larga", userRepo.created.PasswordHash,
		"la password nunca se persiste en claro")

	// El token emitido lleva los claims del usuario recién creado.
	userID, tenantID, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, userRepo.created.ID, userID)
	assert.Equal(t, tenantRepo.created.ID, tenantID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegister_EmailYaRegistrado_RetornaErrEmailAlreadyExists(t *testing.T) {
	userRepo := newMemUserRepo(&entity.User{ID: "u-1", Email: "owner@acme.co"})
	uc := buildAuthUseCase(userRepo, newMemTenantRepo())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		TenantName: "Acme", Email: "owner@acme.co", Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc := buildAuthUseCase(newMemUserRepo(), newMemTenantRepo())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin tenant_name debe fallar")
}

func loginFixtures(t *testing.T, password, status string) (*memUserRepo, *memTenantRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	tenant := &entity.Tenant{ID: "tenant-1", Name: "Acme", SubscriptionStatus: entity.SubscriptionActive}
	user := &entity.User{
		ID: "u-1", TenantID: "tenant-1", Email: "owner@acme.co",
		PasswordHash: string(hash), Name: "Dana", Role: entity.RoleAdmin, Status: status,
	}
	return newMemUserRepo(user), newMemTenantRepo(tenant)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	userRepo, tenantRepo := loginFixtures(t, "correcthorse", "active")
	uc := buildAuthUseCase(userRepo, tenantRepo)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "owner@acme.co", Password: "correcthorse"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Dana", resp.User.Name)
	assert.Equal(t, "Acme", resp.Tenant.Name)
}

func TestLogin_PasswordIncorrecta_RetornaErrUnauthorized(t *testing.T) {
	userRepo, tenantRepo := loginFixtures(t, "correcthorse", "active")
	uc := buildAuthUseCase(userRepo, tenantRepo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "owner@acme.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_RetornaErrUserNotFound(t *testing.T) {
	uc := buildAuthUseCase(newMemUserRepo(), newMemTenantRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@acme.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo_RetornaErrForbidden(t *testing.T) {
	userRepo, tenantRepo := loginFixtures(t, "correcthorse", "suspended")
	uc := buildAuthUseCase(userRepo, tenantRepo)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "owner@acme.co", Password: "correcthorse"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestQuickAccess_ProvisionaTenantDemoDesechable(t *testing.T) {
	userRepo := newMemUserRepo()
	tenantRepo := newMemTenantRepo()
	uc := buildAuthUseCase(userRepo, tenantRepo)

	resp, err := uc.QuickAccess(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Contains(t, resp.Tenant.Name, "Demo ")
	assert.Contains(t, resp.User.Email, "@fieldops.local")
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
}
