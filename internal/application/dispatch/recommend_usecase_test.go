package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldops-pro/internal/application/dispatch"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/geo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	techs []*entity.User
	err   error
}

func (f *fakeUserRepo) Create(*entity.User) error                       { return nil }
func (f *fakeUserRepo) GetByID(string) (*entity.User, error)            { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*entity.User, error)         { return nil, nil }
func (f *fakeUserRepo) GetByEmailAndTenant(_, _ string) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) ListByTenantAndRole(_, _ string) ([]*entity.User, error) {
	return f.techs, f.err
}
func (f *fakeUserRepo) Update(*entity.User) error { return nil }

type fakeJobRepo struct {
	job *entity.Job
}

func (f *fakeJobRepo) Create(*entity.Job) error { return nil }
func (f *fakeJobRepo) GetByTenantAndID(_, _ string) (*entity.Job, error) {
	return f.job, nil
}
func (f *fakeJobRepo) ListByTenant(string, int, int) ([]*entity.Job, error) { return nil, nil }
func (f *fakeJobRepo) ListByTenantAndCustomer(_, _ string) ([]*entity.Job, error) {
	return nil, nil
}
func (f *fakeJobRepo) SearchByTenant(_, _ string, _ int) ([]*entity.Job, error) {
	return nil, nil
}
func (f *fakeJobRepo) Update(*entity.Job) error              { return nil }
func (f *fakeJobRepo) UpdateStatus(_, _, _ string) error     { return nil }
func (f *fakeJobRepo) Delete(_, _ string) error              { return nil }
func (f *fakeJobRepo) DeleteByCustomer(_, _ string) error    { return nil }

type fakeCustomerRepo struct {
	customer *entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByTenantAndID(_, _ string) (*entity.Customer, error) {
	return f.customer, nil
}
func (f *fakeCustomerRepo) ListByTenant(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) SearchByTenant(_, _ string, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(_, _ string) error      { return nil }

// fakeLocator devuelve posiciones fijas por ID de técnico.
type fakeLocator struct {
	points map[string]geo.Point
}

func (f *fakeLocator) Locate(technicianID string) geo.Point {
	return f.points[technicianID]
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

var cityCenter = geo.Point{Lat: 39.7817, Lng: -89.6501}

func ptr(v float64) *float64 { return &v }

func tech(id, name string) *entity.User {
	return &entity.User{ID: id, Name: name, Email: name + "@fieldops.local", Role: entity.RoleTechnician}
}

func TestRecommend_OrdenaAscendentePorDistancia(t *testing.T) {
	customer := &entity.Customer{
		ID: "cust-1", Lat: ptr(39.78), Lng: ptr(-89.65),
	}
	locator := &fakeLocator{points: map[string]geo.Point{
		"t-lejos": {Lat: 40.10, Lng: -89.65},  // ~22 millas
		"t-cerca": {Lat: 39.79, Lng: -89.65},  // <1 milla
		"t-medio": {Lat: 39.90, Lng: -89.65},  // ~8 millas
	}}
	uc := dispatch.NewRecommendUseCase(
		&fakeUserRepo{techs: []*entity.User{tech("t-lejos", "lejos"), tech("t-cerca", "cerca"), tech("t-medio", "medio")}},
		&fakeJobRepo{},
		&fakeCustomerRepo{customer: customer},
		locator,
		cityCenter,
	)

	resp, err := uc.Recommend("tenant-1", "", "cust-1")
	require.NoError(t, err)
	require.Len(t, resp.Technicians, 3)

	assert.Equal(t, "t-cerca", resp.Technicians[0].ID, "el técnico más cercano debe ir primero")
	assert.Equal(t, "t-medio", resp.Technicians[1].ID)
	assert.Equal(t, "t-lejos", resp.Technicians[2].ID)
	assert.True(t, resp.Technicians[0].Distance <= resp.Technicians[1].Distance)
	assert.True(t, resp.Technicians[1].Distance <= resp.Technicians[2].Distance)
}

func TestRecommend_SinJobNiCustomer_RetornaErrInvalidInput(t *testing.T) {
	uc := dispatch.NewRecommendUseCase(&fakeUserRepo{}, &fakeJobRepo{}, &fakeCustomerRepo{}, &fakeLocator{}, cityCenter)

	_, err := uc.Recommend("tenant-1", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecommend_ObjetivoDesdeElClienteDelJob(t *testing.T) {
	// El job carga el cliente anidado con coordenadas: el objetivo sale de ahí.
	job := &entity.Job{
		ID: "job-1", CustomerID: "cust-1",
		Customer: &entity.Customer{ID: "cust-1", Lat: ptr(39.80), Lng: ptr(-89.60)},
	}
	uc := dispatch.NewRecommendUseCase(
		&fakeUserRepo{techs: []*entity.User{tech("t-1", "uno")}},
		&fakeJobRepo{job: job},
		&fakeCustomerRepo{},
		&fakeLocator{points: map[string]geo.Point{"t-1": {Lat: 39.80, Lng: -89.60}}},
		cityCenter,
	)

	resp, err := uc.Recommend("tenant-1", "job-1", "")
	require.NoError(t, err)
	assert.Equal(t, 39.80, resp.Target.Lat)
	assert.Equal(t, -89.60, resp.Target.Lng)
	assert.Equal(t, 0.0, resp.Technicians[0].Distance, "técnico en el objetivo debe estar a 0 millas")
}

func TestRecommend_ClienteSinCoordenadas_CaeAlCentroDeCiudad(t *testing.T) {
	// Cliente existe pero nunca fue geocodificado: degradar al centro configurado.
	customer := &entity.Customer{ID: "cust-1"} // Lat/Lng nil
	uc := dispatch.NewRecommendUseCase(
		&fakeUserRepo{techs: []*entity.User{tech("t-1", "uno")}},
		&fakeJobRepo{},
		&fakeCustomerRepo{customer: customer},
		&fakeLocator{points: map[string]geo.Point{"t-1": cityCenter}},
		cityCenter,
	)

	resp, err := uc.Recommend("tenant-1", "", "cust-1")
	require.NoError(t, err)
	assert.Equal(t, cityCenter, resp.Target, "sin coordenadas el objetivo es el centro de ciudad")
	assert.Equal(t, 0.0, resp.Technicians[0].Distance)
}

func TestRecommend_JobInexistente_CaeAlCentroDeCiudad(t *testing.T) {
	uc := dispatch.NewRecommendUseCase(
		&fakeUserRepo{techs: []*entity.User{}},
		&fakeJobRepo{job: nil},
		&fakeCustomerRepo{},
		&fakeLocator{},
		cityCenter,
	)

	resp, err := uc.Recommend("tenant-1", "job-fantasma", "")
	require.NoError(t, err)
	assert.Equal(t, cityCenter, resp.Target)
	assert.Empty(t, resp.Technicians)
}

func TestTechnicians_DevuelveUbicaciones(t *testing.T) {
	locator := &fakeLocator{points: map[string]geo.Point{
		"t-1": {Lat: 39.79, Lng: -89.64},
	}}
	uc := dispatch.NewRecommendUseCase(
		&fakeUserRepo{techs: []*entity.User{{ID: "t-1", Name: "Marcos", Email: "m@x.co", Role: entity.RoleTechnician, Skills: "HVAC, Plumbing"}}},
		&fakeJobRepo{},
		&fakeCustomerRepo{},
		locator,
		cityCenter,
	)

	out, err := uc.Technicians("tenant-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Marcos", out[0].Name)
	assert.Equal(t, []string{"HVAC", "Plumbing"}, out[0].Skills)
	assert.Equal(t, locator.points["t-1"], out[0].Location)
}
