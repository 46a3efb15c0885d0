package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memJobRepo struct {
	byID          map[string]*entity.Job
	created       *entity.Job
	statusUpdated string
	deletedID     string
}

func newMemJobRepo(jobs ...*entity.Job) *memJobRepo {
	m := &memJobRepo{byID: map[string]*entity.Job{}}
	for _, j := range jobs {
		m.byID[j.ID] = j
	}
	return m
}

func (m *memJobRepo) Create(j *entity.Job) error {
	m.created = j
	m.byID[j.ID] = j
	return nil
}
func (m *memJobRepo) GetByTenantAndID(_, id string) (*entity.Job, error) {
	return m.byID[id], nil
}
func (m *memJobRepo) ListByTenant(string, int, int) ([]*entity.Job, error) { return nil, nil }
func (m *memJobRepo) ListByTenantAndCustomer(_, _ string) ([]*entity.Job, error) {
	return nil, nil
}
func (m *memJobRepo) SearchByTenant(_, _ string, _ int) ([]*entity.Job, error) {
	return nil, nil
}
func (m *memJobRepo) Update(j *entity.Job) error {
	m.byID[j.ID] = j
	return nil
}
func (m *memJobRepo) UpdateStatus(_, id, status string) error {
	m.statusUpdated = id + ":" + status
	return nil
}
func (m *memJobRepo) Delete(_, id string) error {
	m.deletedID = id
	delete(m.byID, id)
	return nil
}
func (m *memJobRepo) DeleteByCustomer(_, _ string) error { return nil }

type memCustomerRepo struct {
	byID    map[string]*entity.Customer
	updated *entity.Customer
	deleted string
}

func newMemCustomerRepo(customers ...*entity.Customer) *memCustomerRepo {
	m := &memCustomerRepo{byID: map[string]*entity.Customer{}}
	for _, c := range customers {
		m.byID[c.ID] = c
	}
	return m
}

func (m *memCustomerRepo) Create(c *entity.Customer) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCustomerRepo) GetByTenantAndID(_, id string) (*entity.Customer, error) {
	return m.byID[id], nil
}
func (m *memCustomerRepo) ListByTenant(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (m *memCustomerRepo) SearchByTenant(_, _ string, _ int) ([]*entity.Customer, error) {
	return nil, nil
}
func (m *memCustomerRepo) Update(c *entity.Customer) error {
	m.updated = c
	m.byID[c.ID] = c
	return nil
}
func (m *memCustomerRepo) Delete(_, id string) error {
	m.deleted = id
	delete(m.byID, id)
	return nil
}

// recordingPublisher captura los eventos job_update publicados.
type recordingPublisher struct {
	tenantIDs []string
	jobs      []*dto.JobResponse
}

func (p *recordingPublisher) PublishJobUpdate(tenantID string, job *dto.JobResponse) {
	p.tenantIDs = append(p.tenantIDs, tenantID)
	p.jobs = append(p.jobs, job)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

var scheduledStart = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

func seedCustomer() *entity.Customer {
	return &entity.Customer{ID: "cust-1", TenantID: "tenant-1", Name: "Acme HVAC", Address: "742 Evergreen Terrace"}
}

func TestJobCreate_NaceEnDraftYPublicaEvento(t *testing.T) {
	jobRepo := newMemJobRepo()
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(jobRepo, newMemCustomerRepo(seedCustomer()), pub)

	resp, err := uc.Create("tenant-1", dto.CreateJobRequest{
		CustomerID:     "cust-1",
		ScheduledStart: scheduledStart,
		Description:    "Revisión anual de caldera",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.JobStatusDraft, resp.Status, "todo trabajo nace en Draft")
	require.NotNil(t, resp.Customer, "la respuesta incluye el cliente anidado")
	assert.Equal(t, "Acme HVAC", resp.Customer.Name)

	require.Len(t, pub.tenantIDs, 1, "crear debe publicar exactamente un job_update")
	assert.Equal(t, "tenant-1", pub.tenantIDs[0])
	assert.Equal(t, resp.ID, pub.jobs[0].ID)
}

func TestJobCreate_ClienteInexistente_RetornaErrNotFound(t *testing.T) {
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(newMemJobRepo(), newMemCustomerRepo(), pub)

	_, err := uc.Create("tenant-1", dto.CreateJobRequest{
		CustomerID:     "cust-fantasma",
		ScheduledStart: scheduledStart,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, pub.jobs, "un create fallido no publica eventos")
}

func TestJobCreate_SinCustomerOFecha_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewJobUseCase(newMemJobRepo(), newMemCustomerRepo(), &recordingPublisher{})

	_, err := uc.Create("tenant-1", dto.CreateJobRequest{ScheduledStart: scheduledStart})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("tenant-1", dto.CreateJobRequest{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobUpdateStatus_TransicionesLibresEntreLosCincoEstados(t *testing.T) {
	// No hay máquina de estados: Done → Draft es tan válido como Draft → Scheduled.
	job := &entity.Job{ID: "job-1", TenantID: "tenant-1", CustomerID: "cust-1", Status: entity.JobStatusDone}
	jobRepo := newMemJobRepo(job)
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(jobRepo, newMemCustomerRepo(), pub)

	for _, status := range []string{
		entity.JobStatusDraft,
		entity.JobStatusWorking,
		entity.JobStatusEnRoute,
		entity.JobStatusScheduled,
		entity.JobStatusDone,
	} {
		resp, err := uc.UpdateStatus("tenant-1", "job-1", status)
		require.NoError(t, err, "transición a %s debe aceptarse", status)
		assert.Equal(t, status, resp.Status)
	}
	assert.Len(t, pub.jobs, 5, "cada movimiento del tablero publica un job_update")
}

func TestJobUpdateStatus_EstadoDesconocido_RetornaErrInvalidInput(t *testing.T) {
	job := &entity.Job{ID: "job-1", TenantID: "tenant-1", Status: entity.JobStatusDraft}
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(newMemJobRepo(job), newMemCustomerRepo(), pub)

	_, err := uc.UpdateStatus("tenant-1", "job-1", "Archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, pub.jobs)
}

func TestJobUpdateStatus_JobInexistente_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewJobUseCase(newMemJobRepo(), newMemCustomerRepo(), &recordingPublisher{})

	_, err := uc.UpdateStatus("tenant-1", "job-fantasma", entity.JobStatusWorking)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobUpdate_PublicaElRegistroCompleto(t *testing.T) {
	job := &entity.Job{
		ID: "job-1", TenantID: "tenant-1", CustomerID: "cust-1",
		Status: entity.JobStatusDraft, ScheduledStart: scheduledStart,
		Customer: seedCustomer(),
	}
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(newMemJobRepo(job), newMemCustomerRepo(), pub)

	resp, err := uc.Update("tenant-1", "job-1", dto.UpdateJobRequest{
		TechnicianID: "tech-9",
		Status:       entity.JobStatusScheduled,
		Description:  "Cliente pide franja de mañana",
	})
	require.NoError(t, err)

	assert.Equal(t, "tech-9", resp.TechnicianID)
	assert.Equal(t, entity.JobStatusScheduled, resp.Status)
	assert.Equal(t, "Cliente pide franja de mañana", resp.Description)

	require.Len(t, pub.jobs, 1)
	assert.Equal(t, "tech-9", pub.jobs[0].TechnicianID,
		"el evento lleva el registro completo actualizado, no un delta")
	assert.NotNil(t, pub.jobs[0].Customer)
}

func TestJobDelete_NoPublicaEvento(t *testing.T) {
	job := &entity.Job{ID: "job-1", TenantID: "tenant-1", Status: entity.JobStatusDraft}
	jobRepo := newMemJobRepo(job)
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(jobRepo, newMemCustomerRepo(), pub)

	require.NoError(t, uc.Delete("tenant-1", "job-1"))
	assert.Equal(t, "job-1", jobRepo.deletedID)
	assert.Empty(t, pub.jobs)
}
