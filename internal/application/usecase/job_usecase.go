package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// JobUseCase casos de uso de trabajos. Después de cada escritura confirmada
// publica job_update al room realtime del tenant (fire-and-forget).
type JobUseCase struct {
	repo         repository.JobRepository
	customerRepo repository.CustomerRepository
	publisher    ports.JobEventPublisher
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(repo repository.JobRepository, customerRepo repository.CustomerRepository, publisher ports.JobEventPublisher) *JobUseCase {
	return &JobUseCase{repo: repo, customerRepo: customerRepo, publisher: publisher}
}

// Create crea un trabajo. El estado siempre nace en Draft.
func (uc *JobUseCase) Create(tenantID string, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if in.CustomerID == "" || in.ScheduledStart.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByTenantAndID(tenantID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	job := &entity.Job{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		CustomerID:     in.CustomerID,
		TechnicianID:   in.TechnicianID,
		Status:         entity.JobStatusDraft,
		ScheduledStart: in.ScheduledStart,
		Description:    in.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
		Customer:       customer,
	}
	if err := uc.repo.Create(job); err != nil {
		return nil, err
	}
	out := ToJobResponse(job)
	uc.publisher.PublishJobUpdate(tenantID, out)
	return out, nil
}

// GetByID obtiene un trabajo del tenant con el cliente anidado.
func (uc *JobUseCase) GetByID(tenantID, id string) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return ToJobResponse(job), nil
}

// List lista los trabajos del tenant (tablero Kanban) con paginación.
func (uc *JobUseCase) List(tenantID string, page dto.PageRequest) ([]*dto.JobResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobResponse, 0, len(list))
	for _, j := range list {
		out = append(out, ToJobResponse(j))
	}
	return out, nil
}

// Update reemplaza los campos mutables de un trabajo (técnico, estado,
// agenda, descripción) y publica el registro completo actualizado.
func (uc *JobUseCase) Update(tenantID, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" {
		// Transiciones libres: solo se exige que sea uno de los cinco estados.
		if !entity.ValidJobStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		job.Status = in.Status
	}
	job.TechnicianID = in.TechnicianID
	if !in.ScheduledStart.IsZero() {
		job.ScheduledStart = in.ScheduledStart
	}
	if in.Description != "" {
		job.Description = in.Description
	}
	job.UpdatedAt = time.Now()
	if err := uc.repo.Update(job); err != nil {
		return nil, err
	}
	out := ToJobResponse(job)
	uc.publisher.PublishJobUpdate(tenantID, out)
	return out, nil
}

// UpdateStatus mueve la tarjeta del tablero. Cualquier estado puede seguir a
// cualquier otro; no existe máquina de estados que bloquee transiciones.
func (uc *JobUseCase) UpdateStatus(tenantID, id, status string) (*dto.JobResponse, error) {
	if !entity.ValidJobStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	job, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(tenantID, id, status); err != nil {
		return nil, err
	}
	job.Status = status
	job.UpdatedAt = time.Now()
	out := ToJobResponse(job)
	uc.publisher.PublishJobUpdate(tenantID, out)
	return out, nil
}

// Delete elimina un trabajo del tenant.
func (uc *JobUseCase) Delete(tenantID, id string) error {
	job, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

// ToJobResponse mapea la entidad a su DTO con el cliente anidado.
func ToJobResponse(j *entity.Job) *dto.JobResponse {
	if j == nil {
		return nil
	}
	return &dto.JobResponse{
		ID:             j.ID,
		TenantID:       j.TenantID,
		CustomerID:     j.CustomerID,
		TechnicianID:   j.TechnicianID,
		Status:         j.Status,
		ScheduledStart: j.ScheduledStart,
		Description:    j.Description,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
		Customer:       ToCustomerResponse(j.Customer),
	}
}
