package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldops-pro/internal/application/billing"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memInvoiceRepo struct {
	created *entity.Invoice
	items   []*entity.InvoiceItem
}

func (m *memInvoiceRepo) Create(inv *entity.Invoice) error {
	m.created = inv
	return nil
}
func (m *memInvoiceRepo) CreateItem(it *entity.InvoiceItem) error {
	m.items = append(m.items, it)
	return nil
}
func (m *memInvoiceRepo) GetByTenantAndID(_, _ string) (*entity.Invoice, error) { return nil, nil }
func (m *memInvoiceRepo) ListByTenant(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (m *memInvoiceRepo) ListItems(string) ([]*entity.InvoiceItem, error) { return nil, nil }
func (m *memInvoiceRepo) UpdateStatus(_, _, _ string) error               { return nil }
func (m *memInvoiceRepo) Delete(_, _ string) error                        { return nil }
func (m *memInvoiceRepo) DeleteByCustomer(_, _ string) error              { return nil }

type memPricebookRepo struct {
	byID map[string]*entity.PricebookItem
}

func (m *memPricebookRepo) Create(*entity.PricebookItem) error { return nil }
func (m *memPricebookRepo) GetByTenantAndID(_, id string) (*entity.PricebookItem, error) {
	return m.byID[id], nil
}
func (m *memPricebookRepo) ListByTenant(_, _, _ string, _, _ int) ([]*entity.PricebookItem, error) {
	return nil, nil
}
func (m *memPricebookRepo) SearchByTenant(_, _ string, _ int) ([]*entity.PricebookItem, error) {
	return nil, nil
}
func (m *memPricebookRepo) Update(*entity.PricebookItem) error { return nil }
func (m *memPricebookRepo) Delete(_, _ string) error           { return nil }

type jobRepoStub struct {
	job *entity.Job
}

func (s *jobRepoStub) Create(*entity.Job) error { return nil }
func (s *jobRepoStub) GetByTenantAndID(_, _ string) (*entity.Job, error) {
	return s.job, nil
}
func (s *jobRepoStub) ListByTenant(string, int, int) ([]*entity.Job, error) { return nil, nil }
func (s *jobRepoStub) ListByTenantAndCustomer(_, _ string) ([]*entity.Job, error) {
	return nil, nil
}
func (s *jobRepoStub) SearchByTenant(_, _ string, _ int) ([]*entity.Job, error) {
	return nil, nil
}
func (s *jobRepoStub) Update(*entity.Job) error           { return nil }
func (s *jobRepoStub) UpdateStatus(_, _, _ string) error  { return nil }
func (s *jobRepoStub) Delete(_, _ string) error           { return nil }
func (s *jobRepoStub) DeleteByCustomer(_, _ string) error { return nil }

// directTxRunner ejecuta el callback sin transacción real (tests unitarios).
type directTxRunner struct {
	invoiceRepo   repository.InvoiceRepository
	pricebookRepo repository.PricebookRepository
}

func (r *directTxRunner) RunBilling(_ context.Context, fn func(repository.InvoiceRepository, repository.PricebookRepository) error) error {
	return fn(r.invoiceRepo, r.pricebookRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func buildUseCase(job *entity.Job, pricebook map[string]*entity.PricebookItem) (*billing.GenerateInvoiceUseCase, *memInvoiceRepo) {
	invRepo := &memInvoiceRepo{}
	pbRepo := &memPricebookRepo{byID: pricebook}
	uc := billing.NewGenerateInvoiceUseCase(
		&directTxRunner{invoiceRepo: invRepo, pricebookRepo: pbRepo},
		&jobRepoStub{job: job},
		invRepo,
		pbRepo,
	)
	return uc, invRepo
}

func TestGenerate_TotalEsSumaDeCantidadPorPrecio(t *testing.T) {
	job := &entity.Job{ID: "job-1", TenantID: "tenant-1"}
	pricebook := map[string]*entity.PricebookItem{
		"pb-1": {ID: "pb-1", Name: "AC Tune-Up", Price: price("129.00")},
		"pb-2": {ID: "pb-2", Name: "Capacitor", Price: price("45.50")},
	}
	uc, invRepo := buildUseCase(job, pricebook)

	resp, err := uc.Generate(context.Background(), "tenant-1", dto.GenerateInvoiceRequest{
		JobID: "job-1",
		Items: []dto.GenerateInvoiceItem{
			{PricebookItemID: "pb-1", Quantity: decimal.NewFromInt(1)},
			{PricebookItemID: "pb-2", Quantity: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	// 129.00 + 2×45.50 = 220.00
	assert.True(t, resp.Amount.Equal(price("220.00")),
		"amount esperado 220.00, obtenido %s", resp.Amount)
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[1].Total.Equal(price("91.00")))
	assert.Equal(t, "AC Tune-Up", resp.Items[0].Description,
		"la descripción se copia del pricebook en el momento de generar")

	// Persistencia: cabecera + ambas líneas.
	require.NotNil(t, invRepo.created)
	assert.Equal(t, entity.InvoiceStatusDraft, invRepo.created.Status)
	assert.Len(t, invRepo.items, 2)
	assert.Equal(t, 0, invRepo.items[0].Position)
	assert.Equal(t, 1, invRepo.items[1].Position)
}

func TestGenerate_SinItems_LineaServiceCallPorDefecto(t *testing.T) {
	job := &entity.Job{ID: "job-1", TenantID: "tenant-1"}
	uc, invRepo := buildUseCase(job, nil)

	resp, err := uc.Generate(context.Background(), "tenant-1", dto.GenerateInvoiceRequest{JobID: "job-1"})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Service Call", resp.Items[0].Description)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(75)))
	assert.Len(t, invRepo.items, 1)
}

func TestGenerate_JobInexistente_RetornaErrNotFound(t *testing.T) {
	uc, _ := buildUseCase(nil, nil)

	_, err := uc.Generate(context.Background(), "tenant-1", dto.GenerateInvoiceRequest{JobID: "job-fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_SinJobID_RetornaErrInvalidInput(t *testing.T) {
	uc, _ := buildUseCase(nil, nil)

	_, err := uc.Generate(context.Background(), "tenant-1", dto.GenerateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_ItemDesconocidoEnPricebook_RetornaErrNotFound(t *testing.T) {
	job := &entity.Job{ID: "job-1", TenantID: "tenant-1"}
	uc, invRepo := buildUseCase(job, map[string]*entity.PricebookItem{})

	_, err := uc.Generate(context.Background(), "tenant-1", dto.GenerateInvoiceRequest{
		JobID: "job-1",
		Items: []dto.GenerateInvoiceItem{{PricebookItemID: "pb-999", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, invRepo.created, "no debe persistirse nada si una línea falla")
}

func TestGenerate_CantidadNoPositiva_RetornaErrInvalidInput(t *testing.T) {
	job := &entity.Job{ID: "job-1", TenantID: "tenant-1"}
	uc, _ := buildUseCase(job, map[string]*entity.PricebookItem{
		"pb-1": {ID: "pb-1", Name: "AC Tune-Up", Price: price("129.00")},
	})

	_, err := uc.Generate(context.Background(), "tenant-1", dto.GenerateInvoiceRequest{
		JobID: "job-1",
		Items: []dto.GenerateInvoiceItem{{PricebookItemID: "pb-1", Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
