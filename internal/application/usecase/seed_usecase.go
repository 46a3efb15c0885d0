package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// Datos demo: técnicos, clientes, pricebook y trabajos de ejemplo para que el
// tablero no arranque vacío. POST /api/seed los crea; DELETE /api/seed borra
// los clientes del tenant (cascada completa) y su pricebook. Los usuarios
// sembrados se conservan: borrar usuarios rompería sesiones activas.
type SeedUseCase struct {
	userRepo      repository.UserRepository
	customerRepo  repository.CustomerRepository
	jobRepo       repository.JobRepository
	pricebookRepo repository.PricebookRepository
	assetRepo     repository.AssetRepository
	geocoder      ports.Geocoder
	cascade       CascadeTxRunner
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(
	userRepo repository.UserRepository,
	customerRepo repository.CustomerRepository,
	jobRepo repository.JobRepository,
	pricebookRepo repository.PricebookRepository,
	assetRepo repository.AssetRepository,
	geocoder ports.Geocoder,
	cascade CascadeTxRunner,
) *SeedUseCase {
	return &SeedUseCase{
		userRepo:      userRepo,
		customerRepo:  customerRepo,
		jobRepo:       jobRepo,
		pricebookRepo: pricebookRepo,
		assetRepo:     assetRepo,
		geocoder:      geocoder,
		cascade:       cascade,
	}
}

// SeedSummary conteo de lo creado.
type SeedSummary struct {
	Technicians int `json:"technicians"`
	Customers   int `json:"customers"`
	Pricebook   int `json:"pricebook"`
	Jobs        int `json:"jobs"`
	Assets      int `json:"assets"`
}

var seedTechnicians = []struct {
	name, email, skills string
}{
	{"Marcos Rivera", "marcos@fieldops.local", "HVAC,Electrical"},
	{"Lucía Torres", "lucia@fieldops.local", "Plumbing"},
	{"Andrés Gil", "andres@fieldops.local", "HVAC,Appliance"},
}

var seedCustomers = []struct {
	name, address, phone string
}{
	{"John Doe", "123 Main St", "555-0101"},
	{"Acme Offices", "500 Commerce Blvd", "555-0102"},
	{"María Fernández", "77 Oak Ave", "555-0103"},
	{"Riverside Diner", "12 Harbor Rd", "555-0104"},
}

var seedPricebook = []struct {
	name, itemType, category string
	price                    string
}{
	{"Diagnostic Visit", entity.PricebookTypeService, "HVAC", "89.00"},
	{"Capacitor Replacement", entity.PricebookTypeMaterial, "HVAC", "140.00"},
	{"Drain Cleaning", entity.PricebookTypeService, "Plumbing", "120.00"},
	{"Water Heater Install", entity.PricebookTypeLabor, "Plumbing", "850.00"},
	{"Breaker Panel Inspection", entity.PricebookTypeService, "Electrical", "110.00"},
	{"Refrigerant Recharge", entity.PricebookTypeMaterial, "HVAC", "230.00"},
}

// Seed crea los datos de demostración para el tenant.
func (uc *SeedUseCase) Seed(ctx context.Context, tenantID string) (*SeedSummary, error) {
	now := time.Now()
	summary := &SeedSummary{}

	// bcrypt una sola vez: todos los técnicos demo comparten password.
	hash, err := bcrypt.GenerateFromPassword([]byte("demo-pass-1234"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	techIDs := []string{}
	for _, t := range seedTechnicians {
		if existing, _ := uc.userRepo.GetByEmailAndTenant(t.email, tenantID); existing != nil {
			techIDs = append(techIDs, existing.ID)
			continue
		}
		u := &entity.User{
			ID:           uuid.New().String(),
			TenantID:     tenantID,
			Email:        t.email,
			PasswordHash: string(hash),
			Name:         t.name,
			Role:         entity.RoleTechnician,
			Skills:       t.skills,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.Create(u); err != nil {
			return nil, fmt.Errorf("seed técnico: %w", err)
		}
		techIDs = append(techIDs, u.ID)
		summary.Technicians++
	}

	customerIDs := []string{}
	for _, c := range seedCustomers {
		p := uc.geocoder.Geocode(c.address)
		lat, lng := p.Lat, p.Lng
		customer := &entity.Customer{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Name:      c.name,
			Address:   c.address,
			Phone:     c.phone,
			Lat:       &lat,
			Lng:       &lng,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.customerRepo.Create(customer); err != nil {
			return nil, fmt.Errorf("seed cliente: %w", err)
		}
		customerIDs = append(customerIDs, customer.ID)
		summary.Customers++
	}

	for _, it := range seedPricebook {
		item := &entity.PricebookItem{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Name:      it.name,
			Price:     decimal.RequireFromString(it.price),
			Type:      it.itemType,
			Category:  it.category,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.pricebookRepo.Create(item); err != nil {
			return nil, fmt.Errorf("seed pricebook: %w", err)
		}
		summary.Pricebook++
	}

	statuses := []string{
		entity.JobStatusDraft,
		entity.JobStatusScheduled,
		entity.JobStatusEnRoute,
		entity.JobStatusWorking,
		entity.JobStatusDone,
	}
	for i, status := range statuses {
		job := &entity.Job{
			ID:             uuid.New().String(),
			TenantID:       tenantID,
			CustomerID:     customerIDs[i%len(customerIDs)],
			Status:         status,
			ScheduledStart: now.Add(time.Duration(i) * time.Hour),
			Description:    fmt.Sprintf("Trabajo demo #%d", i+1),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if i%2 == 0 && len(techIDs) > 0 {
			job.TechnicianID = techIDs[i%len(techIDs)]
		}
		if err := uc.jobRepo.Create(job); err != nil {
			return nil, fmt.Errorf("seed trabajo: %w", err)
		}
		summary.Jobs++
	}

	for i, customerID := range customerIDs {
		asset := &entity.Asset{
			ID:          uuid.New().String(),
			TenantID:    tenantID,
			CustomerID:  customerID,
			Type:        "furnace",
			Make:        "Carrier",
			Model:       fmt.Sprintf("59TP6-%02d", i+1),
			Serial:      uuid.New().String()[:12],
			InstallDate: now.AddDate(-2, 0, 0),
			CreatedAt:   now,
		}
		if err := uc.assetRepo.Create(asset); err != nil {
			return nil, fmt.Errorf("seed equipo: %w", err)
		}
		summary.Assets++
	}

	return summary, nil
}

// Reset borra los datos de negocio del tenant: cascada por cliente y pricebook.
func (uc *SeedUseCase) Reset(ctx context.Context, tenantID string) error {
	customers, err := uc.customerRepo.ListByTenant(tenantID, 1000, 0)
	if err != nil {
		return err
	}
	for _, c := range customers {
		err := uc.cascade.RunCustomerCascade(ctx, func(
			invoiceRepo repository.InvoiceRepository,
			jobRepo repository.JobRepository,
			assetRepo repository.AssetRepository,
			customerRepo repository.CustomerRepository,
		) error {
			if err := invoiceRepo.DeleteByCustomer(tenantID, c.ID); err != nil {
				return err
			}
			if err := jobRepo.DeleteByCustomer(tenantID, c.ID); err != nil {
				return err
			}
			if err := assetRepo.DeleteByCustomer(tenantID, c.ID); err != nil {
				return err
			}
			return customerRepo.Delete(tenantID, c.ID)
		})
		if err != nil {
			return fmt.Errorf("reset cliente %s: %w", c.ID, err)
		}
	}

	items, err := uc.pricebookRepo.ListByTenant(tenantID, "", "", 1000, 0)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := uc.pricebookRepo.Delete(tenantID, it.ID); err != nil {
			return fmt.Errorf("reset pricebook %s: %w", it.ID, err)
		}
	}
	return nil
}
