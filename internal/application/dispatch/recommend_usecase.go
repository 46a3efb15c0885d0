// Package dispatch ranking de técnicos por cercanía al trabajo o cliente.
package dispatch

import (
	"sort"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/geo"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// RecommendUseCase ordena los técnicos del tenant por distancia Haversine (millas)
// al objetivo. El conteo de técnicos se asume pequeño (<100): orden en memoria,
// sin caché ni paginación.
type RecommendUseCase struct {
	userRepo     repository.UserRepository
	jobRepo      repository.JobRepository
	customerRepo repository.CustomerRepository
	locator      ports.TechnicianLocator
	fallback     geo.Point // centro de ciudad configurado
}

// NewRecommendUseCase construye el caso de uso.
func NewRecommendUseCase(
	userRepo repository.UserRepository,
	jobRepo repository.JobRepository,
	customerRepo repository.CustomerRepository,
	locator ports.TechnicianLocator,
	fallback geo.Point,
) *RecommendUseCase {
	return &RecommendUseCase{
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
		locator:      locator,
		fallback:     fallback,
	}
}

// Recommend resuelve la coordenada objetivo desde jobID o customerID (exactamente
// uno requerido) y devuelve todos los técnicos del tenant ordenados ascendente
// por distancia. Si el job/cliente no existe o no tiene coordenadas, degrada en
// silencio al centro de ciudad configurado en lugar de fallar.
func (uc *RecommendUseCase) Recommend(tenantID, jobID, customerID string) (*dto.RecommendationResponse, error) {
	if jobID == "" && customerID == "" {
		return nil, domain.ErrInvalidInput
	}

	target := uc.resolveTarget(tenantID, jobID, customerID)

	techs, err := uc.userRepo.ListByTenantAndRole(tenantID, entity.RoleTechnician)
	if err != nil {
		return nil, err
	}

	ranked := make([]dto.TechnicianRankDTO, 0, len(techs))
	for _, t := range techs {
		loc := uc.locator.Locate(t.ID)
		ranked = append(ranked, dto.TechnicianRankDTO{
			ID:       t.ID,
			Name:     t.Name,
			Email:    t.Email,
			Skills:   t.SkillList(),
			Distance: geo.RoundMiles(geo.HaversineMiles(target, loc)),
			Location: loc,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return &dto.RecommendationResponse{Target: target, Technicians: ranked}, nil
}

// Technicians devuelve los técnicos del tenant con su ubicación (simulada).
func (uc *RecommendUseCase) Technicians(tenantID string) ([]dto.TechnicianLocationDTO, error) {
	techs, err := uc.userRepo.ListByTenantAndRole(tenantID, entity.RoleTechnician)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TechnicianLocationDTO, 0, len(techs))
	for _, t := range techs {
		out = append(out, dto.TechnicianLocationDTO{
			ID:       t.ID,
			Name:     t.Name,
			Email:    t.Email,
			Skills:   t.SkillList(),
			Location: uc.locator.Locate(t.ID),
		})
	}
	return out, nil
}

// resolveTarget intenta job → cliente del job → cliente directo; todo fallo o
// coordenada ausente cae al fallback. La degradación silenciosa replica el
// comportamiento del tablero (no romper la vista por un dato incompleto).
func (uc *RecommendUseCase) resolveTarget(tenantID, jobID, customerID string) geo.Point {
	if jobID != "" {
		job, err := uc.jobRepo.GetByTenantAndID(tenantID, jobID)
		if err == nil && job != nil {
			if p, ok := customerPoint(job.Customer); ok {
				return p
			}
			customerID = job.CustomerID
		}
	}
	if customerID != "" {
		customer, err := uc.customerRepo.GetByTenantAndID(tenantID, customerID)
		if err == nil && customer != nil {
			if p, ok := customerPoint(customer); ok {
				return p
			}
		}
	}
	return uc.fallback
}

func customerPoint(c *entity.Customer) (geo.Point, bool) {
	if c == nil || c.Lat == nil || c.Lng == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *c.Lat, Lng: *c.Lng}, true
}
