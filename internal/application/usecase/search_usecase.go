package usecase

import (
	"strings"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// searchLimit tope por grupo de resultados.
const searchLimit = 10

// SearchUseCase búsqueda acotada al tenant sobre clientes, trabajos y pricebook.
type SearchUseCase struct {
	customerRepo  repository.CustomerRepository
	jobRepo       repository.JobRepository
	pricebookRepo repository.PricebookRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(
	customerRepo repository.CustomerRepository,
	jobRepo repository.JobRepository,
	pricebookRepo repository.PricebookRepository,
) *SearchUseCase {
	return &SearchUseCase{customerRepo: customerRepo, jobRepo: jobRepo, pricebookRepo: pricebookRepo}
}

// Search ejecuta las tres búsquedas ILIKE y agrupa los resultados.
func (uc *SearchUseCase) Search(tenantID, q string) (*dto.SearchResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.ErrInvalidInput
	}

	out := &dto.SearchResponse{
		Query:     q,
		Customers: []dto.CustomerResponse{},
		Jobs:      []dto.JobResponse{},
		Pricebook: []dto.PricebookItemResponse{},
	}

	customers, err := uc.customerRepo.SearchByTenant(tenantID, q, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		out.Customers = append(out.Customers, *ToCustomerResponse(c))
	}

	jobs, err := uc.jobRepo.SearchByTenant(tenantID, q, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, *ToJobResponse(j))
	}

	items, err := uc.pricebookRepo.SearchByTenant(tenantID, q, searchLimit)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out.Pricebook = append(out.Pricebook, *ToPricebookItemResponse(it))
	}

	return out, nil
}
