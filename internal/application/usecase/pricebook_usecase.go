package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// PricebookUseCase casos de uso del catálogo de precios.
type PricebookUseCase struct {
	repo repository.PricebookRepository
}

// NewPricebookUseCase construye el caso de uso.
func NewPricebookUseCase(repo repository.PricebookRepository) *PricebookUseCase {
	return &PricebookUseCase{repo: repo}
}

// Create crea un ítem del pricebook.
func (uc *PricebookUseCase) Create(tenantID string, in dto.CreatePricebookItemRequest) (*dto.PricebookItemResponse, error) {
	if in.Name == "" || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.PricebookTypeService && in.Type != entity.PricebookTypeMaterial && in.Type != entity.PricebookTypeLabor {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.PricebookItem{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Price:     in.Price,
		Type:      in.Type,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return ToPricebookItemResponse(item), nil
}

// List lista ítems del tenant con filtro opcional por tipo y categoría.
func (uc *PricebookUseCase) List(tenantID, itemType, category string, page dto.PageRequest) ([]*dto.PricebookItemResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, itemType, category, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PricebookItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, ToPricebookItemResponse(it))
	}
	return out, nil
}

// Update actualiza campos no vacíos de un ítem.
func (uc *PricebookUseCase) Update(tenantID, id string, in dto.UpdatePricebookItemRequest) (*dto.PricebookItemResponse, error) {
	item, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Price.IsPositive() {
		item.Price = in.Price
	}
	if in.Type != "" {
		item.Type = in.Type
	}
	if in.Category != "" {
		item.Category = in.Category
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return ToPricebookItemResponse(item), nil
}

// Delete elimina un ítem del pricebook.
func (uc *PricebookUseCase) Delete(tenantID, id string) error {
	item, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

// ToPricebookItemResponse mapea la entidad a su DTO.
func ToPricebookItemResponse(it *entity.PricebookItem) *dto.PricebookItemResponse {
	if it == nil {
		return nil
	}
	return &dto.PricebookItemResponse{
		ID:        it.ID,
		TenantID:  it.TenantID,
		Name:      it.Name,
		Price:     it.Price,
		Type:      it.Type,
		Category:  it.Category,
		CreatedAt: it.CreatedAt,
	}
}
