package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain"
	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

// MenuUseCase casos de uso CRUD para el catálogo de platos.
type MenuUseCase struct {
	repo repository.MenuRepository
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

// Create agrega un plato al catálogo.
func (uc *MenuUseCase) Create(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.MenuItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Recipe:    in.Recipe,
		Image:     in.Image,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetByID obtiene un plato por id. Devuelve nil si no existe.
func (uc *MenuUseCase) GetByID(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toMenuItemResponse(item), nil
}

// List devuelve el catálogo completo.
func (uc *MenuUseCase) List() ([]dto.MenuItemResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toMenuItemResponse(it))
	}
	return out, nil
}

// Update actualiza un plato; los campos nil del request no se tocan.
func (uc *MenuUseCase) Update(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Recipe != nil {
		item.Recipe = *in.Recipe
	}
	if in.Image != nil {
		item.Image = *in.Image
	}
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// Delete elimina un plato del catálogo.
func (uc *MenuUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMenuItemResponse(it *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Price:     it.Price,
		Recipe:    it.Recipe,
		Image:     it.Image,
		CreatedAt: it.CreatedAt,
	}
}
