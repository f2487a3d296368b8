package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain"
	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito: agregar, listar por usuario y quitar.
// El vaciado masivo al finalizar un pedido lo hace el flujo de checkout.
type CartUseCase struct {
	repo repository.CartRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository) *CartUseCase {
	return &CartUseCase{repo: repo}
}

// Add agrega un plato al carrito del usuario con snapshot de nombre y precio.
func (uc *CartUseCase) Add(in dto.CreateCartItemRequest) (*dto.CartItemResponse, error) {
	if in.Email == "" || in.MenuItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.CartItem{
		ID:         uuid.New().String(),
		Email:      in.Email,
		MenuItemID: in.MenuItemID,
		Name:       in.Name,
		Image:      in.Image,
		Price:      in.Price,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toCartItemResponse(item), nil
}

// ListByEmail devuelve el carrito del usuario.
func (uc *CartUseCase) ListByEmail(email string) ([]dto.CartItemResponse, error) {
	items, err := uc.repo.ListByEmail(email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toCartItemResponse(it))
	}
	return out, nil
}

// Remove quita una entrada del carrito por id.
func (uc *CartUseCase) Remove(id string) error {
	return uc.repo.Delete(id)
}

func toCartItemResponse(it *entity.CartItem) *dto.CartItemResponse {
	return &dto.CartItemResponse{
		ID:         it.ID,
		Email:      it.Email,
		MenuItemID: it.MenuItemID,
		Name:       it.Name,
		Image:      it.Image,
		Price:      it.Price,
		CreatedAt:  it.CreatedAt,
	}
}
