package repository

import "github.com/dishdash/dishdash-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para los carritos.
type CartRepository interface {
	Create(item *entity.CartItem) error
	ListByEmail(email string) ([]*entity.CartItem, error)
	Delete(id string) error
	// DeleteByIDs elimina en bloque los carritos indicados y devuelve cuántos
	// existían. Un id inexistente no es error: el delete es idempotente.
	DeleteByIDs(ids []string) (int64, error)
}
