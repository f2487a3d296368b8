package repository

import "github.com/dishdash/dishdash-api/internal/domain/entity"

// MenuRepository define el puerto de persistencia para el catálogo de platos.
type MenuRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	List() ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	Delete(id string) error
}
