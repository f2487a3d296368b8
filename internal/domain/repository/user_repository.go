package repository

import "github.com/dishdash/dishdash-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	// CreateIfAbsent inserta el usuario solo si el email no existe todavía.
	// La condición la garantiza el store (índice único), no un read-then-write:
	// dos sign-ins simultáneos del mismo email producen exactamente un insert.
	// Devuelve false si el email ya estaba registrado.
	CreateIfAbsent(user *entity.User) (bool, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	// PromoteToAdmin asigna rol admin al usuario indicado.
	PromoteToAdmin(id string) error
	Delete(id string) error
}
