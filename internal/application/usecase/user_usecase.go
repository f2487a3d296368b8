package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

// UserUseCase casos de uso de usuarios: registro en el primer sign-in,
// listado, consulta de rol y administración (promover, eliminar).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// EnsureUser registra al usuario si su email no existe todavía. El insert es
// condicional en el store; no hay ventana entre verificar y escribir.
func (uc *UserUseCase) EnsureUser(in dto.CreateUserRequest) (*dto.UpsertUserResponse, error) {
	user := &entity.User{
		ID:        uuid.New().String(),
		Email:     in.Email,
		Name:      in.Name,
		Role:      entity.RoleNone,
		CreatedAt: time.Now(),
	}
	inserted, err := uc.repo.CreateIfAbsent(user)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return &dto.UpsertUserResponse{AlreadyExists: true, Message: "User already exists"}, nil
	}
	return &dto.UpsertUserResponse{InsertedID: user.ID}, nil
}

// List devuelve todos los usuarios registrados.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// IsAdmin indica si el email pertenece a un usuario con rol admin.
// Un usuario inexistente no es admin.
func (uc *UserUseCase) IsAdmin(email string) (bool, error) {
	user, err := uc.repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// PromoteToAdmin asigna rol admin al usuario con el id indicado.
func (uc *UserUseCase) PromoteToAdmin(id string) error {
	return uc.repo.PromoteToAdmin(id)
}

// Delete elimina un usuario por id.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
