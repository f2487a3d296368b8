package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/application/usecase"
	"github.com/dishdash/dishdash-api/internal/domain/entity"
)

// fakeUserRepo usuarios en memoria indexados por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) CreateIfAbsent(user *entity.User) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return false, nil
	}
	f.byEmail[user.Email] = user
	return true, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil // nil si no existe
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) PromoteToAdmin(id string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = entity.RoleAdmin
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

// Primer sign-in: el usuario se registra sin rol y con un id asignado.
func TestEnsureUser_EmailNuevo_Inserta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.EnsureUser(dto.CreateUserRequest{Email: "nuevo@dishdash.app", Name: "Nuevo"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.InsertedID)
	assert.False(t, out.AlreadyExists)

	stored := repo.byEmail["nuevo@dishdash.app"]
	require.NotNil(t, stored)
	assert.Equal(t, out.InsertedID, stored.ID)
	assert.Equal(t, entity.RoleNone, stored.Role, "el registro nunca otorga rol")
}

// Sign-ins repetidos no duplican ni sobrescriben al usuario existente.
func TestEnsureUser_EmailExistente_NoDuplica(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	first, err := uc.EnsureUser(dto.CreateUserRequest{Email: "cliente@dishdash.app", Name: "Cliente"})
	require.NoError(t, err)

	second, err := uc.EnsureUser(dto.CreateUserRequest{Email: "cliente@dishdash.app", Name: "Otro Nombre"})
	require.NoError(t, err)

	assert.True(t, second.AlreadyExists)
	assert.Empty(t, second.InsertedID)
	assert.Len(t, repo.byEmail, 1)
	assert.Equal(t, first.InsertedID, repo.byEmail["cliente@dishdash.app"].ID,
		"el usuario original queda intacto")
	assert.Equal(t, "Cliente", repo.byEmail["cliente@dishdash.app"].Name)
}

func TestIsAdmin_RolAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["admin@dishdash.app"] = &entity.User{ID: "u1", Email: "admin@dishdash.app", Role: entity.RoleAdmin}
	uc := usecase.NewUserUseCase(repo)

	ok, err := uc.IsAdmin("admin@dishdash.app")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAdmin_SinRol(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["cliente@dishdash.app"] = &entity.User{ID: "u2", Email: "cliente@dishdash.app"}
	uc := usecase.NewUserUseCase(repo)

	ok, err := uc.IsAdmin("cliente@dishdash.app")
	require.NoError(t, err)
	assert.False(t, ok)
}

// Un usuario inexistente no es admin; tampoco es error.
func TestIsAdmin_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	ok, err := uc.IsAdmin("fantasma@dishdash.app")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAdmin_ErrorDelStore(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errors.New("conexión rechazada")
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.IsAdmin("admin@dishdash.app")
	require.Error(t, err)
}

// El listado expone a todos los usuarios con su rol tal cual.
func TestListUsers_IncluyeRoles(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["a@dishdash.app"] = &entity.User{ID: "u1", Email: "a@dishdash.app", Role: entity.RoleAdmin}
	repo.byEmail["b@dishdash.app"] = &entity.User{ID: "u2", Email: "b@dishdash.app"}
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 2)

	roles := map[string]string{}
	for _, u := range out {
		roles[u.Email] = u.Role
	}
	assert.Equal(t, entity.RoleAdmin, roles["a@dishdash.app"])
	assert.Equal(t, entity.RoleNone, roles["b@dishdash.app"])
}
