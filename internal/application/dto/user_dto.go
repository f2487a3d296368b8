package dto

import "time"

// TokenRequest identidad presentada por el cliente al pedir un token.
// El sign-in real es federado en el frontend; aquí solo se firma la identidad.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=200"`
}

// TokenResponse token de acceso emitido.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateUserRequest entrada para registrar un usuario en el primer sign-in.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=200"`
}

// UpsertUserResponse resultado del registro condicional: si el email ya
// existía no se inserta nada y AlreadyExists es true.
type UpsertUserResponse struct {
	InsertedID    string `json:"insertedId,omitempty"`
	AlreadyExists bool   `json:"alreadyExists"`
	Message       string `json:"message,omitempty"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminStatusResponse indica si el email consultado tiene rol admin.
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
