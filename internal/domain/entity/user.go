package entity

import "time"

// Roles válidos para User. Un usuario recién registrado no tiene rol;
// solo un admin existente puede promover a otro usuario.
const (
	RoleNone  = ""
	RoleAdmin = "admin"
)

// User representa un usuario de la aplicación. La identidad es el email
// (único en el store); el ID lo asigna el sistema al crearlo.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      string // "" o "admin"
	CreatedAt time.Time
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
