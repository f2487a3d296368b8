package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem es un plato del catálogo. El ciclo de vida completo (crear,
// actualizar, eliminar) es exclusivo de administradores.
type MenuItem struct {
	ID        string
	Name      string
	Category  string // ej: "Dessert", "Main", "Salad"
	Price     decimal.Decimal
	Recipe    string // descripción/receta del plato
	Image     string // URL de la imagen
	CreatedAt time.Time
}
