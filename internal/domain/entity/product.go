package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductAvailable = "Available"
	ProductDisabled  = "Disabled"
)

// NumImageSlots cantidad máxima de slots de imagen por producto (0..2, contiguos).
const NumImageSlots = 3

// Product representa un producto del catálogo administrado.
// Images guarda los nombres de archivo de los derivados redimensionados,
// contiguos desde el slot 0 (nunca con huecos intermedios).
type Product struct {
	ID          string
	Name        string // único en todo el catálogo
	Price       decimal.Decimal
	Quantity    int
	Status      string // Available, Disabled
	Images      []string
	Description string
	CategoryID  string // puntero hacia Category; fuente de verdad de la relación
	Discount    decimal.Decimal
	CreatedAt   time.Time
}
