package entity

import "time"

// Category representa una categoría del catálogo.
// Items es el set de ids de productos cuyo CategoryID apunta aquí: es una
// caché mantenida por reconciliación, no el dato autoritativo de la relación.
type Category struct {
	ID          string
	Name        string
	Description string
	Image       string // nombre de archivo del derivado, vacío si no tiene
	Type        string
	Items       []string
	CreatedAt   time.Time
}
