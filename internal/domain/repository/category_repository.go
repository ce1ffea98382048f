package repository

import "github.com/tu-usuario/catalogo-admin/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// AddItem y RemoveItem operan sobre el set de back-references `items`
// con semántica de conjunto (sin duplicados).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	AddItem(categoryID, productID string) error
	RemoveItem(categoryID, productID string) error
}
