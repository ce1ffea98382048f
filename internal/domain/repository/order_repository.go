package repository

import "github.com/tu-usuario/catalogo-admin/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
// Los pedidos solo mutan vía transición de estado o eliminación.
type OrderRepository interface {
	GetByID(id string) (*entity.Order, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
