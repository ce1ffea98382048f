package repository

import "github.com/tu-usuario/catalogo-admin/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
