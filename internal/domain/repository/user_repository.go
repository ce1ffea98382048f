package repository

import "github.com/tu-usuario/catalogo-admin/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Desde este núcleo solo se usa para autenticación del panel.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
