package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un usuario. Desde este núcleo es de solo lectura salvo
// para autenticación del panel (rol admin).
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Name         string
	Gender       string
	Phone        string
	Role         string // admin, customer
	Status       string // active, inactive, blocked
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
