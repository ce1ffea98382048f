package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Las imágenes llegan
// aparte como archivos ya guardados en el directorio de subida.
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Quantity    int             `json:"quantity" form:"quantity" validate:"min=0"`
	Status      string          `json:"status" form:"status" validate:"required,oneof=Available Disabled"`
	CategoryID  string          `json:"categoryid" form:"categoryid" validate:"required"`
	Discount    decimal.Decimal `json:"discount" form:"discount"`
	Description string          `json:"description" form:"description"`
}

// EditProductRequest entrada para editar un producto. Igual que en el alta,
// el registro llega completo (no hay edición parcial de campos).
type EditProductRequest struct {
	Name        string          `json:"name" form:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Quantity    int             `json:"quantity" form:"quantity" validate:"min=0"`
	Status      string          `json:"status" form:"status" validate:"required,oneof=Available Disabled"`
	CategoryID  string          `json:"categoryid" form:"categoryid" validate:"required"`
	Discount    decimal.Decimal `json:"discount" form:"discount"`
	Description string          `json:"description" form:"description"`
}

// ProductStatusRequest entrada para listar/deslistar un producto.
type ProductStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Available Disabled"`
}

// ProductResponse salida de un producto persistido.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"`
	Images      []string        `json:"images"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryid"`
	Discount    decimal.Decimal `json:"discount"`
	CreatedAt   time.Time       `json:"created_at"`
}
