package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
)

// CatalogViewRepository define las consultas de lectura denormalizadas que
// consume el compositor de vistas. Las implementaciones son read-only.
//
// Orden estable en todos los listados: created_at/order_date ascendente con
// desempate por id, para que la paginación sea determinista entre páginas.
type CatalogViewRepository interface {
	// ListProducts devuelve filas producto+categoría (join interno: un
	// producto con categoría inexistente no aparece en el listado).
	ListProducts(ctx context.Context, limit, offset int) ([]dto.ProductRowDTO, error)
	CountProducts(ctx context.Context) (int, error)

	// GetProductDetail devuelve el producto aunque su categoría no exista
	// (join externo), con los 3 slots de imagen como campos nombrados.
	// Devuelve nil si el producto no existe.
	GetProductDetail(ctx context.Context, id string) (*dto.ProductDetailDTO, error)

	ListCategories(ctx context.Context, limit, offset int) ([]dto.CategoryRowDTO, error)
	CountCategories(ctx context.Context) (int, error)

	// ListOrders devuelve cada pedido con su dirección de entrega embebida.
	ListOrders(ctx context.Context, limit, offset int) ([]dto.OrderRowDTO, error)
	CountOrders(ctx context.Context) (int, error)

	// GetOrderDetail devuelve el pedido con su usuario (campos permitidos
	// uno a uno) y su dirección de entrega. Devuelve nil si no existe.
	GetOrderDetail(ctx context.Context, id string) (*dto.OrderDetailDTO, error)
}
