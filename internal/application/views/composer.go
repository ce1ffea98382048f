// Package views compone las proyecciones de lectura denormalizadas del
// panel: producto+categoría y pedido+usuario+dirección, con paginación.
package views

import (
	"context"
	"fmt"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// Composer arma listados paginados y vistas de detalle consultando el
// repositorio de vistas. Política uniforme: página pedida por defecto 1,
// totalPages = ceil(count/pageSize), y una página más allá de la última
// devuelve filas vacías, no un error.
type Composer struct {
	views repository.CatalogViewRepository
}

// NewComposer construye el compositor.
func NewComposer(views repository.CatalogViewRepository) *Composer {
	return &Composer{views: views}
}

// ListProducts devuelve la página pedida del listado de productos con los
// datos de su categoría en línea.
func (c *Composer) ListProducts(ctx context.Context, page int) (*dto.ProductListResponse, error) {
	page = normalizePage(page)
	count, err := c.views.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := c.views.ListProducts(ctx, dto.ProductsPerPage, (page-1)*dto.ProductsPerPage)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.ProductRowDTO{}
	}
	return &dto.ProductListResponse{
		Items: rows,
		Page:  dto.PageResponse{CurrentPage: page, TotalPages: totalPages(count, dto.ProductsPerPage)},
	}, nil
}

// ListCategories devuelve la página pedida del listado de categorías.
func (c *Composer) ListCategories(ctx context.Context, page int) (*dto.CategoryListResponse, error) {
	page = normalizePage(page)
	count, err := c.views.CountCategories(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := c.views.ListCategories(ctx, dto.CategoriesPerPage, (page-1)*dto.CategoriesPerPage)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.CategoryRowDTO{}
	}
	return &dto.CategoryListResponse{
		Items: rows,
		Page:  dto.PageResponse{CurrentPage: page, TotalPages: totalPages(count, dto.CategoriesPerPage)},
	}, nil
}

// ListOrders devuelve la página pedida del listado de pedidos con su
// dirección de entrega embebida.
func (c *Composer) ListOrders(ctx context.Context, page int) (*dto.OrderListResponse, error) {
	page = normalizePage(page)
	count, err := c.views.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := c.views.ListOrders(ctx, dto.OrdersPerPage, (page-1)*dto.OrdersPerPage)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.OrderRowDTO{}
	}
	return &dto.OrderListResponse{
		Items: rows,
		Page:  dto.PageResponse{CurrentPage: page, TotalPages: totalPages(count, dto.OrdersPerPage)},
	}, nil
}

// ProductDetail devuelve el detalle de un producto (conservado aunque su
// categoría ya no exista).
func (c *Composer) ProductDetail(ctx context.Context, id string) (*dto.ProductDetailDTO, error) {
	row, err := c.views.GetProductDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return row, nil
}

// OrderDetail devuelve el detalle de un pedido con usuario y dirección.
func (c *Composer) OrderDetail(ctx context.Context, id string) (*dto.OrderDetailDTO, error) {
	row, err := c.views.GetOrderDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("%w: pedido %s", domain.ErrNotFound, id)
	}
	return row, nil
}

// normalizePage aplica el default: página ausente o no numérica cuenta
// como 1. No se recorta hacia arriba: fuera de rango = página vacía.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// totalPages calcula ceil(count/perPage) en enteros.
func totalPages(count, perPage int) int {
	return (count + perPage - 1) / perPage
}
