package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.CatalogViewRepository = (*CatalogViewRepo)(nil)

// CatalogViewRepo consultas de lectura denormalizadas (read-only). El orden
// created_at/order_date ASC con desempate por id replica el orden de
// inserción y mantiene la paginación determinista.
type CatalogViewRepo struct {
	q Querier
}

// NewCatalogViewRepository construye el adaptador de vistas.
func NewCatalogViewRepository(q Querier) *CatalogViewRepo {
	return &CatalogViewRepo{q: q}
}

// ListProducts filas producto+categoría. Join interno: un producto cuya
// categoría no existe no aparece aquí (el detalle sí lo conserva).
func (r *CatalogViewRepo) ListProducts(ctx context.Context, limit, offset int) ([]dto.ProductRowDTO, error) {
	query := `
		SELECT p.id, p.name, p.price, p.quantity, p.status, p.images, p.discount,
		       c.name, c.description, p.created_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at ASC, p.id ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products view: %w", err)
	}
	defer rows.Close()
	var list []dto.ProductRowDTO
	for rows.Next() {
		var row dto.ProductRowDTO
		if err := rows.Scan(&row.ID, &row.Name, &row.Price, &row.Quantity, &row.Status,
			&row.Images, &row.Discount, &row.CategoryName, &row.CategoryDescription, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountProducts total de productos (sin filtrar por join).
func (r *CatalogViewRepo) CountProducts(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// GetProductDetail detalle con join externo: el producto se conserva aunque
// su categoría no exista, con los campos de categoría vacíos.
func (r *CatalogViewRepo) GetProductDetail(ctx context.Context, id string) (*dto.ProductDetailDTO, error) {
	query := `
		SELECT p.id, p.name, p.price, p.quantity, p.status, p.description, p.discount,
		       COALESCE(p.images[1], ''), COALESCE(p.images[2], ''), COALESCE(p.images[3], ''),
		       COALESCE(c.id, ''), COALESCE(c.name, ''), COALESCE(c.description, ''),
		       p.created_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var row dto.ProductDetailDTO
	err := r.q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.Price, &row.Quantity, &row.Status, &row.Description, &row.Discount,
		&row.Img0, &row.Img1, &row.Img2,
		&row.CategoryID, &row.CategoryName, &row.CategoryDescription,
		&row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}
	return &row, nil
}

// ListCategories filas de categoría con el tamaño de su set de items.
func (r *CatalogViewRepo) ListCategories(ctx context.Context, limit, offset int) ([]dto.CategoryRowDTO, error) {
	query := `
		SELECT id, name, description, image, type, COALESCE(array_length(items, 1), 0), created_at
		FROM categories
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories view: %w", err)
	}
	defer rows.Close()
	var list []dto.CategoryRowDTO
	for rows.Next() {
		var row dto.CategoryRowDTO
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.Image,
			&row.Type, &row.ItemCount, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountCategories total de categorías.
func (r *CatalogViewRepo) CountCategories(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM categories`)
}

// ListOrders cada pedido con su dirección de entrega embebida.
func (r *CatalogViewRepo) ListOrders(ctx context.Context, limit, offset int) ([]dto.OrderRowDTO, error) {
	query := `
		SELECT o.id, o.amount, o.order_date, o.status, o.payment,
		       a.first_name, a.last_name, a.company_name, a.country, a.street_address,
		       a.city, a.state, a.pincode, a.mobile, a.email
		FROM orders o
		JOIN addresses a ON a.id = o.address_id
		ORDER BY o.order_date ASC, o.id ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders view: %w", err)
	}
	defer rows.Close()
	var list []dto.OrderRowDTO
	for rows.Next() {
		var row dto.OrderRowDTO
		if err := rows.Scan(&row.ID, &row.Amount, &row.OrderDate, &row.Status, &row.Payment,
			&row.DeliveryAddress.FirstName, &row.DeliveryAddress.LastName,
			&row.DeliveryAddress.CompanyName, &row.DeliveryAddress.Country,
			&row.DeliveryAddress.StreetAddress, &row.DeliveryAddress.City,
			&row.DeliveryAddress.State, &row.DeliveryAddress.Pincode,
			&row.DeliveryAddress.Mobile, &row.DeliveryAddress.Email); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountOrders total de pedidos.
func (r *CatalogViewRepo) CountOrders(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM orders`)
}

// GetOrderDetail pedido + usuario + dirección. Del usuario solo salen los
// campos permitidos uno a uno; nada más de la fila de users se expone.
func (r *CatalogViewRepo) GetOrderDetail(ctx context.Context, id string) (*dto.OrderDetailDTO, error) {
	query := `
		SELECT o.id, o.amount, o.order_date, o.shipping_date, o.delivery_date, o.status, o.payment,
		       u.email, u.username, u.name, u.gender, u.phone, u.is_verified, u.status,
		       u.created_at, u.updated_at,
		       a.first_name, a.last_name, a.company_name, a.country, a.street_address,
		       a.city, a.state, a.pincode, a.mobile, a.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN addresses a ON a.id = o.address_id
		WHERE o.id = $1`
	var row dto.OrderDetailDTO
	err := r.q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Amount, &row.OrderDate, &row.ShippingDate, &row.DeliveryDate, &row.Status, &row.Payment,
		&row.User.Email, &row.User.Username, &row.User.Name, &row.User.Gender, &row.User.Phone,
		&row.User.IsVerified, &row.User.Status, &row.User.CreatedAt, &row.User.UpdatedAt,
		&row.DeliveryAddress.FirstName, &row.DeliveryAddress.LastName,
		&row.DeliveryAddress.CompanyName, &row.DeliveryAddress.Country,
		&row.DeliveryAddress.StreetAddress, &row.DeliveryAddress.City,
		&row.DeliveryAddress.State, &row.DeliveryAddress.Pincode,
		&row.DeliveryAddress.Mobile, &row.DeliveryAddress.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order detail: %w", err)
	}
	return &row, nil
}

func (r *CatalogViewRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
