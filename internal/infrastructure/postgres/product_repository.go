package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para
// productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, quantity, status, images, description, category_id, discount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Quantity, product.Status,
		product.Images, product.Description, product.CategoryID, product.Discount, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: nombre %q", domain.ErrDuplicate, product.Name)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría %s", domain.ErrNotFound, product.CategoryID)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene un producto por nombre (único en el catálogo).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *ProductRepo) getBy(where string, arg any) (*entity.Product, error) {
	query := `
		SELECT id, name, price, quantity, status, images, description, category_id, discount, created_at
		FROM products ` + where
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Status,
		&p.Images, &p.Description, &p.CategoryID, &p.Discount, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update reemplaza el registro completo del producto (último escritor gana).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, quantity = $4, status = $5, images = $6, description = $7, category_id = $8, discount = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Quantity, product.Status,
		product.Images, product.Description, product.CategoryID, product.Discount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: nombre %q", domain.ErrDuplicate, product.Name)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: categoría %s", domain.ErrNotFound, product.CategoryID)
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStatus actualiza solo el estado (listar/deslistar).
func (r *ProductRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update product status: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
