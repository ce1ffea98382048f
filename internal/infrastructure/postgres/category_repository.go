package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// El set de back-references `items` vive como text[] en la misma fila.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría con items vacío.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, image, type, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	items := category.Items
	if items == nil {
		items = []string{}
	}
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Image,
		category.Type, items, category.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, name, description, image, type, items, created_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Image, &c.Type, &c.Items, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza los campos propios de la categoría. Items se administra
// solo vía AddItem/RemoveItem.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, image = $4, type = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.Image, category.Type,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// AddItem agrega productID al set items con semántica de conjunto: el guard
// del WHERE evita duplicados aunque la reconciliación se repita.
func (r *CategoryRepo) AddItem(categoryID, productID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categories SET items = array_append(items, $2)
		 WHERE id = $1 AND NOT (items @> ARRAY[$2])`,
		categoryID, productID,
	)
	if err != nil {
		return fmt.Errorf("add item to category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// La categoría no existe o el id ya estaba en el set; distinguimos
		// porque agregar a una categoría inexistente debe fallar.
		exists, err := r.exists(categoryID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("add item: categoría %s no existe", categoryID)
		}
	}
	return nil
}

// RemoveItem quita productID del set items. Quitar un id ausente no es error.
func (r *CategoryRepo) RemoveItem(categoryID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET items = array_remove(items, $2) WHERE id = $1`,
		categoryID, productID,
	)
	if err != nil {
		return fmt.Errorf("remove item from category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) exists(id string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return ok, nil
}
