package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// CategoryUseCase casos de uso CRUD para categorías. La imagen única pasa
// por el mismo pipeline de derivados que las de producto.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	images     ImageProcessor
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, images ImageProcessor, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, images: images, log: log}
}

// Create crea una categoría; si trae imagen, primero genera el derivado.
// upload es el nombre de archivo ya guardado en el directorio de subida
// (vacío = sin imagen).
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest, upload string) (*dto.CategoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	image := ""
	if upload != "" {
		derived, err := uc.images.ProduceDerivative(ctx, upload)
		if err != nil {
			return nil, err
		}
		image = derived
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Image:       image,
		Type:        in.Type,
		Items:       nil,
		CreatedAt:   time.Now(),
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	uc.log.Info().Str("category_id", category.ID).Msg("categoría creada")
	return toCategoryResponse(category), nil
}

// Edit actualiza nombre, descripción y tipo; sin imagen nueva se conserva la
// referencia existente. El set Items no se toca desde aquí: lo administra el
// mantenedor de integridad.
func (uc *CategoryUseCase) Edit(ctx context.Context, id string, in dto.EditCategoryRequest, upload string) (*dto.CategoryResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	image := existing.Image
	if upload != "" {
		derived, err := uc.images.ProduceDerivative(ctx, upload)
		if err != nil {
			return nil, err
		}
		image = derived
	}
	existing.Name = in.Name
	existing.Description = in.Description
	existing.Type = in.Type
	existing.Image = image
	if err := uc.categories.Update(existing); err != nil {
		return nil, err
	}
	return toCategoryResponse(existing), nil
}

// Delete elimina una categoría. Se rechaza si todavía tiene productos
// asociados: borrar dejaría punteros CategoryID colgantes en esos productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: categoría %s", domain.ErrNotFound, id)
	}
	if len(existing.Items) > 0 {
		return fmt.Errorf("%w: %s tiene %d productos", domain.ErrCategoryNotEmpty, id, len(existing.Items))
	}
	if err := uc.categories.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("category_id", id).Msg("categoría eliminada")
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		Type:        c.Type,
		Items:       c.Items,
		CreatedAt:   c.CreatedAt,
	}
}
