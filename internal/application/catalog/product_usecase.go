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

// ProductUseCase casos de uso de producto: alta, edición, listar/deslistar y
// baja. Toda mutación procesa primero las imágenes (si las hay), luego
// escribe el producto y reconcilia el set de la categoría en una transacción.
//
// Dos ediciones concurrentes sobre el mismo producto no se serializan entre
// sí: gana el último escritor, tanto en el merge de slots como en la
// recategorización. Contención esperada: panel de administración.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	tx         TxRunner
	images     ImageProcessor
	integrity  *IntegrityMaintainer
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	tx TxRunner,
	images ImageProcessor,
	integrity *IntegrityMaintainer,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		tx:         tx,
		images:     images,
		integrity:  integrity,
		log:        log,
	}
}

// Create valida el payload, genera los derivados de imagen (todos o ninguno)
// y persiste producto + back-reference de categoría atómicamente. Si
// cualquier imagen falla no ocurre ninguna escritura en el catálogo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, uploads ImageUploads) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.products.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un producto con nombre %q", domain.ErrDuplicate, in.Name)
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, in.CategoryID)
	}

	derived, err := produceDerivatives(ctx, uc.images, uploads)
	if err != nil {
		return nil, err
	}
	images, err := mergeSlots(nil, derived)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Status:      in.Status,
		Images:      images,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Discount:    in.Discount,
		CreatedAt:   time.Now(),
	}
	err = uc.tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		if err := products.Create(product); err != nil {
			return err
		}
		return uc.integrity.ProductCreated(categories, product.CategoryID, product.ID)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("category_id", product.CategoryID).Msg("producto creado")
	return toProductResponse(product), nil
}

// Edit reemplaza el registro completo del producto. Por cada slot de imagen:
// archivo nuevo → derivado nuevo; sin archivo → se conserva la referencia
// previa. Si cambia la categoría, la edición y el traslado del id entre los
// sets de ambas categorías ocurren en la misma transacción.
func (uc *ProductUseCase) Edit(ctx context.Context, id string, in dto.EditProductRequest, uploads ImageUploads) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	if in.Name != existing.Name {
		other, err := uc.products.GetByName(in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, fmt.Errorf("%w: ya existe un producto con nombre %q", domain.ErrDuplicate, in.Name)
		}
	}
	if in.CategoryID != existing.CategoryID {
		category, err := uc.categories.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, in.CategoryID)
		}
	}

	derived, err := produceDerivatives(ctx, uc.images, uploads)
	if err != nil {
		return nil, err
	}
	images, err := mergeSlots(existing.Images, derived)
	if err != nil {
		return nil, err
	}

	updated := &entity.Product{
		ID:          existing.ID,
		Name:        in.Name,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Status:      in.Status,
		Images:      images,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Discount:    in.Discount,
		CreatedAt:   existing.CreatedAt,
	}
	err = uc.tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		if err := products.Update(updated); err != nil {
			return err
		}
		if updated.CategoryID != existing.CategoryID {
			return uc.integrity.ProductMoved(categories, existing.CategoryID, updated.CategoryID, updated.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// SetStatus lista (Available) o deslista (Disabled) un producto.
func (uc *ProductUseCase) SetStatus(ctx context.Context, id, status string) error {
	if status != entity.ProductAvailable && status != entity.ProductDisabled {
		return fmt.Errorf("%w: estado de producto %q", domain.ErrInvalidInput, status)
	}
	existing, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return uc.products.UpdateStatus(id, status)
}

// Delete elimina el producto y quita su id del set de la categoría. El
// CategoryID se lee antes de destruir la fila porque la referencia se
// necesita después para la reconciliación.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	err = uc.tx.Run(ctx, func(products repository.ProductRepository, categories repository.CategoryRepository) error {
		if err := products.Delete(id); err != nil {
			return err
		}
		return uc.integrity.ProductDeleted(categories, existing.CategoryID, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Status:      p.Status,
		Images:      p.Images,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Discount:    p.Discount,
		CreatedAt:   p.CreatedAt,
	}
}
