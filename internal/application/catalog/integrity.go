package catalog

import (
	"fmt"

	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/logger"
)

// IntegrityMaintainer mantiene el set de back-references `items` de Category
// consistente con el puntero CategoryID de cada Product. Se invoca después de
// cada alta, recategorización y baja de producto, dentro de la misma
// transacción que la escritura del producto; un fallo aquí revierte la
// transacción y se reporta como ErrReconciliation.
type IntegrityMaintainer struct {
	log *logger.Logger
}

// NewIntegrityMaintainer construye el mantenedor.
func NewIntegrityMaintainer(log *logger.Logger) *IntegrityMaintainer {
	return &IntegrityMaintainer{log: log}
}

// ProductCreated agrega el id del producto al set de su categoría.
func (m *IntegrityMaintainer) ProductCreated(categories repository.CategoryRepository, categoryID, productID string) error {
	if err := categories.AddItem(categoryID, productID); err != nil {
		m.log.Error().Err(err).
			Str("category_id", categoryID).
			Str("product_id", productID).
			Msg("reconciliación: no se pudo agregar el producto al set de la categoría")
		return fmt.Errorf("%w: agregar %s a %s: %v", domain.ErrReconciliation, productID, categoryID, err)
	}
	return nil
}

// ProductMoved traslada el id del producto del set de la categoría anterior
// al de la nueva. Las dos actualizaciones son una sola transición lógica.
func (m *IntegrityMaintainer) ProductMoved(categories repository.CategoryRepository, oldCategoryID, newCategoryID, productID string) error {
	if err := categories.RemoveItem(oldCategoryID, productID); err != nil {
		m.log.Error().Err(err).
			Str("category_id", oldCategoryID).
			Str("product_id", productID).
			Msg("reconciliación: no se pudo quitar el producto de la categoría anterior")
		return fmt.Errorf("%w: quitar %s de %s: %v", domain.ErrReconciliation, productID, oldCategoryID, err)
	}
	if err := categories.AddItem(newCategoryID, productID); err != nil {
		m.log.Error().Err(err).
			Str("category_id", newCategoryID).
			Str("product_id", productID).
			Msg("reconciliación: no se pudo agregar el producto a la categoría nueva")
		return fmt.Errorf("%w: agregar %s a %s: %v", domain.ErrReconciliation, productID, newCategoryID, err)
	}
	return nil
}

// ProductDeleted quita el id del producto del set de su categoría. El
// CategoryID debe capturarse antes de destruir la fila del producto.
func (m *IntegrityMaintainer) ProductDeleted(categories repository.CategoryRepository, categoryID, productID string) error {
	if err := categories.RemoveItem(categoryID, productID); err != nil {
		m.log.Error().Err(err).
			Str("category_id", categoryID).
			Str("product_id", productID).
			Msg("reconciliación: no se pudo quitar el producto eliminado del set de la categoría")
		return fmt.Errorf("%w: quitar %s de %s: %v", domain.ErrReconciliation, productID, categoryID, err)
	}
	return nil
}
