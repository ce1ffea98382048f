package catalog

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// ImageProcessor define el puerto hacia el pipeline de derivados de imagen.
// ProduceDerivative toma el nombre de archivo de una subida ya guardada en el
// directorio de origen y devuelve el nombre del derivado generado.
type ImageProcessor interface {
	ProduceDerivative(ctx context.Context, filename string) (string, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del producto y la
// actualización del set `items` de la categoría sean una sola unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		categories repository.CategoryRepository,
	) error) error
}
