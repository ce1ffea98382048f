// Package images implementa el pipeline de derivados: toma una subida cruda
// del directorio de origen y escribe en el directorio de salida una copia
// redimensionada a geometría fija, con el mismo nombre de archivo. El
// original nunca se borra.
package images

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/tu-usuario/catalogo-admin/internal/application/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
)

// Geometría fija del derivado. El redimensionado NO conserva proporciones:
// la salida se fuerza exactamente a estas dimensiones.
const (
	derivativeWidth  = 1200
	derivativeHeight = 1486
)

var _ catalog.ImageProcessor = (*Resizer)(nil)

// Resizer genera derivados con disintegration/imaging. El directorio de
// salida se comparte entre envíos pero está indexado por nombre de archivo:
// subidas distintas nunca chocan; nombres idénticos concurrentes son un
// riesgo conocido sin guard.
type Resizer struct {
	sourceDir string
	outputDir string
}

// NewResizer construye el pipeline con los directorios configurados.
func NewResizer(sourceDir, outputDir string) *Resizer {
	return &Resizer{sourceDir: sourceDir, outputDir: outputDir}
}

// ProduceDerivative lee la subida, la redimensiona a la geometría fija y
// escribe el derivado. Devuelve el nombre de archivo del derivado (solo
// nombres se persisten, nunca rutas). Cualquier fallo de lectura, decodificado
// o escritura se reporta como domain.ErrImageProcessing.
func (r *Resizer) ProduceDerivative(ctx context.Context, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	src, err := imaging.Open(filepath.Join(r.sourceDir, filename))
	if err != nil {
		return "", fmt.Errorf("%w: abrir %s: %v", domain.ErrImageProcessing, filename, err)
	}
	resized := imaging.Resize(src, derivativeWidth, derivativeHeight, imaging.Lanczos)
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: crear directorio de salida: %v", domain.ErrImageProcessing, err)
	}
	if err := imaging.Save(resized, filepath.Join(r.outputDir, filename)); err != nil {
		return "", fmt.Errorf("%w: guardar derivado de %s: %v", domain.ErrImageProcessing, filename, err)
	}
	return filename, nil
}
