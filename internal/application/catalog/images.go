package catalog

import (
	"context"
	"fmt"

	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"golang.org/x/sync/errgroup"
)

// ImageUploads nombres de archivo subidos por slot; cadena vacía = el slot
// no trae archivo nuevo en esta petición.
type ImageUploads [entity.NumImageSlots]string

// produceDerivatives genera los derivados de todos los slots con archivo
// nuevo en paralelo (fan-out) y espera a que terminen todos (fan-in) antes de
// devolver. Si cualquier derivado falla, la operación completa falla y no se
// devuelve resultado parcial: aceptar un registro con un derivado faltante
// rompería la invariante de slots contiguos.
func produceDerivatives(ctx context.Context, proc ImageProcessor, uploads ImageUploads) (ImageUploads, error) {
	g, ctx := errgroup.WithContext(ctx)
	var out ImageUploads
	for i, name := range uploads {
		if name == "" {
			continue
		}
		g.Go(func() error {
			derived, err := proc.ProduceDerivative(ctx, name)
			if err != nil {
				return err
			}
			out[i] = derived
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ImageUploads{}, err
	}
	return out, nil
}

// mergeSlots combina los derivados nuevos con las referencias existentes:
// por cada slot, el archivo nuevo reemplaza; sin archivo nuevo se conserva el
// valor previo; sin ninguno de los dos el slot queda vacío. El resultado debe
// ser contiguo desde el slot 0.
func mergeSlots(existing []string, derived ImageUploads) ([]string, error) {
	merged := make([]string, 0, entity.NumImageSlots)
	gap := false
	for i := 0; i < entity.NumImageSlots; i++ {
		slot := derived[i]
		if slot == "" && i < len(existing) {
			slot = existing[i]
		}
		if slot == "" {
			gap = true
			continue
		}
		if gap {
			return nil, fmt.Errorf("%w: slots de imagen no contiguos", domain.ErrInvalidInput)
		}
		merged = append(merged, slot)
	}
	return merged, nil
}
