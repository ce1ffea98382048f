package http

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/valyala/fasthttp"
)

// absentFile distingue "el campo no vino" (válido: slot sin archivo nuevo)
// de una parte multipart malformada, que debe rechazarse como 400.
func absentFile(err error) bool {
	return errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm)
}

// saveSlotUploads guarda los archivos multipart image0..image2 en el
// directorio de subida y devuelve los nombres por slot (vacío = el slot no
// trajo archivo). Solo el nombre base declarado se conserva.
func saveSlotUploads(c *fiber.Ctx, dir string) (catalog.ImageUploads, error) {
	var uploads catalog.ImageUploads
	for i := 0; i < entity.NumImageSlots; i++ {
		field := fmt.Sprintf("image%d", i)
		fh, err := c.FormFile(field)
		if err != nil {
			if absentFile(err) {
				continue
			}
			return uploads, fmt.Errorf("%w: parte multipart %s: %v", domain.ErrInvalidInput, field, err)
		}
		name := filepath.Base(fh.Filename)
		if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
			return uploads, fmt.Errorf("guardar subida %s: %w", name, err)
		}
		uploads[i] = name
	}
	return uploads, nil
}

// saveSingleUpload guarda el archivo multipart `image` (categorías) y
// devuelve su nombre, o vacío si no se envió.
func saveSingleUpload(c *fiber.Ctx, dir string) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if absentFile(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: parte multipart image: %v", domain.ErrInvalidInput, err)
	}
	name := filepath.Base(fh.Filename)
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("guardar subida %s: %w", name, err)
	}
	return name, nil
}
