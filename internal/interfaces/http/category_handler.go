package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/views"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc        *catalog.CategoryUseCase
	composer  *views.Composer
	uploadDir string
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *catalog.CategoryUseCase, composer *views.Composer, uploadDir string) *CategoryHandler {
	return &CategoryHandler{uc: uc, composer: composer, uploadDir: uploadDir}
}

func parseCategoryForm(c *fiber.Ctx) dto.CreateCategoryRequest {
	return dto.CreateCategoryRequest{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Type:        c.FormValue("type"),
	}
}

// List godoc
// @Summary      Listar categorías (paginado)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200   {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	out, err := h.composer.ListCategories(c.Context(), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría (multipart, campo image opcional)
// @Tags         categories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.CategoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	in := parseCategoryForm(c)
	upload, err := saveSingleUpload(c, h.uploadDir)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.uc.Create(c.Context(), in, upload)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar categoría (sin archivo conserva la imagen previa)
// @Tags         categories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	form := parseCategoryForm(c)
	in := dto.EditCategoryRequest(form)
	upload, err := saveSingleUpload(c, h.uploadDir)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.uc.Edit(c.Context(), id, in, upload)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría (rechazado si tiene productos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
