package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/application/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/views"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc        *catalog.ProductUseCase
	composer  *views.Composer
	uploadDir string
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.ProductUseCase, composer *views.Composer, uploadDir string) *ProductHandler {
	return &ProductHandler{uc: uc, composer: composer, uploadDir: uploadDir}
}

// parseProductForm lee los campos del formulario multipart. Precio y
// descuento se parsean a decimal; valores no numéricos quedan en cero y los
// caza la validación del caso de uso.
func parseProductForm(c *fiber.Ctx) dto.CreateProductRequest {
	price, _ := decimal.NewFromString(c.FormValue("price"))
	discount, _ := decimal.NewFromString(c.FormValue("discount"))
	quantity, _ := strconv.Atoi(c.FormValue("quantity"))
	return dto.CreateProductRequest{
		Name:        c.FormValue("name"),
		Price:       price,
		Quantity:    quantity,
		Status:      c.FormValue("status"),
		CategoryID:  c.FormValue("categoryid"),
		Discount:    discount,
		Description: c.FormValue("description"),
	}
}

// List godoc
// @Summary      Listar productos (paginado, categoría en línea)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200   {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	out, err := h.composer.ListProducts(c.Context(), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de producto (slots de imagen nombrados)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.composer.ProductDetail(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (multipart, image0..image2)
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in := parseProductForm(c)
	uploads, err := saveSlotUploads(c, h.uploadDir)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.uc.Create(c.Context(), in, uploads)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar producto (slots sin archivo conservan su derivado)
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	form := parseProductForm(c)
	in := dto.EditProductRequest(form)
	uploads, err := saveSlotUploads(c, h.uploadDir)
	if err != nil {
		return errorJSON(c, err)
	}
	out, err := h.uc.Edit(c.Context(), id, in, uploads)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Listar/deslistar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductStatusRequest  true  "Nuevo estado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/status [patch]
func (h *ProductHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ProductStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetStatus(c.Context(), id, in.Status); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar producto (reconcilia el set de su categoría)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
