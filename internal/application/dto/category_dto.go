package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. La imagen (única)
// llega aparte como archivo ya guardado en el directorio de subida.
type CreateCategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" form:"description"`
	Type        string `json:"type" form:"type"`
}

// EditCategoryRequest entrada para editar una categoría.
type EditCategoryRequest struct {
	Name        string `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" form:"description"`
	Type        string `json:"type" form:"type"`
}

// CategoryResponse salida de una categoría persistida.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Type        string    `json:"type"`
	Items       []string  `json:"items"`
	CreatedAt   time.Time `json:"created_at"`
}
