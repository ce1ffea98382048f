package dto

// Tamaños de página fijos por listado.
const (
	ProductsPerPage   = 10
	CategoriesPerPage = 4
	OrdersPerPage     = 4
)

// PageResponse metadatos de paginación en respuestas de listado.
type PageResponse struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
