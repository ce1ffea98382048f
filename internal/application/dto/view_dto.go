package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filas denormalizadas producidas por el repositorio de vistas. No se
// persisten: son proyecciones de lectura para presentación.

// ProductRowDTO fila del listado de productos con su categoría en línea.
type ProductRowDTO struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Price               decimal.Decimal `json:"price"`
	Quantity            int             `json:"quantity"`
	Status              string          `json:"status"`
	Images              []string        `json:"images"`
	Discount            decimal.Decimal `json:"discount"`
	CategoryName        string          `json:"category"`
	CategoryDescription string          `json:"category_description"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ProductDetailDTO detalle de un producto con slots de imagen nombrados.
// Los campos de categoría quedan vacíos si la referencia no existe.
type ProductDetailDTO struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Price               decimal.Decimal `json:"price"`
	Quantity            int             `json:"quantity"`
	Status              string          `json:"status"`
	Description         string          `json:"description"`
	Discount            decimal.Decimal `json:"discount"`
	Img0                string          `json:"img0"`
	Img1                string          `json:"img1"`
	Img2                string          `json:"img2"`
	CategoryID          string          `json:"category_id"`
	CategoryName        string          `json:"category"`
	CategoryDescription string          `json:"category_description"`
	CreatedAt           time.Time       `json:"created_at"`
}

// CategoryRowDTO fila del listado de categorías.
type CategoryRowDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Type        string    `json:"type"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddressDTO dirección de entrega embebida en vistas de pedidos.
type AddressDTO struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CompanyName   string `json:"company_name"`
	Country       string `json:"country"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
}

// OrderRowDTO fila del listado de pedidos con la dirección embebida.
type OrderRowDTO struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	OrderDate       time.Time       `json:"order_date"`
	Status          string          `json:"status"`
	Payment         string          `json:"payment"`
	DeliveryAddress AddressDTO      `json:"delivery_address"`
}

// OrderUserDTO exposición mínima del usuario en el detalle de pedido.
// Solo estos campos salen del núcleo; nada más de User se filtra.
type OrderUserDTO struct {
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	Phone      string    `json:"phone"`
	IsVerified bool      `json:"is_verified"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderDetailDTO detalle de un pedido con usuario y dirección.
type OrderDetailDTO struct {
	ID              string          `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	OrderDate       time.Time       `json:"order_date"`
	ShippingDate    *time.Time      `json:"shipping_date,omitempty"`
	DeliveryDate    *time.Time      `json:"delivery_date,omitempty"`
	Status          string          `json:"status"`
	Payment         string          `json:"payment"`
	User            OrderUserDTO    `json:"user"`
	DeliveryAddress AddressDTO      `json:"delivery_address"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductRowDTO `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CategoryListResponse listado paginado de categorías.
type CategoryListResponse struct {
	Items []CategoryRowDTO `json:"items"`
	Page  PageResponse     `json:"page"`
}

// OrderListResponse listado paginado de pedidos.
type OrderListResponse struct {
	Items []OrderRowDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}
