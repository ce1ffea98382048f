package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
	OrderReturned   = "Returned"
)

// ValidOrderStatus indica si s pertenece a la enumeración de estados de pedido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	}
	return false
}

// Order representa un pedido. Referencia a User y Address por id; nunca
// muta estado de Product ni Category.
type Order struct {
	ID           string
	UserID       string
	AddressID    string
	Amount       decimal.Decimal
	OrderDate    time.Time
	ShippingDate *time.Time
	DeliveryDate *time.Time
	Status       string
	Payment      string
}
