package dto

// OrderStatusRequest entrada para la transición de estado de un pedido.
// El valor se valida contra la enumeración fija en el caso de uso.
type OrderStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}
