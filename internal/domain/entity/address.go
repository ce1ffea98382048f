package entity

import "time"

// Address dirección de entrega asociada a un pedido. Se captura en el
// checkout y no se edita desde el panel; las vistas de pedidos la embeben.
type Address struct {
	ID            string
	UserID        string
	FirstName     string
	LastName      string
	CompanyName   string
	Country       string
	StreetAddress string
	City          string
	State         string
	Pincode       string
	Mobile        string
	Email         string
	CreatedAt     time.Time
}
