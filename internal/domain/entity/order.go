package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPicked    = "PICKED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order representa una orden de venta registrada desde la app.
type Order struct {
	ID           string
	CustomerName string
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem es una línea de la orden. Una misma orden puede repetir producto
// en varias líneas; el generador de pick list las agrupa sumando cantidades.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}
