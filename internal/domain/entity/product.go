package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
type Product struct {
	ID        string
	SKU       string
	Name      string
	Barcode   string
	Price     decimal.Decimal
	Cost      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
