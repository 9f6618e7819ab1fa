package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location representa un área física de almacenamiento (bodega, trastienda,
// estantería de sala). Dentro de una Location el stock se ubica por posición
// (pasillo/estante/nivel), ver StockEntry.
type Location struct {
	ID        string
	Name      string
	Address   string
	Capacity  *decimal.Decimal // capacidad opcional (m³, pallets, etc.)
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
