package dto

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// AddStockRequest entrada para agregar stock a una posición (o asignar un
// producto a una location por primera vez). Aisle/Shelf/Level son opcionales:
// ausentes significan "sin coordenada".
type AddStockRequest struct {
	ProductID  string  `json:"product_id" validate:"required"`
	LocationID string  `json:"location_id" validate:"required"`
	Aisle      *string `json:"aisle"`
	Shelf      *string `json:"shelf"`
	Level      *string `json:"level"`
	Amount     int64   `json:"amount" validate:"required,gt=0"`
}

// TransferStockRequest entrada para trasladar stock entre dos posiciones.
type TransferStockRequest struct {
	ProductID      string  `json:"product_id" validate:"required"`
	FromLocationID string  `json:"from_location_id" validate:"required"`
	FromAisle      *string `json:"from_aisle"`
	FromShelf      *string `json:"from_shelf"`
	FromLevel      *string `json:"from_level"`
	ToLocationID   string  `json:"to_location_id" validate:"required"`
	ToAisle        *string `json:"to_aisle"`
	ToShelf        *string `json:"to_shelf"`
	ToLevel        *string `json:"to_level"`
	Amount         int64   `json:"amount" validate:"required,gt=0"`
}

// StockEntryResponse salida de una posición de stock.
type StockEntryResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	LocationID string    `json:"location_id"`
	Aisle      *string   `json:"aisle,omitempty"`
	Shelf      *string   `json:"shelf,omitempty"`
	Level      *string   `json:"level,omitempty"`
	Quantity   int64     `json:"quantity"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToStockEntryResponse mapea la entidad a su DTO de salida.
func ToStockEntryResponse(e entity.StockEntry) StockEntryResponse {
	return StockEntryResponse{
		ID:         e.ID,
		ProductID:  e.ProductID,
		LocationID: e.LocationID,
		Aisle:      e.Aisle,
		Shelf:      e.Shelf,
		Level:      e.Level,
		Quantity:   e.Quantity,
		UpdatedAt:  e.UpdatedAt,
	}
}
