package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLocationRequest entrada para crear una location.
type CreateLocationRequest struct {
	Name     string           `json:"name" validate:"required,min=1,max=200"`
	Address  string           `json:"address"`
	Capacity *decimal.Decimal `json:"capacity"`
	Notes    string           `json:"notes"`
}

// UpdateLocationRequest entrada para actualizar una location.
type UpdateLocationRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Address  *string          `json:"address"`
	Capacity *decimal.Decimal `json:"capacity"`
	Notes    *string          `json:"notes"`
}

// LocationResponse salida de una location.
type LocationResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Address   string           `json:"address,omitempty"`
	Capacity  *decimal.Decimal `json:"capacity,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// LocationListResponse lista paginada de locations.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
