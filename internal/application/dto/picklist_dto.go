package dto

// PickListItemDTO requerimiento consolidado de picking para un producto.
type PickListItemDTO struct {
	ProductID          string               `json:"product_id"`
	ProductName        string               `json:"product_name"`
	QuantityToPick     int64                `json:"quantity_to_pick"`
	AvailableLocations []StockEntryResponse `json:"available_locations"`
}

// PickListResponse lista de picking de una orden.
type PickListResponse struct {
	OrderID string            `json:"order_id"`
	Items   []PickListItemDTO `json:"items"`
}
