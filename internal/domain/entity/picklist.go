package entity

// UnknownProductName es el nombre de respaldo cuando el producto de una línea
// ya no existe en el catálogo. No es un error: la lista sigue siendo útil.
const UnknownProductName = "Unknown Product"

// PickListItem es el requerimiento consolidado de picking para un producto de
// una orden: cantidad total a recoger y posiciones donde hay existencias.
// Es una foto consultiva, no una reserva de inventario.
type PickListItem struct {
	ProductID          string
	ProductName        string
	QuantityToPick     int64
	AvailableLocations []StockEntry
}
