package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// StockEntryRepository define el puerto de persistencia para posiciones de
// stock. Se usa dentro de transacciones para garantizar consistencia: las
// mutaciones sobre una misma posición se serializan con FindSpotForUpdate.
type StockEntryRepository interface {
	// FindSpot busca la entrada por su tupla exacta. Devuelve (nil, nil) si
	// la posición no existe.
	FindSpot(productID, locationID string, aisle, shelf, level *string) (*entity.StockEntry, error)
	// FindSpotForUpdate igual que FindSpot pero bloquea la fila
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	FindSpotForUpdate(productID, locationID string, aisle, shelf, level *string) (*entity.StockEntry, error)
	// Upsert crea o reemplaza la entrada por su identidad de posición. Usar
	// solo cuando la fila ya se leyó bajo bloqueo (FindSpotForUpdate).
	Upsert(entry *entity.StockEntry) error
	// Accumulate crea la entrada o suma su cantidad a la existente, de forma
	// atómica. Es la vía segura cuando la posición puede no existir todavía:
	// FOR UPDATE no bloquea filas ausentes, así que dos creaciones
	// concurrentes de la misma posición deben resolverse sumando, no
	// reemplazando.
	Accumulate(entry *entity.StockEntry) error
	// Delete elimina la entrada por ID (limpieza de filas en cero).
	Delete(id string) error
	// AllForProduct lista todas las posiciones con existencias del producto.
	AllForProduct(productID string) ([]entity.StockEntry, error)
	// ListByLocation lista las entradas de una location (vista de bodega).
	ListByLocation(locationID string) ([]entity.StockEntry, error)
	// DeleteByLocation y DeleteByProduct son los ganchos de cascada que
	// invocan los flujos de borrado de locations y productos.
	DeleteByLocation(locationID string) error
	DeleteByProduct(productID string) error
}
