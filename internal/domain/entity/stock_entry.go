package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// spotNamespace es el namespace UUID para derivar IDs de posición (v5/SHA1).
var spotNamespace = uuid.MustParse("8f2a1d6c-5b3e-4a87-9c01-d24e6f9b7a55")

// StockEntry representa la cantidad de un producto en una posición exacta
// dentro de una Location. La tupla (producto, location, pasillo, estante,
// nivel) es única: nunca hay dos filas para la misma posición.
//
// Aisle/Shelf/Level son opcionales: nil significa "sin coordenada", distinto
// de la cadena vacía.
type StockEntry struct {
	ID         string
	ProductID  string
	LocationID string
	Aisle      *string
	Shelf      *string
	Level      *string
	Quantity   int64 // invariante: nunca negativa
	UpdatedAt  time.Time
}

// SpotID deriva el ID de la posición de forma determinista a partir de su
// tupla de coordenadas (UUID v5). Buscar por coordenadas equivale a buscar
// por ID, lo que elimina duplicados por desajuste identidad/coordenadas.
func SpotID(productID, locationID string, aisle, shelf, level *string) string {
	key := strings.Join([]string{
		productID,
		locationID,
		coordKey(aisle),
		coordKey(shelf),
		coordKey(level),
	}, "|")
	return uuid.NewSHA1(spotNamespace, []byte(key)).String()
}

// coordKey canoniza una coordenada opcional: ausente y vacía son claves
// distintas.
func coordKey(c *string) string {
	if c == nil {
		return "none"
	}
	return "v:" + *c
}

// NewStockEntry construye una entrada con su ID derivado de la tupla.
func NewStockEntry(productID, locationID string, aisle, shelf, level *string, quantity int64, now time.Time) *StockEntry {
	return &StockEntry{
		ID:         SpotID(productID, locationID, aisle, shelf, level),
		ProductID:  productID,
		LocationID: locationID,
		Aisle:      aisle,
		Shelf:      shelf,
		Level:      level,
		Quantity:   quantity,
		UpdatedAt:  now,
	}
}

// SameSpot indica si ambas tuplas resuelven a la misma posición física.
func SameSpot(aProductID, aLocationID string, aAisle, aShelf, aLevel *string,
	bProductID, bLocationID string, bAisle, bShelf, bLevel *string) bool {
	return SpotID(aProductID, aLocationID, aAisle, aShelf, aLevel) ==
		SpotID(bProductID, bLocationID, bAisle, bShelf, bLevel)
}
