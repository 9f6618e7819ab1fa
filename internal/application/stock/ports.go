package stock

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de posiciones atado a esa tx. Garantiza que las dos escrituras
// de un traslado se apliquen como unidad: o ambas quedan visibles o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(spots repository.StockEntryRepository) error) error
}
