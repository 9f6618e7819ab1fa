package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// CascadeTxRunner ejecuta el borrado en cascada (location o producto junto
// con sus posiciones de stock) dentro de una sola transacción.
type CascadeTxRunner interface {
	RunCascade(ctx context.Context, fn func(
		spots repository.StockEntryRepository,
		locations repository.LocationRepository,
		products repository.ProductRepository,
	) error) error
}
