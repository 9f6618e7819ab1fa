package stock

import (
	"context"
	"time"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// AllocationUseCase muta el libro de stock: agrega existencias a una posición
// y traslada existencias entre posiciones, de forma transaccional y con
// bloqueo de fila (SELECT FOR UPDATE). Nunca deja efectos parciales.
type AllocationUseCase struct {
	txRunner TxRunner
	notifier *ChangeNotifier // opcional; nil desactiva los avisos
}

// NewAllocationUseCase construye el caso de uso.
func NewAllocationUseCase(txRunner TxRunner, notifier *ChangeNotifier) *AllocationUseCase {
	return &AllocationUseCase{txRunner: txRunner, notifier: notifier}
}

// AddStockInput entrada para agregar stock a una posición.
type AddStockInput struct {
	ProductID  string
	LocationID string
	Aisle      *string
	Shelf      *string
	Level      *string
	Amount     int64
}

// TransferInput entrada para trasladar stock entre dos posiciones.
type TransferInput struct {
	ProductID      string
	FromLocationID string
	FromAisle      *string
	FromShelf      *string
	FromLevel      *string
	ToLocationID   string
	ToAisle        *string
	ToShelf        *string
	ToLevel        *string
	Amount         int64
}

// AddStockToLocation agrega Amount unidades a la posición exacta. Si la
// posición no existe la crea; si existe, acumula (es aditiva: dos llamadas
// iguales suman, como dos llegadas físicas de mercancía).
func (uc *AllocationUseCase) AddStockToLocation(ctx context.Context, in AddStockInput) error {
	if in.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if in.ProductID == "" || in.LocationID == "" {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(spots repository.StockEntryRepository) error {
		return addToSpot(spots, in.ProductID, in.LocationID, in.Aisle, in.Shelf, in.Level, in.Amount)
	})
	if err != nil {
		return err
	}
	uc.notifyChange(in.ProductID)
	return nil
}

// AssignProductToLocation coloca un producto por primera vez en una posición.
// Sinónimo de AddStockToLocation, sin semántica adicional.
func (uc *AllocationUseCase) AssignProductToLocation(ctx context.Context, in AddStockInput) error {
	return uc.AddStockToLocation(ctx, in)
}

// TransferStock traslada Amount unidades de la posición origen a la destino
// dentro de una sola transacción. Origen inexistente o con existencias
// insuficientes: ErrInsufficientStock sin ningún efecto. Origen y destino
// idénticos: éxito sin efecto.
func (uc *AllocationUseCase) TransferStock(ctx context.Context, in TransferInput) error {
	if in.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" {
		return domain.ErrInvalidInput
	}
	if entity.SameSpot(
		in.ProductID, in.FromLocationID, in.FromAisle, in.FromShelf, in.FromLevel,
		in.ProductID, in.ToLocationID, in.ToAisle, in.ToShelf, in.ToLevel,
	) {
		return nil
	}

	err := uc.txRunner.Run(ctx, func(spots repository.StockEntryRepository) error {
		// Bloquea la fila origen para que dos traslados concurrentes del
		// mismo origen se serialicen y no haya lost updates.
		origin, err := spots.FindSpotForUpdate(in.ProductID, in.FromLocationID, in.FromAisle, in.FromShelf, in.FromLevel)
		if err != nil {
			return err
		}
		if origin == nil || origin.Quantity < in.Amount {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		origin.Quantity -= in.Amount
		origin.UpdatedAt = now
		if origin.Quantity == 0 {
			// Limpieza: un traslado que vacía el origen elimina la fila.
			if err := spots.Delete(origin.ID); err != nil {
				return err
			}
		} else if err := spots.Upsert(origin); err != nil {
			return err
		}

		return addToSpot(spots, in.ProductID, in.ToLocationID, in.ToAisle, in.ToShelf, in.ToLevel, in.Amount)
	})
	if err != nil {
		return err
	}
	uc.notifyChange(in.ProductID)
	return nil
}

// addToSpot aplica la regla crear-o-incrementar sobre la posición exacta.
func addToSpot(spots repository.StockEntryRepository, productID, locationID string, aisle, shelf, level *string, amount int64) error {
	now := time.Now()
	spot, err := spots.FindSpotForUpdate(productID, locationID, aisle, shelf, level)
	if err != nil {
		return err
	}
	if spot == nil {
		// Fila ausente: el FOR UPDATE no bloqueó nada, así que otra tx puede
		// estar creando la misma posición. Accumulate resuelve ese choque
		// sumando en vez de reemplazar.
		return spots.Accumulate(entity.NewStockEntry(productID, locationID, aisle, shelf, level, amount, now))
	}
	spot.Quantity += amount
	spot.UpdatedAt = now
	return spots.Upsert(spot)
}

func (uc *AllocationUseCase) notifyChange(productID string) {
	if uc.notifier != nil {
		uc.notifier.Notify(productID)
	}
}

// AddStockFromRequest adapta el request HTTP al caso de uso.
func (uc *AllocationUseCase) AddStockFromRequest(ctx context.Context, in dto.AddStockRequest) error {
	return uc.AddStockToLocation(ctx, AddStockInput{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Aisle:      in.Aisle,
		Shelf:      in.Shelf,
		Level:      in.Level,
		Amount:     in.Amount,
	})
}

// TransferFromRequest adapta el request HTTP al caso de uso.
func (uc *AllocationUseCase) TransferFromRequest(ctx context.Context, in dto.TransferStockRequest) error {
	return uc.TransferStock(ctx, TransferInput{
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		FromAisle:      in.FromAisle,
		FromShelf:      in.FromShelf,
		FromLevel:      in.FromLevel,
		ToLocationID:   in.ToLocationID,
		ToAisle:        in.ToAisle,
		ToShelf:        in.ToShelf,
		ToLevel:        in.ToLevel,
		Amount:         in.Amount,
	})
}
