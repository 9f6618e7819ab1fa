package picklist

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/stock"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// GeneratorUseCase genera la pick list consolidada de una orden: una entrada
// por producto con la cantidad total a recoger y las posiciones donde hay
// existencias. Es de solo lectura: no reserva ni bloquea inventario, y puede
// observar una foto anterior o posterior a mutaciones concurrentes.
type GeneratorUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	stockRepo   repository.StockEntryRepository
	notifier    *stock.ChangeNotifier // opcional; nil desactiva Subscribe
	pdf         PDFGenerator          // opcional; nil desactiva GeneratePDF
}

// NewGeneratorUseCase construye el generador.
func NewGeneratorUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockEntryRepository,
	notifier *stock.ChangeNotifier,
	pdf PDFGenerator,
) *GeneratorUseCase {
	return &GeneratorUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		notifier:    notifier,
		pdf:         pdf,
	}
}

// Generate devuelve la pick list de la orden. Una orden inexistente o sin
// líneas produce una lista vacía, no un error: no hay nada que recoger.
func (uc *GeneratorUseCase) Generate(ctx context.Context, orderID string) ([]dto.PickListItemDTO, error) {
	items, err := uc.generateItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PickListItemDTO, 0, len(items))
	for _, it := range items {
		locations := make([]dto.StockEntryResponse, 0, len(it.AvailableLocations))
		for _, e := range it.AvailableLocations {
			locations = append(locations, dto.ToStockEntryResponse(e))
		}
		out = append(out, dto.PickListItemDTO{
			ProductID:          it.ProductID,
			ProductName:        it.ProductName,
			QuantityToPick:     it.QuantityToPick,
			AvailableLocations: locations,
		})
	}
	return out, nil
}

// generateItems agrupa las líneas por producto (sumando cantidades), resuelve
// el nombre del producto y adjunta todas las posiciones con existencias.
func (uc *GeneratorUseCase) generateItems(_ context.Context, orderID string) ([]entity.PickListItem, error) {
	lines, err := uc.orderRepo.GetLineItems(orderID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []entity.PickListItem{}, nil
	}

	// Agregación de demanda por producto, en orden de primera aparición.
	demand := make(map[string]int64, len(lines))
	productIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, seen := demand[line.ProductID]; !seen {
			productIDs = append(productIDs, line.ProductID)
		}
		demand[line.ProductID] += line.Quantity
	}

	items := make([]entity.PickListItem, 0, len(productIDs))
	for _, productID := range productIDs {
		// El respaldo "Unknown Product" es solo para producto ausente del
		// catálogo; una falla del almacenamiento se propaga tal cual.
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		name := entity.UnknownProductName
		if product != nil {
			name = product.Name
		}
		spots, err := uc.stockRepo.AllForProduct(productID)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.PickListItem{
			ProductID:          productID,
			ProductName:        name,
			QuantityToPick:     demand[productID],
			AvailableLocations: spots,
		})
	}
	return items, nil
}

// GeneratePDF genera la pick list en PDF para imprimir.
func (uc *GeneratorUseCase) GeneratePDF(ctx context.Context, orderID string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.generateItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePickListPDF(ctx, order, items)
}

// Subscribe devuelve un canal que recibe el productID de cada mutación de
// stock, para que la UI re-consulte la pick list. Cerrar con Unsubscribe.
func (uc *GeneratorUseCase) Subscribe() chan string {
	if uc.notifier == nil {
		return nil
	}
	return uc.notifier.Subscribe()
}

// Unsubscribe retira la suscripción obtenida con Subscribe.
func (uc *GeneratorUseCase) Unsubscribe(ch chan string) {
	if uc.notifier != nil && ch != nil {
		uc.notifier.Unsubscribe(ch)
	}
}
