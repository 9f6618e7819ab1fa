package picklist

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// PDFGenerator renderiza una pick list imprimible (hoja para el bodeguero).
type PDFGenerator interface {
	GeneratePickListPDF(ctx context.Context, order *entity.Order, items []entity.PickListItem) ([]byte, error)
}
