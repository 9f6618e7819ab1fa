// Package pdf implementa la hoja de picking imprimible que el bodeguero
// lleva consigo para armar una orden.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "HOJA DE PICKING" │ N° Orden + Fecha + Cliente      │
//	│  ───────────────────────────────────────────────────────── │
//	│  Por producto: nombre + cantidad a recoger                  │
//	│    TABLA: Location | Pasillo | Estante | Nivel | Disponible │
//	│  ───────────────────────────────────────────────────────── │
//	│  PIE: total de productos y unidades                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bodega-api/internal/application/picklist"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ picklist.PDFGenerator = (*MarotoPickListGenerator)(nil)

// MarotoPickListGenerator implementa picklist.PDFGenerator usando Maroto v2.
type MarotoPickListGenerator struct{}

// NewMarotoPickListGenerator construye el generador.
func NewMarotoPickListGenerator() *MarotoPickListGenerator { return &MarotoPickListGenerator{} }

// GeneratePickListPDF genera la hoja de picking y devuelve sus bytes.
func (g *MarotoPickListGenerator) GeneratePickListPDF(
	_ context.Context,
	order *entity.Order,
	items []entity.PickListItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de Picking", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, item := range items {
		m.AddRows(productRow(item))
		m.AddRows(spotsHeaderRow())
		for _, spot := range item.AvailableLocations {
			m.AddRows(spotRow(spot))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(footerRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número de orden + fecha + cliente (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")
	return row.New(16).Add(
		col.New(6).Add(
			text.New("HOJA DE PICKING", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New("Orden: "+order.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Cliente: "+nonEmpty(order.CustomerName, "N/A"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// productRow: nombre del producto y cantidad total a recoger.
func productRow(item entity.PickListItem) core.Row {
	return row.New(9).Add(
		col.New(8).Add(
			text.New(item.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Recoger: %d", item.QuantityToPick), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

func spotsHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		header("Location", 4),
		header("Pasillo", 2),
		header("Estante", 2),
		header("Nivel", 2),
		header("Disponible", 2),
	)
}

func spotRow(spot entity.StockEntry) core.Row {
	cell := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1}))
	}
	return row.New(5).Add(
		cell(spot.LocationID, 4),
		cell(coordOrDash(spot.Aisle), 2),
		cell(coordOrDash(spot.Shelf), 2),
		cell(coordOrDash(spot.Level), 2),
		cell(fmt.Sprintf("%d", spot.Quantity), 2),
	)
}

// footerRow: totales de la hoja.
func footerRow(items []entity.PickListItem) core.Row {
	var unidades int64
	for _, item := range items {
		unidades += item.QuantityToPick
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d productos, %d unidades en total", len(items), unidades), props.Text{
				Size: 9, Style: fontstyle.Bold, Top: 2, Align: align.Right,
			}),
		),
	)
}

func coordOrDash(c *string) string {
	if c == nil || *c == "" {
		return "-"
	}
	return *c
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
