package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/picklist"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// PickListHandler maneja la generación de pick lists (protegido).
type PickListHandler struct {
	uc *picklist.GeneratorUseCase
}

// NewPickListHandler construye el handler.
func NewPickListHandler(uc *picklist.GeneratorUseCase) *PickListHandler {
	return &PickListHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar la pick list de una orden
// @Description  Una entrada por producto con la cantidad total a recoger y las
//
//	posiciones con existencias. Orden inexistente: lista vacía.
//
// @Tags         picklist
// @Security     Bearer
// @Produce      json
// @Param        order_id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PickListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/{order_id}/picklist [get]
func (h *PickListHandler) Generate(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "order_id es requerido"})
	}
	items, err := h.uc.Generate(c.Context(), orderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PickListResponse{OrderID: orderID, Items: items})
}

// GeneratePDF godoc
// @Summary      Hoja de picking en PDF
// @Tags         picklist
// @Security     Bearer
// @Produce      application/pdf
// @Param        order_id  path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{order_id}/picklist.pdf [get]
func (h *PickListHandler) GeneratePDF(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "order_id es requerido"})
	}
	pdfBytes, err := h.uc.GeneratePDF(c.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="picklist-`+orderID+`.pdf"`)
	return c.Send(pdfBytes)
}
