package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/stock"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido).
type StockHandler struct {
	uc        *stock.AllocationUseCase
	stockRepo repository.StockEntryRepository
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.AllocationUseCase, stockRepo repository.StockEntryRepository) *StockHandler {
	return &StockHandler{uc: uc, stockRepo: stockRepo}
}

// stockError mapea los errores del libro de stock a respuestas HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "la cantidad debe ser mayor que cero"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en la posición origen"})
	case errors.Is(err, domain.ErrSpotNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SPOT_NOT_FOUND", Message: "posición no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// AddStock godoc
// @Summary      Agregar stock a una posición
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "product_id, location_id, aisle/shelf/level opcionales, amount > 0"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/add [post]
func (h *StockHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddStockFromRequest(c.Context(), in); err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "stock agregado"})
}

// AssignProduct godoc
// @Summary      Asignar un producto a una posición (primera colocación)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Mismos campos que agregar stock"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/assign [post]
func (h *StockHandler) AssignProduct(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddStockFromRequest(c.Context(), in); err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "producto asignado"})
}

// Transfer godoc
// @Summary      Trasladar stock entre posiciones
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferStockRequest  true  "posición origen, posición destino, amount > 0"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/transfer [post]
func (h *StockHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.TransferFromRequest(c.Context(), in); err != nil {
		return stockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "traslado aplicado"})
}

// SpotsByProduct godoc
// @Summary      Posiciones con existencias de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/stock/products/{product_id} [get]
func (h *StockHandler) SpotsByProduct(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "product_id es requerido"})
	}
	spots, err := h.stockRepo.AllForProduct(productID)
	if err != nil {
		return stockError(c, err)
	}
	out := make([]dto.StockEntryResponse, 0, len(spots))
	for _, e := range spots {
		out = append(out, dto.ToStockEntryResponse(e))
	}
	return c.JSON(out)
}

// SpotsByLocation godoc
// @Summary      Posiciones de una location (vista de bodega)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_id  path  string  true  "ID de la location"
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /api/stock/locations/{location_id} [get]
func (h *StockHandler) SpotsByLocation(c *fiber.Ctx) error {
	locationID := c.Params("location_id")
	if locationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "location_id es requerido"})
	}
	spots, err := h.stockRepo.ListByLocation(locationID)
	if err != nil {
		return stockError(c, err)
	}
	out := make([]dto.StockEntryResponse, 0, len(spots))
	for _, e := range spots {
		out = append(out, dto.ToStockEntryResponse(e))
	}
	return c.JSON(out)
}
