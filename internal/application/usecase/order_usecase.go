package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// OrderUseCase registra y consulta órdenes de venta. Son registros planos:
// la lógica con invariantes vive en stock y picklist.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create registra una orden con sus líneas.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		CustomerName: in.CustomerName,
		Status:       entity.OrderStatusPending,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	if err := uc.repo.Create(order, items); err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// GetByID obtiene una orden con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.repo.GetLineItems(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// List lista órdenes con paginación (sin líneas).
func (uc *OrderUseCase) List(limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus cambia el estado de la orden (PENDING → PICKED → DELIVERED).
func (uc *OrderUseCase) UpdateStatus(id, status string) error {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusPicked,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled:
	default:
		return domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, status)
}

func toOrderResponse(o *entity.Order, items []entity.OrderItem) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	out := &dto.OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return out
}
