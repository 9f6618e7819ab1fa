package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para órdenes de venta.
// Las órdenes son registros planos ("guardar y leer"); el generador de pick
// list solo necesita GetByID y GetLineItems.
type OrderRepository interface {
	Create(order *entity.Order, items []entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	// GetLineItems devuelve las líneas de la orden. Orden inexistente:
	// (nil, nil), no error.
	GetLineItems(orderID string) ([]entity.OrderItem, error)
	List(limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
