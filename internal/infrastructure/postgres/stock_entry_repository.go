package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación de StockEntryRepository sobre PostgreSQL
// (usable con pool o tx). El id de la fila es el UUID determinista de la
// tupla de posición, así que buscar por coordenadas es buscar por id.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

const stockEntryColumns = `id, product_id, location_id, aisle, shelf, level, quantity, updated_at`

func scanStockEntry(row pgx.Row) (*entity.StockEntry, error) {
	var e entity.StockEntry
	err := row.Scan(&e.ID, &e.ProductID, &e.LocationID, &e.Aisle, &e.Shelf, &e.Level, &e.Quantity, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindSpot busca la entrada por su tupla exacta. (nil, nil) si no existe.
func (r *StockEntryRepo) FindSpot(productID, locationID string, aisle, shelf, level *string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE id = $1`
	id := entity.SpotID(productID, locationID, aisle, shelf, level)
	e, err := scanStockEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("buscar posición", err)
	}
	return e, nil
}

// FindSpotForUpdate igual que FindSpot pero con bloqueo de fila (SELECT FOR UPDATE),
// para serializar mutaciones concurrentes sobre la misma posición.
func (r *StockEntryRepo) FindSpotForUpdate(productID, locationID string, aisle, shelf, level *string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE id = $1 FOR UPDATE`
	id := entity.SpotID(productID, locationID, aisle, shelf, level)
	e, err := scanStockEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStorageError("buscar posición (for update)", err)
	}
	return e, nil
}

// Upsert inserta o reemplaza la entrada por su identidad de posición.
func (r *StockEntryRepo) Upsert(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, product_id, location_id, aisle, shelf, level, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.LocationID,
		entry.Aisle, entry.Shelf, entry.Level,
		entry.Quantity, entry.UpdatedAt,
	)
	if err != nil {
		return domain.NewStorageError("upsert posición", err)
	}
	return nil
}

// Accumulate inserta la entrada o suma su cantidad a la fila existente. El
// conflicto se resuelve de forma aditiva: si dos transacciones crean la misma
// posición a la vez, la segunda suma sobre lo que dejó la primera en lugar de
// sobreescribirlo.
func (r *StockEntryRepo) Accumulate(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, product_id, location_id, aisle, shelf, level, quantity, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id)
		DO UPDATE SET quantity = stock_entries.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.LocationID,
		entry.Aisle, entry.Shelf, entry.Level,
		entry.Quantity, entry.UpdatedAt,
	)
	if err != nil {
		return domain.NewStorageError("acumular posición", err)
	}
	return nil
}

// Delete elimina la entrada por ID.
func (r *StockEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return domain.NewStorageError("eliminar posición", err)
	}
	return nil
}

// AllForProduct lista todas las posiciones con existencias del producto.
func (r *StockEntryRepo) AllForProduct(productID string) ([]entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE product_id = $1 ORDER BY location_id, aisle, shelf, level`
	return r.queryEntries(query, productID)
}

// ListByLocation lista las entradas de una location.
func (r *StockEntryRepo) ListByLocation(locationID string) ([]entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE location_id = $1 ORDER BY product_id, aisle, shelf, level`
	return r.queryEntries(query, locationID)
}

func (r *StockEntryRepo) queryEntries(query string, arg any) ([]entity.StockEntry, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, domain.NewStorageError("listar posiciones", err)
	}
	defer rows.Close()
	var out []entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.LocationID, &e.Aisle, &e.Shelf, &e.Level, &e.Quantity, &e.UpdatedAt); err != nil {
			return nil, domain.NewStorageError("scan posición", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("listar posiciones", err)
	}
	return out, nil
}

// DeleteByLocation elimina en cascada las posiciones de una location.
func (r *StockEntryRepo) DeleteByLocation(locationID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE location_id = $1`, locationID)
	if err != nil {
		return domain.NewStorageError("cascada por location", err)
	}
	return nil
}

// DeleteByProduct elimina en cascada las posiciones de un producto.
func (r *StockEntryRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE product_id = $1`, productID)
	if err != nil {
		return domain.NewStorageError("cascada por producto", err)
	}
	return nil
}
