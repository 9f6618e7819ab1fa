package stock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memSpotRepo implementación en memoria de StockEntryRepository, indexada por
// el ID determinista de posición.
type memSpotRepo struct {
	spots map[string]entity.StockEntry
}

func newMemSpotRepo() *memSpotRepo {
	return &memSpotRepo{spots: make(map[string]entity.StockEntry)}
}

func (m *memSpotRepo) FindSpot(productID, locationID string, aisle, shelf, level *string) (*entity.StockEntry, error) {
	id := entity.SpotID(productID, locationID, aisle, shelf, level)
	if e, ok := m.spots[id]; ok {
		cp := e
		return &cp, nil
	}
	return nil, nil
}

func (m *memSpotRepo) FindSpotForUpdate(productID, locationID string, aisle, shelf, level *string) (*entity.StockEntry, error) {
	return m.FindSpot(productID, locationID, aisle, shelf, level)
}

func (m *memSpotRepo) Upsert(entry *entity.StockEntry) error {
	m.spots[entry.ID] = *entry
	return nil
}

// Accumulate replica la semántica aditiva del ON CONFLICT: crea o suma.
func (m *memSpotRepo) Accumulate(entry *entity.StockEntry) error {
	if existing, ok := m.spots[entry.ID]; ok {
		existing.Quantity += entry.Quantity
		existing.UpdatedAt = entry.UpdatedAt
		m.spots[entry.ID] = existing
		return nil
	}
	m.spots[entry.ID] = *entry
	return nil
}

func (m *memSpotRepo) Delete(id string) error {
	delete(m.spots, id)
	return nil
}

func (m *memSpotRepo) AllForProduct(productID string) ([]entity.StockEntry, error) {
	var out []entity.StockEntry
	for _, e := range m.spots {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memSpotRepo) ListByLocation(locationID string) ([]entity.StockEntry, error) {
	var out []entity.StockEntry
	for _, e := range m.spots {
		if e.LocationID == locationID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memSpotRepo) DeleteByLocation(locationID string) error {
	for id, e := range m.spots {
		if e.LocationID == locationID {
			delete(m.spots, id)
		}
	}
	return nil
}

func (m *memSpotRepo) DeleteByProduct(productID string) error {
	for id, e := range m.spots {
		if e.ProductID == productID {
			delete(m.spots, id)
		}
	}
	return nil
}

// totalFor suma las existencias del producto en todas las posiciones
// (para verificar conservación en traslados).
func (m *memSpotRepo) totalFor(productID string) int64 {
	var total int64
	for _, e := range m.spots {
		if e.ProductID == productID {
			total += e.Quantity
		}
	}
	return total
}

// memTxRunner simula la transacción: toma un snapshot del estado y lo
// restaura si fn falla, igual que un Rollback.
type memTxRunner struct {
	repo *memSpotRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(spots repository.StockEntryRepository) error) error {
	snapshot := make(map[string]entity.StockEntry, len(r.repo.spots))
	for k, v := range r.repo.spots {
		snapshot[k] = v
	}
	if err := fn(r.repo); err != nil {
		r.repo.spots = snapshot
		return err
	}
	return nil
}

func newAllocationFixture() (*AllocationUseCase, *memSpotRepo) {
	repo := newMemSpotRepo()
	uc := NewAllocationUseCase(&memTxRunner{repo: repo}, nil)
	return uc, repo
}

func strPtr(s string) *string { return &s }

// blindLockSpotRepo simula la ventana del FOR UPDATE sobre una fila ausente:
// la lectura bloqueante devuelve nil aunque otra transacción ya haya creado
// la posición. El camino de creación debe sumar sobre lo existente.
type blindLockSpotRepo struct {
	*memSpotRepo
}

func (b *blindLockSpotRepo) FindSpotForUpdate(productID, locationID string, aisle, shelf, level *string) (*entity.StockEntry, error) {
	return nil, nil
}

type blindTxRunner struct {
	repo *blindLockSpotRepo
}

func (r *blindTxRunner) Run(_ context.Context, fn func(spots repository.StockEntryRepository) error) error {
	return fn(r.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddStockToLocation
// ──────────────────────────────────────────────────────────────────────────────

// Agregar dos veces a la misma posición acumula en una sola fila (aditividad).
func TestAddStock_EsAditivo(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	in := AddStockInput{ProductID: "prod-A", LocationID: "loc-1", Amount: 5}
	require.NoError(t, uc.AddStockToLocation(ctx, in))
	require.NoError(t, uc.AddStockToLocation(ctx, in))

	assert.Len(t, repo.spots, 1, "dos agregados iguales deben dejar una sola posición")
	spot, err := repo.FindSpot("prod-A", "loc-1", nil, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, spot)
	assert.Equal(t, int64(10), spot.Quantity, "5 + 5 debe acumular 10")
}

// Dos escrituras que ven la posición destino ausente a la vez (FOR UPDATE
// no bloquea filas inexistentes) no deben pisarse: la segunda acumula sobre
// la primera y la suma total se conserva.
func TestAddStock_CreacionConcurrenteNoPierdeActualizaciones(t *testing.T) {
	repo := &blindLockSpotRepo{memSpotRepo: newMemSpotRepo()}
	uc := NewAllocationUseCase(&blindTxRunner{repo: repo}, nil)
	ctx := context.Background()

	in := AddStockInput{ProductID: "prod-A", LocationID: "loc-1", Amount: 5}
	require.NoError(t, uc.AddStockToLocation(ctx, in))
	require.NoError(t, uc.AddStockToLocation(ctx, in))

	assert.Equal(t, int64(10), repo.totalFor("prod-A"),
		"la segunda creación debe sumar 5 + 5, no sobreescribir con 5")
}

// Cantidad cero o negativa: ErrInvalidAmount, sin tocar el estado.
func TestAddStock_CantidadInvalida(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	err := uc.AddStockToLocation(ctx, AddStockInput{ProductID: "p", LocationID: "l", Amount: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	err = uc.AddStockToLocation(ctx, AddStockInput{ProductID: "p", LocationID: "l", Amount: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	assert.Empty(t, repo.spots, "una cantidad inválida no debe crear posiciones")
}

// El ID de la posición creada es estable y las coordenadas se conservan.
func TestAddStock_IdentidadDePosicion(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	in := AddStockInput{
		ProductID:  "prod-A",
		LocationID: "loc-1",
		Aisle:      strPtr("A1"),
		Shelf:      strPtr("S2"),
		Amount:     7,
	}
	require.NoError(t, uc.AddStockToLocation(ctx, in))

	spot, err := repo.FindSpot("prod-A", "loc-1", strPtr("A1"), strPtr("S2"), nil)
	require.NoError(t, err)
	require.NotNil(t, spot)
	assert.Equal(t, entity.SpotID("prod-A", "loc-1", strPtr("A1"), strPtr("S2"), nil), spot.ID)
	assert.Equal(t, "A1", *spot.Aisle)
	assert.Equal(t, "S2", *spot.Shelf)
	assert.Nil(t, spot.Level, "un nivel no suministrado debe seguir siendo nil")
}

// AssignProductToLocation es un alias de AddStockToLocation.
func TestAssignProduct_EsSinonimoDeAgregar(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	require.NoError(t, uc.AssignProductToLocation(ctx, AddStockInput{ProductID: "p", LocationID: "l", Amount: 4}))
	require.NoError(t, uc.AddStockToLocation(ctx, AddStockInput{ProductID: "p", LocationID: "l", Amount: 6}))

	spot, _ := repo.FindSpot("p", "l", nil, nil, nil)
	require.NotNil(t, spot)
	assert.Equal(t, int64(10), spot.Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// TransferStock
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: agregar 20, trasladar 8, verificar 12 y 8.
func TestTransfer_EscenarioCompleto(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddStockToLocation(ctx, AddStockInput{
		ProductID: "prod-A", LocationID: "loc-1",
		Aisle: strPtr("A1"), Shelf: strPtr("S2"),
		Amount: 20,
	}))

	require.NoError(t, uc.TransferStock(ctx, TransferInput{
		ProductID:      "prod-A",
		FromLocationID: "loc-1", FromAisle: strPtr("A1"), FromShelf: strPtr("S2"),
		ToLocationID: "loc-2", ToAisle: strPtr("B1"), ToShelf: strPtr("S1"),
		Amount: 8,
	}))

	origen, err := repo.FindSpot("prod-A", "loc-1", strPtr("A1"), strPtr("S2"), nil)
	require.NoError(t, err)
	require.NotNil(t, origen)
	assert.Equal(t, int64(12), origen.Quantity)

	destino, err := repo.FindSpot("prod-A", "loc-2", strPtr("B1"), strPtr("S1"), nil)
	require.NoError(t, err)
	require.NotNil(t, destino)
	assert.Equal(t, int64(8), destino.Quantity)

	assert.Equal(t, int64(20), repo.totalFor("prod-A"),
		"el traslado debe conservar el total de existencias del producto")
}

// Trasladar más de lo disponible: ErrInsufficientStock y ambas posiciones
// quedan exactamente como estaban.
func TestTransfer_StockInsuficiente(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddStockToLocation(ctx, AddStockInput{
		ProductID: "prod-A", LocationID: "loc-1", Aisle: strPtr("A1"), Shelf: strPtr("S2"), Amount: 20,
	}))
	require.NoError(t, uc.TransferStock(ctx, TransferInput{
		ProductID:      "prod-A",
		FromLocationID: "loc-1", FromAisle: strPtr("A1"), FromShelf: strPtr("S2"),
		ToLocationID: "loc-2", ToAisle: strPtr("B1"), ToShelf: strPtr("S1"),
		Amount: 8,
	}))

	err := uc.TransferStock(ctx, TransferInput{
		ProductID:      "prod-A",
		FromLocationID: "loc-1", FromAisle: strPtr("A1"), FromShelf: strPtr("S2"),
		ToLocationID: "loc-2", ToAisle: strPtr("B1"), ToShelf: strPtr("S1"),
		Amount: 100,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	origen, _ := repo.FindSpot("prod-A", "loc-1", strPtr("A1"), strPtr("S2"), nil)
	destino, _ := repo.FindSpot("prod-A", "loc-2", strPtr("B1"), strPtr("S1"), nil)
	require.NotNil(t, origen)
	require.NotNil(t, destino)
	assert.Equal(t, int64(12), origen.Quantity, "el origen no debe cambiar tras un traslado fallido")
	assert.Equal(t, int64(8), destino.Quantity, "el destino no debe cambiar tras un traslado fallido")
}

// Trasladar desde una posición inexistente también es stock insuficiente.
func TestTransfer_OrigenInexistente(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	err := uc.TransferStock(ctx, TransferInput{
		ProductID:      "prod-A",
		FromLocationID: "loc-nada",
		ToLocationID:   "loc-2",
		Amount:         1,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, repo.spots)
}

// Origen y destino idénticos: éxito sin efecto.
func TestTransfer_MismaPosicionEsNoOp(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddStockToLocation(ctx, AddStockInput{
		ProductID: "prod-A", LocationID: "loc-1", Aisle: strPtr("A1"), Amount: 9,
	}))

	require.NoError(t, uc.TransferStock(ctx, TransferInput{
		ProductID:      "prod-A",
		FromLocationID: "loc-1", FromAisle: strPtr("A1"),
		ToLocationID: "loc-1", ToAisle: strPtr("A1"),
		Amount: 5,
	}))

	spot, _ := repo.FindSpot("prod-A", "loc-1", strPtr("A1"), nil, nil)
	require.NotNil(t, spot)
	assert.Equal(t, int64(9), spot.Quantity, "un traslado a la misma posición no debe mutar nada")
}

// Vaciar el origen por completo elimina la fila (limpieza) y conserva el total.
func TestTransfer_VaciaElOrigen(t *testing.T) {
	uc, repo := newAllocationFixture()
	ctx := context.Background()

	require.NoError(t, uc.AddStockToLocation(ctx, AddStockInput{
		ProductID: "prod-A", LocationID: "loc-1", Amount: 5,
	}))
	require.NoError(t, uc.TransferStock(ctx, TransferInput{
		ProductID:      "prod-A",
		FromLocationID: "loc-1",
		ToLocationID:   "loc-2",
		Amount:         5,
	}))

	origen, _ := repo.FindSpot("prod-A", "loc-1", nil, nil, nil)
	assert.Nil(t, origen, "una posición vaciada por traslado debe eliminarse")

	destino, _ := repo.FindSpot("prod-A", "loc-2", nil, nil, nil)
	require.NotNil(t, destino)
	assert.Equal(t, int64(5), destino.Quantity)
	assert.Equal(t, int64(5), repo.totalFor("prod-A"))
}

// Cantidad inválida en traslado: ErrInvalidAmount.
func TestTransfer_CantidadInvalida(t *testing.T) {
	uc, _ := newAllocationFixture()
	ctx := context.Background()

	err := uc.TransferStock(ctx, TransferInput{
		ProductID: "p", FromLocationID: "a", ToLocationID: "b", Amount: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// Las mutaciones exitosas avisan al notificador; las fallidas no.
func TestAllocation_NotificaCambios(t *testing.T) {
	repo := newMemSpotRepo()
	notifier := NewChangeNotifier()
	uc := NewAllocationUseCase(&memTxRunner{repo: repo}, notifier)
	ctx := context.Background()

	ch := notifier.Subscribe()
	defer notifier.Unsubscribe(ch)

	require.NoError(t, uc.AddStockToLocation(ctx, AddStockInput{ProductID: "prod-A", LocationID: "loc-1", Amount: 3}))

	select {
	case productID := <-ch:
		assert.Equal(t, "prod-A", productID)
	case <-time.After(time.Second):
		t.Fatal("se esperaba un aviso de cambio de stock")
	}

	// Una mutación rechazada no debe emitir aviso.
	_ = uc.AddStockToLocation(ctx, AddStockInput{ProductID: "prod-A", LocationID: "loc-1", Amount: -1})
	select {
	case <-ch:
		t.Fatal("una mutación fallida no debe notificar")
	default:
	}
}
