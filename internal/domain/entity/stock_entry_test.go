package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// El ID de una posición debe ser estable: mismas coordenadas, mismo ID.
func TestSpotID_Determinista(t *testing.T) {
	a := SpotID("prod-1", "loc-1", strPtr("A1"), strPtr("S2"), nil)
	b := SpotID("prod-1", "loc-1", strPtr("A1"), strPtr("S2"), nil)
	assert.Equal(t, a, b, "mismas coordenadas deben producir el mismo ID")
}

// Coordenadas distintas deben producir IDs distintos.
func TestSpotID_DistingueCoordenadas(t *testing.T) {
	base := SpotID("prod-1", "loc-1", strPtr("A1"), strPtr("S2"), nil)

	assert.NotEqual(t, base, SpotID("prod-2", "loc-1", strPtr("A1"), strPtr("S2"), nil))
	assert.NotEqual(t, base, SpotID("prod-1", "loc-2", strPtr("A1"), strPtr("S2"), nil))
	assert.NotEqual(t, base, SpotID("prod-1", "loc-1", strPtr("A2"), strPtr("S2"), nil))
	assert.NotEqual(t, base, SpotID("prod-1", "loc-1", strPtr("A1"), nil, nil))
}

// nil y cadena vacía son coordenadas diferentes (ausente vs. presente-vacía).
func TestSpotID_NilNoEsVacio(t *testing.T) {
	conNil := SpotID("prod-1", "loc-1", nil, nil, nil)
	conVacio := SpotID("prod-1", "loc-1", strPtr(""), nil, nil)
	assert.NotEqual(t, conNil, conVacio, "nil y \"\" deben ser posiciones distintas")
}

// NewStockEntry conserva las coordenadas tal cual se suministran.
func TestNewStockEntry_ConservaCoordenadas(t *testing.T) {
	now := time.Now()
	e := NewStockEntry("prod-1", "loc-1", strPtr("A1"), strPtr("S2"), nil, 20, now)

	require.NotNil(t, e)
	assert.Equal(t, SpotID("prod-1", "loc-1", strPtr("A1"), strPtr("S2"), nil), e.ID)
	require.NotNil(t, e.Aisle)
	assert.Equal(t, "A1", *e.Aisle)
	require.NotNil(t, e.Shelf)
	assert.Equal(t, "S2", *e.Shelf)
	assert.Nil(t, e.Level, "un nivel no suministrado debe seguir siendo nil")
	assert.Equal(t, int64(20), e.Quantity)
}

// SameSpot detecta origen y destino idénticos en un traslado.
func TestSameSpot(t *testing.T) {
	assert.True(t, SameSpot(
		"p", "l", strPtr("A"), nil, nil,
		"p", "l", strPtr("A"), nil, nil,
	))
	assert.False(t, SameSpot(
		"p", "l", strPtr("A"), nil, nil,
		"p", "l", strPtr("B"), nil, nil,
	))
}
