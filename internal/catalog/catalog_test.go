package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiegroup/boscotek2026-sub003/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestFamilyDefaultsCoverEveryFamily(t *testing.T) {
	families := []models.ProductFamily{
		models.FamilyHDCabinet,
		models.FamilyWorkbench,
		models.FamilyToolCart,
		models.FamilyServerRack,
		models.FamilyStorageCupboard,
		models.FamilyLiftBench,
	}

	for _, family := range families {
		def, ok := FamilyDefaults[family]
		require.True(t, ok, "missing defaults for %s", family)
		assert.Greater(t, def.Width, 0.0)
		assert.Greater(t, def.Height, 0.0)
		assert.Greater(t, def.Depth, 0.0)
	}
}

func TestDimensionMM(t *testing.T) {
	tests := []struct {
		name   string
		opt    *models.Option
		want   float64
		wantOK bool
	}{
		{"nil option", nil, 0, false},
		{
			"metadata wins over value",
			&models.Option{Value: floatPtr(500), Meta: map[string]interface{}{MetaDimensionMM: 710.0}},
			710, true,
		},
		{
			"raw value fallback",
			&models.Option{Value: floatPtr(900)},
			900, true,
		},
		{
			"json number metadata",
			&models.Option{Meta: map[string]interface{}{MetaDimensionMM: json.Number("1200")}},
			1200, true,
		},
		{
			"non-positive metadata ignored",
			&models.Option{Value: floatPtr(450), Meta: map[string]interface{}{MetaDimensionMM: 0.0}},
			450, true,
		},
		{"nothing resolvable", &models.Option{Code: "X"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DimensionMM(tt.opt)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDrawerHeights(t *testing.T) {
	opt := &models.Option{Meta: map[string]interface{}{
		MetaDrawerHeights: []interface{}{75.0, json.Number("250"), 150.0, -10.0},
	}}

	assert.Equal(t, []float64{75, 250, 150}, DrawerHeights(opt))
	assert.Nil(t, DrawerHeights(nil))
	assert.Nil(t, DrawerHeights(&models.Option{}))
}

func TestColourName(t *testing.T) {
	assert.Equal(t, "Graphite Ripple", ColourName("X15"))
	assert.Equal(t, "Hi-Vis Orange", ColourName("O26"))
	// Unknown codes pass through unchanged.
	assert.Equal(t, "Z99", ColourName("Z99"))
}

func TestLiftModelByCode(t *testing.T) {
	m, ok := LiftModelByCode("DL6")
	require.True(t, ok)
	assert.Equal(t, 600.0, m.CapacityKg)
	assert.Equal(t, 1250.0, m.MaxHeightMm)

	_, ok = LiftModelByCode("DL99")
	assert.False(t, ok)

	def, ok := LiftModelByCode(DefaultLiftModel)
	require.True(t, ok)
	assert.Equal(t, "DL4", def.Code)
}
