package catalog

import (
	"encoding/json"

	"github.com/opiegroup/boscotek2026-sub003/internal/models"
)

// FamilyDefaults carries the fallback dimensions used when neither explicit
// dimensions nor a resolvable option selection is present. The fallback chain
// is total: every family always resolves to a value.
var FamilyDefaults = map[models.ProductFamily]models.Dimensions{
	models.FamilyHDCabinet:       {Width: 560, Height: 850, Depth: 630},
	models.FamilyWorkbench:       {Width: 1800, Height: 900, Depth: 750},
	models.FamilyToolCart:        {Width: 580, Height: 960, Depth: 700},
	models.FamilyServerRack:      {Width: 600, Height: 2000, Depth: 1000},
	models.FamilyStorageCupboard: {Width: 900, Height: 1800, Depth: 450},
	models.FamilyLiftBench:       {Width: 1500, Height: 1250, Depth: 750},
}

// Option group identifiers per axis, shared across families.
const (
	GroupWidth  = "width"
	GroupHeight = "height"
	GroupDepth  = "depth"

	GroupDrawers         = "drawers"
	GroupColourBody      = "colour-body"
	GroupColourFront     = "colour-front"
	GroupWorktopMaterial = "worktop-material"
	GroupUnderBench      = "under-bench"
	GroupAboveBench      = "above-bench"
	GroupLiftModel       = "lift-model"
	GroupBayLayout       = "bay-layout"
	GroupLoadRating      = "load-rating"
	GroupCastors         = "castors"
)

// MetaDimensionMM is the option metadata key carrying a dimension in
// millimetres. Options without it fall back to their raw numeric value.
const MetaDimensionMM = "dimension_mm"

// MetaDrawerHeights is the option metadata key carrying a drawer height list.
const MetaDrawerHeights = "drawer_heights"

// DimensionMM extracts the millimetre magnitude of a dimensional option:
// metadata field first, raw value second.
func DimensionMM(opt *models.Option) (float64, bool) {
	if opt == nil {
		return 0, false
	}
	if opt.Meta != nil {
		if raw, ok := opt.Meta[MetaDimensionMM]; ok {
			if v, ok := toFloat(raw); ok && v > 0 {
				return v, true
			}
		}
	}
	if opt.Value != nil && *opt.Value > 0 {
		return *opt.Value, true
	}
	return 0, false
}

// DrawerHeights extracts a drawer height list from option metadata.
func DrawerHeights(opt *models.Option) []float64 {
	if opt == nil || opt.Meta == nil {
		return nil
	}
	raw, ok := opt.Meta[MetaDrawerHeights]
	if !ok {
		return nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	heights := make([]float64, 0, len(list))
	for _, item := range list {
		if v, ok := toFloat(item); ok && v > 0 {
			heights = append(heights, v)
		}
	}
	return heights
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
