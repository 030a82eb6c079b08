package ifc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/opiegroup/boscotek2026-sub003/internal/catalog"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

// geometryBuilder is implemented once per product family. Each build emits a
// flat list of solids in world coordinates; the assembler wraps them into the
// single shape representation.
type geometryBuilder interface {
	buildGeometry(g *genState, rc *resolvedConfig) ([]Ref, error)
}

// familyBuilders is the closed dispatch table. A family tag outside this map
// aborts generation before any output is produced.
var familyBuilders = map[models.ProductFamily]geometryBuilder{
	models.FamilyHDCabinet:       cabinetBuilder{},
	models.FamilyWorkbench:       workbenchBuilder{},
	models.FamilyToolCart:        toolCartBuilder{},
	models.FamilyServerRack:      serverRackBuilder{},
	models.FamilyStorageCupboard: cupboardBuilder{},
	models.FamilyLiftBench:       liftBenchBuilder{},
}

// resolvedConfig is the configuration after dimension, drawer and lift-model
// resolution. Both the geometry builders and the property set read from it so
// the two never disagree.
type resolvedConfig struct {
	family  models.ProductFamily
	width   float64
	height  float64
	depth   float64
	cfg     *models.Configuration
	product *models.Product
	drawers []float64
	lift    catalog.LiftModel
}

func resolveConfig(cfg *models.Configuration, product *models.Product) (*resolvedConfig, error) {
	if _, ok := familyBuilders[cfg.ProductFamily]; !ok {
		return nil, utils.NewAppError(utils.CodeUnsupportedFamily,
			"product family is not in the supported catalogue", utils.ErrUnsupportedFamily).
			WithDetail("product_family", string(cfg.ProductFamily))
	}

	rc := &resolvedConfig{
		family:  cfg.ProductFamily,
		cfg:     cfg,
		product: product,
		drawers: resolveDrawers(cfg, product),
	}
	rc.width, rc.height, rc.depth = resolveDimensions(cfg, product)

	if cfg.ProductFamily == models.FamilyLiftBench {
		code := catalog.DefaultLiftModel
		if id, ok := cfg.Selected(catalog.GroupLiftModel); ok {
			if opt, found := product.FindOption(catalog.GroupLiftModel, id); found && opt.Code != "" {
				code = opt.Code
			}
		}
		lift, ok := catalog.LiftModelByCode(code)
		if !ok {
			lift, _ = catalog.LiftModelByCode(catalog.DefaultLiftModel)
		}
		rc.lift = lift
		// Exports always show the bench at full extension for clearance
		// checking; any supplied "current" height is ignored.
		rc.height = lift.MaxHeightMm
	}

	return rc, nil
}

// Summary is the resolved view of a configuration, exposed for datasheet
// rendering so it cannot drift from what the geometry was built against.
type Summary struct {
	Family        models.ProductFamily
	Width         float64
	Height        float64
	Depth         float64
	DrawerHeights []float64
	DrawerCode    string
	LiftModel     string
}

func Summarize(cfg *models.Configuration, product *models.Product) (*Summary, error) {
	rc, err := resolveConfig(cfg, product)
	if err != nil {
		return nil, err
	}
	s := &Summary{
		Family:        rc.family,
		Width:         rc.width,
		Height:        rc.height,
		Depth:         rc.depth,
		DrawerHeights: sortedDrawerHeights(rc.drawers),
	}
	if len(rc.drawers) > 0 {
		s.DrawerCode = drawerConfigurationCode(rc.drawers)
	}
	if rc.family == models.FamilyLiftBench {
		s.LiftModel = rc.lift.Code
	}
	return s, nil
}

// resolveDimensions applies the fallback chain per axis: explicit
// configuration dimensions win, then the selected option's millimetre
// metadata or raw value, then the family default. The chain is total.
func resolveDimensions(cfg *models.Configuration, product *models.Product) (w, h, d float64) {
	def := catalog.FamilyDefaults[cfg.ProductFamily]
	w, h, d = def.Width, def.Height, def.Depth

	if cfg.Dimensions != nil {
		if cfg.Dimensions.Width > 0 {
			w = cfg.Dimensions.Width
		}
		if cfg.Dimensions.Height > 0 {
			h = cfg.Dimensions.Height
		}
		if cfg.Dimensions.Depth > 0 {
			d = cfg.Dimensions.Depth
		}
		return w, h, d
	}

	if v, ok := selectedDimension(cfg, product, catalog.GroupWidth); ok {
		w = v
	}
	if v, ok := selectedDimension(cfg, product, catalog.GroupHeight); ok {
		h = v
	}
	if v, ok := selectedDimension(cfg, product, catalog.GroupDepth); ok {
		d = v
	}
	return w, h, d
}

func selectedDimension(cfg *models.Configuration, product *models.Product, groupID string) (float64, bool) {
	id, ok := cfg.Selected(groupID)
	if !ok {
		return 0, false
	}
	opt, found := product.FindOption(groupID, id)
	if !found {
		return 0, false
	}
	return catalog.DimensionMM(opt)
}

func resolveDrawers(cfg *models.Configuration, product *models.Product) []float64 {
	if len(cfg.CustomDrawers) > 0 {
		heights := make([]float64, 0, len(cfg.CustomDrawers))
		for _, dr := range cfg.CustomDrawers {
			if dr.Height > 0 {
				heights = append(heights, dr.Height)
			}
		}
		return heights
	}
	if id, ok := cfg.Selected(catalog.GroupDrawers); ok {
		if opt, found := product.FindOption(catalog.GroupDrawers, id); found {
			return catalog.DrawerHeights(opt)
		}
	}
	return nil
}

// sortedDrawerHeights returns the drawer heights tallest first. Fronts always
// stack with the tallest at the bottom regardless of selection order.
func sortedDrawerHeights(heights []float64) []float64 {
	out := make([]float64, len(heights))
	copy(out, heights)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

// drawerConfigurationCode renders the compact dot-joined height code, sorted
// descending, e.g. "250.150.75".
func drawerConfigurationCode(heights []float64) string {
	sorted := sortedDrawerHeights(heights)
	parts := make([]string, len(sorted))
	for i, hgt := range sorted {
		parts[i] = strconv.FormatFloat(hgt, 'f', -1, 64)
	}
	return strings.Join(parts, ".")
}

func selectedOption(rc *resolvedConfig, groupID string) (*models.Option, bool) {
	id, ok := rc.cfg.Selected(groupID)
	if !ok {
		return nil, false
	}
	return rc.product.FindOption(groupID, id)
}

func selectedCode(rc *resolvedConfig, groupID, fallback string) string {
	if opt, ok := selectedOption(rc, groupID); ok && opt.Code != "" {
		return opt.Code
	}
	return fallback
}
