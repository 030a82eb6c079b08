package ifc

import (
	"github.com/opiegroup/boscotek2026-sub003/internal/catalog"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
)

// PsetName is the single property set attached to the product element. The
// original consumer tooling looks it up by this exact name.
const PsetName = "Pset_BoscotekCabinet"

const (
	manufacturerName = "Boscotek"
	organisationName = "Boscotek Industrial Furniture"
)

var familyLoadRatingKg = map[models.ProductFamily]float64{
	models.FamilyHDCabinet:       1000,
	models.FamilyWorkbench:       1000,
	models.FamilyToolCart:        500,
	models.FamilyServerRack:      800,
	models.FamilyStorageCupboard: 400,
}

func realValue(v float64) Measure { return Measure{Kind: "IFCREAL", Val: Real(v)} }

// buildPropertySet flattens configuration, resolved dimensions, pricing and
// finish codes into the one property set and relates it to the product
// element. Exactly one set and one defines-by-properties relationship exist
// per generated file.
func buildPropertySet(g *genState, rc *resolvedConfig, pricing models.Pricing, referenceCode string, element Ref) Ref {
	var props []Ref
	add := func(name string, value Measure) {
		props = append(props, g.reg.Create("IFCPROPERTYSINGLEVALUE", Str(name), nil, value, nil))
	}

	add("BoscotekCode", Identifier(referenceCode))
	add("Family", Label(string(rc.family)))
	add("Manufacturer", Label(manufacturerName))
	add("Organisation", Label(organisationName))
	add("AustralianMade", BoolValue(true))

	add("Width", LengthMeasure(rc.width))
	add("Height", LengthMeasure(rc.height))
	add("Depth", LengthMeasure(rc.depth))

	switch rc.family {
	case models.FamilyHDCabinet, models.FamilyToolCart:
		// Counts go through explicit measure wrappers, never bare numbers.
		add("NumberOfDrawers", IntValue(int64(len(rc.drawers))))
		if len(rc.drawers) > 0 {
			add("DrawerConfigurationCode", Label(drawerConfigurationCode(rc.drawers)))
		}
	}

	if rc.family == models.FamilyLiftBench {
		add("LiftModel", Label(rc.lift.Code))
		add("LiftCapacityKg", MassMeasure(rc.lift.CapacityKg))
		add("LiftSpeedMmPerSec", realValue(rc.lift.SpeedMmSec))
		add("MinHeight", LengthMeasure(rc.lift.MinHeightMm))
		add("MaxHeight", LengthMeasure(rc.lift.MaxHeightMm))
		add("LoadRatingKg", MassMeasure(rc.lift.CapacityKg))
	} else {
		add("LoadRatingKg", MassMeasure(loadRating(rc)))
	}

	switch rc.family {
	case models.FamilyWorkbench, models.FamilyLiftBench:
		add("WorktopMaterial", Label(selectedCode(rc, catalog.GroupWorktopMaterial, "laminate")))
	}

	if rc.family == models.FamilyToolCart {
		add("BayLayout", Label(selectedCode(rc, catalog.GroupBayLayout, cartBaySingle)))
		add("DrawerLayout", Label(drawerConfigurationCode(rc.drawers)))
	}

	add("Mobile", BoolValue(isMobile(rc)))

	if opt, ok := selectedOption(rc, catalog.GroupColourBody); ok && opt.Code != "" {
		add("ColourBody", Label(catalog.ColourName(opt.Code)))
	}
	if opt, ok := selectedOption(rc, catalog.GroupColourFront); ok && opt.Code != "" {
		add("ColourFront", Label(catalog.ColourName(opt.Code)))
	}

	add("BasePrice", MonetaryMeasure(pricing.BasePrice))
	add("TotalPrice", MonetaryMeasure(pricing.TotalPrice))
	add("Currency", Label(pricing.Currency))

	pset := g.reg.Create("IFCPROPERTYSET", newGUID(), g.history, Str(PsetName), nil, props)
	g.reg.Create("IFCRELDEFINESBYPROPERTIES", newGUID(), g.history, nil, nil, List{element}, pset)
	return pset
}

func loadRating(rc *resolvedConfig) float64 {
	if opt, ok := selectedOption(rc, catalog.GroupLoadRating); ok {
		if opt.Value != nil && *opt.Value > 0 {
			return *opt.Value
		}
	}
	return familyLoadRatingKg[rc.family]
}

func isMobile(rc *resolvedConfig) bool {
	if rc.family == models.FamilyToolCart {
		return true
	}
	_, ok := selectedOption(rc, catalog.GroupCastors)
	return ok
}
