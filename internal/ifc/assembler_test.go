package ifc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opiegroup/boscotek2026-sub003/internal/catalog"
	"github.com/opiegroup/boscotek2026-sub003/internal/models"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

func testPricing() models.Pricing {
	return models.Pricing{BasePrice: 1100, TotalPrice: 1299.5, Currency: "AUD"}
}

func generate(t *testing.T, cfg *models.Configuration) string {
	t.Helper()
	out, err := NewGenerator().Generate(cfg, testProduct(), testPricing(), "HD.710.CAB")
	require.NoError(t, err)
	return out
}

func TestGenerateDocumentStructure(t *testing.T) {
	out := generate(t, &models.Configuration{ProductFamily: models.FamilyHDCabinet})

	assert.True(t, strings.HasPrefix(out, "ISO-10303-21;\nHEADER;\n"))
	assert.True(t, strings.HasSuffix(out, "ENDSEC;\nEND-ISO-10303-21;\n"))
	assert.Contains(t, out, "FILE_SCHEMA(('IFC4'));")
	assert.Contains(t, out, "FILE_NAME('HD.710.CAB.ifc'")
	assert.Contains(t, out, "'Boscotek Configurator 2.4'")
	assert.Contains(t, out, "IFCSIUNIT(*,.LENGTHUNIT.,.MILLI.,.METRE.)")
	assert.Contains(t, out, "IFCGEOMETRICREPRESENTATIONCONTEXT($,'Model',3,0.00001,")
	assert.Contains(t, out, "IFCPROJECT(")
	assert.Contains(t, out, "IFCSITE(")
	assert.Contains(t, out, "IFCBUILDING(")
	assert.Contains(t, out, "IFCBUILDINGSTOREY(")
	assert.Contains(t, out, "IFCRELCONTAINEDINSPATIALSTRUCTURE(")
	// Reference code rides as ObjectType and Tag on the element.
	assert.Equal(t, 1, strings.Count(out, "IFCFURNISHINGELEMENT("))
}

func TestGenerateCabinetWithoutDrawers(t *testing.T) {
	out := generate(t, &models.Configuration{ProductFamily: models.FamilyHDCabinet})

	// Plinth, two sides, back, top. No drawer fronts.
	assert.Equal(t, 5, strings.Count(out, "IFCRECTANGLEPROFILEDEF("))
	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('NumberOfDrawers',$,IFCINTEGER(0),$)")
	assert.NotContains(t, out, "DrawerConfigurationCode")
}

func TestGenerateCabinetDrawerStacking(t *testing.T) {
	out := generate(t, &models.Configuration{
		ProductFamily: models.FamilyHDCabinet,
		CustomDrawers: []models.Drawer{{Height: 250}, {Height: 75}, {Height: 150}},
	})

	// 5 carcass panels plus 3 drawer fronts.
	assert.Equal(t, 8, strings.Count(out, "IFCRECTANGLEPROFILEDEF("))

	// Fronts stack bottom-up from the plinth, tallest first, 8mm reveal:
	// 250 at z=90, 150 at z=348, 75 at z=506.
	assert.Contains(t, out, "IFCCARTESIANPOINT((0.,-305.,90.))")
	assert.Contains(t, out, "IFCCARTESIANPOINT((0.,-305.,348.))")
	assert.Contains(t, out, "IFCCARTESIANPOINT((0.,-305.,506.))")

	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('NumberOfDrawers',$,IFCINTEGER(3),$)")
	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('DrawerConfigurationCode',$,IFCLABEL('250.150.75'),$)")
}

func TestGenerateLiftBenchAtMaxExtension(t *testing.T) {
	out := generate(t, &models.Configuration{
		ProductFamily: models.FamilyLiftBench,
		Dimensions:    &models.Dimensions{Width: 1500, Height: 800, Depth: 750},
		Selections:    map[string]string{catalog.GroupLiftModel: "dl6"},
	})

	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('LiftModel',$,IFCLABEL('DL6'),$)")
	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('MaxHeight',$,IFCLENGTHMEASURE(1250.),$)")
	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('Height',$,IFCLENGTHMEASURE(1250.),$)")
	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('LiftCapacityKg',$,IFCMASSMEASURE(600.),$)")
	// The supplied 800mm working height never appears as the height.
	assert.NotContains(t, out, "IFCPROPERTYSINGLEVALUE('Height',$,IFCLENGTHMEASURE(800.),$)")
}

func TestGenerateWorkbenchUnderBenchPlacements(t *testing.T) {
	// Defaults 1800x900x750: units hang at z=360, flush-left centre at
	// x=-595, flush-right at x=595.
	cases := []struct {
		option string
		points []string
	}{
		{"ub-left", []string{"IFCCARTESIANPOINT((-595.,25.,360.))"}},
		{"ub-right", []string{"IFCCARTESIANPOINT((595.,25.,360.))"}},
		{"ub-centre", []string{"IFCCARTESIANPOINT((0.,25.,360.))"}},
		{"ub-dual", []string{
			"IFCCARTESIANPOINT((-595.,25.,360.))",
			"IFCCARTESIANPOINT((595.,25.,360.))",
		}},
		{"ub-shelf-cab", []string{
			"IFCCARTESIANPOINT((-595.,25.,360.))",
			// Half-height shelf centred over the remaining clear width.
			"IFCCARTESIANPOINT((225.,0.,610.))",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.option, func(t *testing.T) {
			out := generate(t, &models.Configuration{
				ProductFamily: models.FamilyWorkbench,
				Selections:    map[string]string{catalog.GroupUnderBench: tc.option},
			})
			for _, point := range tc.points {
				assert.Contains(t, out, point)
			}
		})
	}
}

func TestGenerateWorkbenchAboveBenchShelf(t *testing.T) {
	out := generate(t, &models.Configuration{
		ProductFamily: models.FamilyWorkbench,
		Selections:    map[string]string{catalog.GroupAboveBench: "ab-shelf"},
	})

	// Shelf board 450mm above the worktop, against the rear edge.
	assert.Contains(t, out, "IFCCARTESIANPOINT((0.,250.,1350.))")

	// Two wedge brackets, mirrored so both point inward under the shelf.
	assert.Equal(t, 2, strings.Count(out, "IFCARBITRARYCLOSEDPROFILEDEF("))
	assert.Contains(t, out, "IFCCARTESIANPOINT((-840.,375.,1350.))")
	assert.Contains(t, out, "IFCCARTESIANPOINT((840.,375.,1350.))")
	assert.Contains(t, out, "IFCCARTESIANPOINT((180.,0.))")
	assert.Contains(t, out, "IFCCARTESIANPOINT((210.,-30.))")
	assert.Contains(t, out, "IFCCARTESIANPOINT((-180.,0.))")
	assert.Contains(t, out, "IFCCARTESIANPOINT((-210.,-30.))")
}

func TestGenerateToolCartSplitLayout(t *testing.T) {
	out := generate(t, &models.Configuration{
		ProductFamily: models.FamilyToolCart,
		Selections:    map[string]string{catalog.GroupBayLayout: "bay-split"},
	})

	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('BayLayout',$,IFCLABEL('split'),$)")
	// Right-bay door front for the default 580mm-wide cart.
	assert.Contains(t, out, "IFCCARTESIANPOINT((140.,-340.,145.))")
}

func TestGenerateUnknownAccessoryCodeAborts(t *testing.T) {
	// Catalogue options can carry codes the geometry set no longer includes;
	// those abort rather than guessing a shape.
	cases := []struct {
		name string
		cfg  *models.Configuration
	}{
		{"under-bench", &models.Configuration{
			ProductFamily: models.FamilyWorkbench,
			Selections:    map[string]string{catalog.GroupUnderBench: "ub-louvre"},
		}},
		{"above-bench", &models.Configuration{
			ProductFamily: models.FamilyWorkbench,
			Selections:    map[string]string{catalog.GroupAboveBench: "ab-louvre"},
		}},
		{"bay-layout", &models.Configuration{
			ProductFamily: models.FamilyToolCart,
			Selections:    map[string]string{catalog.GroupBayLayout: "bay-triple"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := NewGenerator().Generate(tc.cfg, testProduct(), testPricing(), "X")
			require.Error(t, err)
			assert.True(t, utils.IsUnsupportedAccessory(err))
			assert.Empty(t, out)
		})
	}
}

func TestGenerateMissingSelectionFallsBack(t *testing.T) {
	// A selection pointing at a nonexistent option is a defect in the saved
	// configuration, not a failure: family defaults apply.
	out := generate(t, &models.Configuration{
		ProductFamily: models.FamilyHDCabinet,
		Selections:    map[string]string{catalog.GroupWidth: "discontinued-option"},
	})

	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('Width',$,IFCLENGTHMEASURE(560.),$)")
}

func TestGenerateUnknownFamilyProducesNothing(t *testing.T) {
	out, err := NewGenerator().Generate(
		&models.Configuration{ProductFamily: models.ProductFamily("conveyor")},
		testProduct(), testPricing(), "X")

	require.Error(t, err)
	assert.True(t, utils.IsUnsupportedFamily(err))
	assert.Empty(t, out)
}

func TestGenerateNilInputs(t *testing.T) {
	_, err := NewGenerator().Generate(nil, testProduct(), testPricing(), "X")
	require.Error(t, err)

	_, err = NewGenerator().Generate(&models.Configuration{ProductFamily: models.FamilyHDCabinet}, nil, testPricing(), "X")
	require.Error(t, err)
}

func TestGenerateSinglePropertySet(t *testing.T) {
	out := generate(t, &models.Configuration{ProductFamily: models.FamilyToolCart})

	assert.Equal(t, 1, strings.Count(out, "IFCPROPERTYSET("))
	assert.Equal(t, 1, strings.Count(out, "IFCRELDEFINESBYPROPERTIES("))
	assert.Contains(t, out, "'Pset_BoscotekCabinet'")
	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('Mobile',$,IFCBOOLEAN(.T.),$)")
	assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('TotalPrice',$,IFCMONETARYMEASURE(1299.5),$)")
}

func TestGenerateEveryFamily(t *testing.T) {
	families := []models.ProductFamily{
		models.FamilyHDCabinet,
		models.FamilyWorkbench,
		models.FamilyToolCart,
		models.FamilyServerRack,
		models.FamilyStorageCupboard,
		models.FamilyLiftBench,
	}

	for _, family := range families {
		t.Run(string(family), func(t *testing.T) {
			out := generate(t, &models.Configuration{ProductFamily: family})
			assert.Contains(t, out, "IFCEXTRUDEDAREASOLID(")
			assert.Contains(t, out, "IFCPROPERTYSINGLEVALUE('Family',$,IFCLABEL('"+string(family)+"'),$)")
		})
	}
}

func TestGenerateIdentifiersRestartPerCall(t *testing.T) {
	cfg := &models.Configuration{ProductFamily: models.FamilyHDCabinet}
	first := generate(t, cfg)
	second := generate(t, cfg)

	assert.Contains(t, first, "#1=IFCPERSON(")
	assert.Contains(t, second, "#1=IFCPERSON(")
}
