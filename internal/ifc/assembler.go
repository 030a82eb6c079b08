package ifc

import (
	"fmt"
	"time"

	"github.com/opiegroup/boscotek2026-sub003/internal/models"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

const (
	applicationName    = "Boscotek Configurator"
	applicationVersion = "2.4"
	applicationID      = "boscotek-configurator"
	schemaVersion      = "IFC4"
)

// Generator assembles one IFC document per call. It holds no per-call state:
// each Generate owns its own registry, so concurrent calls are safe as long
// as each gets its own invocation.
type Generator struct {
	Application string
	Version     string
	Author      string
}

func NewGenerator() *Generator {
	return &Generator{
		Application: applicationName,
		Version:     applicationVersion,
		Author:      "Configurator",
	}
}

// Generate builds the complete interchange document for one configured
// product. Any failure aborts before a single output byte is returned; there
// is no partial file.
func (gen *Generator) Generate(cfg *models.Configuration, product *models.Product, pricing models.Pricing, referenceCode string) (string, error) {
	if cfg == nil || product == nil {
		return "", utils.NewAppError(utils.CodeInvalidInput, "configuration and product are required", utils.ErrInvalidInput)
	}

	rc, err := resolveConfig(cfg, product)
	if err != nil {
		return "", err
	}

	reg := NewRegistry()
	g := &genState{reg: reg}

	// Owner history.
	person := reg.Create("IFCPERSON", nil, nil, Str(gen.Author), nil, nil, nil, nil, nil)
	org := reg.Create("IFCORGANIZATION", nil, Str(manufacturerName), nil, nil, nil)
	owner := reg.Create("IFCPERSONANDORGANIZATION", person, org, nil)
	app := reg.Create("IFCAPPLICATION", org, Str(gen.Version), Str(gen.Application), Str(applicationID))
	g.history = reg.Create("IFCOWNERHISTORY",
		owner, app, nil, Enum("ADDED"), nil, nil, nil, Int(time.Now().Unix()))

	// Five SI units; lengths are millimetres throughout.
	lengthUnit := reg.Create("IFCSIUNIT", Star, Enum("LENGTHUNIT"), Enum("MILLI"), Enum("METRE"))
	areaUnit := reg.Create("IFCSIUNIT", Star, Enum("AREAUNIT"), nil, Enum("SQUARE_METRE"))
	volumeUnit := reg.Create("IFCSIUNIT", Star, Enum("VOLUMEUNIT"), nil, Enum("CUBIC_METRE"))
	massUnit := reg.Create("IFCSIUNIT", Star, Enum("MASSUNIT"), Enum("KILO"), Enum("GRAM"))
	angleUnit := reg.Create("IFCSIUNIT", Star, Enum("PLANEANGLEUNIT"), nil, Enum("RADIAN"))
	unitAssignment := reg.Create("IFCUNITASSIGNMENT",
		List{lengthUnit, areaUnit, volumeUnit, massUnit, angleUnit})

	// The representation context must carry the world coordinate system
	// explicitly; importers treat the geometry as unrenderable without it.
	worldAxis := g.axisPlacement(0, 0, 0)
	g.ctx3d = reg.Create("IFCGEOMETRICREPRESENTATIONCONTEXT",
		nil, Str("Model"), Int(3), Real(1e-5), worldAxis, nil)

	// Spatial hierarchy: project, site, building, storey.
	project := reg.Create("IFCPROJECT",
		newGUID(), g.history, Str(product.Name), Str(product.Description),
		nil, nil, nil, List{g.ctx3d}, unitAssignment)
	worldPlacement := g.localPlacement(0, worldAxis)
	site := reg.Create("IFCSITE",
		newGUID(), g.history, Str("Default Site"), nil, nil, worldPlacement,
		nil, nil, Enum("ELEMENT"), nil, nil, nil, nil, nil)
	buildingPlacement := g.localPlacement(worldPlacement, worldAxis)
	building := reg.Create("IFCBUILDING",
		newGUID(), g.history, Str("Default Building"), nil, nil, buildingPlacement,
		nil, nil, Enum("ELEMENT"), nil, nil, nil)
	storeyPlacement := g.localPlacement(buildingPlacement, worldAxis)
	storey := reg.Create("IFCBUILDINGSTOREY",
		newGUID(), g.history, Str("Ground Floor"), nil, nil, storeyPlacement,
		nil, nil, Enum("ELEMENT"), Real(0))

	reg.Create("IFCRELAGGREGATES", newGUID(), g.history, Str("Project Container"), nil, project, List{site})
	reg.Create("IFCRELAGGREGATES", newGUID(), g.history, Str("Site Container"), nil, site, List{building})
	reg.Create("IFCRELAGGREGATES", newGUID(), g.history, Str("Building Container"), nil, building, List{storey})

	// Single product placement; family solids are expressed directly in world
	// coordinates, no further relative transform.
	productAxis := g.axisPlacement(0, 0, 0)
	productPlacement := g.localPlacement(storeyPlacement, productAxis)

	solids, err := familyBuilders[rc.family].buildGeometry(g, rc)
	if err != nil {
		return "", err
	}
	shape := reg.Create("IFCSHAPEREPRESENTATION", g.ctx3d, Str("Body"), Str("SweptSolid"), solids)
	shapeDef := reg.Create("IFCPRODUCTDEFINITIONSHAPE", nil, nil, List{shape})

	// The reference code rides as both ObjectType and Tag.
	element := reg.Create("IFCFURNISHINGELEMENT",
		newGUID(), g.history, Str(product.Name), Str(product.Description),
		Str(referenceCode), productPlacement, shapeDef, Str(referenceCode))

	buildPropertySet(g, rc, pricing, referenceCode, element)

	reg.Create("IFCRELCONTAINEDINSPATIALSTRUCTURE",
		newGUID(), g.history, Str("Storey Containment"), nil, List{element}, storey)

	return gen.header(referenceCode) + reg.Lines() + footer(), nil
}

func (gen *Generator) header(referenceCode string) string {
	return fmt.Sprintf(`ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('ViewDefinition [ReferenceView_V1.2]'),'2;1');
FILE_NAME(%s,%s,(%s),(%s),%s,%s,'');
FILE_SCHEMA(('%s'));
ENDSEC;
DATA;
`,
		quote(referenceCode+".ifc"),
		quote(time.Now().Format("2006-01-02T15:04:05")),
		quote(gen.Author),
		quote(organisationName),
		quote(gen.Application+" "+gen.Version),
		quote(gen.Application),
		schemaVersion,
	)
}

func footer() string {
	return "ENDSEC;\nEND-ISO-10303-21;\n"
}
