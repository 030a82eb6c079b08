package ifc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState() *genState {
	return &genState{reg: NewRegistry()}
}

func TestRectSolidCentreAnchored(t *testing.T) {
	g := newTestState()

	g.rectSolid(270, 0, 90, 20, 630, 735)
	lines := g.reg.Lines()

	// The profile carries only the dimensions; the world centre rides on the
	// placement point.
	assert.Contains(t, lines, "IFCRECTANGLEPROFILEDEF(.AREA.,$,#2,20.,630.)")
	assert.Contains(t, lines, "IFCCARTESIANPOINT((270.,0.,90.))")
	assert.Contains(t, lines, "IFCEXTRUDEDAREASOLID(")
	assert.Contains(t, lines, ",735.)")
}

func TestRectSolidSharesProfileOriginAndUpDirection(t *testing.T) {
	g := newTestState()

	g.rectSolid(0, 0, 0, 100, 100, 100)
	countAfterFirst := g.reg.Count()
	g.rectSolid(50, 0, 0, 100, 100, 100)

	// The second solid reuses the 2D origin and the up direction, so it adds
	// fewer entities than the first.
	secondCost := g.reg.Count() - countAfterFirst
	assert.Less(t, secondCost, countAfterFirst)

	assert.Equal(t, 1, strings.Count(g.reg.Lines(), "IFCAXIS2PLACEMENT2D"))
}

func TestAxisPlacementFixedOrientation(t *testing.T) {
	g := newTestState()
	g.axisPlacement(10, 20, 30)

	lines := strings.Split(strings.TrimSpace(g.reg.Lines()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "IFCCARTESIANPOINT((10.,20.,30.))")
	assert.Contains(t, lines[1], "IFCDIRECTION((0.,0.,1.))")
	assert.Contains(t, lines[2], "IFCDIRECTION((1.,0.,0.))")
	assert.Contains(t, lines[3], "IFCAXIS2PLACEMENT3D(#1,#2,#3)")
}

func TestLocalPlacementWorldLevel(t *testing.T) {
	g := newTestState()
	axis := g.axisPlacement(0, 0, 0)

	g.localPlacement(0, axis)
	assert.Contains(t, g.reg.Lines(), "IFCLOCALPLACEMENT($,#4)")

	world := Ref(5)
	g.localPlacement(world, axis)
	assert.Contains(t, g.reg.Lines(), "IFCLOCALPLACEMENT(#5,#4)")
}

func TestWedgeSolidClosesPolygon(t *testing.T) {
	g := newTestState()

	points := [][2]float64{{0, 0}, {180, 0}, {210, -30}, {0, -150}}
	g.wedgeSolid(0, -20, 700, points, 250)
	lines := g.reg.Lines()

	// Four corner points plus the repeated first point close the polyline.
	assert.Contains(t, lines, "IFCPOLYLINE((#1,#2,#3,#4,#1))")
	assert.Contains(t, lines, "IFCARBITRARYCLOSEDPROFILEDEF(.AREA.,$,")
	// Extrusion axis points front to back.
	assert.Contains(t, lines, "IFCDIRECTION((0.,-1.,0.))")
}
