package ifc

import (
	"github.com/opiegroup/boscotek2026-sub003/internal/catalog"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

const (
	benchTopThickness  = 40.0
	benchLegSize       = 60.0
	benchLegInset      = 20.0
	benchRailHeight    = 100.0
	benchRailThickness = 20.0

	benchUnitWidth     = 450.0
	benchUnitHeight    = 500.0
	benchUnitFrontGap  = 50.0
	benchShelfBoard    = 25.0
	benchShelfRise     = 450.0
	benchBracketDepth  = 250.0
	benchBracketHeight = 150.0
)

// Under-bench accessory codes. Each code maps to a fixed sequence of
// sub-assembly placements; the set is closed and anything else aborts.
// Sign convention: +X is the operator's right when facing the front of the
// bench, matching the exported coordinate frame (the 3D preview mirrors this
// axis; the exported convention is authoritative here).
const (
	benchAccessoryNone         = "none"
	benchAccessorySingleLeft   = "single-left"
	benchAccessorySingleRight  = "single-right"
	benchAccessorySingleCentre = "single-centre"
	benchAccessoryDual         = "dual"
	benchAccessoryShelfCabinet = "shelf-cabinet"
)

// Above-bench accessory codes. Same closed-set rule as under-bench.
const (
	benchAboveShelf = "shelf"
)

type workbenchBuilder struct{}

func (workbenchBuilder) buildGeometry(g *genState, rc *resolvedConfig) ([]Ref, error) {
	w, h, d := rc.width, rc.height, rc.depth
	var solids []Ref

	// Worktop.
	solids = append(solids, g.rectSolid(0, 0, h-benchTopThickness, w, d, benchTopThickness))

	// Four legs, inset from each corner.
	legX := w/2 - benchLegSize/2 - benchLegInset
	legY := d/2 - benchLegSize/2 - benchLegInset
	legH := h - benchTopThickness
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			solids = append(solids, g.rectSolid(sx*legX, sy*legY, 0, benchLegSize, benchLegSize, legH))
		}
	}

	// Rear stiffening rail under the top.
	solids = append(solids, g.rectSolid(
		0, d/2-benchRailThickness/2-benchLegInset, legH-benchRailHeight,
		w-2*(benchLegSize+benchLegInset), benchRailThickness, benchRailHeight))

	under, err := buildUnderBench(g, rc, solids)
	if err != nil {
		return nil, err
	}
	solids = under

	// Above-bench shelf with wedge brackets at each end.
	switch code := selectedCode(rc, catalog.GroupAboveBench, benchAccessoryNone); code {
	case benchAccessoryNone:
	case benchAboveShelf:
		shelfZ := h + benchShelfRise
		solids = append(solids, g.rectSolid(
			0, d/2-benchBracketDepth/2, shelfZ, w, benchBracketDepth, benchShelfBoard))
		bracketX := w/2 - benchLegSize
		for _, sx := range []float64{-1, 1} {
			solids = append(solids, bracket(g, sx*bracketX, d/2, shelfZ, -sx))
		}
	default:
		return nil, utils.NewAppError(utils.CodeUnsupportedAccessory,
			"above-bench accessory code is not in the catalogue", utils.ErrUnsupportedAccessory).
			WithDetail("accessory_code", code)
	}

	return solids, nil
}

func buildUnderBench(g *genState, rc *resolvedConfig, solids []Ref) ([]Ref, error) {
	code := selectedCode(rc, catalog.GroupUnderBench, benchAccessoryNone)
	if code == benchAccessoryNone {
		return solids, nil
	}

	w, h := rc.width, rc.height
	unitZ := h - benchTopThickness - benchUnitHeight
	flushLeft := -(w/2) + benchLegSize + benchLegInset + benchUnitWidth/2
	flushRight := (w / 2) - benchLegSize - benchLegInset - benchUnitWidth/2

	switch code {
	case benchAccessorySingleLeft:
		solids = underBenchUnit(g, rc, solids, flushLeft, unitZ)
	case benchAccessorySingleRight:
		solids = underBenchUnit(g, rc, solids, flushRight, unitZ)
	case benchAccessorySingleCentre:
		solids = underBenchUnit(g, rc, solids, 0, unitZ)
	case benchAccessoryDual:
		solids = underBenchUnit(g, rc, solids, flushLeft, unitZ)
		solids = underBenchUnit(g, rc, solids, flushRight, unitZ)
	case benchAccessoryShelfCabinet:
		solids = underBenchUnit(g, rc, solids, flushLeft, unitZ)
		// Half-height shelf spans the remaining clear width.
		shelfLeft := flushLeft + benchUnitWidth/2
		shelfRight := (w / 2) - benchLegSize - benchLegInset
		solids = append(solids, g.rectSolid(
			(shelfLeft+shelfRight)/2, 0, unitZ+benchUnitHeight/2,
			shelfRight-shelfLeft, rc.depth-2*benchLegInset, benchShelfBoard))
	default:
		return nil, utils.NewAppError(utils.CodeUnsupportedAccessory,
			"under-bench accessory code is not in the catalogue", utils.ErrUnsupportedAccessory).
			WithDetail("accessory_code", code)
	}
	return solids, nil
}

// underBenchUnit hangs a drawer unit under the worktop at the given X centre.
// Drawer heights come from the first embedded sub-assembly when present;
// otherwise the unit gets a plain door front.
func underBenchUnit(g *genState, rc *resolvedConfig, solids []Ref, cx, baseZ float64) []Ref {
	d := rc.depth - benchUnitFrontGap
	solids = append(solids, g.rectSolid(cx, benchUnitFrontGap/2, baseZ, benchUnitWidth, d, benchUnitHeight))

	frontY := -(rc.depth/2 - benchUnitFrontGap - cabFrontThickness/2)
	var heights []float64
	if len(rc.cfg.SubAssemblies) > 0 {
		heights = resolveDrawers(&rc.cfg.SubAssemblies[0], rc.product)
	}
	if len(heights) == 0 {
		solids = append(solids, g.rectSolid(
			cx, frontY, baseZ, benchUnitWidth-2*cabFrontSideGap, cabFrontThickness, benchUnitHeight))
		return solids
	}
	z := baseZ
	for _, fh := range sortedDrawerHeights(heights) {
		solids = append(solids, g.rectSolid(
			cx, frontY, z, benchUnitWidth-2*cabFrontSideGap, cabFrontThickness, fh))
		z += fh + cabDrawerReveal
	}
	return solids
}

// bracket emits one load-bearing wedge bracket under a shelf edge: a right
// triangle with a chamfered tip, extruded horizontally through the shelf
// depth. dir is +1 or -1 and points the bracket inward so neither end
// protrudes past the shelf.
func bracket(g *genState, x, rearY, topZ, dir float64) Ref {
	points := [][2]float64{
		{0, 0},
		{dir * benchLegSize * 3, 0},
		{dir * (benchLegSize*3 + 30), -30},
		{0, -benchBracketHeight},
	}
	return g.wedgeSolid(x, rearY, topZ, points, benchBracketDepth)
}
