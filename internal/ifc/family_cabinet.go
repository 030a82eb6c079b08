package ifc

// Heavy-duty drawer cabinet. All offsets are centre-based: a side panel sits
// at ±(width/2 − thickness/2), never ±width/2, because profiles are
// centre-anchored.
const (
	cabSideThickness  = 20.0
	cabBackThickness  = 20.0
	cabTopThickness   = 25.0
	cabPlinthHeight   = 90.0
	cabPlinthInset    = 10.0
	cabDrawerReveal   = 8.0
	cabFrontThickness = 20.0
	cabFrontSideGap   = 4.0
)

type cabinetBuilder struct{}

func (cabinetBuilder) buildGeometry(g *genState, rc *resolvedConfig) ([]Ref, error) {
	w, h, d := rc.width, rc.height, rc.depth
	var solids []Ref

	// Plinth, recessed at the front.
	solids = append(solids, g.rectSolid(
		0, cabPlinthInset/2, 0,
		w-2*cabSideThickness, d-cabPlinthInset, cabPlinthHeight))

	// Side panels run floor to top.
	sideX := w/2 - cabSideThickness/2
	solids = append(solids,
		g.rectSolid(-sideX, 0, 0, cabSideThickness, d, h),
		g.rectSolid(sideX, 0, 0, cabSideThickness, d, h))

	// Back panel between plinth and top.
	solids = append(solids, g.rectSolid(
		0, d/2-cabBackThickness/2, cabPlinthHeight,
		w-2*cabSideThickness, cabBackThickness, h-cabPlinthHeight-cabTopThickness))

	// Top cap.
	solids = append(solids, g.rectSolid(0, 0, h-cabTopThickness, w, d, cabTopThickness))

	// Drawer fronts stack tallest at the bottom with a fixed reveal between
	// fronts, regardless of the order drawers were selected in.
	frontW := w - 2*cabSideThickness - 2*cabFrontSideGap
	frontY := -(d/2 - cabFrontThickness/2)
	z := cabPlinthHeight
	for _, fh := range sortedDrawerHeights(rc.drawers) {
		solids = append(solids, g.rectSolid(0, frontY, z, frontW, cabFrontThickness, fh))
		z += fh + cabDrawerReveal
	}

	// Optional vertical divider splits the drawer bay.
	if rc.cfg.AccessoryCounts["divider"] > 0 {
		solids = append(solids, g.rectSolid(
			0, cabBackThickness/2, cabPlinthHeight,
			cabSideThickness, d-2*cabBackThickness, h-cabPlinthHeight-cabTopThickness))
	}

	return solids, nil
}
