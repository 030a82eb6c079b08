package ifc

const (
	liftTopThickness  = 40.0
	liftFootHeight    = 50.0
	liftFootWidth     = 120.0
	liftColumnSize    = 120.0
	liftColumnInset   = 100.0
	liftRailHeight    = 80.0
	liftRailThickness = 40.0
	liftTrayWidth     = 400.0
	liftTrayHeight    = 60.0
	liftTrayDepth     = 100.0
)

type liftBenchBuilder struct{}

// The height-adjustable bench always exports at the lift model's maximum
// extension: the file exists for clearance checking. resolveConfig has
// already pinned rc.height to that constant.
func (liftBenchBuilder) buildGeometry(g *genState, rc *resolvedConfig) ([]Ref, error) {
	w, h, d := rc.width, rc.height, rc.depth
	var solids []Ref

	colX := w/2 - liftColumnInset

	// Foot beams run front to back under each column.
	for _, sx := range []float64{-1, 1} {
		solids = append(solids, g.rectSolid(sx*colX, 0, 0, liftFootWidth, d-100, liftFootHeight))
	}

	// Lift columns from the feet to the underside of the top.
	colH := h - liftTopThickness - liftFootHeight
	for _, sx := range []float64{-1, 1} {
		solids = append(solids, g.rectSolid(sx*colX, 0, liftFootHeight, liftColumnSize, liftColumnSize, colH))
	}

	// Cross rail ties the columns together under the top.
	solids = append(solids, g.rectSolid(
		0, 0, h-liftTopThickness-liftRailHeight,
		w-2*(liftColumnInset+liftColumnSize/2), liftRailThickness, liftRailHeight))

	// Worktop at full extension.
	solids = append(solids, g.rectSolid(0, 0, h-liftTopThickness, w, d, liftTopThickness))

	// Cable tray at the rear, under the top.
	solids = append(solids, g.rectSolid(
		0, d/2-liftTrayDepth/2-40, h-liftTopThickness-150,
		w-liftTrayWidth, liftTrayDepth, liftTrayHeight))

	return solids, nil
}
