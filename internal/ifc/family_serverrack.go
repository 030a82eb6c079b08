package ifc

const (
	rackFrameMember    = 50.0
	rackPanelThickness = 15.0
	rackDoorThickness  = 20.0
	rackBaseHeight     = 100.0
	rackCapThickness   = 40.0
	rackRearPanelRise  = 200.0
)

type serverRackBuilder struct{}

func (serverRackBuilder) buildGeometry(g *genState, rc *resolvedConfig) ([]Ref, error) {
	w, h, d := rc.width, rc.height, rc.depth
	var solids []Ref

	// Base plinth and top cap.
	solids = append(solids,
		g.rectSolid(0, 0, 0, w, d, rackBaseHeight),
		g.rectSolid(0, 0, h-rackCapThickness, w, d, rackCapThickness))

	// Four frame uprights inside the panel line.
	frameX := w/2 - rackPanelThickness - rackFrameMember/2
	frameY := d/2 - rackPanelThickness - rackFrameMember/2
	frameH := h - rackBaseHeight - rackCapThickness
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			solids = append(solids, g.rectSolid(sx*frameX, sy*frameY, rackBaseHeight,
				rackFrameMember, rackFrameMember, frameH))
		}
	}

	// Side panels.
	sideX := w/2 - rackPanelThickness/2
	solids = append(solids,
		g.rectSolid(-sideX, 0, rackBaseHeight, rackPanelThickness, d, frameH),
		g.rectSolid(sideX, 0, rackBaseHeight, rackPanelThickness, d, frameH))

	// Front door.
	solids = append(solids, g.rectSolid(
		0, -(d/2 - rackDoorThickness/2), rackBaseHeight,
		w-2*rackPanelThickness, rackDoorThickness, frameH))

	// Rear accessory panels stack upward from the base by count.
	rearY := d/2 - rackPanelThickness/2
	z := rackBaseHeight
	for i := 0; i < rc.cfg.AccessoryCounts["rear-panel"]; i++ {
		solids = append(solids, g.rectSolid(0, rearY, z,
			w-2*rackPanelThickness, rackPanelThickness, rackRearPanelRise))
		z += rackRearPanelRise
	}

	return solids, nil
}
