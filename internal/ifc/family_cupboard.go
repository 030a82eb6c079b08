package ifc

const (
	cupSideThickness  = 20.0
	cupBackThickness  = 18.0
	cupTopThickness   = 20.0
	cupPlinthHeight   = 70.0
	cupDoorThickness  = 20.0
	cupDoorGap        = 3.0
	cupShelfThickness = 20.0
	cupShelfClearTop  = 200.0
	cupShelfClearBase = 100.0
)

const cupDefaultShelves = 3

type cupboardBuilder struct{}

func (cupboardBuilder) buildGeometry(g *genState, rc *resolvedConfig) ([]Ref, error) {
	w, h, d := rc.width, rc.height, rc.depth
	var solids []Ref

	// Carcass: plinth, sides, back, top.
	solids = append(solids,
		g.rectSolid(0, 0, 0, w-2*cupSideThickness, d, cupPlinthHeight),
		g.rectSolid(-(w/2 - cupSideThickness/2), 0, 0, cupSideThickness, d, h),
		g.rectSolid(w/2-cupSideThickness/2, 0, 0, cupSideThickness, d, h),
		g.rectSolid(0, d/2-cupBackThickness/2, cupPlinthHeight,
			w-2*cupSideThickness, cupBackThickness, h-cupPlinthHeight-cupTopThickness),
		g.rectSolid(0, 0, h-cupTopThickness, w, d, cupTopThickness))

	// Shelves, evenly spaced in the clear interior height.
	shelves := rc.cfg.AccessoryCounts["shelf"]
	if shelves == 0 {
		shelves = cupDefaultShelves
	}
	shelfW := w - 2*cupSideThickness
	shelfD := d - cupBackThickness - cupDoorThickness - 20
	clearBase := cupPlinthHeight + cupShelfClearBase
	clearTop := h - cupTopThickness - cupShelfClearTop
	pitch := (clearTop - clearBase) / float64(shelves)
	for i := 0; i < shelves; i++ {
		z := clearBase + pitch*float64(i)
		solids = append(solids, g.rectSolid(0, -cupDoorThickness/2, z, shelfW, shelfD, cupShelfThickness))
	}

	// Double doors, each covering half the front width minus the centre gap.
	doorW := w/2 - 2*cupDoorGap
	doorX := doorW/2 + cupDoorGap
	doorY := -(d/2 - cupDoorThickness/2)
	doorH := h - cupPlinthHeight - cupTopThickness
	solids = append(solids,
		g.rectSolid(-doorX, doorY, cupPlinthHeight, doorW, cupDoorThickness, doorH),
		g.rectSolid(doorX, doorY, cupPlinthHeight, doorW, cupDoorThickness, doorH))

	return solids, nil
}
