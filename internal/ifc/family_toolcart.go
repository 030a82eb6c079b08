package ifc

import (
	"github.com/opiegroup/boscotek2026-sub003/internal/catalog"
	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

const (
	cartCastorHeight   = 125.0
	cartCastorSize     = 60.0
	cartPanelThickness = 20.0
	cartHandlePost     = 30.0
	cartHandleRise     = 150.0
)

// Bay layout codes for the drawer compartment.
const (
	cartBaySingle = "single"
	cartBaySplit  = "split"
)

type toolCartBuilder struct{}

func (toolCartBuilder) buildGeometry(g *genState, rc *resolvedConfig) ([]Ref, error) {
	w, h, d := rc.width, rc.height, rc.depth
	bodyH := h - cartCastorHeight
	var solids []Ref

	// Castor blocks at each corner carry the body.
	castorX := w/2 - cartCastorSize/2 - 10
	castorY := d/2 - cartCastorSize/2 - 10
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			solids = append(solids, g.rectSolid(sx*castorX, sy*castorY, 0, cartCastorSize, cartCastorSize, cartCastorHeight))
		}
	}

	// Body shell above the castors.
	sideX := w/2 - cartPanelThickness/2
	solids = append(solids,
		g.rectSolid(0, 0, cartCastorHeight, w, d, cartPanelThickness),
		g.rectSolid(-sideX, 0, cartCastorHeight, cartPanelThickness, d, bodyH),
		g.rectSolid(sideX, 0, cartCastorHeight, cartPanelThickness, d, bodyH),
		g.rectSolid(0, d/2-cartPanelThickness/2, cartCastorHeight,
			w-2*cartPanelThickness, cartPanelThickness, bodyH),
		g.rectSolid(0, 0, h-cartPanelThickness, w, d, cartPanelThickness))

	// Push handle on the left end: two posts and a crossbar.
	postX := -(w/2 - cartHandlePost/2)
	postY := d/2 - cartHandlePost/2 - 20
	for _, sy := range []float64{-1, 1} {
		solids = append(solids, g.rectSolid(postX, sy*postY, h, cartHandlePost, cartHandlePost, cartHandleRise))
	}
	solids = append(solids, g.rectSolid(
		postX, 0, h+cartHandleRise-cartHandlePost,
		cartHandlePost, 2*postY, cartHandlePost))

	// Drawer fronts per bay layout. The split layout puts drawers in the left
	// bay and a door on the right.
	layout := selectedCode(rc, catalog.GroupBayLayout, cartBaySingle)
	switch layout {
	case cartBaySingle, cartBaySplit:
	default:
		return nil, utils.NewAppError(utils.CodeUnsupportedAccessory,
			"bay layout code is not in the catalogue", utils.ErrUnsupportedAccessory).
			WithDetail("bay_layout", layout)
	}
	frontY := -(d/2 - cartPanelThickness/2)
	bayW := w - 2*cartPanelThickness - 2*cabFrontSideGap
	bayX := 0.0
	if layout == cartBaySplit {
		bayW = (w - 3*cartPanelThickness) / 2
		bayX = -(bayW/2 + cartPanelThickness/2)
		doorX := bayW/2 + cartPanelThickness/2
		solids = append(solids,
			g.rectSolid(0, cartPanelThickness/2, cartCastorHeight+cartPanelThickness,
				cartPanelThickness, d-2*cartPanelThickness, bodyH-2*cartPanelThickness),
			g.rectSolid(doorX, frontY, cartCastorHeight+cartPanelThickness,
				bayW, cartPanelThickness, bodyH-2*cartPanelThickness))
	}
	z := cartCastorHeight + cartPanelThickness
	for _, fh := range sortedDrawerHeights(rc.drawers) {
		solids = append(solids, g.rectSolid(bayX, frontY, z, bayW, cartPanelThickness, fh))
		z += fh + cabDrawerReveal
	}

	return solids, nil
}
