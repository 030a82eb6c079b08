package ifc

// genState is the per-call geometric context shared by every builder: the
// registry, the owner history, the representation context and a handful of
// lazily created shared entities. One genState per generation call, never
// shared.
type genState struct {
	reg     *Registry
	history Ref
	ctx3d   Ref

	up        Ref // direction (0,0,1), shared by every vertical extrusion
	profile2d Ref // axis placement at (0,0) for centre-anchored profiles
}

func (g *genState) point3(x, y, z float64) Ref {
	return g.reg.Create("IFCCARTESIANPOINT", List{Real(x), Real(y), Real(z)})
}

func (g *genState) point2(x, y float64) Ref {
	return g.reg.Create("IFCCARTESIANPOINT", List{Real(x), Real(y)})
}

func (g *genState) direction3(x, y, z float64) Ref {
	return g.reg.Create("IFCDIRECTION", List{Real(x), Real(y), Real(z)})
}

// axisPlacement builds a coordinate frame at the given world centre. The
// vertical axis and the X reference direction are fixed: parts are oriented
// purely by translation, never rotation.
func (g *genState) axisPlacement(x, y, z float64) Ref {
	pt := g.point3(x, y, z)
	axis := g.direction3(0, 0, 1)
	ref := g.direction3(1, 0, 0)
	return g.reg.Create("IFCAXIS2PLACEMENT3D", pt, axis, ref)
}

// localPlacement nests a frame under a parent placement. A zero parent means
// world level ($).
func (g *genState) localPlacement(parent, axis Ref) Ref {
	if parent == 0 {
		return g.reg.Create("IFCLOCALPLACEMENT", nil, axis)
	}
	return g.reg.Create("IFCLOCALPLACEMENT", parent, axis)
}

func (g *genState) upDirection() Ref {
	if g.up == 0 {
		g.up = g.direction3(0, 0, 1)
	}
	return g.up
}

func (g *genState) profileOrigin() Ref {
	if g.profile2d == 0 {
		pt := g.point2(0, 0)
		g.profile2d = g.reg.Create("IFCAXIS2PLACEMENT2D", pt, nil)
	}
	return g.profile2d
}

// rectSolid extrudes a centred width×depth rectangle vertically by height,
// with its base at (cx, cy, baseZ). The rectangle profile is centre-anchored
// in its own plane; the placement origin carries the true world centre.
// Passing a corner here silently shifts the part by half a dimension, so
// every caller computes centres from half-thicknesses.
func (g *genState) rectSolid(cx, cy, baseZ, width, depth, height float64) Ref {
	profile := g.reg.Create("IFCRECTANGLEPROFILEDEF",
		Enum("AREA"), nil, g.profileOrigin(), Real(width), Real(depth))
	pos := g.axisPlacement(cx, cy, baseZ)
	return g.reg.Create("IFCEXTRUDEDAREASOLID",
		profile, pos, g.upDirection(), Real(height))
}

// wedgeSolid extrudes an arbitrary closed polygon horizontally, front to
// back. Profile X maps to world X and profile Y to world Z; the extrusion
// runs along world -Y for the given length. Used only for shelf brackets,
// where a vertical box would misrepresent the part.
func (g *genState) wedgeSolid(originX, originY, originZ float64, points [][2]float64, length float64) Ref {
	refs := make(List, 0, len(points)+1)
	var first Ref
	for i, p := range points {
		pt := g.point2(p[0], p[1])
		if i == 0 {
			first = pt
		}
		refs = append(refs, pt)
	}
	refs = append(refs, first)

	poly := g.reg.Create("IFCPOLYLINE", refs)
	profile := g.reg.Create("IFCARBITRARYCLOSEDPROFILEDEF", Enum("AREA"), nil, poly)

	pt := g.point3(originX, originY, originZ)
	axis := g.direction3(0, -1, 0)
	ref := g.direction3(1, 0, 0)
	pos := g.reg.Create("IFCAXIS2PLACEMENT3D", pt, axis, ref)

	return g.reg.Create("IFCEXTRUDEDAREASOLID",
		profile, pos, g.upDirection(), Real(length))
}
