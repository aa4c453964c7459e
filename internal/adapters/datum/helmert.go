package datum

import "math"

const (
	arcsecToRad = math.Pi / 648000
	ppmToScale  = 1e-6
)

// Seven-parameter position-vector transform into WGS84: translations in
// meters, rotations already converted to radians, scale as a multiplier.
type helmertParams struct {
	dx, dy, dz float64
	rx, ry, rz float64
	scale      float64
}

// newHelmertParams converts a registry parameter row (dx, dy, dz meters;
// rx, ry, rz arcseconds; ds parts per million) into working units.
func newHelmertParams(p [7]float64) helmertParams {
	return helmertParams{
		dx:    p[0],
		dy:    p[1],
		dz:    p[2],
		rx:    p[3] * arcsecToRad,
		ry:    p[4] * arcsecToRad,
		rz:    p[5] * arcsecToRad,
		scale: 1 + p[6]*ppmToScale,
	}
}

func (p helmertParams) isIdentity() bool {
	return p.dx == 0 && p.dy == 0 && p.dz == 0 &&
		p.rx == 0 && p.ry == 0 && p.rz == 0 && p.scale == 1
}

// apply shifts a geocentric point from the datum of p into WGS84.
func (p helmertParams) apply(x, y, z float64) (x2, y2, z2 float64) {
	x2 = p.dx + p.scale*(x-p.rz*y+p.ry*z)
	y2 = p.dy + p.scale*(p.rz*x+y-p.rx*z)
	z2 = p.dz + p.scale*(-p.ry*x+p.rx*y+z)
	return x2, y2, z2
}

// applyInverse shifts a WGS84 geocentric point back into the datum of p.
// The small-angle rotation matrix is orthogonal to first order, so its
// transpose serves as the inverse.
func (p helmertParams) applyInverse(x, y, z float64) (x2, y2, z2 float64) {
	tx := (x - p.dx) / p.scale
	ty := (y - p.dy) / p.scale
	tz := (z - p.dz) / p.scale

	x2 = tx + p.rz*ty - p.ry*tz
	y2 = -p.rz*tx + ty + p.rx*tz
	z2 = p.ry*tx - p.rx*ty + tz
	return x2, y2, z2
}
