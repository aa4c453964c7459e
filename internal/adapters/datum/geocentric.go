package datum

import (
	"math"

	"github.com/rudeprover/GDAL-Stage/internal/domain"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// Iterative geodetic latitude recovery: |next - lat| below this (radians)
	// terminates; the bound keeps degenerate inputs from spinning.
	geodeticTolerance     = 1e-14
	maxGeodeticIterations = 64
)

// Ellipsoid constants in the form the conversions consume.
type ellipsoidParams struct {
	a  float64 // semi-major axis, meters
	e2 float64 // first eccentricity squared
}

func newEllipsoidParams(e domain.Ellipsoid) ellipsoidParams {
	f := e.Flattening()
	return ellipsoidParams{a: e.SemiMajorAxis, e2: f * (2 - f)}
}

// geodeticToGeocentric converts geographic degrees (and ellipsoidal height
// in meters) to earth-centered, earth-fixed XYZ meters.
func geodeticToGeocentric(ep ellipsoidParams, lonDeg, latDeg, h float64) (x, y, z float64) {
	lon := lonDeg * degToRad
	lat := latDeg * degToRad

	sinLat := math.Sin(lat)
	n := ep.a / math.Sqrt(1-ep.e2*sinLat*sinLat)

	x = (n + h) * math.Cos(lat) * math.Cos(lon)
	y = (n + h) * math.Cos(lat) * math.Sin(lon)
	z = (n*(1-ep.e2) + h) * sinLat
	return x, y, z
}

// geocentricToGeodetic converts ECEF XYZ meters back to geographic degrees
// and ellipsoidal height. Latitude is refined iteratively.
func geocentricToGeodetic(ep ellipsoidParams, x, y, z float64) (lonDeg, latDeg, h float64) {
	lon := math.Atan2(y, x)
	p := math.Hypot(x, y)

	// On (or numerically at) the polar axis the iteration below divides by
	// cos(lat); resolve the pole directly.
	if p < 1e-9 {
		lat := math.Pi / 2
		if z < 0 {
			lat = -lat
		}
		b := ep.a * math.Sqrt(1-ep.e2)
		return lon * radToDeg, lat * radToDeg, math.Abs(z) - b
	}

	lat := math.Atan2(z, p*(1-ep.e2))
	for i := 0; i < maxGeodeticIterations; i++ {
		sinLat := math.Sin(lat)
		n := ep.a / math.Sqrt(1-ep.e2*sinLat*sinLat)
		next := math.Atan2(z+ep.e2*n*sinLat, p)
		if math.Abs(next-lat) <= geodeticTolerance {
			lat = next
			break
		}
		lat = next
	}

	sinLat := math.Sin(lat)
	n := ep.a / math.Sqrt(1-ep.e2*sinLat*sinLat)
	h = p/math.Cos(lat) - n

	return lon * radToDeg, lat * radToDeg, h
}
