// Package geodesic solves the inverse geodesic problem: the shortest
// surface path between two geographic points, reported as forward and
// back azimuths plus the distance in meters.
package geodesic

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rudeprover/GDAL-Stage/internal/domain"
	"github.com/rudeprover/GDAL-Stage/internal/platform/obs"
	"github.com/rudeprover/GDAL-Stage/internal/ports"
)

// ErrNoConvergence is returned when the inverse iteration fails to settle,
// which happens for nearly antipodal point pairs.
var ErrNoConvergence = errors.New("geodesic iteration did not converge")

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// The lambda iteration stops once successive values differ by less
	// than this (radians, roughly 0.006 mm on Earth).
	inverseTolerance     = 1e-12
	maxInverseIterations = 200
)

// Solver computes inverse geodesics on a reference ellipsoid using
// Vincenty's iterative method.
type Solver struct {
	a float64 // semi-major axis, meters
	b float64 // semi-minor axis, meters
	f float64 // flattening
}

// NewSolver builds a solver for the given ellipsoid.
func NewSolver(e domain.Ellipsoid) (*Solver, error) {
	if e.SemiMajorAxis <= 0 {
		return nil, fmt.Errorf("new geodesic solver: ellipsoid %q: semi-major axis must be positive", e.Name)
	}
	if e.InverseFlattening <= 1 {
		return nil, fmt.Errorf("new geodesic solver: ellipsoid %q: inverse flattening must exceed 1", e.Name)
	}
	f := e.Flattening()
	return &Solver{a: e.SemiMajorAxis, b: e.SemiMajorAxis * (1 - f), f: f}, nil
}

// Inverse solves the inverse problem from p1 to p2. Coincident points
// yield a zero result without error.
func (s *Solver) Inverse(ctx context.Context, p1, p2 domain.Coordinates) (_ ports.GeodesicResult, err error) {
	defer obs.Time(ctx, "geodesic.Inverse")(&err)

	if !p1.IsFinite() || !p2.IsFinite() {
		return ports.GeodesicResult{}, errors.New("geodesic inverse: coordinates are not finite")
	}

	lat1 := p1.Lat * degToRad
	lat2 := p2.Lat * degToRad
	deltaLon := (p2.Lon - p1.Lon) * degToRad

	// Reduced latitudes on the auxiliary sphere.
	u1 := math.Atan((1 - s.f) * math.Tan(lat1))
	u2 := math.Atan((1 - s.f) * math.Tan(lat2))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := deltaLon
	var sinLambda, cosLambda float64
	var sinSigma, cosSigma, sigma float64
	var sinAlpha, cosSqAlpha, cos2SigmaM float64
	converged := false
	for i := 0; i < maxInverseIterations; i++ {
		sinLambda, cosLambda = math.Sincos(lambda)

		sinSigma = math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			// Coincident points.
			return ports.GeodesicResult{}, nil
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			// Both points on the equator.
			cos2SigmaM = 0
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := s.f / 16 * cosSqAlpha * (4 + s.f*(4-3*cosSqAlpha))
		prev := lambda
		lambda = deltaLon + (1-c)*s.f*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < inverseTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return ports.GeodesicResult{}, fmt.Errorf("geodesic inverse: %w", ErrNoConvergence)
	}

	uSq := cosSqAlpha * (s.a*s.a - s.b*s.b) / (s.b * s.b)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	dist := s.b * bigA * (sigma - deltaSigma)

	alpha1 := math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
	alpha2 := math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda)

	return ports.GeodesicResult{
		ForwardAzimuthDeg: normalizeDegrees(alpha1 * radToDeg),
		BackAzimuthDeg:    normalizeDegrees(alpha2 * radToDeg),
		DistanceMeters:    dist,
	}, nil
}

// normalizeDegrees maps an angle onto [0, 360).
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
