package geodesic

import (
	"context"
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/rudeprover/GDAL-Stage/internal/domain"
	"github.com/rudeprover/GDAL-Stage/internal/ports"
)

// SphericalSolver approximates the inverse problem on a sphere. It trades
// the ellipsoidal solver's accuracy for a closed form, useful as a sanity
// check against the iterative result.
type SphericalSolver struct{}

func NewSphericalSolver() *SphericalSolver {
	return &SphericalSolver{}
}

// Inverse computes the great-circle azimuths and distance from p1 to p2.
func (s *SphericalSolver) Inverse(ctx context.Context, p1, p2 domain.Coordinates) (ports.GeodesicResult, error) {
	if !p1.IsFinite() || !p2.IsFinite() {
		return ports.GeodesicResult{}, errors.New("spherical inverse: coordinates are not finite")
	}

	from := orb.Point{p1.Lon, p1.Lat}
	to := orb.Point{p2.Lon, p2.Lat}
	if from == to {
		return ports.GeodesicResult{}, nil
	}

	return ports.GeodesicResult{
		ForwardAzimuthDeg: normalizeDegrees(geo.Bearing(from, to)),
		BackAzimuthDeg:    normalizeDegrees(geo.Bearing(to, from) + 180),
		DistanceMeters:    geo.Distance(from, to),
	}, nil
}
