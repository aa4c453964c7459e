package ports

import (
	"context"

	"github.com/rudeprover/GDAL-Stage/internal/domain"
)

// Solution of the inverse geodesic problem between two points.
type GeodesicResult struct {
	ForwardAzimuthDeg float64
	BackAzimuthDeg    float64
	DistanceMeters    float64
}

// Port: a boundary for solving the inverse geodesic problem (azimuths and
// surface distance between two points) on a fixed reference ellipsoid.
type GeodesicSolver interface {
	// Return forward azimuth, back azimuth and distance in meters from p1
	// to p2 along the solver's ellipsoid surface.
	Inverse(ctx context.Context, p1, p2 domain.Coordinates) (GeodesicResult, error)
}
