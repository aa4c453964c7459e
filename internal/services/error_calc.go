package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rudeprover/GDAL-Stage/internal/domain"
	"github.com/rudeprover/GDAL-Stage/internal/platform/obs"
	"github.com/rudeprover/GDAL-Stage/internal/ports"
	"github.com/rudeprover/GDAL-Stage/internal/report"
)

// ErrorReport is the measured consequence of ignoring the datum shift.
type ErrorReport struct {
	Meters float64
	Feet   float64
}

// Measure the ground distance between the shifted and original pairs as if
// both sat on the WGS84 ellipsoid.
//
// Both points describe the same physical spot; the distance between their
// numeric values is exactly the error made by reading NAD27 numbers as
// WGS84 ones. Plotting both on the WGS84 ellipsoid is the demonstration's
// deliberate simplification, not an oversight.
func MeasureDatumError(ctx context.Context, solver ports.GeodesicSolver, pr *report.Printer, shifted, original domain.Coordinates) (_ ErrorReport, err error) {
	defer obs.Time(ctx, "services.MeasureDatumError")(&err)

	if solver == nil {
		return ErrorReport{}, errors.New("measure datum error: solver must be non-nil")
	}
	if pr == nil {
		return ErrorReport{}, errors.New("measure datum error: printer must be non-nil")
	}

	pr.Section("3. THE REAL WORLD ERROR")
	pr.Linef("Goal: Measure the mistake if you confuse the Datums.")
	pr.Blank()

	res, err := solver.Inverse(ctx, shifted, original)
	if err != nil {
		return ErrorReport{}, fmt.Errorf("measure datum error: inverse geodesic: %w", err)
	}

	rep := ErrorReport{
		Meters: res.DistanceMeters,
		Feet:   res.DistanceMeters * FeetPerMeter,
	}

	pr.Linef("If you input the NAD27 coordinates into a WGS84 GPS...")
	pr.Linef("You would be off by: %.2f meters", rep.Meters)
	pr.Linef("(%.2f feet)", rep.Feet)
	pr.Blank()
	pr.Linef("CONCLUSION: 4326 (The System) defines WHICH Datum (6326) to use.")
	pr.Linef("If you use the wrong system, you use the wrong anchor!")

	return rep, nil
}
