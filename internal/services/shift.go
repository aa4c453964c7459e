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

// Transform the Meades Ranch point from NAD27 into WGS84 and return both
// pairs, original first.
//
// The transformation primitive consumes and produces (longitude, latitude);
// only the printed lines use the human (latitude, longitude) order. The
// original pair is returned untouched so the caller can measure the
// numerical displacement between the two.
func DemonstrateDatumShift(ctx context.Context, factory ports.TransformerFactory, pr *report.Printer) (original, shifted domain.Coordinates, err error) {
	defer obs.Time(ctx, "services.DemonstrateDatumShift")(&err)

	if factory == nil {
		return domain.Coordinates{}, domain.Coordinates{}, errors.New("demonstrate datum shift: factory must be non-nil")
	}
	if pr == nil {
		return domain.Coordinates{}, domain.Coordinates{}, errors.New("demonstrate datum shift: printer must be non-nil")
	}

	pr.Section("2. THE DATUM SHIFT (Moving the Anchor)")
	pr.Linef("Goal: Show that the 'same' physical spot has different numbers in different datums.")
	pr.Blank()

	original = domain.Coordinates{Lon: MeadesRanchLon, Lat: MeadesRanchLat}

	pr.Linef("Physical Point: %s", MeadesRanchName)
	pr.Linef("Original Coordinate (NAD27 / EPSG:%d): %s", SourceCRSCode, original)

	transform, err := factory.NewTransformation(ctx, SourceCRSCode, TargetCRSCode)
	if err != nil {
		return domain.Coordinates{}, domain.Coordinates{}, fmt.Errorf(
			"demonstrate datum shift: build transformation EPSG:%d -> EPSG:%d: %w",
			SourceCRSCode, TargetCRSCode, err,
		)
	}

	lon, lat, err := transform.Forward(original.Lon, original.Lat)
	if err != nil {
		return domain.Coordinates{}, domain.Coordinates{}, fmt.Errorf("demonstrate datum shift: transform point: %w", err)
	}
	shifted = domain.Coordinates{Lon: lon, Lat: lat}

	pr.Linef("Transformed Coordinate (WGS84 / EPSG:%d): %s", TargetCRSCode, shifted)

	return original, shifted, nil
}
