package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rudeprover/GDAL-Stage/internal/platform/obs"
	"github.com/rudeprover/GDAL-Stage/internal/ports"
	"github.com/rudeprover/GDAL-Stage/internal/report"
)

// Dissect one geographic CRS into its nested components.
//
// A top-level authority code looks atomic but bundles a datum and an
// ellipsoid definition; the step prints all three layers with their own
// codes to make the nesting visible.
func InspectHierarchy(ctx context.Context, catalog ports.CRSCatalog, pr *report.Printer) (err error) {
	defer obs.Time(ctx, "services.InspectHierarchy")(&err)

	if catalog == nil {
		return errors.New("inspect hierarchy: catalog must be non-nil")
	}
	if pr == nil {
		return errors.New("inspect hierarchy: printer must be non-nil")
	}

	pr.Section(fmt.Sprintf("1. INSPECTING THE HIERARCHY (EPSG:%d)", TargetCRSCode))
	pr.Linef("Goal: Prove that EPSG:%d is a container for other codes.", TargetCRSCode)
	pr.Blank()

	desc, err := catalog.Describe(ctx, TargetCRSCode)
	if err != nil {
		return fmt.Errorf("inspect hierarchy: describe EPSG:%d: %w", TargetCRSCode, err)
	}

	pr.Linef("PARENT SYSTEM: %s", desc.Name)
	pr.Linef(" -> Authority Code: %d", desc.Code)
	pr.Blank()
	pr.Linef("  -> CHILD COMPONENT (DATUM): %s", desc.Datum.Name)
	pr.Linef("  -> Datum Code: %d", desc.Datum.Code)
	pr.Blank()
	pr.Linef("    -> GRANDCHILD COMPONENT (ELLIPSOID): %s", desc.Ellipsoid.Name)
	pr.Linef("    -> Ellipsoid Code: %d", desc.Ellipsoid.Code)

	return nil
}
