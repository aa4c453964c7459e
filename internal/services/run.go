package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rudeprover/GDAL-Stage/internal/platform/obs"
	"github.com/rudeprover/GDAL-Stage/internal/ports"
	"github.com/rudeprover/GDAL-Stage/internal/report"
)

// Dependencies carries the three capabilities the demonstration consumes.
type Dependencies struct {
	Catalog     ports.CRSCatalog
	Transformer ports.TransformerFactory
	Geodesic    ports.GeodesicSolver
}

// Run executes the demonstration: hierarchy inspection, then the datum
// shift, then the error measurement fed by the shift's two pairs. Steps run
// strictly in order and the first failure aborts the run.
func Run(ctx context.Context, deps Dependencies, w io.Writer) (err error) {
	defer obs.Time(ctx, "services.Run")(&err)

	if deps.Catalog == nil {
		return errors.New("run: catalog must be non-nil")
	}
	if deps.Transformer == nil {
		return errors.New("run: transformer factory must be non-nil")
	}
	if deps.Geodesic == nil {
		return errors.New("run: geodesic solver must be non-nil")
	}
	if w == nil {
		return errors.New("run: writer must be non-nil")
	}

	pr := report.NewPrinter(w)
	pr.Linef("Running geodesy concept demonstration...")

	if err := InspectHierarchy(ctx, deps.Catalog, pr); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	original, shifted, err := DemonstrateDatumShift(ctx, deps.Transformer, pr)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	if _, err := MeasureDatumError(ctx, deps.Geodesic, pr, shifted, original); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	pr.Section("DEMONSTRATION COMPLETE")
	return nil
}
