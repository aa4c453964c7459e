package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/rudeprover/GDAL-Stage/internal/adapters/datum"
	"github.com/rudeprover/GDAL-Stage/internal/adapters/epsg"
	"github.com/rudeprover/GDAL-Stage/internal/adapters/geodesic"
	"github.com/rudeprover/GDAL-Stage/internal/platform/obs"
	"github.com/rudeprover/GDAL-Stage/internal/services"
)

// main is the demonstration composition root.
// It wires the three concrete geodesy capabilities behind their ports and
// runs the educational report against stdout. The binary takes no
// arguments, no flags, and consults no environment.
func main() {
	ctx := obs.WithRunID(context.Background(), uuid.NewString())

	deps, err := buildDependencies(ctx)
	if err != nil {
		// Startup capability failures are explained to the reader on
		// stdout before any demonstration output.
		fmt.Println("Error: Missing required geodesy capabilities.")
		fmt.Printf("Details: %v\n", err)
		fmt.Println("The CRS registry, datum transformation, and geodesic solver ship inside this binary; rebuild it from a clean checkout.")
		os.Exit(1)
	}

	if err := services.Run(ctx, deps, os.Stdout); err != nil {
		log.Fatalf("geodemo: %v", err)
	}
}

// buildDependencies constructs every capability up front so a broken one is
// reported as a missing dependency, not as a mid-report failure.
func buildDependencies(ctx context.Context) (services.Dependencies, error) {
	registry, err := epsg.NewRegistry()
	if err != nil {
		return services.Dependencies{}, fmt.Errorf("crs metadata service: %w", err)
	}

	factory, err := datum.NewFactory(registry)
	if err != nil {
		return services.Dependencies{}, fmt.Errorf("coordinate transformation service: %w", err)
	}
	// The demonstration's own pipeline must be constructible before any
	// output is printed.
	if _, err := factory.NewTransformation(ctx, services.SourceCRSCode, services.TargetCRSCode); err != nil {
		return services.Dependencies{}, fmt.Errorf("coordinate transformation service: %w", err)
	}

	wgs84, err := registry.Ellipsoid(services.WGS84EllipsoidCode)
	if err != nil {
		return services.Dependencies{}, fmt.Errorf("geodesic distance service: %w", err)
	}
	solver, err := geodesic.NewSolver(wgs84)
	if err != nil {
		return services.Dependencies{}, fmt.Errorf("geodesic distance service: %w", err)
	}

	return services.Dependencies{
		Catalog:     registry,
		Transformer: factory,
		Geodesic:    solver,
	}, nil
}
