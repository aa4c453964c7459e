package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rudeprover/GDAL-Stage/internal/adapters/epsg"
)

// Maintenance tool for the embedded EPSG dataset. With no arguments it
// lists every registered code; with arguments it describes each one.
// EPSG_VERBOSE=1 adds the raw dataset row.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	registry, err := epsg.NewRegistry()
	if err != nil {
		log.Fatalf("registry load failed: %v", err)
	}

	if len(os.Args) < 2 {
		listCodes(registry)
		return
	}

	verbose := os.Getenv("EPSG_VERBOSE") == "1"
	ctx := context.Background()

	for _, arg := range os.Args[1:] {
		code, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("invalid authority code %q: %v", arg, err)
		}
		if err := describe(ctx, registry, code, verbose); err != nil {
			log.Fatal(err)
		}
	}
}

func listCodes(registry *epsg.Registry) {
	codes := registry.Codes()
	log.Printf("registry holds %d definitions", len(codes))

	for _, code := range codes {
		row, ok := registry.Seed(code)
		if !ok {
			log.Fatalf("code %d listed but not resolvable", code)
		}
		fmt.Printf("EPSG:%d  %s\n", code, row.Name)
	}
}

func describe(ctx context.Context, registry *epsg.Registry, code int, verbose bool) error {
	desc, err := registry.Describe(ctx, code)
	if err != nil {
		return fmt.Errorf("describe: %w", err)
	}
	shift, err := registry.ToWGS84(code)
	if err != nil {
		return fmt.Errorf("describe: %w", err)
	}

	fmt.Printf("EPSG:%d  %s\n", desc.Code, desc.Name)
	fmt.Printf("  datum      %s (EPSG:%d)\n", desc.Datum.Name, desc.Datum.Code)
	fmt.Printf("  ellipsoid  %s (EPSG:%d)  a=%.3f m  1/f=%v\n",
		desc.Ellipsoid.Name, desc.Ellipsoid.Code,
		desc.Ellipsoid.SemiMajorAxis, desc.Ellipsoid.InverseFlattening)
	fmt.Printf("  toWGS84    %v\n", shift)
	if desc.AreaOfUse != "" {
		fmt.Printf("  area       %s\n", desc.AreaOfUse)
	}

	if verbose {
		row, _ := registry.Seed(code)
		fmt.Printf("  raw row    %+v\n", row)
	}
	return nil
}
