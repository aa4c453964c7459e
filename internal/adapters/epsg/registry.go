// Package epsg implements the CRS metadata capability as an embedded subset
// of the EPSG dataset: the geographic 2D systems the demonstration and its
// tools resolve, each carrying its datum, its ellipsoid and its Helmert
// parameters into WGS84.
package epsg

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rudeprover/GDAL-Stage/internal/domain"
)

// Returned (wrapped) when an authority code is not in the dataset.
var ErrUnknownCode = errors.New("unknown authority code")

// In-memory EPSG registry. Read-only after construction; safe for
// concurrent use.
type Registry struct {
	rows       map[int]CRSSeed
	ellipsoids map[int]domain.Ellipsoid
	codes      []int
}

// NewRegistry parses and validates the embedded dataset. An error here means
// the metadata capability is unavailable (the binary was built from a broken
// dataset), which callers treat as a missing dependency.
func NewRegistry() (*Registry, error) {
	rows, err := loadSeed(seedData)
	if err != nil {
		return nil, fmt.Errorf("epsg registry: %w", err)
	}

	r := &Registry{
		rows:       make(map[int]CRSSeed, len(rows)),
		ellipsoids: make(map[int]domain.Ellipsoid, len(rows)),
		codes:      make([]int, 0, len(rows)),
	}

	for _, row := range rows {
		r.rows[row.Code] = row
		r.codes = append(r.codes, row.Code)

		// Ellipsoids are shared between systems (GRS 1980 anchors both
		// NAD83 and ETRS89); last writer wins over identical values.
		r.ellipsoids[row.Ellipsoid.Code] = domain.Ellipsoid{
			Name:              row.Ellipsoid.Name,
			Code:              row.Ellipsoid.Code,
			SemiMajorAxis:     row.Ellipsoid.SemiMajorAxis,
			InverseFlattening: row.Ellipsoid.InverseFlattening,
		}
	}
	sort.Ints(r.codes)

	return r, nil
}

// Return the name/code hierarchy (system, datum, ellipsoid) for a CRS code.
func (r *Registry) Describe(ctx context.Context, code int) (domain.CRSDescription, error) {
	row, ok := r.rows[code]
	if !ok {
		return domain.CRSDescription{}, fmt.Errorf("describe crs %d: %w", code, ErrUnknownCode)
	}

	return domain.CRSDescription{
		Name: row.Name,
		Code: row.Code,
		Datum: domain.Datum{
			Name: row.Datum.Name,
			Code: row.Datum.Code,
		},
		Ellipsoid: domain.Ellipsoid{
			Name:              row.Ellipsoid.Name,
			Code:              row.Ellipsoid.Code,
			SemiMajorAxis:     row.Ellipsoid.SemiMajorAxis,
			InverseFlattening: row.Ellipsoid.InverseFlattening,
		},
		AreaOfUse: row.AreaOfUse,
	}, nil
}

// Resolve a reference ellipsoid by its own EPSG code (e.g. 7030 for WGS 84).
func (r *Registry) Ellipsoid(code int) (domain.Ellipsoid, error) {
	e, ok := r.ellipsoids[code]
	if !ok {
		return domain.Ellipsoid{}, fmt.Errorf("resolve ellipsoid %d: %w", code, ErrUnknownCode)
	}
	return e, nil
}

// Helmert parameters into WGS84 for a CRS code, normalized to 7 values
// (dx, dy, dz, rx, ry, rz, ds).
func (r *Registry) ToWGS84(code int) ([7]float64, error) {
	row, ok := r.rows[code]
	if !ok {
		return [7]float64{}, fmt.Errorf("datum shift parameters for crs %d: %w", code, ErrUnknownCode)
	}

	var p [7]float64
	copy(p[:], row.ToWGS84)
	return p, nil
}

// All CRS codes in the dataset, ascending.
func (r *Registry) Codes() []int {
	out := make([]int, len(r.codes))
	copy(out, r.codes)
	return out
}

// Raw dataset row, for tooling output.
func (r *Registry) Seed(code int) (CRSSeed, bool) {
	row, ok := r.rows[code]
	return row, ok
}
