package epsg

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

// The registry ships its dataset inside the binary: the demonstration
// never touches the filesystem at runtime.
//
//go:embed data.json
var seedData []byte

type DatumSeed struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type EllipsoidSeed struct {
	Code              int     `json:"code"`
	Name              string  `json:"name"`
	SemiMajorAxis     float64 `json:"semi_major_axis"`
	InverseFlattening float64 `json:"inverse_flattening"`
}

// One geographic CRS definition as stored in the embedded dataset.
type CRSSeed struct {
	Code      int           `json:"code"`
	Name      string        `json:"name"`
	Datum     DatumSeed     `json:"datum"`
	Ellipsoid EllipsoidSeed `json:"ellipsoid"`
	// 3 (translations, meters) or 7 (plus rotations in arcseconds and scale
	// in ppm, position-vector convention) Helmert parameters into WGS84.
	ToWGS84   []float64 `json:"to_wgs84"`
	AreaOfUse string    `json:"area_of_use"`
}

// Parse and validate the embedded dataset.
func loadSeed(raw []byte) ([]CRSSeed, error) {
	var rows []CRSSeed
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("load epsg seed: parse json: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("load epsg seed: dataset is empty")
	}

	seen := make(map[int]struct{}, len(rows))
	for i, row := range rows {
		if err := validateSeedRow(row); err != nil {
			return nil, fmt.Errorf("load epsg seed: row %d: %w", i+1, err)
		}

		if _, ok := seen[row.Code]; ok {
			return nil, fmt.Errorf("load epsg seed: duplicate crs code %d", row.Code)
		}
		seen[row.Code] = struct{}{}
	}

	return rows, nil
}

func validateSeedRow(row CRSSeed) error {
	if row.Code <= 0 {
		return fmt.Errorf("invalid crs code %d", row.Code)
	}

	if strings.TrimSpace(row.Name) == "" {
		return fmt.Errorf("crs %d: name cannot be empty", row.Code)
	}

	if row.Datum.Code <= 0 || strings.TrimSpace(row.Datum.Name) == "" {
		return fmt.Errorf("crs %d: incomplete datum definition", row.Code)
	}

	e := row.Ellipsoid
	if e.Code <= 0 || strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("crs %d: incomplete ellipsoid definition", row.Code)
	}
	if e.SemiMajorAxis <= 0 {
		return fmt.Errorf("crs %d: ellipsoid %d: semi-major axis must be positive", row.Code, e.Code)
	}
	if e.InverseFlattening <= 0 {
		return fmt.Errorf("crs %d: ellipsoid %d: inverse flattening must be positive", row.Code, e.Code)
	}

	if n := len(row.ToWGS84); n != 3 && n != 7 {
		return fmt.Errorf("crs %d: to_wgs84 must hold 3 or 7 parameters, got %d", row.Code, n)
	}

	return nil
}
