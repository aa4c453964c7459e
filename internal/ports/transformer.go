package ports

import "context"

// A reusable mapping from (lon, lat) in one CRS to (lon, lat) in another.
// Implementations are safe for repeated use once constructed.
type Transformation interface {
	// Transform a single position. Arguments and results are degrees in
	// (longitude, latitude) order.
	Forward(lon, lat float64) (float64, float64, error)
}

// Port: a boundary for constructing coordinate transformations between two
// authority codes. Implementations must support at least EPSG:4267 ->
// EPSG:4326.
type TransformerFactory interface {
	// Build (or reuse) the transformation pipeline from sourceCode to
	// targetCode. Fails when either code cannot be resolved.
	NewTransformation(ctx context.Context, sourceCode, targetCode int) (Transformation, error)
}
