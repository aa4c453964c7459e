package ports

import (
	"context"

	"github.com/rudeprover/GDAL-Stage/internal/domain"
)

// Port: a boundary for resolving CRS metadata by authority code.
// Implementations must resolve at least EPSG:4326 and its components.
type CRSCatalog interface {
	// Return the full name/code hierarchy (system, datum, ellipsoid) for an
	// EPSG code.
	Describe(ctx context.Context, code int) (domain.CRSDescription, error)
}
