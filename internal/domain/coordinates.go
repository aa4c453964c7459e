package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (longitude, latitude) in decimal degrees.
// Field order follows the (lon, lat) convention of the transformation
// primitive; human-facing output uses (lat, lon) reading order.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Return coordinates as [lon, lat] for transformation-pipeline compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// Report whether both components are finite numbers.
func (c Coordinates) IsFinite() bool {
	return !math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0) &&
		!math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0)
}

// Render in (lat, lon) reading order at six decimal places.
func (c Coordinates) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lon)
}
