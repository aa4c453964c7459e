// Package datum builds coordinate transformations between geographic
// reference systems. A transformation converts through geocentric XYZ:
// geodetic on the source ellipsoid, a position-vector shift into WGS84,
// optionally the inverse shift out of WGS84, then geodetic on the target
// ellipsoid.
package datum

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rudeprover/GDAL-Stage/internal/adapters/epsg"
	"github.com/rudeprover/GDAL-Stage/internal/platform/obs"
	"github.com/rudeprover/GDAL-Stage/internal/ports"
)

// ErrNonFinite is returned when a transformation input is NaN or infinite.
var ErrNonFinite = errors.New("coordinate is not finite")

// Factory builds and caches datum-shift pipelines resolved from the
// authority registry.
type Factory struct {
	registry *epsg.Registry

	mu    sync.RWMutex
	cache map[pipelineKey]*transformation
}

type pipelineKey struct {
	source int
	target int
}

// NewFactory wires a transformation factory over the given registry.
func NewFactory(registry *epsg.Registry) (*Factory, error) {
	if registry == nil {
		return nil, errors.New("new datum factory: registry is nil")
	}
	return &Factory{
		registry: registry,
		cache:    make(map[pipelineKey]*transformation),
	}, nil
}

// NewTransformation resolves both codes against the registry and returns a
// pipeline converting source coordinates to the target system. Pipelines
// are cached per (source, target) pair.
func (f *Factory) NewTransformation(ctx context.Context, sourceCode, targetCode int) (_ ports.Transformation, err error) {
	defer obs.Time(ctx, "datum.NewTransformation")(&err)

	key := pipelineKey{source: sourceCode, target: targetCode}
	if t, ok := f.lookup(key); ok {
		return t, nil
	}

	src, err := f.registry.Describe(ctx, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("new transformation: resolve source crs %d: %w", sourceCode, err)
	}
	dst, err := f.registry.Describe(ctx, targetCode)
	if err != nil {
		return nil, fmt.Errorf("new transformation: resolve target crs %d: %w", targetCode, err)
	}

	srcShift, err := f.registry.ToWGS84(sourceCode)
	if err != nil {
		return nil, fmt.Errorf("new transformation: source crs %d: %w", sourceCode, err)
	}
	dstShift, err := f.registry.ToWGS84(targetCode)
	if err != nil {
		return nil, fmt.Errorf("new transformation: target crs %d: %w", targetCode, err)
	}

	t := &transformation{
		sourceCode:   sourceCode,
		targetCode:   targetCode,
		srcEllipsoid: newEllipsoidParams(src.Ellipsoid),
		dstEllipsoid: newEllipsoidParams(dst.Ellipsoid),
		srcShift:     newHelmertParams(srcShift),
		dstShift:     newHelmertParams(dstShift),
		identity:     sourceCode == targetCode,
	}
	f.store(key, t)
	return t, nil
}

func (f *Factory) lookup(key pipelineKey) (*transformation, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.cache[key]
	return t, ok
}

func (f *Factory) store(key pipelineKey, t *transformation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[key] = t
}

// A resolved datum-shift pipeline between two geographic systems.
type transformation struct {
	sourceCode   int
	targetCode   int
	srcEllipsoid ellipsoidParams
	dstEllipsoid ellipsoidParams
	srcShift     helmertParams
	dstShift     helmertParams
	identity     bool
}

// Forward converts a (longitude, latitude) pair in the source system to the
// target system. Height is taken as zero on the source ellipsoid.
func (t *transformation) Forward(lon, lat float64) (float64, float64, error) {
	if !isFinite(lon) || !isFinite(lat) {
		return 0, 0, fmt.Errorf("transform %d to %d: %w", t.sourceCode, t.targetCode, ErrNonFinite)
	}
	if t.identity {
		return lon, lat, nil
	}

	x, y, z := geodeticToGeocentric(t.srcEllipsoid, lon, lat, 0)
	x, y, z = t.srcShift.apply(x, y, z)
	if !t.dstShift.isIdentity() {
		x, y, z = t.dstShift.applyInverse(x, y, z)
	}
	lon2, lat2, _ := geocentricToGeodetic(t.dstEllipsoid, x, y, z)
	return lon2, lat2, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
