package datum

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudeprover/GDAL-Stage/internal/adapters/epsg"
)

func newTestFactory(t *testing.T) *Factory {
	t.Helper()
	reg, err := epsg.NewRegistry()
	require.NoError(t, err)
	f, err := NewFactory(reg)
	require.NoError(t, err)
	return f
}

func TestNewFactoryNilRegistry(t *testing.T) {
	_, err := NewFactory(nil)
	assert.Error(t, err)
}

func TestMeadesRanchNAD27ToWGS84(t *testing.T) {
	f := newTestFactory(t)
	tr, err := f.NewTransformation(context.Background(), 4267, 4326)
	require.NoError(t, err)

	// Meades Ranch, Kansas: the origin point of the NAD27 datum.
	lon, lat, err := tr.Forward(-98.541802, 39.224079)
	require.NoError(t, err)

	assert.InDelta(t, -98.54216882666238, lon, 1e-9)
	assert.InDelta(t, 39.22410341073992, lat, 1e-9)
}

func TestNAD27ShiftIsSmallButReal(t *testing.T) {
	f := newTestFactory(t)
	tr, err := f.NewTransformation(context.Background(), 4267, 4326)
	require.NoError(t, err)

	lon, lat, err := tr.Forward(-98.541802, 39.224079)
	require.NoError(t, err)

	dLon := math.Abs(lon - (-98.541802))
	dLat := math.Abs(lat - 39.224079)

	assert.Greater(t, dLon, 1e-4)
	assert.Less(t, dLon, 0.01)
	assert.Greater(t, dLat, 1e-5)
	assert.Less(t, dLat, 0.01)
}

func TestIdentityTransformation(t *testing.T) {
	f := newTestFactory(t)
	tr, err := f.NewTransformation(context.Background(), 4326, 4326)
	require.NoError(t, err)

	lon, lat, err := tr.Forward(-98.541802, 39.224079)
	require.NoError(t, err)
	assert.Equal(t, -98.541802, lon)
	assert.Equal(t, 39.224079, lat)
}

func TestNAD83ToWGS84IsNearIdentity(t *testing.T) {
	f := newTestFactory(t)
	tr, err := f.NewTransformation(context.Background(), 4269, 4326)
	require.NoError(t, err)

	// Both datums carry zero shift parameters; only the sub-millimeter
	// difference between the GRS 1980 and WGS 84 ellipsoids remains.
	lon, lat, err := tr.Forward(-98.541802, 39.224079)
	require.NoError(t, err)
	assert.InDelta(t, -98.541802, lon, 1e-7)
	assert.InDelta(t, 39.224079, lat, 1e-7)
}

func TestOSGB36ToWGS84SevenParameter(t *testing.T) {
	f := newTestFactory(t)
	tr, err := f.NewTransformation(context.Background(), 4277, 4326)
	require.NoError(t, err)

	// Near the Royal Observatory at Greenwich. The OSGB 1936 shift uses
	// all seven parameters including rotations and scale.
	lon, lat, err := tr.Forward(0.0014, 51.4778)
	require.NoError(t, err)
	assert.InDelta(t, -0.00021981885811979475, lon, 1e-9)
	assert.InDelta(t, 51.478315816034886, lat, 1e-9)
}

func TestED50ToWGS84ThreeParameter(t *testing.T) {
	f := newTestFactory(t)
	tr, err := f.NewTransformation(context.Background(), 4230, 4326)
	require.NoError(t, err)

	// Central Paris.
	lon, lat, err := tr.Forward(2.2945, 48.8584)
	require.NoError(t, err)
	assert.InDelta(t, 2.293213, lon, 1e-6)
	assert.InDelta(t, 48.857485, lat, 1e-6)
}

func TestRoundTripThroughNonWGS84Target(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	into, err := f.NewTransformation(ctx, 4326, 4277)
	require.NoError(t, err)
	back, err := f.NewTransformation(ctx, 4277, 4326)
	require.NoError(t, err)

	lon1, lat1, err := into.Forward(-0.1278, 51.5074)
	require.NoError(t, err)
	lon2, lat2, err := back.Forward(lon1, lat1)
	require.NoError(t, err)

	assert.InDelta(t, -0.1278, lon2, 1e-8)
	assert.InDelta(t, 51.5074, lat2, 1e-8)
}

func TestUnknownCodesAreRejected(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	_, err := f.NewTransformation(ctx, 9999, 4326)
	assert.ErrorIs(t, err, epsg.ErrUnknownCode)

	_, err = f.NewTransformation(ctx, 4267, 9999)
	assert.ErrorIs(t, err, epsg.ErrUnknownCode)
}

func TestNonFiniteInputIsRejected(t *testing.T) {
	f := newTestFactory(t)
	tr, err := f.NewTransformation(context.Background(), 4267, 4326)
	require.NoError(t, err)

	_, _, err = tr.Forward(math.NaN(), 39.224079)
	assert.ErrorIs(t, err, ErrNonFinite)

	_, _, err = tr.Forward(-98.541802, math.Inf(1))
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestPipelinesAreCached(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	t1, err := f.NewTransformation(ctx, 4267, 4326)
	require.NoError(t, err)
	t2, err := f.NewTransformation(ctx, 4267, 4326)
	require.NoError(t, err)

	assert.Same(t, t1, t2)
}

func TestGeocentricRoundTrip(t *testing.T) {
	reg, err := epsg.NewRegistry()
	require.NoError(t, err)
	wgs84, err := reg.Ellipsoid(7030)
	require.NoError(t, err)
	ep := newEllipsoidParams(wgs84)

	cases := []struct {
		name     string
		lon, lat float64
	}{
		{"meades ranch", -98.541802, 39.224079},
		{"equator", 12.5, 0},
		{"southern hemisphere", 151.2093, -33.8688},
		{"high latitude", -21.9426, 64.1466},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, z := geodeticToGeocentric(ep, tc.lon, tc.lat, 0)
			lon, lat, h := geocentricToGeodetic(ep, x, y, z)
			assert.InDelta(t, tc.lon, lon, 1e-9)
			assert.InDelta(t, tc.lat, lat, 1e-9)
			assert.InDelta(t, 0, h, 1e-6)
		})
	}
}

func TestHelmertIdentity(t *testing.T) {
	zero := newHelmertParams([7]float64{})
	assert.True(t, zero.isIdentity())

	osgb := newHelmertParams([7]float64{446.448, -125.157, 542.06, 0.1502, 0.247, 0.8421, -20.4894})
	assert.False(t, osgb.isIdentity())

	x, y, z := zero.apply(1000, 2000, 3000)
	assert.Equal(t, 1000.0, x)
	assert.Equal(t, 2000.0, y)
	assert.Equal(t, 3000.0, z)
}
