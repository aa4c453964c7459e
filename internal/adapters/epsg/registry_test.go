package epsg

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDescribeWGS84(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	desc, err := r.Describe(context.Background(), 4326)
	require.NoError(t, err)

	assert.Equal(t, "WGS 84", desc.Name)
	assert.Equal(t, 4326, desc.Code)
	assert.Equal(t, "World Geodetic System 1984", desc.Datum.Name)
	assert.Equal(t, 6326, desc.Datum.Code)
	assert.Equal(t, "WGS 84", desc.Ellipsoid.Name)
	assert.Equal(t, 7030, desc.Ellipsoid.Code)
	assert.Equal(t, 6378137.0, desc.Ellipsoid.SemiMajorAxis)
	assert.Equal(t, 298.257223563, desc.Ellipsoid.InverseFlattening)
}

func TestRegistryDescribeNAD27(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	desc, err := r.Describe(context.Background(), 4267)
	require.NoError(t, err)

	assert.Equal(t, "NAD27", desc.Name)
	assert.Equal(t, 6267, desc.Datum.Code)
	assert.Equal(t, "North American Datum 1927", desc.Datum.Name)
	assert.Equal(t, 7008, desc.Ellipsoid.Code)
	assert.Equal(t, "Clarke 1866", desc.Ellipsoid.Name)
	// Clarke 1866 is defined by a and b; the stored inverse flattening is
	// the derived a/(a-b).
	assert.InDelta(t, 294.9786982139, desc.Ellipsoid.InverseFlattening, 1e-9)
	assert.InDelta(t, 6356583.8, desc.Ellipsoid.SemiMinorAxis(), 0.001)
}

func TestRegistryUnknownCode(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	_, err = r.Describe(context.Background(), 99999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = r.Ellipsoid(1234)
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = r.ToWGS84(31337)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestRegistryToWGS84(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	nad27, err := r.ToWGS84(4267)
	require.NoError(t, err)
	assert.Equal(t, [7]float64{-8, 160, 176, 0, 0, 0, 0}, nad27)

	osgb, err := r.ToWGS84(4277)
	require.NoError(t, err)
	assert.Equal(t, [7]float64{446.448, -125.157, 542.06, 0.1502, 0.247, 0.8421, -20.4894}, osgb)

	wgs, err := r.ToWGS84(4326)
	require.NoError(t, err)
	assert.Equal(t, [7]float64{}, wgs)
}

func TestRegistryEllipsoidLookup(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	wgs84, err := r.Ellipsoid(7030)
	require.NoError(t, err)
	assert.Equal(t, "WGS 84", wgs84.Name)
	assert.Equal(t, 6378137.0, wgs84.SemiMajorAxis)
	assert.InDelta(t, 6356752.3142, wgs84.SemiMinorAxis(), 0.001)

	grs80, err := r.Ellipsoid(7019)
	require.NoError(t, err)
	assert.Equal(t, "GRS 1980", grs80.Name)
}

func TestRegistryCodes(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	codes := r.Codes()
	require.NotEmpty(t, codes)
	assert.True(t, sort.IntsAreSorted(codes))
	assert.Contains(t, codes, 4326)
	assert.Contains(t, codes, 4267)
}

func TestLoadSeedRejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `[{`},
		{"empty dataset", `[]`},
		{"missing name", `[{"code":4326,"name":"","datum":{"code":6326,"name":"d"},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":6378137,"inverse_flattening":298.25},"to_wgs84":[0,0,0]}]`},
		{"bad crs code", `[{"code":0,"name":"x","datum":{"code":6326,"name":"d"},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":6378137,"inverse_flattening":298.25},"to_wgs84":[0,0,0]}]`},
		{"bad datum", `[{"code":4326,"name":"x","datum":{"code":0,"name":""},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":6378137,"inverse_flattening":298.25},"to_wgs84":[0,0,0]}]`},
		{"negative axis", `[{"code":4326,"name":"x","datum":{"code":6326,"name":"d"},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":-1,"inverse_flattening":298.25},"to_wgs84":[0,0,0]}]`},
		{"zero flattening", `[{"code":4326,"name":"x","datum":{"code":6326,"name":"d"},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":6378137,"inverse_flattening":0},"to_wgs84":[0,0,0]}]`},
		{"wrong shift arity", `[{"code":4326,"name":"x","datum":{"code":6326,"name":"d"},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":6378137,"inverse_flattening":298.25},"to_wgs84":[0,0]}]`},
		{"duplicate code", `[
			{"code":4326,"name":"x","datum":{"code":6326,"name":"d"},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":6378137,"inverse_flattening":298.25},"to_wgs84":[0,0,0]},
			{"code":4326,"name":"y","datum":{"code":6326,"name":"d"},"ellipsoid":{"code":7030,"name":"e","semi_major_axis":6378137,"inverse_flattening":298.25},"to_wgs84":[0,0,0]}
		]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadSeed([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestEmbeddedSeedIsValid(t *testing.T) {
	rows, err := loadSeed(seedData)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(rows), 6)
}
