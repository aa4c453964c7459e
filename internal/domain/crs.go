package domain

// Represents a reference ellipsoid: the mathematical surface (semi-major
// axis + flattening) a datum uses to approximate the Earth.
type Ellipsoid struct {
	Name              string
	Code              int
	SemiMajorAxis     float64 // meters
	InverseFlattening float64 // dimensionless (a / (a - b))
}

// Flattening derived from the stored inverse value.
func (e Ellipsoid) Flattening() float64 { return 1 / e.InverseFlattening }

// SemiMinorAxis derived from the semi-major axis and flattening, in meters.
func (e Ellipsoid) SemiMinorAxis() float64 {
	return e.SemiMajorAxis * (1 - e.Flattening())
}

// Represents a geodetic datum: the reference frame anchoring a coordinate
// system to the physical Earth.
type Datum struct {
	Name string
	Code int
}

// Represents a geographic coordinate reference system as the composite the
// hierarchy inspection walks: the system itself, the datum it anchors to,
// and the ellipsoid that datum measures against. A CRSDescription is
// immutable lookup output and carries no behavior of its own.
type CRSDescription struct {
	Name      string
	Code      int
	Datum     Datum
	Ellipsoid Ellipsoid
	AreaOfUse string
}
