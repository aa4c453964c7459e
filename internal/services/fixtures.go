package services

// The demonstration's fixed inputs. These are well-known reference values,
// not configuration: the educational narrative depends on these exact
// numbers.
const (
	// Meades Ranch, Kansas: the triangulation station chosen as the
	// origin of the North American Datum of 1927.
	MeadesRanchName = "Meades Ranch, Kansas"
	MeadesRanchLat  = 39.224079
	MeadesRanchLon  = -98.541802

	// Geographic systems demonstrated: NAD27 in, WGS84 out.
	SourceCRSCode = 4267
	TargetCRSCode = 4326

	// Reference ellipsoid the error is measured on.
	WGS84EllipsoidCode = 7030

	// Fixed linear conversion, not a capability call.
	FeetPerMeter = 3.28084
)
