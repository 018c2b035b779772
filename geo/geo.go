package geo

// CrossProduct returns the z-component of (b-a) x (c-a) for three fixed
// point coordinates treated as points in the plane. Its sign tells which
// way the path a->b->c turns; its magnitude is twice the signed area of
// the triangle a,b,c.
func CrossProduct(a, b, c FPCoordinate) int64 {
	abLat, abLon := int64(b.Lat-a.Lat), int64(b.Lon-a.Lon)
	acLat, acLon := int64(c.Lat-a.Lat), int64(c.Lon-a.Lon)
	return abLon*acLat - abLat*acLon
}

// IsClockwiseTurn reports whether the path a->b->c turns clockwise.
func IsClockwiseTurn(a, b, c FPCoordinate) bool {
	return CrossProduct(a, b, c) < 0
}

// Project returns the scalar projection of c onto the axis defined by
// coefficients (c0, c1): lon*c0 + lat*c1. The four fixed coefficient pairs
// used by the inertial-flow axis step live in package inertial.
func Project(c FPCoordinate, c0, c1 int64) int64 {
	return int64(c.Lon)*c0 + int64(c.Lat)*c1
}
