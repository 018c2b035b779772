package geo

import "fmt"

// CoordinatePrecision is the fixed-point scale factor: a degree of
// latitude or longitude is stored as value*CoordinatePrecision.
const CoordinatePrecision = 1e6

// FPCoordinate is a latitude/longitude pair stored as fixed-point
// micro-degrees so that projection and comparison during the inertial-flow
// axis step are exact integer arithmetic.
type FPCoordinate struct {
	Lat int32
	Lon int32
}

// New builds an FPCoordinate directly from already-scaled micro-degree
// integers.
func New(lat, lon int32) FPCoordinate {
	return FPCoordinate{Lat: lat, Lon: lon}
}

// NewFromLatLon scales floating-point degrees into an FPCoordinate.
func NewFromLatLon(lat, lon float64) FPCoordinate {
	return FPCoordinate{
		Lat: int32(lat * CoordinatePrecision),
		Lon: int32(lon * CoordinatePrecision),
	}
}

// ToLatLon converts back to floating-point degrees.
func (c FPCoordinate) ToLatLon() (lat, lon float64) {
	return float64(c.Lat) / CoordinatePrecision, float64(c.Lon) / CoordinatePrecision
}

func (c FPCoordinate) String() string {
	lat, lon := c.ToLatLon()
	return fmt.Sprintf("(%f, %f)", lat, lon)
}
