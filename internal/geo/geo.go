// Package geo provides the coordinate validation and great-circle math
// shared by services, mocks and tests. Real radius queries are delegated
// to the spatial store; this package only has to agree with it on the
// distance convention (meters, great-circle).
package geo

import "math"

// earthRadiusM is the mean Earth radius in meters (IUGG).
const earthRadiusM = 6371008.8

// metersPerDegreeLat is the north-south span of one degree of latitude.
const metersPerDegreeLat = earthRadiusM * math.Pi / 180

// IsValidLatitude reports whether lat is a usable WGS 84 latitude.
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude reports whether lon is a usable WGS 84 longitude.
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// DistanceMeters returns the great-circle (haversine) distance between
// two points, in meters.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// LatitudeInside returns a latitude due north of lat that lies safely
// inside the given distance (95% of it). Used to place fixtures.
func LatitudeInside(lat, distanceMeters float64) float64 {
	return lat + (distanceMeters*0.95)/metersPerDegreeLat
}

// LatitudeOutside returns a latitude due north of lat that lies safely
// outside the given distance (105% of it).
func LatitudeOutside(lat, distanceMeters float64) float64 {
	return lat + (distanceMeters*1.05)/metersPerDegreeLat
}
