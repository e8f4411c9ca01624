package geo

import "math"

// EarthRadiusKM is the spherical-earth radius used for great-circle math,
// chosen to stay comparable with PostGIS geography distances.
const EarthRadiusKM = 6371.0

// HaversineKM returns the great-circle distance in kilometers between two
// (lat, lng) points on a spherical earth.
func HaversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}
