package distance

import (
	"github.com/umahmood/haversine"
)

// EarthRadiusKm mirrors the radius haversine.Distance uses for kilometers.
const EarthRadiusKm = 6371.0

type Coordinates = haversine.Coord

// GreatCircleDistance returns the haversine distance in kilometers between
// two points given in decimal degrees.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return Between(
		Coordinates{Lat: lat1, Lon: lon1},
		Coordinates{Lat: lat2, Lon: lon2},
	)
}

func Between(p, q Coordinates) float64 {
	_, km := haversine.Distance(p, q)
	return km
}
