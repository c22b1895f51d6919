package models

import (
	"fmt"
	"math"

	"github.com/jftuga/geodist"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the geodesic distance to other in kilometers,
// rounded to 3 decimal places (half away from zero).
func (l Location) DistanceKm(other Location) (float64, error) {
	_, km, err := geodist.VincentyDistance(
		geodist.Coord{Lat: l.Lat, Lon: l.Lon},
		geodist.Coord{Lat: other.Lat, Lon: other.Lon},
	)
	if err != nil {
		return 0, fmt.Errorf("vincenty distance did not converge: %w", err)
	}
	return RoundKm(km), nil
}

// RoundKm rounds a kilometer value to 3 decimal places.
func RoundKm(km float64) float64 {
	return math.Round(km*1000) / 1000
}
