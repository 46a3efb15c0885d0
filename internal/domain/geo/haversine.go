// Package geo cálculo de distancias para el ranking de despacho.
package geo

import "math"

// EarthRadiusMiles radio terrestre en millas (el despacho reporta millas).
const EarthRadiusMiles = 3958.8

// Point coordenada lat/lng en grados.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HaversineMiles distancia de círculo máximo entre dos puntos, en millas.
// Simétrica: HaversineMiles(a, b) == HaversineMiles(b, a).
func HaversineMiles(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lng1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lng2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}

// RoundMiles redondea a 1 decimal (formato del endpoint de recomendación).
func RoundMiles(d float64) float64 {
	return math.Round(d*10) / 10
}
