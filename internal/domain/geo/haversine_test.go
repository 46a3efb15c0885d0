package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/fieldops-pro/internal/domain/geo"
)

// Distancia conocida: Springfield, IL → Chicago, IL ≈ 179 millas en línea recta.
func TestHaversineMiles_DistanciaConocida(t *testing.T) {
	springfield := geo.Point{Lat: 39.7817, Lng: -89.6501}
	chicago := geo.Point{Lat: 41.8781, Lng: -87.6298}

	d := geo.HaversineMiles(springfield, chicago)
	assert.InDelta(t, 179.0, d, 3.0, "la distancia Springfield-Chicago debe rondar las 179 millas")
}

// Propiedad: la distancia es simétrica para cualquier par de puntos.
func TestHaversineMiles_Simetrica(t *testing.T) {
	pares := [][2]geo.Point{
		{{Lat: 39.7817, Lng: -89.6501}, {Lat: 41.8781, Lng: -87.6298}},
		{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 180}},
		{{Lat: -33.45, Lng: -70.66}, {Lat: 4.71, Lng: -74.07}},
		{{Lat: 89.9, Lng: 10}, {Lat: -89.9, Lng: -170}},
	}
	for _, p := range pares {
		ab := geo.HaversineMiles(p[0], p[1])
		ba := geo.HaversineMiles(p[1], p[0])
		assert.Equal(t, ab, ba, "distance(A,B) debe ser igual a distance(B,A)")
	}
}

func TestHaversineMiles_MismoPuntoEsCero(t *testing.T) {
	p := geo.Point{Lat: 39.7817, Lng: -89.6501}
	assert.Zero(t, geo.HaversineMiles(p, p))
}

func TestRoundMiles_UnDecimal(t *testing.T) {
	assert.Equal(t, 12.3, geo.RoundMiles(12.34))
	assert.Equal(t, 12.4, geo.RoundMiles(12.36))
	assert.Equal(t, 0.0, geo.RoundMiles(0.04))
}
