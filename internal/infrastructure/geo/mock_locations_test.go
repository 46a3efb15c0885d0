package geo

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaingeo "github.com/tu-usuario/fieldops-pro/internal/domain/geo"
)

var springfield = domaingeo.Point{Lat: 39.7817, Lng: -89.6501}

func TestLocateEsDeterminista(t *testing.T) {
	l := NewMockLocator(springfield)

	p1 := l.Locate("tech-123")
	p2 := l.Locate("tech-123")
	assert.Equal(t, p1, p2, "el mismo técnico debe ubicarse siempre en el mismo punto")

	p3 := l.Locate("tech-456")
	assert.NotEqual(t, p1, p3, "técnicos distintos deben ubicarse en puntos distintos")
}

func TestGeocodeEsDeterminista(t *testing.T) {
	l := NewMockLocator(springfield)

	p1 := l.Geocode("123 Main St")
	p2 := l.Geocode("123 Main St")
	assert.Equal(t, p1, p2)
}

func TestJitterAcotado(t *testing.T) {
	l := NewMockLocator(springfield)

	for i := 0; i < 200; i++ {
		p := l.Locate(fmt.Sprintf("tech-%d", i))
		require.LessOrEqual(t, math.Abs(p.Lat-springfield.Lat), maxJitterDeg, "lat fuera de rango para tech-%d", i)
		require.LessOrEqual(t, math.Abs(p.Lng-springfield.Lng), maxJitterDeg, "lng fuera de rango para tech-%d", i)
	}
}

func TestLocateYGeocodeNoColisionan(t *testing.T) {
	l := NewMockLocator(springfield)

	// mismo string como ID de técnico y como dirección: seeds distintos
	assert.NotEqual(t, l.Locate("abc"), l.Geocode("abc"))
}
