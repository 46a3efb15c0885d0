package geo

import (
	"hash/fnv"

	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
	domaingeo "github.com/tu-usuario/fieldops-pro/internal/domain/geo"
)

// Geocoding y ubicación de técnicos SIMULADOS: no hay GPS ni proveedor de mapas.
// Ambos derivan un punto determinista dentro de ±maxJitterDeg alrededor del
// centro de ciudad configurado, hasheando el ID o la dirección. La misma
// entrada produce siempre el mismo punto, así que las distancias del
// recomendador son estables entre peticiones.
const maxJitterDeg = 0.05

var _ ports.TechnicianLocator = (*MockLocator)(nil)
var _ ports.Geocoder = (*MockLocator)(nil)

// MockLocator ubica técnicos y geocodifica direcciones alrededor de un centro fijo.
type MockLocator struct {
	center domaingeo.Point
}

// NewMockLocator construye el locator con el centro de ciudad configurado.
func NewMockLocator(center domaingeo.Point) *MockLocator {
	return &MockLocator{center: center}
}

// Locate devuelve la posición simulada del técnico.
func (l *MockLocator) Locate(technicianID string) domaingeo.Point {
	return l.jitter("tech:" + technicianID)
}

// Geocode devuelve la posición simulada de una dirección.
func (l *MockLocator) Geocode(address string) domaingeo.Point {
	return l.jitter("addr:" + address)
}

// jitter mapea el seed a un offset en [-maxJitterDeg, +maxJitterDeg] por eje,
// con hashes FNV independientes para lat y lng.
func (l *MockLocator) jitter(seed string) domaingeo.Point {
	return domaingeo.Point{
		Lat: l.center.Lat + offset(seed+"|lat"),
		Lng: l.center.Lng + offset(seed+"|lng"),
	}
}

func offset(s string) float64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	// fracción uniforme en [0,1) a partir de los 53 bits altos del hash
	frac := float64(h.Sum64()>>11) / float64(uint64(1)<<53)
	return (frac*2 - 1) * maxJitterDeg
}
