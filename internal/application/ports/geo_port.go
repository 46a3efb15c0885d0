package ports

import "github.com/tu-usuario/fieldops-pro/internal/domain/geo"

// TechnicianLocator resuelve la ubicación actual de un técnico.
//
// La implementación de producción actual (infrastructure/geo) es un STAND-IN:
// deriva la coordenada de forma determinista a partir de un hash del ID del
// técnico, a la espera de un feed GPS real. El determinismo se mantiene por
// reproducibilidad de tests; nunca debe presentarse como posición GPS real.
type TechnicianLocator interface {
	Locate(technicianID string) geo.Point
}

// Geocoder resuelve una dirección postal a coordenadas.
// La implementación actual también es simulada: jitter acotado alrededor del
// centro de ciudad configurado.
type Geocoder interface {
	Geocode(address string) geo.Point
}
