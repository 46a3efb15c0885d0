package dto

import "github.com/tu-usuario/fieldops-pro/internal/domain/geo"

// TechnicianRankDTO un técnico del ranking de despacho.
// Distance en millas con 1 decimal; Location es la coordenada SIMULADA del
// técnico (derivada de un hash de su ID, no GPS real).
type TechnicianRankDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Skills   []string  `json:"skills"`
	Distance float64   `json:"distance"`
	Location geo.Point `json:"location"`
}

// RecommendationResponse salida de GET /api/dispatch/recommend.
// Target es la coordenada objetivo resuelta (o el fallback configurado).
type RecommendationResponse struct {
	Target      geo.Point           `json:"target"`
	Technicians []TechnicianRankDTO `json:"technicians"`
}

// TechnicianLocationDTO salida de GET /api/dispatch/technicians.
type TechnicianLocationDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Skills   []string  `json:"skills"`
	Location geo.Point `json:"location"`
}
