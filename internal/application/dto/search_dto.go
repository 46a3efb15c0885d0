package dto

// SearchResponse salida agrupada de GET /api/search?q=.
// Todos los grupos están acotados al tenant del token.
type SearchResponse struct {
	Query     string                  `json:"query"`
	Customers []CustomerResponse      `json:"customers"`
	Jobs      []JobResponse           `json:"jobs"`
	Pricebook []PricebookItemResponse `json:"pricebook"`
}
