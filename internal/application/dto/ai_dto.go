package dto

// AIMessage un turno de conversación con el asistente.
type AIMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// AIChatRequest entrada para POST /api/ai/chat.
type AIChatRequest struct {
	Messages []AIMessage `json:"messages" validate:"required,min=1,dive"`
}

// AIChatResponse respuesta del asistente.
// Mocked indica que no hay DEEPSEEK_API_KEY y la respuesta es simulada.
type AIChatResponse struct {
	Reply  string `json:"reply"`
	Mocked bool   `json:"mocked,omitempty"`
}

// ToneCheckRequest entrada para POST /api/ai/tone-check.
type ToneCheckRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ToneCheckDTO resultado de la revisión de tono de un mensaje al cliente.
type ToneCheckDTO struct {
	Rewritten string   `json:"rewritten"`
	Issues    []string `json:"issues"`
	Mocked    bool     `json:"mocked,omitempty"`
}
