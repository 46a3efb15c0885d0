package ports

import (
	"context"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
)

// LLMService define el puerto de salida para el asistente de texto IA.
// Cualquier adaptador (DeepSeek, OpenAI, mock) debe implementar esta interfaz.
// La aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Chat reenvía la conversación al modelo y devuelve la respuesta del asistente.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Chat(ctx context.Context, messages []dto.AIMessage) (*dto.AIChatResponse, error)

	// CheckTone revisa un mensaje dirigido al cliente final: lo reescribe en tono
	// profesional y lista los problemas de tono detectados.
	CheckTone(ctx context.Context, message string) (*dto.ToneCheckDTO, error)
}
