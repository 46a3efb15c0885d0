package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
)

// AIUseCase orquesta el asistente de texto. Aplica un timeout de 10 segundos
// en cada llamada al LLM para evitar que las latencias externas bloqueen los
// goroutines del servidor.
type AIUseCase struct {
	llm ports.LLMService
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService) *AIUseCase {
	return &AIUseCase{llm: llm}
}

// Chat valida la entrada y delega al LLM.
func (uc *AIUseCase) Chat(ctx context.Context, req dto.AIChatRequest) (*dto.AIChatResponse, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("messages es obligatorio")
	}
	for _, m := range req.Messages {
		if m.Content == "" {
			return nil, fmt.Errorf("content es obligatorio en cada mensaje")
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	reply, err := uc.llm.Chat(ctx, req.Messages)
	if err != nil {
		return nil, fmt.Errorf("asistente IA: %w", err)
	}
	return reply, nil
}

// CheckTone revisa el tono de un mensaje dirigido al cliente final.
func (uc *AIUseCase) CheckTone(ctx context.Context, req dto.ToneCheckRequest) (*dto.ToneCheckDTO, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("message es obligatorio")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := uc.llm.CheckTone(ctx, req.Message)
	if err != nil {
		return nil, fmt.Errorf("revisión de tono: %w", err)
	}
	return result, nil
}
