package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
)

// Verificar en tiempo de compilación que DeepSeekService implementa LLMService.
var _ ports.LLMService = (*DeepSeekService)(nil)

const (
	deepseekChatURL = "https://api.deepseek.com/chat/completions"

	chatSystemPrompt = `Eres el asistente de una empresa de servicios de campo (HVAC, plomería, electricidad).
Ayudas a dispatchers y técnicos a redactar mensajes a clientes, resumir trabajos y responder dudas operativas.
Responde en el idioma del usuario, de forma breve y práctica.`

	toneSystemPrompt = `Revisas mensajes que un técnico o dispatcher va a enviar a un cliente final.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código) con esta estructura exacta:
{
  "rewritten": "<el mensaje reescrito en tono profesional y cortés, conservando el idioma original>",
  "issues": ["<problema de tono detectado>", ...]
}

Reglas:
- Si el mensaje ya es apropiado, rewritten lo devuelve igual e issues queda como lista vacía.
- issues nombra cada problema en una frase corta (ej: "lenguaje brusco", "culpa al cliente").
- No incluyas texto fuera del JSON. Solo el objeto JSON.`
)

// DeepSeekService adaptador que implementa LLMService usando la API REST de DeepSeek
// (protocolo chat/completions compatible con OpenAI). Usa net/http de la librería
// estándar de Go; no requiere SDK.
// Si apiKey está vacío opera en modo simulado: respuestas deterministas con Mocked=true,
// para que el demo funcione sin credenciales.
type DeepSeekService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewDeepSeekService construye el adaptador. model suele ser "deepseek-chat".
func NewDeepSeekService(apiKey, model string) *DeepSeekService {
	return &DeepSeekService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo chat/completions ───────────────────────

type deepseekRequest struct {
	Model    string            `json:"model"`
	Messages []deepseekMessage `json:"messages"`
	Stream   bool              `json:"stream"`
}

type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// Chat reenvía la conversación a DeepSeek y devuelve la respuesta del asistente.
func (s *DeepSeekService) Chat(ctx context.Context, messages []dto.AIMessage) (*dto.AIChatResponse, error) {
	if s.apiKey == "" {
		return &dto.AIChatResponse{Reply: mockChatReply(messages), Mocked: true}, nil
	}

	payload := []deepseekMessage{{Role: "system", Content: chatSystemPrompt}}
	for _, m := range messages {
		payload = append(payload, deepseekMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := s.complete(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &dto.AIChatResponse{Reply: reply}, nil
}

// CheckTone revisa el tono de un mensaje al cliente y lo reescribe si hace falta.
func (s *DeepSeekService) CheckTone(ctx context.Context, message string) (*dto.ToneCheckDTO, error) {
	if s.apiKey == "" {
		return mockToneCheck(message), nil
	}

	payload := []deepseekMessage{
		{Role: "system", Content: toneSystemPrompt},
		{Role: "user", Content: message},
	}
	rawText, err := s.complete(ctx, payload)
	if err != nil {
		return nil, err
	}

	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}

	var result struct {
		Rewritten string   `json:"rewritten"`
		Issues    []string `json:"issues"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de tono: %w (JSON extraído: %s)", err, cleanJSON)
	}
	if result.Issues == nil {
		result.Issues = []string{}
	}
	return &dto.ToneCheckDTO{Rewritten: result.Rewritten, Issues: result.Issues}, nil
}

// complete ejecuta una llamada chat/completions y devuelve el contenido del primer choice.
func (s *DeepSeekService) complete(ctx context.Context, messages []deepseekMessage) (string, error) {
	body, err := json.Marshal(deepseekRequest{Model: s.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, deepseekChatURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp deepseekResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: DeepSeek error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: DeepSeek HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var dsResp deepseekResponse
	if err := json.Unmarshal(rawBody, &dsResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta DeepSeek: %w", err)
	}
	if len(dsResp.Choices) == 0 {
		return "", fmt.Errorf("AI: DeepSeek devolvió respuesta vacía")
	}
	return dsResp.Choices[0].Message.Content, nil
}

// ── Modo simulado (sin API key) ───────────────────────────────────────────────

func mockChatReply(messages []dto.AIMessage) string {
	last := ""
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			last = messages[i].Content
			break
		}
	}
	return fmt.Sprintf("(respuesta simulada, configure DEEPSEEK_API_KEY) Recibido: %q. "+
		"Sugerencia: confirme fecha, alcance del trabajo y datos de contacto antes de enviar.", truncate(last, 120))
}

func mockToneCheck(message string) *dto.ToneCheckDTO {
	issues := []string{}
	lower := strings.ToLower(message)
	for _, w := range []string{"stupid", "idiot", "never", "fault", "culpa", "nunca", "inútil"} {
		if strings.Contains(lower, w) {
			issues = append(issues, fmt.Sprintf("posible lenguaje brusco: %q", w))
		}
	}
	return &dto.ToneCheckDTO{Rewritten: strings.TrimSpace(message), Issues: issues, Mocked: true}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
