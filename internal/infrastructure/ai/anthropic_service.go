package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// Verificar en tiempo de compilación que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicBaseURL  = "https://api.anthropic.com"
	anthropicVersion  = "2023-06-01"
	anthropicMaxToken = 1024
)

// AnthropicService adaptador que implementa LLMService usando la API Messages de Anthropic.
type AnthropicService struct {
	apiKey string
	model  string
	client *resty.Client
}

// NewAnthropicService construye el adaptador. baseURL vacío usa la API pública.
// Si apiKey está vacío las llamadas devuelven domain.ErrAIUnavailable en lugar de fallar en red.
func NewAnthropicService(apiKey, model, baseURL string) *AnthropicService {
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(25 * time.Second). // el use case impone además su propio context.WithTimeout
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("anthropic-version", anthropicVersion)

	return &AnthropicService{apiKey: apiKey, model: model, client: client}
}

// ── Estructuras del protocolo Messages API ────────────────────────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Complete envía el prompt a Claude y concatena los bloques de texto de la respuesta.
func (s *AnthropicService) Complete(ctx context.Context, system, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", domain.ErrAIUnavailable
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", s.apiKey).
		SetBody(anthropicRequest{
			Model:     s.model,
			MaxTokens: anthropicMaxToken,
			System:    system,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		}).
		Post("/v1/messages")
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", gjson.GetBytes(body, "error.type").String(), msg.String())
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d", resp.StatusCode())
	}

	var parts []string
	gjson.GetBytes(body, "content").ForEach(func(_, block gjson.Result) bool {
		if block.Get("type").String() == "text" {
			parts = append(parts, block.Get("text").String())
		}
		return true
	})
	text := strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}
	return text, nil
}
