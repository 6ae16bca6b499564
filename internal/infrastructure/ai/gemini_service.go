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

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini.
type GeminiService struct {
	apiKey string
	model  string
	client *resty.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model, baseURL string) *GeminiService {
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(20 * time.Second). // timeout de red; el caller también pone WithTimeout
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &GeminiService{apiKey: apiKey, model: model, client: client}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Complete envía el prompt a Gemini y devuelve el texto del primer candidato.
func (s *GeminiService) Complete(ctx context.Context, system, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", domain.ErrAIUnavailable
	}

	payload := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: genConfig{Temperature: 0.4, MaxOutputTokens: 1024},
	}
	if system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("model", s.model).
		SetQueryParam("key", s.apiKey).
		SetBody(payload).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
			return "", fmt.Errorf("AI: Gemini error (%s): %s", gjson.GetBytes(body, "error.status").String(), msg.String())
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode())
	}

	text := strings.TrimSpace(gjson.GetBytes(body, "candidates.0.content.parts.0.text").String())
	if text == "" {
		if reason := gjson.GetBytes(body, "promptFeedback.blockReason"); reason.Exists() {
			return "", fmt.Errorf("AI: Gemini bloqueó el prompt: %s", reason.String())
		}
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return text, nil
}
