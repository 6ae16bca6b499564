package ai

import (
	"strings"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/pkg/config"
)

// NewLLMService elige el adaptador según AI_PROVIDER. Sin API key del proveedor
// elegido devuelve nil y la IA queda deshabilitada.
func NewLLMService(cfg config.AIConfig) ports.LLMService {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, "")
	default:
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, "")
	}
}
