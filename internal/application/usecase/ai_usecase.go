package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
)

const (
	assistantSystemPrompt = `You are Plexora, an AI assistant specialized in restaurant analytics.
You have access to the restaurant's sales data, inventory, customer information, and market trends.
Provide concise, data-driven insights and actionable recommendations.
Always reference specific metrics and time periods in your analysis.`

	analystSystemPrompt = "You are an AI analyst specializing in restaurant data. " +
		"Provide concise, actionable recommendations based on the data."

	defaultAITimeout = 20 * time.Second
)

// AIUseCase orquesta las llamadas al LLM: preguntas libres, recomendaciones de reportes
// y análisis de anomalías. Cada llamada lleva su propio timeout para que la latencia
// externa no bloquee los goroutines del servidor.
type AIUseCase struct {
	llm     ports.LLMService
	timeout time.Duration
}

// NewAIUseCase construye el caso de uso. llm nil deja la IA deshabilitada (ErrAIUnavailable).
func NewAIUseCase(llm ports.LLMService, timeout time.Duration) *AIUseCase {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	return &AIUseCase{llm: llm, timeout: timeout}
}

// Ask responde una consulta libre del usuario.
func (uc *AIUseCase) Ask(ctx context.Context, req dto.AskAIRequest) (*dto.AskAIResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	text, err := uc.complete(ctx, assistantSystemPrompt, strings.TrimSpace(req.Query))
	if err != nil {
		return nil, err
	}
	return &dto.AskAIResponse{Success: true, Response: text}, nil
}

// ReportRecommendations genera entre 3 y 5 recomendaciones para un reporte.
func (uc *AIUseCase) ReportRecommendations(ctx context.Context, reportType, timeframe string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate 3-5 actionable recommendations for a restaurant based on their %s data for the %s timeframe.",
		reportType, timeframe)
	return uc.complete(ctx, analystSystemPrompt, prompt)
}

// AnalyzeAnomalies resume en pocas líneas el conjunto de anomalías detectadas.
func (uc *AIUseCase) AnalyzeAnomalies(ctx context.Context, anomalies []entity.Anomaly) (string, error) {
	var b strings.Builder
	b.WriteString("Analyze these restaurant anomalies and suggest what to check first:\n")
	for _, a := range anomalies {
		fmt.Fprintf(&b, "- %s (%s severity): %s. Value %d, expected %d-%d, detected %s\n",
			a.Type, a.Severity, a.Description, a.Value, a.ExpectedRange.Min, a.ExpectedRange.Max,
			a.DetectedAt.Format(time.RFC3339))
	}
	return uc.complete(ctx, analystSystemPrompt, b.String())
}

func (uc *AIUseCase) complete(ctx context.Context, system, prompt string) (string, error) {
	if uc == nil || uc.llm == nil {
		return "", domain.ErrAIUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.Complete(ctx, system, prompt)
	if err != nil {
		return "", fmt.Errorf("consulta IA: %w", err)
	}
	return text, nil
}
