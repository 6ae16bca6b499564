package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultAnomalyLimit = 10
	maxAnomalyLimit     = 100
)

// AnomalyTxRunner persiste una pasada del detector en una transacción.
type AnomalyTxRunner interface {
	RunAnomalies(ctx context.Context, fn func(anomalyRepo repository.AnomalyRepository) error) error
}

// AnomalyUseCase ejecuta el detector simulado y persiste su resultado por tenant.
type AnomalyUseCase struct {
	repo repository.AnomalyRepository
	tx   AnomalyTxRunner
	gen  *simulation.Generator
	ai   *AIUseCase
	log  zerolog.Logger
}

// NewAnomalyUseCase construye el caso de uso. ai puede ser nil.
func NewAnomalyUseCase(repo repository.AnomalyRepository, tx AnomalyTxRunner, gen *simulation.Generator, ai *AIUseCase, log zerolog.Logger) *AnomalyUseCase {
	return &AnomalyUseCase{repo: repo, tx: tx, gen: gen, ai: ai, log: log}
}

// Detect genera anomalías según timeframe/sensitivity, las persiste todas o ninguna y,
// si hay IA, adjunta un análisis. Un fallo del LLM nunca hace fallar la detección.
func (uc *AnomalyUseCase) Detect(ctx context.Context, restaurantID string, req dto.DetectAnomaliesRequest) (*dto.DetectAnomaliesResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	anomalies := uc.gen.Anomalies(req.Timeframe, req.Sensitivity)
	now := time.Now().UTC()

	out := make([]dto.AnomalyResponse, 0, len(anomalies))
	for i := range anomalies {
		a := &anomalies[i]
		a.ID = uuid.New().String()
		a.RestaurantID = restaurantID
		a.CreatedAt = now
		out = append(out, toAnomalyResponse(a))
	}
	err := uc.tx.RunAnomalies(ctx, func(anomalyRepo repository.AnomalyRepository) error {
		for i := range anomalies {
			if err := anomalyRepo.Create(ctx, &anomalies[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("guardar anomalías: %w", err)
	}

	resp := &dto.DetectAnomaliesResponse{Success: true, Anomalies: out}
	if uc.ai != nil && len(anomalies) > 0 {
		analysis, err := uc.ai.AnalyzeAnomalies(ctx, anomalies)
		switch {
		case err == nil:
			resp.Analysis = analysis
		case errors.Is(err, domain.ErrAIUnavailable):
			uc.log.Debug().Str("restaurant_id", restaurantID).Msg("análisis IA de anomalías omitido: IA no configurada")
		default:
			uc.log.Warn().Err(err).Str("restaurant_id", restaurantID).Msg("análisis IA de anomalías falló")
		}
	}
	return resp, nil
}

// List devuelve las anomalías del tenant, más recientes primero. limit<=0 usa 10.
func (uc *AnomalyUseCase) List(ctx context.Context, restaurantID string, limit int) (*dto.ListAnomaliesResponse, error) {
	if limit <= 0 {
		limit = defaultAnomalyLimit
	}
	if limit > maxAnomalyLimit {
		limit = maxAnomalyLimit
	}
	list, err := uc.repo.ListByRestaurant(ctx, restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("listar anomalías: %w", err)
	}
	out := make([]dto.AnomalyResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAnomalyResponse(a))
	}
	return &dto.ListAnomaliesResponse{Success: true, Anomalies: out}, nil
}

func toAnomalyResponse(a *entity.Anomaly) dto.AnomalyResponse {
	return dto.AnomalyResponse{
		ID:             a.ID,
		Type:           a.Type,
		Description:    a.Description,
		Severity:       a.Severity,
		DetectedAt:     a.DetectedAt,
		AffectedMetric: a.AffectedMetric,
		Value:          a.Value,
		ExpectedRange:  dto.ExpectedRangeResponse{Min: a.ExpectedRange.Min, Max: a.ExpectedRange.Max},
	}
}
