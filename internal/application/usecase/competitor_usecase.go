package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
	"github.com/google/uuid"
)

const defaultPriceIndex = 1.0

// CompetitorUseCase CRUD de competidores filtrado por restaurante.
type CompetitorUseCase struct {
	repo repository.CompetitorRepository
	gen  *simulation.Generator
}

// NewCompetitorUseCase construye el caso de uso.
func NewCompetitorUseCase(repo repository.CompetitorRepository, gen *simulation.Generator) *CompetitorUseCase {
	return &CompetitorUseCase{repo: repo, gen: gen}
}

// Create registra un competidor del restaurante. priceIndex ausente = 1.0.
func (uc *CompetitorUseCase) Create(ctx context.Context, restaurantID string, req dto.CreateCompetitorRequest) (*dto.CompetitorResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &entity.Competitor{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(req.Name),
		Location:     strings.TrimSpace(req.Location),
		PriceIndex:   defaultPriceIndex,
		PopularItems: nonNil(req.PopularItems),
		Strengths:    nonNil(req.Strengths),
		Weaknesses:   nonNil(req.Weaknesses),
		LastUpdated:  now,
		CreatedAt:    now,
	}
	if req.PriceIndex != nil {
		c.PriceIndex = *req.PriceIndex
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("guardar competidor: %w", err)
	}
	resp := toCompetitorResponse(c)
	return &resp, nil
}

// List devuelve los competidores del tenant. Sin registros devuelve los de ejemplo, recién
// generados en cada llamada (no se persisten).
func (uc *CompetitorUseCase) List(ctx context.Context, restaurantID string) ([]dto.CompetitorResponse, error) {
	list, err := uc.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("listar competidores: %w", err)
	}
	if len(list) == 0 {
		seeds := uc.gen.CompetitorSeeds()
		out := make([]dto.CompetitorResponse, 0, len(seeds))
		for i := range seeds {
			out = append(out, toCompetitorResponse(&seeds[i]))
		}
		return out, nil
	}
	out := make([]dto.CompetitorResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompetitorResponse(c))
	}
	return out, nil
}

// Update aplica los campos presentes sobre el competidor del tenant.
// Devuelve domain.ErrNotFound si el ID no pertenece al restaurante.
func (uc *CompetitorUseCase) Update(ctx context.Context, restaurantID string, req dto.UpdateCompetitorRequest) (*dto.CompetitorResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, restaurantID, req.ID)
	if err != nil {
		return nil, fmt.Errorf("buscar competidor: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		c.Location = strings.TrimSpace(*req.Location)
	}
	if req.PriceIndex != nil {
		c.PriceIndex = *req.PriceIndex
	}
	if req.PopularItems != nil {
		c.PopularItems = req.PopularItems
	}
	if req.Strengths != nil {
		c.Strengths = req.Strengths
	}
	if req.Weaknesses != nil {
		c.Weaknesses = req.Weaknesses
	}
	c.LastUpdated = time.Now().UTC()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toCompetitorResponse(c)
	return &resp, nil
}

// Delete elimina el competidor del tenant. Cero eliminados = domain.ErrNotFound.
func (uc *CompetitorUseCase) Delete(ctx context.Context, restaurantID string, req dto.DeleteCompetitorRequest) (int64, error) {
	if err := dto.Validate(req); err != nil {
		return 0, err
	}
	n, err := uc.repo.Delete(ctx, restaurantID, req.ID)
	if err != nil {
		return 0, fmt.Errorf("eliminar competidor: %w", err)
	}
	if n == 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

func toCompetitorResponse(c *entity.Competitor) dto.CompetitorResponse {
	return dto.CompetitorResponse{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		PriceIndex:   c.PriceIndex,
		PopularItems: nonNil(c.PopularItems),
		Strengths:    nonNil(c.Strengths),
		Weaknesses:   nonNil(c.Weaknesses),
		LastUpdated:  c.LastUpdated,
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
