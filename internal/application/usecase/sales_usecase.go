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
	"github.com/ArjunTewari/plexora/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SalesTxRunner inserta un lote de ventas en una transacción.
type SalesTxRunner interface {
	RunSales(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}

// SalesUpdatePayload payload del evento sales-update.
type SalesUpdatePayload struct {
	RecordsProcessed int             `json:"recordsProcessed"`
	Total            decimal.Decimal `json:"total"`
	At               time.Time       `json:"at"`
}

// SalesUseCase importación y consulta de ventas del tenant.
type SalesUseCase struct {
	sales  repository.SaleRepository
	tx     SalesTxRunner
	events ports.EventPublisher
	log    zerolog.Logger
}

// NewSalesUseCase construye el caso de uso. events puede ser nil (sin canal en vivo).
func NewSalesUseCase(sales repository.SaleRepository, tx SalesTxRunner, events ports.EventPublisher, log zerolog.Logger) *SalesUseCase {
	return &SalesUseCase{sales: sales, tx: tx, events: events, log: log}
}

// Import valida y guarda las filas (todo o nada) y publica sales-update a la sala del tenant.
// Cero filas es válido y devuelve recordsProcessed = 0.
func (uc *SalesUseCase) Import(ctx context.Context, restaurantID string, rows []dto.SaleInput) (*dto.UploadSalesResponse, error) {
	if err := dto.Validate(dto.UploadSalesRequest{Sales: rows}); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sales := make([]*entity.Sale, 0, len(rows))
	total := decimal.Zero
	for i, row := range rows {
		if !row.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: fila %d: quantity debe ser mayor a 0", domain.ErrInvalidInput, i+1)
		}
		if row.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: fila %d: unitPrice no puede ser negativo", domain.ErrInvalidInput, i+1)
		}
		lineTotal := row.Quantity.Mul(row.UnitPrice)
		if row.Total != nil {
			lineTotal = *row.Total
		}
		sales = append(sales, &entity.Sale{
			ID:           uuid.New().String(),
			RestaurantID: restaurantID,
			Date:         row.Date.UTC(),
			ItemID:       strings.TrimSpace(row.ItemID),
			ItemName:     strings.TrimSpace(row.ItemName),
			Quantity:     row.Quantity,
			UnitPrice:    row.UnitPrice,
			Total:        lineTotal,
			CreatedAt:    now,
		})
		total = total.Add(lineTotal)
	}

	resp := &dto.UploadSalesResponse{
		Success:          true,
		Message:          "Data uploaded successfully",
		RecordsProcessed: len(sales),
	}
	if len(sales) == 0 {
		return resp, nil
	}

	err := uc.tx.RunSales(ctx, func(saleRepo repository.SaleRepository) error {
		return saleRepo.InsertMany(ctx, sales)
	})
	if err != nil {
		return nil, fmt.Errorf("guardar ventas: %w", err)
	}

	if uc.events != nil {
		event := ports.Event{
			Name:         ports.EventSalesUpdate,
			RestaurantID: restaurantID,
			Payload:      SalesUpdatePayload{RecordsProcessed: len(sales), Total: total, At: now},
			At:           now,
		}
		if err := uc.events.Publish(ctx, event); err != nil {
			uc.log.Warn().Err(err).Str("restaurant_id", restaurantID).Msg("no se pudo publicar sales-update")
		}
	}
	return resp, nil
}

// List devuelve las ventas del tenant, opcionalmente dentro de [startDate, endDate].
func (uc *SalesUseCase) List(ctx context.Context, restaurantID string, q dto.SalesQuery) (*dto.ListSalesResponse, error) {
	from, err := parseDateParam(q.StartDate, false)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate inválido", domain.ErrInvalidInput)
	}
	to, err := parseDateParam(q.EndDate, true)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate inválido", domain.ErrInvalidInput)
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: startDate no puede ser posterior a endDate", domain.ErrInvalidInput)
	}

	list, err := uc.sales.ListByRestaurant(ctx, restaurantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SaleResponse{
			ID:        s.ID,
			Date:      s.Date,
			ItemID:    s.ItemID,
			ItemName:  s.ItemName,
			Quantity:  s.Quantity,
			UnitPrice: s.UnitPrice,
			Total:     s.Total,
		})
	}
	return &dto.ListSalesResponse{Success: true, Sales: out}, nil
}

// parseDateParam acepta YYYY-MM-DD o RFC3339. Una fecha sin hora usada como fin
// se extiende hasta el final del día.
func parseDateParam(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
