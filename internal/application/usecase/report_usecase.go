package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DownloadURLPrefix ruta pública de descarga; el ID del reporte se concatena al final.
const DownloadURLPrefix = "/api/reports/download/"

// ReportFile archivo renderizado listo para enviar.
type ReportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ReportUseCase genera, lista y re-renderiza reportes a partir de las ventas del tenant.
type ReportUseCase struct {
	reports     repository.ReportRepository
	sales       repository.SaleRepository
	restaurants repository.RestaurantRepository
	renderers   map[string]ports.ReportRenderer
	ai          *AIUseCase
	gen         *simulation.Generator
	log         zerolog.Logger
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso con un renderer por formato.
func NewReportUseCase(
	reports repository.ReportRepository,
	sales repository.SaleRepository,
	restaurants repository.RestaurantRepository,
	ai *AIUseCase,
	gen *simulation.Generator,
	log zerolog.Logger,
	renderers ...ports.ReportRenderer,
) *ReportUseCase {
	byFormat := make(map[string]ports.ReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ReportUseCase{
		reports:     reports,
		sales:       sales,
		restaurants: restaurants,
		renderers:   byFormat,
		ai:          ai,
		gen:         gen,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Generate crea el reporte: recomendaciones IA opcionales, render del archivo para medir
// tamaño y checksum, y persistencia de los metadatos.
func (uc *ReportUseCase) Generate(ctx context.Context, restaurantID string, req dto.GenerateReportRequest) (*dto.GenerateReportResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	renderer, ok := uc.renderers[req.Format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	if req.Timeframe == "custom" {
		if req.StartDate == nil || req.EndDate == nil {
			return nil, fmt.Errorf("%w: startDate y endDate son obligatorios para timeframe custom", domain.ErrInvalidInput)
		}
		if req.StartDate.After(*req.EndDate) {
			return nil, fmt.Errorf("%w: startDate no puede ser posterior a endDate", domain.ErrInvalidInput)
		}
	}

	now := uc.now()
	report := &entity.Report{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         simulation.ReportName(req.ReportType, now),
		Type:         req.ReportType,
		Format:       req.Format,
		Timeframe:    req.Timeframe,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Sections: entity.ReportSections{
			Summary:         req.Sections.Summary,
			Charts:          req.Sections.Charts,
			Details:         req.Sections.Details,
			Recommendations: req.Sections.Recommendations,
		},
		CreatedAt: now,
	}

	if req.Sections.Recommendations {
		text, err := uc.ai.ReportRecommendations(ctx, req.ReportType, req.Timeframe)
		switch {
		case err == nil:
			report.AIRecommendations = text
		case errors.Is(err, domain.ErrAIUnavailable):
			uc.log.Warn().Str("restaurant_id", restaurantID).Msg("recomendaciones IA omitidas: IA no configurada")
		default:
			return nil, fmt.Errorf("recomendaciones IA: %w", err)
		}
	}

	content, err := uc.render(ctx, renderer, report)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(content)
	report.Size = HumanSize(len(content))
	report.Checksum = hex.EncodeToString(sum[:])

	if err := uc.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("guardar reporte: %w", err)
	}
	return &dto.GenerateReportResponse{
		Success:     true,
		Message:     "Report generated successfully",
		Report:      toReportResponse(report),
		DownloadURL: DownloadURLPrefix + report.ID,
	}, nil
}

// History lista los reportes del tenant. Sin registros devuelve 5 reportes de ejemplo.
func (uc *ReportUseCase) History(ctx context.Context, restaurantID string) (*dto.ReportHistoryResponse, error) {
	list, err := uc.reports.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("listar reportes: %w", err)
	}
	out := make([]dto.ReportResponse, 0, len(list))
	if len(list) == 0 {
		seeds := uc.gen.ReportSeeds()
		for i := range seeds {
			out = append(out, toReportResponse(&seeds[i]))
		}
		return &dto.ReportHistoryResponse{Success: true, Reports: out}, nil
	}
	for _, r := range list {
		out = append(out, toReportResponse(r))
	}
	return &dto.ReportHistoryResponse{Success: true, Reports: out}, nil
}

// Download re-renderiza el reporte del tenant en su formato. ID de otro tenant = domain.ErrNotFound.
func (uc *ReportUseCase) Download(ctx context.Context, restaurantID, id string) (*ReportFile, error) {
	report, err := uc.reports.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, fmt.Errorf("buscar reporte: %w", err)
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	renderer, ok := uc.renderers[report.Format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	content, err := uc.render(ctx, renderer, report)
	if err != nil {
		return nil, err
	}
	return &ReportFile{
		FileName:    fileName(report, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

func (uc *ReportUseCase) render(ctx context.Context, renderer ports.ReportRenderer, report *entity.Report) ([]byte, error) {
	from, to := ReportWindow(report)
	sales, err := uc.sales.ListByRestaurant(ctx, report.RestaurantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("cargar ventas del reporte: %w", err)
	}
	restaurantName := ""
	if rest, err := uc.restaurants.GetByID(ctx, report.RestaurantID); err != nil {
		return nil, fmt.Errorf("cargar restaurante: %w", err)
	} else if rest != nil {
		restaurantName = rest.Name
	}

	data := BuildReportData(report, restaurantName, sales)
	content, err := renderer.Render(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", renderer.Format(), err)
	}
	return content, nil
}

// ReportWindow ventana de ventas del reporte relativa a su fecha de creación.
// day/today = desde el inicio del día; week = 7 días; month = 30 días; year = 365 días;
// custom = fechas del reporte (fin inclusivo hasta el final del día); otro = sin límite inferior.
func ReportWindow(r *entity.Report) (from, to *time.Time) {
	end := r.CreatedAt
	var start time.Time
	switch strings.ToLower(r.Timeframe) {
	case "day", "today":
		start = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	case "week":
		start = end.AddDate(0, 0, -7)
	case "month":
		start = end.AddDate(0, 0, -30)
	case "year":
		start = end.AddDate(-1, 0, 0)
	case "custom":
		if r.StartDate == nil || r.EndDate == nil {
			return nil, &end
		}
		s := *r.StartDate
		e := *r.EndDate
		if e.Hour() == 0 && e.Minute() == 0 && e.Second() == 0 {
			e = e.Add(24*time.Hour - time.Second)
		}
		return &s, &e
	default:
		return nil, &end
	}
	return &start, &end
}

// BuildReportData agrega las ventas por producto (orden por ingreso descendente) y calcula totales.
func BuildReportData(report *entity.Report, restaurantName string, sales []*entity.Sale) *ports.ReportData {
	byItem := make(map[string]*ports.ReportItemLine)
	totalRevenue := decimal.Zero
	totalQty := decimal.Zero
	for _, s := range sales {
		line, ok := byItem[s.ItemID]
		if !ok {
			line = &ports.ReportItemLine{ItemID: s.ItemID, ItemName: s.ItemName}
			byItem[s.ItemID] = line
		}
		line.Quantity = line.Quantity.Add(s.Quantity)
		line.Revenue = line.Revenue.Add(s.Total)
		totalRevenue = totalRevenue.Add(s.Total)
		totalQty = totalQty.Add(s.Quantity)
	}

	items := make([]ports.ReportItemLine, 0, len(byItem))
	for _, l := range byItem {
		items = append(items, *l)
	}
	sort.Slice(items, func(i, j int) bool {
		if c := items[i].Revenue.Cmp(items[j].Revenue); c != 0 {
			return c > 0
		}
		return items[i].ItemID < items[j].ItemID
	})

	return &ports.ReportData{
		Report:         report,
		RestaurantName: restaurantName,
		GeneratedAt:    time.Now().UTC(),
		Sales:          sales,
		Items:          items,
		TotalRevenue:   totalRevenue,
		TotalQuantity:  totalQty,
	}
}

// HumanSize 512 → "512B", 2048 → "2.0KB", 3145728 → "3.0MB".
func HumanSize(n int) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1fMB", float64(n)/mb)
	case n >= kb:
		return fmt.Sprintf("%.1fKB", float64(n)/kb)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

func fileName(r *entity.Report, ext string) string {
	return fmt.Sprintf("%s-report-%s.%s", r.Type, r.CreatedAt.Format("20060102"), ext)
}

func toReportResponse(r *entity.Report) dto.ReportResponse {
	return dto.ReportResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		Format:    r.Format,
		Timeframe: r.Timeframe,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Sections: dto.ReportSectionsDTO{
			Summary:         r.Sections.Summary,
			Charts:          r.Sections.Charts,
			Details:         r.Sections.Details,
			Recommendations: r.Sections.Recommendations,
		},
		AIRecommendations: r.AIRecommendations,
		Size:              r.Size,
		Checksum:          r.Checksum,
		CreatedAt:         r.CreatedAt,
	}
}
