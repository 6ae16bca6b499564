package http

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/infrastructure/importer"
	"github.com/ArjunTewari/plexora/internal/infrastructure/metrics"
)

// SalesHandler carga y consulta de ventas.
type SalesHandler struct {
	uc      *usecase.SalesUseCase
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewSalesHandler construye el handler. metrics puede ser nil.
func NewSalesHandler(uc *usecase.SalesUseCase, m *metrics.Metrics, log zerolog.Logger) *SalesHandler {
	return &SalesHandler{uc: uc, metrics: m, log: log}
}

// Upload godoc
// @Summary      Cargar ventas
// @Description  Acepta multipart (campo file, .csv o .xlsx), JSON {sales:[...]} o cuerpo vacío (0 registros).
// @Description  Columnas: date, item_id, item_name, quantity, unit_price y total opcional.
// @Tags         sales
// @Security     Bearer
// @Accept       multipart/form-data,json
// @Produce      json
// @Param        file  formData  file  false  "archivo CSV o XLSX"
// @Success      200   {object}  dto.UploadSalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload-data [post]
func (h *SalesHandler) Upload(c *fiber.Ctx) error {
	rows, err := h.readRows(c)
	if err != nil {
		return respondError(c, h.log, err, "Failed to upload data")
	}
	out, err := h.uc.Import(c.UserContext(), GetRestaurantID(c), rows)
	if err != nil {
		return respondError(c, h.log, err, "Failed to upload data")
	}
	h.metrics.SalesImported(out.RecordsProcessed)
	return c.JSON(out)
}

func (h *SalesHandler) readRows(c *fiber.Ctx) ([]dto.SaleInput, error) {
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("%w: falta el archivo en el campo 'file'", domain.ErrInvalidInput)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("abrir archivo subido: %w", err)
		}
		defer f.Close()

		switch strings.ToLower(filepath.Ext(fh.Filename)) {
		case ".csv", ".txt":
			return importer.ParseCSV(f)
		case ".xlsx":
			return importer.ParseXLSX(f)
		default:
			return nil, fmt.Errorf("%w: %s (use .csv o .xlsx)", domain.ErrUnsupportedFormat, fh.Filename)
		}
	case len(bytes.TrimSpace(c.Body())) == 0:
		return nil, nil
	case strings.HasPrefix(ct, "text/csv"):
		return importer.ParseCSV(bytes.NewReader(c.Body()))
	default:
		var in dto.UploadSalesRequest
		if err := c.BodyParser(&in); err != nil {
			return nil, fmt.Errorf("%w: cuerpo JSON inválido", domain.ErrInvalidInput)
		}
		return in.Sales, nil
	}
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD o RFC3339"
// @Param        endDate    query  string  false  "YYYY-MM-DD o RFC3339"
// @Success      200   {object}  dto.ListSalesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	var q dto.SalesQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_QUERY", "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.UserContext(), GetRestaurantID(c), q)
	if err != nil {
		return respondError(c, h.log, err, "Failed to fetch sales")
	}
	return c.JSON(out)
}
