package postgres

import (
	"context"

	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo adaptador de la colección reports.
type ReportRepo struct {
	reports *Collection
}

// NewReportRepository construye el adaptador.
func NewReportRepository(db DBTX) *ReportRepo {
	return &ReportRepo{reports: NewStore(db).Collection(CollectionReports)}
}

// Create persiste los metadatos del reporte.
func (r *ReportRepo) Create(ctx context.Context, rep *entity.Report) error {
	return r.reports.Insert(ctx, rep.ID, rep.RestaurantID, rep)
}

// GetByID obtiene un reporte del restaurante; (nil, nil) si no existe en ese tenant.
func (r *ReportRepo) GetByID(ctx context.Context, restaurantID, id string) (*entity.Report, error) {
	var rep entity.Report
	found, err := r.reports.FindOne(ctx, restaurantID, id, &rep)
	if err != nil || !found {
		return nil, err
	}
	return &rep, nil
}

// ListByRestaurant lista los reportes del restaurante, más recientes primero.
func (r *ReportRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.Report, error) {
	bodies, err := r.reports.FindByTenant(ctx, restaurantID, FindQuery{
		SortField: "created_at",
		Desc:      true,
	})
	if err != nil {
		return nil, err
	}
	return decodeAll[entity.Report](r.reports.Name(), bodies)
}
