package http_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

// memDB almacén en memoria con el mismo aislamiento por tenant que el store de PostgreSQL.
type memDB struct {
	mu          sync.Mutex
	users       []*entity.User
	restaurants map[string]*entity.Restaurant
	sales       []*entity.Sale
	competitors []*entity.Competitor
	anomalies   []*entity.Anomaly
	reports     []*entity.Report
}

func newMemDB() *memDB { return &memDB{restaurants: map[string]*entity.Restaurant{}} }

type (
	memUsers       struct{ db *memDB }
	memRestaurants struct{ db *memDB }
	memSales       struct{ db *memDB }
	memCompetitors struct{ db *memDB }
	memAnomalies   struct{ db *memDB }
	memReports     struct{ db *memDB }
	memTx          struct{ db *memDB }
)

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.db.users = append(r.db.users, &cp)
	return nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindByID(_ context.Context, restaurantID, id string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.ID == id && u.RestaurantID == restaurantID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memRestaurants) Create(_ context.Context, rest *entity.Restaurant) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.restaurants[rest.ID] = rest
	return nil
}

func (r memRestaurants) GetByID(_ context.Context, id string) (*entity.Restaurant, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.restaurants[id], nil
}

func (r memSales) InsertMany(_ context.Context, sales []*entity.Sale) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.sales = append(r.db.sales, sales...)
	return nil
}

func (r memSales) ListByRestaurant(_ context.Context, restaurantID string, from, to *time.Time) ([]*entity.Sale, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Sale
	for _, s := range r.db.sales {
		if s.RestaurantID != restaurantID || (from != nil && s.Date.Before(*from)) || (to != nil && s.Date.After(*to)) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r memCompetitors) Create(_ context.Context, c *entity.Competitor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *c
	r.db.competitors = append(r.db.competitors, &cp)
	return nil
}

func (r memCompetitors) GetByID(_ context.Context, restaurantID, id string) (*entity.Competitor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.competitors {
		if c.ID == id && c.RestaurantID == restaurantID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memCompetitors) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Competitor, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Competitor
	for _, c := range r.db.competitors {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCompetitors) Update(_ context.Context, c *entity.Competitor) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, existing := range r.db.competitors {
		if existing.ID == c.ID && existing.RestaurantID == c.RestaurantID {
			cp := *c
			r.db.competitors[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r memCompetitors) Delete(_ context.Context, restaurantID, id string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for i, c := range r.db.competitors {
		if c.ID == id && c.RestaurantID == restaurantID {
			r.db.competitors = append(r.db.competitors[:i], r.db.competitors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r memAnomalies) Create(_ context.Context, a *entity.Anomaly) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *a
	r.db.anomalies = append(r.db.anomalies, &cp)
	return nil
}

func (r memAnomalies) ListByRestaurant(_ context.Context, restaurantID string, limit int) ([]*entity.Anomaly, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Anomaly
	for _, a := range r.db.anomalies {
		if a.RestaurantID == restaurantID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DetectedAt.After(out[j].DetectedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memReports) Create(_ context.Context, rep *entity.Report) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *rep
	r.db.reports = append(r.db.reports, &cp)
	return nil
}

func (r memReports) GetByID(_ context.Context, restaurantID, id string) (*entity.Report, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, rep := range r.db.reports {
		if rep.ID == id && rep.RestaurantID == restaurantID {
			cp := *rep
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memReports) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Report, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Report
	for i := len(r.db.reports) - 1; i >= 0; i-- {
		if r.db.reports[i].RestaurantID == restaurantID {
			out = append(out, r.db.reports[i])
		}
	}
	return out, nil
}

func (t memTx) RunRegistration(_ context.Context, fn func(repository.RestaurantRepository, repository.UserRepository) error) error {
	return fn(memRestaurants(t), memUsers(t))
}

func (t memTx) RunSales(_ context.Context, fn func(repository.SaleRepository) error) error {
	return fn(memSales(t))
}

func (t memTx) RunAnomalies(_ context.Context, fn func(repository.AnomalyRepository) error) error {
	return fn(memAnomalies(t))
}
