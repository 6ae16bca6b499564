package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ArjunTewari/plexora/internal/application/ports"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
)

// ── Repositorios en memoria ───────────────────────────────────────────────────

type memCompetitors struct {
	mu    sync.Mutex
	items []*entity.Competitor
}

func (m *memCompetitors) Create(_ context.Context, c *entity.Competitor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.items = append(m.items, &cp)
	return nil
}

func (m *memCompetitors) GetByID(_ context.Context, restaurantID, id string) (*entity.Competitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.items {
		if c.ID == id && c.RestaurantID == restaurantID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCompetitors) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Competitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Competitor
	for _, c := range m.items {
		if c.RestaurantID == restaurantID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCompetitors) Update(_ context.Context, c *entity.Competitor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.items {
		if existing.ID == c.ID && existing.RestaurantID == c.RestaurantID {
			cp := *c
			m.items[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memCompetitors) Delete(_ context.Context, restaurantID, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.items {
		if c.ID == id && c.RestaurantID == restaurantID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memAnomalies struct {
	mu    sync.Mutex
	items []*entity.Anomaly
	// failAfter > 0 hace fallar la inserción número failAfter+1 de cada transacción.
	failAfter int
}

func (m *memAnomalies) Create(_ context.Context, a *entity.Anomaly) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAfter > 0 && len(m.items) >= m.failAfter {
		return errors.New("insert anomalies: connection reset")
	}
	cp := *a
	m.items = append(m.items, &cp)
	return nil
}

// RunAnomalies escribe en un área temporal y solo la publica si fn no falla.
func (m *memAnomalies) RunAnomalies(_ context.Context, fn func(repository.AnomalyRepository) error) error {
	staged := &memAnomalies{failAfter: m.failAfter}
	if err := fn(staged); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, staged.items...)
	return nil
}

func (m *memAnomalies) ListByRestaurant(_ context.Context, restaurantID string, limit int) ([]*entity.Anomaly, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Anomaly
	for _, a := range m.items {
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

type memReports struct {
	mu    sync.Mutex
	items []*entity.Report
}

func (m *memReports) Create(_ context.Context, r *entity.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.items = append(m.items, &cp)
	return nil
}

func (m *memReports) GetByID(_ context.Context, restaurantID, id string) (*entity.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.items {
		if r.ID == id && r.RestaurantID == restaurantID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memReports) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Report
	for _, r := range m.items {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memSales struct {
	mu    sync.Mutex
	items []*entity.Sale
}

func (m *memSales) InsertMany(_ context.Context, sales []*entity.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, sales...)
	return nil
}

func (m *memSales) ListByRestaurant(_ context.Context, restaurantID string, from, to *time.Time) ([]*entity.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Sale
	for _, s := range m.items {
		if s.RestaurantID != restaurantID {
			continue
		}
		if from != nil && s.Date.Before(*from) {
			continue
		}
		if to != nil && s.Date.After(*to) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *memSales) RunSales(_ context.Context, fn func(repository.SaleRepository) error) error {
	return fn(m)
}

type memRestaurants struct {
	items map[string]*entity.Restaurant
}

func (m *memRestaurants) Create(_ context.Context, r *entity.Restaurant) error {
	m.items[r.ID] = r
	return nil
}

func (m *memRestaurants) GetByID(_ context.Context, id string) (*entity.Restaurant, error) {
	return m.items[id], nil
}

// ── Puertos ───────────────────────────────────────────────────────────────────

type stubLLM struct {
	text  string
	err   error
	calls int
	wait  time.Duration
}

func (s *stubLLM) Complete(ctx context.Context, _, _ string) (string, error) {
	s.calls++
	if s.wait > 0 {
		select {
		case <-time.After(s.wait):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e ports.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

type stubRenderer struct {
	format string
	last   *ports.ReportData
}

func (r *stubRenderer) Format() string      { return r.format }
func (r *stubRenderer) ContentType() string { return "text/plain" }
func (r *stubRenderer) Extension() string   { return "txt" }
func (r *stubRenderer) Render(_ context.Context, d *ports.ReportData) ([]byte, error) {
	r.last = d
	return []byte("report:" + d.Report.Name + ":" + d.TotalRevenue.String()), nil
}
