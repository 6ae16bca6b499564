package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Nombres de colecciones dentro de la base de datos de la aplicación.
const (
	CollectionUsers       = "users"
	CollectionRestaurants = "restaurants"
	CollectionSales       = "sales"
	CollectionCompetitors = "competitors"
	CollectionAnomalies   = "anomalies"
	CollectionReports     = "reports"
)

// DBTX lo implementan *pgxpool.Pool, pgx.Tx y los mocks de pgxmock.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store accede a las colecciones de documentos JSONB de una única base de datos.
// No valida el esquema de los documentos: cada repositorio es responsable de su forma.
type Store struct {
	db DBTX
}

// NewStore construye el accesor sobre un pool o una transacción.
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

// Collection abre la colección indicada.
func (s *Store) Collection(name string) *Collection {
	return &Collection{db: s.db, name: name}
}

// Collection handle sobre una colección. Las lecturas por tenant, updates y deletes
// siempre combinan (id, restaurant_id): un id de otro tenant se comporta como inexistente.
type Collection struct {
	db   DBTX
	name string
}

// Name nombre de la colección.
func (c *Collection) Name() string { return c.name }

// FindQuery opciones de listado por tenant. Los campos se refieren a claves del documento JSON.
type FindQuery struct {
	SortField string     // campo timestamp por el que ordenar (vacío = created_at de la fila)
	Desc      bool
	Limit     int        // 0 = sin límite
	TimeField string     // campo timestamp sobre el que aplicar From/To
	From      *time.Time // inclusivo
	To        *time.Time // inclusivo
}

// Insert persiste doc (serializado a JSON) con su id y tenant.
func (c *Collection) Insert(ctx context.Context, id, restaurantID string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%s: serializar documento: %w", c.name, err)
	}
	query := `
		INSERT INTO documents (collection, id, restaurant_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := c.db.Exec(ctx, query, c.name, id, restaurantID, body, time.Now().UTC()); err != nil {
		return fmt.Errorf("%s: insert: %w", c.name, err)
	}
	return nil
}

// FindOne carga en out el documento (id, restaurantID). Devuelve false si no existe en ese tenant.
func (c *Collection) FindOne(ctx context.Context, restaurantID, id string, out any) (bool, error) {
	query := `
		SELECT body FROM documents
		WHERE collection = $1 AND id = $2 AND restaurant_id = $3`
	return c.scanOne(ctx, out, query, c.name, id, restaurantID)
}

// FindOneGlobal busca en todos los tenants por igualdad (sin distinguir mayúsculas) de un campo.
// Solo para búsquedas globales legítimas, como el login por email.
func (c *Collection) FindOneGlobal(ctx context.Context, field, value string, out any) (bool, error) {
	query := `
		SELECT body FROM documents
		WHERE collection = $1 AND lower(body->>$2) = lower($3)
		LIMIT 1`
	return c.scanOne(ctx, out, query, c.name, field, value)
}

// FindByID busca un documento por id sin filtro de tenant (solo para la colección de tenants).
func (c *Collection) FindByID(ctx context.Context, id string, out any) (bool, error) {
	query := `SELECT body FROM documents WHERE collection = $1 AND id = $2`
	return c.scanOne(ctx, out, query, c.name, id)
}

// FindByTenant devuelve los cuerpos JSON de los documentos del tenant según q.
func (c *Collection) FindByTenant(ctx context.Context, restaurantID string, q FindQuery) ([][]byte, error) {
	args := []any{c.name, restaurantID}
	query := `SELECT body FROM documents WHERE collection = $1 AND restaurant_id = $2`

	if q.TimeField != "" && q.From != nil {
		args = append(args, q.TimeField, *q.From)
		query += fmt.Sprintf(" AND (body->>$%d)::timestamptz >= $%d", len(args)-1, len(args))
	}
	if q.TimeField != "" && q.To != nil {
		args = append(args, q.TimeField, *q.To)
		query += fmt.Sprintf(" AND (body->>$%d)::timestamptz <= $%d", len(args)-1, len(args))
	}

	direction := "ASC"
	if q.Desc {
		direction = "DESC"
	}
	if q.SortField != "" {
		args = append(args, q.SortField)
		query += fmt.Sprintf(" ORDER BY (body->>$%d)::timestamptz %s", len(args), direction)
	} else {
		query += " ORDER BY created_at " + direction
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", c.name, err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", c.name, err)
		}
		out = append(out, body)
	}
	return out, rows.Err()
}

// UpdateByTenant reemplaza el cuerpo del documento (id, restaurantID). Devuelve filas afectadas.
func (c *Collection) UpdateByTenant(ctx context.Context, restaurantID, id string, doc any) (int64, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("%s: serializar documento: %w", c.name, err)
	}
	query := `
		UPDATE documents SET body = $4
		WHERE collection = $1 AND id = $2 AND restaurant_id = $3`
	tag, err := c.db.Exec(ctx, query, c.name, id, restaurantID, body)
	if err != nil {
		return 0, fmt.Errorf("%s: update: %w", c.name, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByTenant elimina el documento (id, restaurantID). Devuelve filas afectadas.
func (c *Collection) DeleteByTenant(ctx context.Context, restaurantID, id string) (int64, error) {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2 AND restaurant_id = $3`
	tag, err := c.db.Exec(ctx, query, c.name, id, restaurantID)
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", c.name, err)
	}
	return tag.RowsAffected(), nil
}

func (c *Collection) scanOne(ctx context.Context, out any, query string, args ...any) (bool, error) {
	var body []byte
	if err := c.db.QueryRow(ctx, query, args...).Scan(&body); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s: find one: %w", c.name, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("%s: deserializar documento: %w", c.name, err)
	}
	return true, nil
}

// decodeAll deserializa los cuerpos devueltos por FindByTenant.
func decodeAll[T any](name string, bodies [][]byte) ([]*T, error) {
	out := make([]*T, 0, len(bodies))
	for _, b := range bodies {
		var v T
		if err := json.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("%s: deserializar documento: %w", name, err)
		}
		out = append(out, &v)
	}
	return out, nil
}
