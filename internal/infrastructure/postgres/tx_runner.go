package postgres

import (
	"context"
	"fmt"

	"github.com/ArjunTewari/plexora/internal/application/auth"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ auth.RegistrationTxRunner = (*TxRunner)(nil)
var _ usecase.SalesTxRunner = (*TxRunner)(nil)
var _ usecase.AnomalyTxRunner = (*TxRunner)(nil)

// Beginner lo implementan *pgxpool.Pool y pgxmock.PgxPoolIface.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool Beginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool Beginner) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegistration crea restaurante y usuario dueño de forma atómica.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewRestaurantRepository(tx), NewUserRepository(tx))
	})
}

// RunSales inserta un lote de ventas en una única transacción (todo o nada).
func (r *TxRunner) RunSales(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewSaleRepository(tx))
	})
}

// RunAnomalies guarda las anomalías de una detección en una única transacción.
func (r *TxRunner) RunAnomalies(ctx context.Context, fn func(anomalyRepo repository.AnomalyRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewAnomalyRepository(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
