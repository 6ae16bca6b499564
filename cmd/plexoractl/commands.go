package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/ArjunTewari/plexora/internal/application/auth"
	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/application/usecase"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/simulation"
	"github.com/ArjunTewari/plexora/internal/infrastructure/postgres"
	"github.com/ArjunTewari/plexora/pkg/config"
	"github.com/ArjunTewari/plexora/pkg/logger"
)

// connect carga la configuración y abre el pool.
func connect(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica el esquema de la base de datos (idempotente)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		_, pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "esquema aplicado")
		return nil
	},
}

type seedOptions struct {
	name       string
	email      string
	password   string
	restaurant string
	days       int
}

func (o seedOptions) validate() error {
	if o.days < 1 || o.days > 365 {
		return fmt.Errorf("--days debe estar entre 1 y 365 (recibido %d)", o.days)
	}
	if len(o.password) < 8 {
		return errors.New("--password debe tener al menos 8 caracteres")
	}
	return nil
}

func newSeedDemoCmd() *cobra.Command {
	opts := seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed-demo",
		Short: "Crea un restaurante demo con su dueño y ventas de ejemplo",
		Long: "Registra un restaurante y su usuario dueño y carga ventas simuladas de los últimos días.\n" +
			"No es idempotente: falla si el email ya existe.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			cfg, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}

			log := logger.New(cfg.App, config.LogConfig{Level: cfg.Log.Level})
			txRunner := postgres.NewTxRunner(pool)
			authUC := auth.NewAuthUseCase(
				postgres.NewUserRepository(pool), postgres.NewRestaurantRepository(pool), txRunner,
				auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
			)
			salesUC := usecase.NewSalesUseCase(postgres.NewSaleRepository(pool), txRunner, nil, log)

			user, err := authUC.Register(ctx, dto.RegisterRequest{
				Name: opts.name, Email: opts.email, Password: opts.password, RestaurantName: opts.restaurant,
			})
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				return fmt.Errorf("el usuario %s ya existe; use otro --email", opts.email)
			}
			if err != nil {
				return err
			}

			demo := simulation.NewGenerator().DemoSales(opts.days)
			rows := make([]dto.SaleInput, 0, len(demo))
			for _, s := range demo {
				total := s.Total
				rows = append(rows, dto.SaleInput{
					Date: s.Date, ItemID: s.ItemID, ItemName: s.ItemName,
					Quantity: s.Quantity, UnitPrice: s.UnitPrice, Total: &total,
				})
			}
			res, err := salesUC.Import(ctx, user.RestaurantID, rows)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "restaurante: %s\n", user.RestaurantID)
			fmt.Fprintf(out, "usuario:     %s (%s)\n", user.Email, user.Role)
			fmt.Fprintf(out, "ventas:      %d\n", res.RecordsProcessed)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.name, "name", "Demo Owner", "nombre del usuario dueño")
	f.StringVar(&opts.email, "email", "demo@plexora.local", "email de acceso")
	f.StringVar(&opts.password, "password", "plexora-demo", "contraseña (mínimo 8 caracteres)")
	f.StringVar(&opts.restaurant, "restaurant", "Plexora Demo Bistro", "nombre del restaurante")
	f.IntVar(&opts.days, "days", 30, "días de ventas a generar")
	return cmd
}
