package components

import (
	"context"
	"log/slog"

	"foodbridge/internal/infra/db"
	"foodbridge/internal/infra/memstore"
	"foodbridge/internal/infra/readstore"
	sqlc "foodbridge/internal/infra/sqlc/generated"
	"foodbridge/internal/infra/uow"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/pkg/config"
	"foodbridge/internal/usecase/queries"
	"foodbridge/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStorage,
	),
)

// Storage is everything the usecases need from the selected driver.
type Storage struct {
	fx.Out

	UnitOfWork    shared.UnitOfWork
	Inventory     queries.InventoryReadStore
	Requests      queries.RequestReadStore
	Notifications queries.NotificationReadStore
	Demand        queries.DemandHistoryReadStore
}

func NewStorage(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (Storage, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		logger.Info("using in-memory storage")
		store := memstore.New(clk)
		return Storage{
			UnitOfWork:    store,
			Inventory:     store,
			Requests:      store,
			Notifications: store,
			Demand:        store,
		}, nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Storage{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	q := sqlc.New()
	return Storage{
		UnitOfWork:    uow.NewPostgresUoW(pool, q, clk),
		Inventory:     readstore.NewInventoryReadStore(q, pool),
		Requests:      readstore.NewRequestReadStore(q, pool),
		Notifications: readstore.NewNotificationReadStore(q, pool),
		Demand:        readstore.NewDemandReadStore(q, pool),
	}, nil
}
