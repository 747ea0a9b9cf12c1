package interest

import (
	"context"
	"time"

	"morpho/core"
	"morpho/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// Worker interest worker. Keeps every market's borrow book accrued to the
// current slot so read paths see up-to-date totals between liquidations.
type Worker struct {
	worker.TickWorker
	DB            *db.DB
	MarketStore   core.IMarketStore
	MarketService core.IMarketService
}

// New new interest worker
func New(database *db.DB, marketStr core.IMarketStore, marketSrv core.IMarketService) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Spec: "@every 30s",
		},
		DB:            database,
		MarketStore:   marketStr,
		MarketService: marketSrv,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "interest")

	markets, err := w.MarketStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("fetch all markets")
		return err
	}

	for _, m := range markets {
		market := m
		err := w.DB.Tx(func(tx *db.DB) error {
			return w.MarketService.AccrueInterest(ctx, tx, market, time.Now())
		})
		if err != nil {
			log.WithError(err).Errorln("accrue interest:", market.Symbol)
		}
	}

	return nil
}
