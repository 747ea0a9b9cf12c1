package priceoracle

import (
	"context"
	"sync"

	"morpho/core"
	"morpho/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// Worker oracle snapshot worker. Pulls fresh feed account bytes for every
// market's oracle and stores them for the price gateway to resolve against.
type Worker struct {
	worker.TickWorker
	DB                 *db.DB
	MarketStore        core.IMarketStore
	OracleStore        core.IOracleAccountStore
	PriceOracleService core.IPriceOracleService
}

// New new oracle snapshot worker
func New(database *db.DB, marketStr core.IMarketStore, oracleStr core.IOracleAccountStore, priceSrv core.IPriceOracleService) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Spec: "@every 5s",
		},
		DB:                 database,
		MarketStore:        marketStr,
		OracleStore:        oracleStr,
		PriceOracleService: priceSrv,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "priceoracle")

	markets, err := w.MarketStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("fetch all markets")
		return err
	}

	oracles := make(map[string]bool)
	for _, m := range markets {
		if m.Oracle != "" {
			oracles[m.Oracle] = true
		}
	}

	wg := sync.WaitGroup{}
	for oracleID := range oracles {
		wg.Add(1)
		go func(oracleID string) {
			defer wg.Done()

			account, err := w.PriceOracleService.PullFeedSnapshot(ctx, oracleID)
			if err != nil {
				log.WithError(err).Errorln("pull feed snapshot:", oracleID)
				return
			}

			if err := w.OracleStore.Save(ctx, w.DB, account); err != nil {
				log.WithError(err).Errorln("save oracle account:", oracleID)
			}
		}(oracleID)
	}
	wg.Wait()

	return nil
}
