package liquidator

import (
	"context"

	"morpho/core"
	"morpho/pkg/morpho"
	"morpho/pkg/number"
	"morpho/worker"

	"github.com/fox-one/pkg/logger"
)

// Worker liquidation keeper. Scans positions market by market and fires a
// full-debt liquidation at every position the current price leaves
// under-collateralized. The service re-checks eligibility inside its own
// transaction, so a stale scan result only costs a no-op call.
type Worker struct {
	worker.TickWorker
	Liquidator         string
	MarketStore        core.IMarketStore
	PositionStore      core.IPositionStore
	PriceOracleService core.IPriceOracleService
	LiquidationService core.ILiquidationService
}

// New new liquidation keeper worker
func New(
	liquidator string,
	marketStr core.IMarketStore,
	positionStr core.IPositionStore,
	priceSrv core.IPriceOracleService,
	liquidationSrv core.ILiquidationService,
) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{
			Spec: "@every 10s",
		},
		Liquidator:         liquidator,
		MarketStore:        marketStr,
		PositionStore:      positionStr,
		PriceOracleService: priceSrv,
		LiquidationService: liquidationSrv,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	markets, err := w.MarketStore.All(ctx)
	if err != nil {
		log.WithError(err).Errorln("fetch all markets")
		return err
	}

	for _, market := range markets {
		if err := w.scanMarket(ctx, market); err != nil {
			log.WithError(err).Errorln("scan market:", market.Symbol)
		}
	}

	return nil
}

func (w *Worker) scanMarket(ctx context.Context, market *core.Market) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	price, err := w.PriceOracleService.ResolvePrice(ctx, market)
	if err != nil {
		return err
	}

	positions, err := w.PositionStore.ListBySymbol(ctx, market.Symbol)
	if err != nil {
		return err
	}

	for _, position := range positions {
		liquidatable, err := morpho.IsLiquidatable(
			position.Collateral,
			position.BorrowShares,
			market.TotalBorrowAssets,
			market.TotalBorrowShares,
			price,
			market.Lltv,
		)
		if err != nil || !liquidatable {
			continue
		}

		debt, err := number.ToAssetsUp(position.BorrowShares, market.TotalBorrowAssets, market.TotalBorrowShares)
		if err != nil {
			continue
		}

		liquidation, err := w.LiquidationService.Liquidate(ctx, w.Liquidator, position.UserID, market.Symbol, debt)
		if err != nil {
			if err == core.ErrNotLiquidatable {
				continue
			}
			log.WithError(err).Errorln("liquidate:", position.UserID, market.Symbol)
			continue
		}

		log.Infof("liquidation %s: repaid %s seized %s bad debt %s",
			liquidation.TraceID, liquidation.RepaidAssets, liquidation.SeizedCollateral, liquidation.BadDebt)
	}

	return nil
}
