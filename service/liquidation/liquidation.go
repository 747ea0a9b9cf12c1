package liquidation

import (
	"context"
	"time"

	"morpho/core"
	"morpho/pkg/morpho"
	"morpho/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/fox-one/pkg/uuid"
)

type service struct {
	config           *core.Config
	db               *db.DB
	marketStore      core.IMarketStore
	positionStore    core.IPositionStore
	liquidationStore core.ILiquidationStore
	marketService    core.IMarketService
	priceService     core.IPriceOracleService
}

// New new liquidation service
func New(
	cfg *core.Config,
	database *db.DB,
	marketStr core.IMarketStore,
	positionStr core.IPositionStore,
	liquidationStr core.ILiquidationStore,
	marketSrv core.IMarketService,
	priceSrv core.IPriceOracleService,
) core.ILiquidationService {
	return &service{
		config:           cfg,
		db:               database,
		marketStore:      marketStr,
		positionStore:    positionStr,
		liquidationStore: liquidationStr,
		marketService:    marketSrv,
		priceService:     priceSrv,
	}
}

// Liquidate repay part of an unhealthy position's debt and seize collateral.
//
// The repay amount is clamped to the position's outstanding debt and the
// seizure to its remaining collateral. When seizure exhausts the collateral
// while debt shares remain, the residue is written off the pool's books.
func (s *service) Liquidate(ctx context.Context, liquidator, userID, symbol string, repayAssets number.Uint) (*core.Liquidation, error) {
	log := logger.FromContext(ctx).WithField("service", "liquidation")

	if repayAssets.IsZero() {
		return nil, core.ErrInvalidAmount
	}

	market, err := s.marketStore.Find(ctx, symbol)
	if err != nil {
		log.WithError(err).Errorln("find market", symbol)
		return nil, core.ErrMarketNotFound
	}

	position, err := s.positionStore.Find(ctx, userID, symbol)
	if err != nil {
		log.WithError(err).Errorln("find position", userID, symbol)
		return nil, core.ErrPositionNotFound
	}

	price, err := s.priceService.ResolvePrice(ctx, market)
	if err != nil {
		log.WithError(err).Errorln("resolve price", market.Oracle)
		return nil, err
	}

	var liquidation *core.Liquidation
	err = s.db.Tx(func(tx *db.DB) error {
		if err := s.marketService.AccrueInterest(ctx, tx, market, time.Now()); err != nil {
			return err
		}

		liquidatable, err := morpho.IsLiquidatable(
			position.Collateral,
			position.BorrowShares,
			market.TotalBorrowAssets,
			market.TotalBorrowShares,
			price,
			market.Lltv,
		)
		if err != nil {
			return err
		}
		if !liquidatable {
			return core.ErrNotLiquidatable
		}

		debt, err := number.ToAssetsUp(position.BorrowShares, market.TotalBorrowAssets, market.TotalBorrowShares)
		if err != nil {
			return core.ErrMathOverflow
		}

		repaid := number.Min(repayAssets, debt)
		repaidShares, err := number.ToSharesDown(repaid, market.TotalBorrowAssets, market.TotalBorrowShares)
		if err != nil {
			return core.ErrMathOverflow
		}
		repaidShares = number.Min(repaidShares, position.BorrowShares)

		risk := s.config.Risk
		lif := morpho.CalculateLIF(market.Lltv, &risk)

		seized, err := morpho.CalculateSeizedCollateral(repaid, price, lif, risk.LIFBPS)
		if err != nil {
			return err
		}
		seized = number.Min(seized, position.Collateral)

		position.Collateral = position.Collateral.SaturatingSub(seized)
		position.BorrowShares = position.BorrowShares.SaturatingSub(repaidShares)
		market.TotalBorrowAssets = market.TotalBorrowAssets.SaturatingSub(repaid)
		market.TotalBorrowShares = market.TotalBorrowShares.SaturatingSub(repaidShares)

		badDebt := number.Uint{}
		if position.Collateral.IsZero() && !position.BorrowShares.IsZero() {
			badDebt, err = morpho.SocializeBadDebt(market, position.BorrowShares)
			if err != nil {
				return err
			}
			position.BorrowShares = number.Uint{}
		}

		if err := s.positionStore.Update(ctx, tx, position); err != nil {
			return err
		}
		if err := s.marketStore.Update(ctx, tx, market); err != nil {
			return err
		}

		liquidation = &core.Liquidation{
			TraceID:          uuid.New(),
			Liquidator:       liquidator,
			UserID:           userID,
			Symbol:           symbol,
			RepaidAssets:     repaid,
			RepaidShares:     repaidShares,
			SeizedCollateral: seized,
			BadDebt:          badDebt,
			Price:            price,
			Lif:              lif,
		}
		return s.liquidationStore.Create(ctx, tx, liquidation)
	})
	if err != nil {
		return nil, err
	}

	log.Infof("liquidated %s/%s: repaid %s, seized %s", userID, symbol, liquidation.RepaidAssets, liquidation.SeizedCollateral)
	return liquidation, nil
}
