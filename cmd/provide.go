package cmd

import (
	"morpho/core"
	blockservice "morpho/service/block"
	liquidationservice "morpho/service/liquidation"
	marketservice "morpho/service/market"
	oracleservice "morpho/service/oracle"
	"morpho/store/liquidation"
	"morpho/store/market"
	"morpho/store/oracle"
	"morpho/store/position"

	"github.com/fox-one/pkg/store/db"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func provideMarketStore(db *db.DB) core.IMarketStore {
	return market.New(db)
}

func providePositionStore(db *db.DB) core.IPositionStore {
	return position.New(db)
}

func provideOracleStore(db *db.DB) core.IOracleAccountStore {
	return oracle.New(db)
}

func provideLiquidationStore(db *db.DB) core.ILiquidationStore {
	return liquidation.New(db)
}

func provideBlockService() core.IBlockService {
	return blockservice.New(&cfg)
}

func providePriceService(oracleStr core.IOracleAccountStore, blockSrv core.IBlockService) core.IPriceOracleService {
	return oracleservice.New(&cfg, oracleStr, blockSrv)
}

func provideMarketService(marketStr core.IMarketStore, blockSrv core.IBlockService) core.IMarketService {
	return marketservice.New(&cfg, marketStr, blockSrv)
}

func provideLiquidationService(
	database *db.DB,
	marketStr core.IMarketStore,
	positionStr core.IPositionStore,
	liquidationStr core.ILiquidationStore,
	marketSrv core.IMarketService,
	priceSrv core.IPriceOracleService,
) core.ILiquidationService {
	return liquidationservice.New(&cfg, database, marketStr, positionStr, liquidationStr, marketSrv, priceSrv)
}
