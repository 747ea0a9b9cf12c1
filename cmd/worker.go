package cmd

import (
	"morpho/worker"
	"morpho/worker/interest"
	"morpho/worker/liquidator"
	"morpho/worker/priceoracle"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "morpho job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		marketStore := provideMarketStore(database)
		positionStore := providePositionStore(database)
		oracleStore := provideOracleStore(database)
		liquidationStore := provideLiquidationStore(database)

		blockService := provideBlockService()
		priceService := providePriceService(oracleStore, blockService)
		marketService := provideMarketService(marketStore, blockService)
		liquidationService := provideLiquidationService(database, marketStore, positionStore, liquidationStore, marketService, priceService)

		workers := []worker.Worker{
			priceoracle.New(database, marketStore, oracleStore, priceService),
			interest.New(database, marketStore, marketService),
			liquidator.New(cfg.App.Liquidator, marketStore, positionStore, priceService, liquidationService),
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Errorln("worker aborted")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
