package cmd

import (
	"strings"

	"morpho/core"
	"morpho/pkg/number"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var addMarketCmd = &cobra.Command{
	Use:     "add-market",
	Aliases: []string{"am"},
	Short:   "add market",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()
		marketStore := provideMarketStore(database)

		symbol, e := cmd.Flags().GetString("symbol")
		if e != nil || symbol == "" {
			panic("invalid symbol")
		}
		loanAssetID, e := cmd.Flags().GetString("loan-asset")
		if e != nil || loanAssetID == "" {
			panic("invalid loan asset id")
		}
		collateralAssetID, e := cmd.Flags().GetString("collateral-asset")
		if e != nil || collateralAssetID == "" {
			panic("invalid collateral asset id")
		}
		oracleID, e := cmd.Flags().GetString("oracle")
		if e != nil || oracleID == "" {
			panic("invalid oracle id")
		}
		lltv, e := cmd.Flags().GetUint64("lltv")
		if e != nil || lltv >= 10000 {
			panic("invalid lltv, expect bps below 10000")
		}

		market := &core.Market{
			Symbol:            strings.ToUpper(symbol),
			LoanAssetID:       loanAssetID,
			CollateralAssetID: collateralAssetID,
			Oracle:            oracleID,
			Lltv:              lltv,
			BaseRate:          wadFlag(cmd, "base-rate"),
			Multiplier:        wadFlag(cmd, "multiplier"),
			JumpMultiplier:    wadFlag(cmd, "jump-multiplier"),
			Kink:              wadFlag(cmd, "kink"),
		}

		err := database.Tx(func(tx *db.DB) error {
			return marketStore.Save(ctx, tx, market)
		})
		if err != nil {
			panic(err)
		}

		cmd.Println("market", market.Symbol, "created")
	},
}

var listMarketsCmd = &cobra.Command{
	Use:     "list-markets",
	Aliases: []string{"lm"},
	Short:   "list markets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()
		marketStore := provideMarketStore(database)

		markets, err := marketStore.All(ctx)
		if err != nil {
			panic(err)
		}

		for _, m := range markets {
			cmd.Printf("%s\tlltv=%d\toracle=%s\tsupply=%s\tborrow=%s\n",
				m.Symbol, m.Lltv, m.Oracle, m.TotalSupplyAssets, m.TotalBorrowAssets)
		}
	},
}

// wadFlag parse a decimal rate flag into its WAD integer representation
func wadFlag(cmd *cobra.Command, name string) number.Uint {
	flag, e := cmd.Flags().GetString(name)
	if e != nil {
		panic("invalid flag " + name)
	}
	if flag == "" {
		return number.Uint{}
	}

	d, e := decimal.NewFromString(flag)
	if e != nil || d.IsNegative() {
		panic("invalid flag " + name)
	}

	v, e := number.UintFromString(d.Shift(18).Truncate(0).String())
	if e != nil {
		panic("invalid flag " + name)
	}
	return v
}

func init() {
	rootCmd.AddCommand(addMarketCmd)
	rootCmd.AddCommand(listMarketsCmd)

	addMarketCmd.Flags().String("symbol", "", "market symbol")
	addMarketCmd.Flags().String("loan-asset", "", "loan asset id")
	addMarketCmd.Flags().String("collateral-asset", "", "collateral asset id")
	addMarketCmd.Flags().String("oracle", "", "oracle account id")
	addMarketCmd.Flags().Uint64("lltv", 0, "liquidation loan to value, bps")
	addMarketCmd.Flags().String("base-rate", "", "base rate per year, e.g. 0.02")
	addMarketCmd.Flags().String("multiplier", "", "rate multiplier per year")
	addMarketCmd.Flags().String("jump-multiplier", "", "jump multiplier per year")
	addMarketCmd.Flags().String("kink", "", "utilization kink, e.g. 0.8")
}
