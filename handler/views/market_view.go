package views

import (
	"morpho/core"
	"morpho/pkg/morpho"

	"github.com/shopspring/decimal"
)

// Market market view
type Market struct {
	core.Market
	UtilizationRate decimal.Decimal `json:"utilization_rate"`
	BorrowAPY       decimal.Decimal `json:"borrow_apy"`
}

// NewMarket decorate a market row with human readable rate fields
func NewMarket(market *core.Market) *Market {
	utilization := morpho.UtilizationRate(market.TotalBorrowAssets, market.TotalSupplyAssets)

	view := &Market{
		Market:          *market,
		UtilizationRate: decimal.NewFromBigInt(utilization.Big(), -18),
	}

	if rate, err := morpho.BorrowRatePerYear(utilization, market); err == nil {
		view.BorrowAPY = decimal.NewFromBigInt(rate.Big(), -18)
	}

	return view
}
