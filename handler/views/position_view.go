package views

import (
	"morpho/core"
	"morpho/pkg/morpho"
	"morpho/pkg/number"

	"github.com/shopspring/decimal"
)

// Position position view with the risk fields a liquidator watches
type Position struct {
	core.Position
	Debt         number.Uint     `json:"debt"`
	Price        decimal.Decimal `json:"price"`
	HealthFactor decimal.Decimal `json:"health_factor"`
	Liquidatable bool            `json:"liquidatable"`
}

// NewPosition decorate a position with debt, price and health derived from
// the market's books and the resolved oracle price
func NewPosition(position *core.Position, market *core.Market, price number.Uint) (*Position, error) {
	debt, err := number.ToAssetsUp(position.BorrowShares, market.TotalBorrowAssets, market.TotalBorrowShares)
	if err != nil {
		return nil, core.ErrMathOverflow
	}

	health, err := morpho.HealthFactor(position.Collateral, debt, price, market.Lltv)
	if err != nil {
		return nil, err
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
		return nil, err
	}

	return &Position{
		Position:     *position,
		Debt:         debt,
		Price:        decimal.NewFromBigInt(price.Big(), -36),
		HealthFactor: decimal.NewFromBigInt(health.Big(), -18),
		Liquidatable: liquidatable,
	}, nil
}
