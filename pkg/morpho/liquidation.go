package morpho

import (
	"math/bits"

	"morpho/core"
	"morpho/pkg/number"
)

// IsLiquidatable check whether a position can be liquidated
//
// A position is liquidatable when borrowed > collateral_value * lltv / BPS.
// Debt is converted share->asset rounding up so it is never under-counted;
// equality is healthy.
func IsLiquidatable(collateral, borrowShares, totalBorrowAssets, totalBorrowShares, price number.Uint, lltv uint64) (bool, error) {
	if borrowShares.IsZero() {
		return false, nil
	}

	borrowed, err := number.ToAssetsUp(borrowShares, totalBorrowAssets, totalBorrowShares)
	if err != nil {
		return false, core.ErrMathOverflow
	}

	collateralValue, err := number.MulDivDown(collateral, price, OracleScale)
	if err != nil {
		return false, core.ErrMathOverflow
	}

	maxBorrow, err := number.MulDivDown(collateralValue, number.NewUint(lltv), number.NewUint(BPS))
	if err != nil {
		return false, core.ErrMathOverflow
	}

	return borrowed.GreaterThan(maxBorrow), nil
}

// HealthFactor position health scaled by WAD, max representable when debt
// free.
// health > WAD means healthy. Advisory only: the borrowed input is rounded
// by the caller, so IsLiquidatable stays the authoritative decision.
func HealthFactor(collateral, borrowed, price number.Uint, lltv uint64) (number.Uint, error) {
	if borrowed.IsZero() {
		return number.MaxUint(), nil
	}

	collateralValue, err := number.MulDivDown(collateral, price, OracleScale)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	maxBorrow, err := number.MulDivDown(collateralValue, number.NewUint(lltv), number.NewUint(BPS))
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	health, err := number.MulDivDown(maxBorrow, WAD, borrowed)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	return health, nil
}

// CalculateLIF liquidation incentive factor in risk.LIFBPS units
//
// lif = min(MaxLIF, LIFBPS^2 / (LIFBPS - LIFCursor * (BPS - lltv) / LIFBPS))
//
// Riskier markets (low lltv) pay a larger incentive. Total by policy: every
// intermediate clamps instead of failing, so an incentive is always
// computable and the liquidation path stays live under extreme parameters.
// Do not replace the clamps with hard overflow errors.
func CalculateLIF(lltv uint64, risk *core.RiskConfig) uint64 {
	var oneMinusLltv uint64
	if lltv < BPS {
		oneMinusLltv = BPS - lltv
	}

	var cursorTerm uint64
	if hi, lo := bits.Mul64(risk.LIFCursor, oneMinusLltv); hi == 0 && risk.LIFBPS > 0 {
		cursorTerm = lo / risk.LIFBPS
	}

	var denominator uint64
	if cursorTerm < risk.LIFBPS {
		denominator = risk.LIFBPS - cursorTerm
	}
	if denominator == 0 {
		return risk.MaxLIF
	}

	var lif uint64
	q, err := number.MulDivDown(number.NewUint(risk.LIFBPS), number.NewUint(risk.LIFBPS), number.NewUint(denominator))
	if err != nil {
		lif = ^uint64(0)
	} else {
		lif = q.Uint64()
	}

	if lif > risk.MaxLIF {
		return risk.MaxLIF
	}
	return lif
}

// CalculateSeizedCollateral collateral transferred to the liquidator
//
// seized = ceil(ceil(repaid * price / OracleScale) * lif / lifBPS)
//
// Both steps round in the liquidator's favor; under-seizing would make
// liquidation uneconomical and leave insolvent positions unresolved.
func CalculateSeizedCollateral(repaidAssets, price number.Uint, lif, lifBPS uint64) (number.Uint, error) {
	collateralValue, err := number.MulDivUp(repaidAssets, price, OracleScale)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	seized, err := number.MulDivUp(collateralValue, number.NewUint(lif), number.NewUint(lifBPS))
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	return seized, nil
}

// SocializeBadDebt write unrecoverable debt off the pool's books
//
// Must be called only after seizure has left the position with zero
// collateral and residual debt shares. Removes the shares and their
// round-up asset value from the borrow side and subtracts the same amount
// from total supply assets; supply shares stay untouched, so every
// outstanding share becomes worth proportionally less. Subtraction
// saturates: a remainingBorrowShares above the market aggregate
// under-reduces silently, which is the caller's contract to prevent.
// Returns the bad debt socialized.
func SocializeBadDebt(market *core.Market, remainingBorrowShares number.Uint) (number.Uint, error) {
	if remainingBorrowShares.IsZero() {
		return number.Uint{}, nil
	}

	badDebt, err := number.ToAssetsUp(remainingBorrowShares, market.TotalBorrowAssets, market.TotalBorrowShares)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	market.TotalBorrowShares = market.TotalBorrowShares.SaturatingSub(remainingBorrowShares)
	market.TotalBorrowAssets = market.TotalBorrowAssets.SaturatingSub(badDebt)
	market.TotalSupplyAssets = market.TotalSupplyAssets.SaturatingSub(badDebt)

	return badDebt, nil
}
