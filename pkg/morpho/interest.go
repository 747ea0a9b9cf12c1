package morpho

import (
	"time"

	"morpho/core"
	"morpho/pkg/number"
)

var millisecondsPerYear = number.NewUint(31_536_000_000)

// UtilizationRate borrowed share of supplied assets, WAD.
// Clamped to WAD when borrows exceed supply (pre-socialization bad debt).
func UtilizationRate(totalBorrowAssets, totalSupplyAssets number.Uint) number.Uint {
	if totalSupplyAssets.IsZero() {
		return number.Uint{}
	}

	u, err := number.MulDivDown(totalBorrowAssets, WAD, totalSupplyAssets)
	if err != nil || u.GreaterThan(WAD) {
		return WAD
	}

	return u
}

// BorrowRatePerYear kinked rate model, WAD per year
// rate = base + utilization * multiplier, with the jump multiplier applied
// to utilization above the kink
func BorrowRatePerYear(utilization number.Uint, market *core.Market) (number.Uint, error) {
	normal := utilization
	if !market.Kink.IsZero() && utilization.GreaterThan(market.Kink) {
		normal = market.Kink
	}

	slope, err := number.MulDivDown(normal, market.Multiplier, WAD)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	rate, err := number.Add(market.BaseRate, slope)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	if market.Kink.IsZero() || utilization.Cmp(market.Kink) <= 0 {
		return rate, nil
	}

	excess := utilization.SaturatingSub(market.Kink)
	jump, err := number.MulDivDown(excess, market.JumpMultiplier, WAD)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	rate, err = number.Add(rate, jump)
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}

	return rate, nil
}

// AccrueInterest advance the market's borrow book to the given slot.
// Accrued interest grows both total borrow assets and total supply assets;
// suppliers earn it through the share exchange rate. No-op when the market
// is already at or past the slot.
func AccrueInterest(market *core.Market, slot uint64, slotDuration time.Duration) error {
	if slot <= market.BlockNumber {
		return nil
	}

	elapsed := number.NewUint((slot - market.BlockNumber) * uint64(slotDuration.Milliseconds()))

	rate, err := BorrowRatePerYear(UtilizationRate(market.TotalBorrowAssets, market.TotalSupplyAssets), market)
	if err != nil {
		return err
	}

	perYear, err := number.MulDivDown(market.TotalBorrowAssets, rate, WAD)
	if err != nil {
		return core.ErrMathOverflow
	}

	interest, err := number.MulDivDown(perYear, elapsed, millisecondsPerYear)
	if err != nil {
		return core.ErrMathOverflow
	}

	borrows, err := number.Add(market.TotalBorrowAssets, interest)
	if err != nil {
		return core.ErrMathOverflow
	}

	supplies, err := number.Add(market.TotalSupplyAssets, interest)
	if err != nil {
		return core.ErrMathOverflow
	}

	market.BlockNumber = slot
	market.TotalBorrowAssets = borrows
	market.TotalSupplyAssets = supplies

	return nil
}
