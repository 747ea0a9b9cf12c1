package morpho

import (
	"testing"
	"time"

	"morpho/core"
	"morpho/pkg/number"

	"github.com/stretchr/testify/require"
)

func rateMarket() *core.Market {
	percent, _ := number.MulDivDown(WAD, number.NewUint(1), number.NewUint(100))
	kink, _ := number.MulDivDown(WAD, number.NewUint(80), number.NewUint(100))

	m := &core.Market{
		TotalSupplyAssets: number.NewUint(10000),
		TotalSupplyShares: number.NewUint(10000),
		TotalBorrowAssets: number.NewUint(5000),
		TotalBorrowShares: number.NewUint(5000),
		Kink:              kink,
	}

	// base 2%, multiplier 20%, jump 100%
	m.BaseRate, _ = number.MulDivDown(percent, number.NewUint(2), number.NewUint(1))
	m.Multiplier, _ = number.MulDivDown(percent, number.NewUint(20), number.NewUint(1))
	m.JumpMultiplier = WAD
	return m
}

func TestUtilizationRate(t *testing.T) {
	half, _ := number.MulDivDown(WAD, number.NewUint(1), number.NewUint(2))
	require.True(t, UtilizationRate(number.NewUint(5000), number.NewUint(10000)).Equal(half))

	// empty pool has zero utilization
	require.True(t, UtilizationRate(number.NewUint(5000), number.Uint{}).IsZero())

	// borrows above supply clamp to WAD
	require.True(t, UtilizationRate(number.NewUint(15000), number.NewUint(10000)).Equal(WAD))
}

func TestBorrowRatePerYear(t *testing.T) {
	m := rateMarket()

	// 50% utilization: 2% + 0.5*20% = 12%
	rate, err := BorrowRatePerYear(UtilizationRate(m.TotalBorrowAssets, m.TotalSupplyAssets), m)
	require.Nil(t, err)
	expected, _ := number.MulDivDown(WAD, number.NewUint(12), number.NewUint(100))
	require.True(t, rate.Equal(expected))

	// above the kink the jump multiplier applies:
	// 2% + 0.8*20% + 0.1*100% = 28%
	ninety, _ := number.MulDivDown(WAD, number.NewUint(90), number.NewUint(100))
	rate, err = BorrowRatePerYear(ninety, m)
	require.Nil(t, err)
	expected, _ = number.MulDivDown(WAD, number.NewUint(28), number.NewUint(100))
	require.True(t, rate.Equal(expected))
}

func TestAccrueInterest(t *testing.T) {
	m := rateMarket()
	m.BlockNumber = 100

	// one year of slots at 400ms: 78_840_000 slots, 12% on 5000 borrows
	var slotsPerYear uint64 = 78_840_000
	err := AccrueInterest(m, 100+slotsPerYear, 400*time.Millisecond)
	require.Nil(t, err)
	require.Equal(t, "5600", m.TotalBorrowAssets.String())
	require.Equal(t, "10600", m.TotalSupplyAssets.String())
	require.Equal(t, uint64(100)+slotsPerYear, m.BlockNumber)
	// shares never change on accrual
	require.Equal(t, "5000", m.TotalBorrowShares.String())
	require.Equal(t, "10000", m.TotalSupplyShares.String())

	// stale slot is a no-op
	before := *m
	require.Nil(t, AccrueInterest(m, m.BlockNumber, 400*time.Millisecond))
	require.Equal(t, before, *m)
}
