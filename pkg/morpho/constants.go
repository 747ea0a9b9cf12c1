package morpho

import (
	"morpho/pkg/number"
)

// BPS basis points denominator, 10000 = 100%
const BPS uint64 = 10000

var (
	// OracleScale prices are collateral-tokens-per-loan-token scaled by 1e36
	OracleScale = number.Pow10(36)
	// WAD 1e18 fixed-point unit for health factors and yearly rates
	WAD = number.Pow10(18)
)

// MaxOraclePrice price ceiling, OracleScale * 1e9, saturating on overflow
func MaxOraclePrice() number.Uint {
	v, err := number.MulDivDown(OracleScale, number.Pow10(9), number.NewUint(1))
	if err != nil {
		return number.MaxUint()
	}
	return v
}
