package oracle

import (
	"morpho/core"
	"morpho/pkg/morpho"
	"morpho/pkg/number"
)

// staticOracleSize discriminator + bump + u128 price
const staticOracleSize = 25

type source int

const (
	sourceStatic source = iota
	sourceFeed
)

// ResolvePrice validated price from an oracle account, at the 1e36 scale.
//
// The account must be the market's configured oracle. Pull-feed accounts go
// through freshness, sample-count and positivity checks against the given
// slot; if the feed path fails for any reason other than identity mismatch,
// the same bytes are re-read as a static price account. Both paths end with
// the [MinOraclePrice, OracleScale*1e9] bound check.
func ResolvePrice(account *core.OracleAccount, market *core.Market, slot uint64, risk *core.RiskConfig) (number.Uint, error) {
	if account.OracleID != market.Oracle {
		return number.Uint{}, core.ErrInvalidOracle
	}

	if detectSource(account.Data) == sourceFeed {
		if price, err := FeedPrice(account.Data, slot, risk); err == nil {
			return price, nil
		}
		return StaticPrice(account.Data, risk)
	}

	return StaticPrice(account.Data, risk)
}

// detectSource authoritative discriminator tag first; payloads without a
// known tag fall back to the legacy size heuristic for untagged fixtures.
func detectSource(data []byte) source {
	if len(data) >= 8 {
		var disc [8]byte
		copy(disc[:], data[0:8])
		switch disc {
		case StaticOracleDiscriminator:
			return sourceStatic
		case PullFeedDiscriminator:
			return sourceFeed
		}
	}

	if len(data) >= legacyFeedMinSize {
		return sourceFeed
	}
	return sourceStatic
}

// FeedPrice parse and fully validate a pull-feed account against the slot
func FeedPrice(data []byte, slot uint64, risk *core.RiskConfig) (number.Uint, error) {
	feed, err := ParsePullFeed(data)
	if err != nil {
		return number.Uint{}, err
	}

	mantissa, scale, err := feed.Value(slot, risk.MaxOracleStaleness, risk.MinOracleSamples)
	if err != nil {
		return number.Uint{}, err
	}

	price, err := scaleToOracle(mantissa, scale)
	if err != nil {
		return number.Uint{}, err
	}

	if err := checkBounds(price, risk); err != nil {
		return number.Uint{}, err
	}

	return price, nil
}

// ConvertFeedPrice convert an already-validated feed without re-deriving the
// clock checks; same conversion and bound rules as FeedPrice
func ConvertFeedPrice(feed *PullFeed, risk *core.RiskConfig) (number.Uint, error) {
	price, err := scaleToOracle(feed.Mantissa, feed.Scale)
	if err != nil {
		return number.Uint{}, err
	}

	if err := checkBounds(price, risk); err != nil {
		return number.Uint{}, err
	}

	return price, nil
}

// StaticPrice decode a static price account:
// [8 discriminator][1 bump][16 LE u128 price], trailing bytes ignored
func StaticPrice(data []byte, risk *core.RiskConfig) (number.Uint, error) {
	if len(data) < staticOracleSize {
		return number.Uint{}, core.ErrOracleInvalidReturnData
	}

	price, err := number.UintFromLittleEndian(data[9:25])
	if err != nil {
		return number.Uint{}, core.ErrOracleInvalidReturnData
	}

	if err := checkBounds(price, risk); err != nil {
		return number.Uint{}, err
	}

	return price, nil
}

// scaleToOracle mantissa * 10^-scale rescaled to 1e36. Scaling up past the
// representable range fails hard; scaling down truncates excess precision.
func scaleToOracle(mantissa number.Uint, scale uint32) (number.Uint, error) {
	if scale <= 36 {
		price, err := number.MulDivDown(mantissa, number.Pow10(uint64(36-scale)), number.NewUint(1))
		if err != nil {
			return number.Uint{}, core.ErrMathOverflow
		}
		return price, nil
	}

	// a u128 mantissa divided by more than 10^38 is always zero
	if scale-36 > 38 {
		return number.Uint{}, nil
	}

	price, err := number.MulDivDown(mantissa, number.NewUint(1), number.Pow10(uint64(scale-36)))
	if err != nil {
		return number.Uint{}, core.ErrMathOverflow
	}
	return price, nil
}

func checkBounds(price number.Uint, risk *core.RiskConfig) error {
	if price.LessThan(risk.MinOraclePrice) {
		return core.ErrOraclePriceTooLow
	}
	if price.GreaterThan(morpho.MaxOraclePrice()) {
		return core.ErrOraclePriceTooHigh
	}
	return nil
}
