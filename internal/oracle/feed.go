package oracle

import (
	"encoding/binary"

	"morpho/core"
	"morpho/pkg/number"

	"github.com/shopspring/decimal"
)

const (
	// feedHeaderSize decoded prefix of a pull-feed account
	feedHeaderSize = 41
	// legacyFeedMinSize untagged feed accounts are recognized by size alone;
	// real feed accounts run ~3KB
	legacyFeedMinSize = 1000
)

var (
	// PullFeedDiscriminator tags pull-feed accounts, "pullfeed"
	PullFeedDiscriminator = [8]byte{0x70, 0x75, 0x6c, 0x6c, 0x66, 0x65, 0x65, 0x64}
	// StaticOracleDiscriminator tags static price accounts, "staticor"
	StaticOracleDiscriminator = [8]byte{0x73, 0x74, 0x61, 0x74, 0x69, 0x63, 0x6f, 0x72}
)

// PullFeed decoded pull-feed account. Binary layout, little-endian:
//
//	[0:8]   discriminator
//	[8:16]  last update slot (u64)
//	[16:20] sample count (u32)
//	[20]    sign, non-zero means negative
//	[21:37] mantissa magnitude (u128)
//	[37:41] decimal scale (u32)
//
// The feed value is mantissa * 10^-scale collateral tokens per loan token.
type PullFeed struct {
	LastUpdateSlot uint64
	SampleCount    uint32
	Negative       bool
	Mantissa       number.Uint
	Scale          uint32
}

// ParsePullFeed decode a pull-feed account. Untagged payloads are accepted
// only at the legacy >=1000-byte size.
func ParsePullFeed(data []byte) (*PullFeed, error) {
	if len(data) < feedHeaderSize {
		return nil, core.ErrOracleInvalidReturnData
	}

	var disc [8]byte
	copy(disc[:], data[0:8])
	if disc != PullFeedDiscriminator && len(data) < legacyFeedMinSize {
		return nil, core.ErrOracleInvalidReturnData
	}

	mantissa, err := number.UintFromLittleEndian(data[21:37])
	if err != nil {
		return nil, core.ErrOracleInvalidReturnData
	}

	return &PullFeed{
		LastUpdateSlot: binary.LittleEndian.Uint64(data[8:16]),
		SampleCount:    binary.LittleEndian.Uint32(data[16:20]),
		Negative:       data[20] != 0,
		Mantissa:       mantissa,
		Scale:          binary.LittleEndian.Uint32(data[37:41]),
	}, nil
}

// Value the feed's mantissa and scale after freshness, sample-count and
// positivity checks against the given slot. Any violation is ErrOracleStale.
func (f *PullFeed) Value(slot, maxStaleness uint64, minSamples uint32) (number.Uint, uint32, error) {
	if f.LastUpdateSlot > slot {
		return number.Uint{}, 0, core.ErrOracleStale
	}
	if slot-f.LastUpdateSlot > maxStaleness {
		return number.Uint{}, 0, core.ErrOracleStale
	}
	if f.SampleCount < minSamples {
		return number.Uint{}, 0, core.ErrOracleStale
	}
	if f.Negative || f.Mantissa.IsZero() {
		return number.Uint{}, 0, core.ErrOracleStale
	}

	return f.Mantissa, f.Scale, nil
}

// Decimal human-readable feed value for logs and views
func (f *PullFeed) Decimal() decimal.Decimal {
	d := decimal.NewFromBigInt(f.Mantissa.Big(), -int32(f.Scale))
	if f.Negative {
		return d.Neg()
	}
	return d
}
