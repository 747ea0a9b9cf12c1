package oracle

import (
	"encoding/binary"
	"testing"
	"time"

	"morpho/core"
	"morpho/pkg/morpho"
	"morpho/pkg/number"

	"github.com/stretchr/testify/require"
)

func testRisk() *core.RiskConfig {
	risk := core.DefaultRiskConfig()
	return &risk
}

func staticAccount(price number.Uint) []byte {
	data := make([]byte, staticOracleSize)
	copy(data[0:8], StaticOracleDiscriminator[:])
	data[8] = 255 // bump
	be := price.Big().Bytes()
	// big.Int bytes are big-endian; reverse into the LE price slot
	for i, b := range be {
		data[9+len(be)-1-i] = b
	}
	return data
}

type feedParams struct {
	lastUpdate uint64
	samples    uint32
	negative   bool
	mantissa   number.Uint
	scale      uint32
	size       int
	tagged     bool
}

func feedAccount(p feedParams) []byte {
	size := p.size
	if size == 0 {
		size = 3 * 1024
	}
	data := make([]byte, size)
	if p.tagged {
		copy(data[0:8], PullFeedDiscriminator[:])
	}
	binary.LittleEndian.PutUint64(data[8:16], p.lastUpdate)
	binary.LittleEndian.PutUint32(data[16:20], p.samples)
	if p.negative {
		data[20] = 1
	}
	be := p.mantissa.Big().Bytes()
	for i, b := range be {
		data[21+len(be)-1-i] = b
	}
	binary.LittleEndian.PutUint32(data[37:41], p.scale)
	return data
}

func marketWithOracle(oracle string) *core.Market {
	return &core.Market{Symbol: "ETHUSDC", Oracle: oracle}
}

func price(n uint64) number.Uint {
	p, err := number.MulDivDown(number.NewUint(n), morpho.OracleScale, number.NewUint(1))
	if err != nil {
		panic(err)
	}
	return p
}

func TestResolvePriceIdentity(t *testing.T) {
	account := &core.OracleAccount{OracleID: "other", Data: staticAccount(price(200))}
	_, err := ResolvePrice(account, marketWithOracle("oracle-1"), 100, testRisk())
	require.Equal(t, core.ErrInvalidOracle, err)
}

func TestResolveStaticPrice(t *testing.T) {
	// the static price field is a u128, so the ratio stays modest here
	account := &core.OracleAccount{OracleID: "oracle-1", Data: staticAccount(price(200))}
	got, err := ResolvePrice(account, marketWithOracle("oracle-1"), 100, testRisk())
	require.Nil(t, err)
	require.True(t, got.Equal(price(200)))
}

func TestResolveStaticTooShort(t *testing.T) {
	account := &core.OracleAccount{OracleID: "oracle-1", Data: make([]byte, 20)}
	_, err := ResolvePrice(account, marketWithOracle("oracle-1"), 100, testRisk())
	require.Equal(t, core.ErrOracleInvalidReturnData, err)
}

func TestResolveStaticBounds(t *testing.T) {
	risk := testRisk()

	account := &core.OracleAccount{OracleID: "oracle-1", Data: staticAccount(number.NewUint(1))}
	_, err := ResolvePrice(account, marketWithOracle("oracle-1"), 100, risk)
	require.Equal(t, core.ErrOraclePriceTooLow, err)

	// u128-bounded static prices always sit below the 1e45 ceiling
	u128Max := number.MustUint("340282366920938463463374607431768211455")
	account.Data = staticAccount(u128Max)
	_, err = ResolvePrice(account, marketWithOracle("oracle-1"), 100, risk)
	require.Nil(t, err)
}

func TestFeedPriceTooHigh(t *testing.T) {
	// u128-max mantissa at scale 0 rescales to 3.4e74, far above 1e45
	data := feedAccount(feedParams{
		lastUpdate: 100,
		samples:    1,
		mantissa:   number.MustUint("340282366920938463463374607431768211455"),
		scale:      0,
		tagged:     true,
	})

	_, err := FeedPrice(data, 100, testRisk())
	require.Equal(t, core.ErrOraclePriceTooHigh, err)
}

func TestResolveFeedPrice(t *testing.T) {
	// 2000.000000 with scale 6
	data := feedAccount(feedParams{
		lastUpdate: 90,
		samples:    3,
		mantissa:   number.NewUint(2_000_000_000),
		scale:      6,
		tagged:     true,
	})

	account := &core.OracleAccount{OracleID: "oracle-1", Data: data}
	got, err := ResolvePrice(account, marketWithOracle("oracle-1"), 100, testRisk())
	require.Nil(t, err)
	require.True(t, got.Equal(price(2000)))
}

func TestResolveFeedStaleFallsBackToStatic(t *testing.T) {
	// stale feed falls back to the static read, whose bytes here sit below
	// the price floor, so resolution still fails
	data := feedAccount(feedParams{
		lastUpdate: 10,
		samples:    1,
		tagged:     true,
	})

	account := &core.OracleAccount{OracleID: "oracle-1", Data: data}
	_, err := ResolvePrice(account, marketWithOracle("oracle-1"), 100, testRisk())
	require.Equal(t, core.ErrOraclePriceTooLow, err)

	// fresh again
	data = feedAccount(feedParams{
		lastUpdate: 60,
		samples:    1,
		mantissa:   number.NewUint(2_000_000_000),
		scale:      6,
		tagged:     true,
	})
	account.Data = data
	_, err = ResolvePrice(account, marketWithOracle("oracle-1"), 100, testRisk())
	require.Nil(t, err)
}

func TestResolveLegacyUntaggedFeed(t *testing.T) {
	// no discriminator, recognized by size alone
	data := feedAccount(feedParams{
		lastUpdate: 95,
		samples:    2,
		mantissa:   number.NewUint(2_000_000_000),
		scale:      6,
	})

	account := &core.OracleAccount{OracleID: "oracle-1", Data: data}
	got, err := ResolvePrice(account, marketWithOracle("oracle-1"), 100, testRisk())
	require.Nil(t, err)
	require.True(t, got.Equal(price(2000)))
}

func TestFeedValueChecks(t *testing.T) {
	risk := testRisk()

	cases := []struct {
		name string
		p    feedParams
	}{
		{"stale", feedParams{lastUpdate: 10, samples: 1, mantissa: number.NewUint(1), scale: 0, tagged: true}},
		{"future update", feedParams{lastUpdate: 200, samples: 1, mantissa: number.NewUint(1), scale: 0, tagged: true}},
		{"not enough samples", feedParams{lastUpdate: 100, samples: 0, mantissa: number.NewUint(1), scale: 0, tagged: true}},
		{"negative value", feedParams{lastUpdate: 100, samples: 1, negative: true, mantissa: number.NewUint(1), scale: 0, tagged: true}},
		{"zero value", feedParams{lastUpdate: 100, samples: 1, scale: 0, tagged: true}},
	}

	for _, c := range cases {
		_, err := FeedPrice(feedAccount(c.p), 100, risk)
		require.Equal(t, core.ErrOracleStale, err, c.name)
	}
}

func TestScaleConversion(t *testing.T) {
	// scale <= 36 multiplies up: 2 at scale 0 -> 2e36
	got, err := scaleToOracle(number.NewUint(2), 0)
	require.Nil(t, err)
	require.True(t, got.Equal(price(2)))

	// scale 36 passes through
	got, err = scaleToOracle(price(2), 36)
	require.Nil(t, err)
	require.True(t, got.Equal(price(2)))

	// scale > 36 divides down, truncating
	v, _ := number.Add(price(2), number.NewUint(9)) // 2e36 + 9
	got, err = scaleToOracle(v, 37)
	require.Nil(t, err)
	expected, _ := number.MulDivDown(price(2), number.NewUint(1), number.NewUint(10))
	require.True(t, got.Equal(expected))

	// huge scale collapses to zero
	got, err = scaleToOracle(number.MaxUint(), 200)
	require.Nil(t, err)
	require.True(t, got.IsZero())

	// scaling a large mantissa up overflows hard
	_, err = scaleToOracle(number.MaxUint(), 0)
	require.Equal(t, core.ErrMathOverflow, err)
}

func TestConvertFeedPrice(t *testing.T) {
	feed, err := ParsePullFeed(feedAccount(feedParams{
		lastUpdate: 0,
		samples:    0,
		mantissa:   number.NewUint(2_000_000_000),
		scale:      6,
		tagged:     true,
	}))
	require.Nil(t, err)

	// no clock checks: stale sample counts are fine here
	got, err := ConvertFeedPrice(feed, testRisk())
	require.Nil(t, err)
	require.True(t, got.Equal(price(2000)))
}

func TestParsePullFeedRejectsShortOrUntagged(t *testing.T) {
	_, err := ParsePullFeed(make([]byte, 16))
	require.Equal(t, core.ErrOracleInvalidReturnData, err)

	// 41 bytes without a tag is neither a tagged feed nor legacy-sized
	_, err = ParsePullFeed(make([]byte, feedHeaderSize))
	require.Equal(t, core.ErrOracleInvalidReturnData, err)
}

func TestCurrentSlot(t *testing.T) {
	genesis := int64(1_700_000_000)

	slot, err := CurrentSlot(genesis, DefaultSlotDuration, time.Unix(genesis+20, 0))
	require.Nil(t, err)
	require.Equal(t, uint64(50), slot)

	_, err = CurrentSlot(genesis, DefaultSlotDuration, time.Unix(genesis, 0))
	require.NotNil(t, err)

	_, err = CurrentSlot(genesis, 0, time.Unix(genesis+20, 0))
	require.NotNil(t, err)
}
