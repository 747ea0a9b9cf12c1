package number

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulDivRounding(t *testing.T) {
	// 10 * 10 / 3 = 33.33..
	down, err := MulDivDown(NewUint(10), NewUint(10), NewUint(3))
	require.Nil(t, err)
	require.Equal(t, "33", down.String())

	up, err := MulDivUp(NewUint(10), NewUint(10), NewUint(3))
	require.Nil(t, err)
	require.Equal(t, "34", up.String())

	// exact division rounds the same both ways
	down, err = MulDivDown(NewUint(10), NewUint(9), NewUint(3))
	require.Nil(t, err)
	up, err2 := MulDivUp(NewUint(10), NewUint(9), NewUint(3))
	require.Nil(t, err2)
	require.True(t, down.Equal(up))
}

func TestMulDivUpNeverZeroOnDust(t *testing.T) {
	// ceil(1 * 1 / 1e36) = 1
	scale := Pow10(36)
	up, err := MulDivUp(NewUint(1), NewUint(1), scale)
	require.Nil(t, err)
	require.Equal(t, "1", up.String())

	down, err := MulDivDown(NewUint(1), NewUint(1), scale)
	require.Nil(t, err)
	require.True(t, down.IsZero())
}

func TestMulDivOverflow(t *testing.T) {
	max := MaxUint()

	_, err := MulDivDown(max, max, NewUint(1))
	require.Equal(t, ErrOverflow, err)

	_, err = MulDivDown(max, NewUint(2), NewUint(1))
	require.Equal(t, ErrOverflow, err)

	// max * max / max = max is still representable
	v, err := MulDivDown(max, max, max)
	require.Nil(t, err)
	require.True(t, v.Equal(max))

	_, err = MulDivDown(NewUint(1), NewUint(1), Uint{})
	require.Equal(t, ErrDivisionByZero, err)
}

func TestShareConversion(t *testing.T) {
	// 1700 shares on a 1000/1000 book convert to exactly 1700 assets
	assets, err := ToAssetsUp(NewUint(1700), NewUint(1000), NewUint(1000))
	require.Nil(t, err)
	require.Equal(t, "1700", assets.String())

	// empty pool converts 1:1
	assets, err = ToAssetsUp(NewUint(42), Uint{}, Uint{})
	require.Nil(t, err)
	require.Equal(t, "42", assets.String())

	// 1 share of a 3-asset 2-share pool: up=2, down=1
	up, err := ToAssetsUp(NewUint(1), NewUint(3), NewUint(2))
	require.Nil(t, err)
	require.Equal(t, "2", up.String())

	down, err := ToAssetsDown(NewUint(1), NewUint(3), NewUint(2))
	require.Nil(t, err)
	require.Equal(t, "1", down.String())

	shares, err := ToSharesDown(NewUint(2), NewUint(3), NewUint(2))
	require.Nil(t, err)
	require.Equal(t, "1", shares.String())
}

func TestSaturatingSub(t *testing.T) {
	require.Equal(t, "2", NewUint(5).SaturatingSub(NewUint(3)).String())
	require.True(t, NewUint(3).SaturatingSub(NewUint(5)).IsZero())
	require.True(t, NewUint(3).SaturatingSub(NewUint(3)).IsZero())
}

func TestAddChecked(t *testing.T) {
	s, err := Add(NewUint(1), NewUint(2))
	require.Nil(t, err)
	require.Equal(t, "3", s.String())

	_, err = Add(MaxUint(), NewUint(1))
	require.Equal(t, ErrOverflow, err)
}

func TestStringRoundTrip(t *testing.T) {
	// 2^256 - 1
	u := MustUint("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.True(t, u.Equal(MaxUint()))

	_, err := UintFromString("115792089237316195423570985008687907853269984665640564039457584007913129639936")
	require.NotNil(t, err)
}

func TestLittleEndianDecode(t *testing.T) {
	b := make([]byte, 16)
	b[0] = 0x01
	b[8] = 0x01 // lo=1, hi=1 => 2^64 + 1

	u, err := UintFromLittleEndian(b)
	require.Nil(t, err)
	require.Equal(t, "18446744073709551617", u.String())

	_, err = UintFromLittleEndian(b[:15])
	require.NotNil(t, err)
}
