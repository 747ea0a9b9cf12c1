package number

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

var (
	// ErrOverflow value does not fit in 256 bits
	ErrOverflow = errors.New("number: uint256 overflow")
	// ErrDivisionByZero division by zero
	ErrDivisionByZero = errors.New("number: division by zero")
)

// Uint is an unsigned wide integer for pool accounting and oracle prices.
// Multiply-then-divide goes through a 512-bit intermediate, so a*b/d only
// fails when the quotient itself is out of range.
type Uint struct {
	v uint256.Int
}

// NewUint uint from a machine word
func NewUint(v uint64) Uint {
	var u Uint
	u.v.SetUint64(v)
	return u
}

// UintFromString parse a decimal string
func UintFromString(s string) (Uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Uint{}, nil
	}

	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint{}, err
	}

	return Uint{v: *v}, nil
}

// MustUint parse a decimal string, panic on malformed input
func MustUint(s string) Uint {
	u, err := UintFromString(s)
	if err != nil {
		panic(err)
	}
	return u
}

// UintFromLittleEndian decode a 16-byte little-endian u128
func UintFromLittleEndian(b []byte) (Uint, error) {
	if len(b) != 16 {
		return Uint{}, fmt.Errorf("number: want 16 bytes, got %d", len(b))
	}

	var u Uint
	u.v[0] = binary.LittleEndian.Uint64(b[0:8])
	u.v[1] = binary.LittleEndian.Uint64(b[8:16])
	return u, nil
}

// MaxUint largest representable value
func MaxUint() Uint {
	var u Uint
	u.v.SetAllOne()
	return u
}

// Pow10 10^n; panics out of range
func Pow10(n uint64) Uint {
	if n > 77 {
		panic("number: pow10 overflow")
	}

	var v uint256.Int
	v.Exp(uint256.NewInt(10), uint256.NewInt(n))
	return Uint{v: v}
}

func (u Uint) IsZero() bool {
	return u.v.IsZero()
}

// Cmp -1, 0 or 1
func (u Uint) Cmp(o Uint) int {
	return u.v.Cmp(&o.v)
}

func (u Uint) GreaterThan(o Uint) bool {
	return u.Cmp(o) > 0
}

func (u Uint) LessThan(o Uint) bool {
	return u.Cmp(o) < 0
}

func (u Uint) Equal(o Uint) bool {
	return u.Cmp(o) == 0
}

// Add checked addition
func Add(a, b Uint) (Uint, error) {
	var s uint256.Int
	if _, overflow := s.AddOverflow(&a.v, &b.v); overflow {
		return Uint{}, ErrOverflow
	}
	return Uint{v: s}, nil
}

// SaturatingSub u - o, clamped at zero
func (u Uint) SaturatingSub(o Uint) Uint {
	if u.Cmp(o) <= 0 {
		return Uint{}
	}

	var d uint256.Int
	d.Sub(&u.v, &o.v)
	return Uint{v: d}
}

// Min smaller of the two
func Min(a, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// MulDivDown floor(a * b / d)
func MulDivDown(a, b, d Uint) (Uint, error) {
	if d.IsZero() {
		return Uint{}, ErrDivisionByZero
	}

	p := new(big.Int).Mul(a.Big(), b.Big())
	p.Quo(p, d.Big())

	q, overflow := uint256.FromBig(p)
	if overflow {
		return Uint{}, ErrOverflow
	}

	return Uint{v: *q}, nil
}

// MulDivUp ceil(a * b / d)
func MulDivUp(a, b, d Uint) (Uint, error) {
	if d.IsZero() {
		return Uint{}, ErrDivisionByZero
	}

	p := new(big.Int).Mul(a.Big(), b.Big())
	quo, rem := new(big.Int).QuoRem(p, d.Big(), new(big.Int))
	if rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}

	q, overflow := uint256.FromBig(quo)
	if overflow {
		return Uint{}, ErrOverflow
	}

	return Uint{v: *q}, nil
}

// ToAssetsUp convert shares to assets at the pool rate, rounding up.
// An empty pool converts 1:1.
func ToAssetsUp(shares, totalAssets, totalShares Uint) (Uint, error) {
	if totalShares.IsZero() {
		return shares, nil
	}
	return MulDivUp(shares, totalAssets, totalShares)
}

// ToAssetsDown convert shares to assets at the pool rate, rounding down
func ToAssetsDown(shares, totalAssets, totalShares Uint) (Uint, error) {
	if totalShares.IsZero() {
		return shares, nil
	}
	return MulDivDown(shares, totalAssets, totalShares)
}

// ToSharesUp convert assets to shares at the pool rate, rounding up
func ToSharesUp(assets, totalAssets, totalShares Uint) (Uint, error) {
	if totalAssets.IsZero() {
		return assets, nil
	}
	return MulDivUp(assets, totalShares, totalAssets)
}

// ToSharesDown convert assets to shares at the pool rate, rounding down
func ToSharesDown(assets, totalAssets, totalShares Uint) (Uint, error) {
	if totalAssets.IsZero() {
		return assets, nil
	}
	return MulDivDown(assets, totalShares, totalAssets)
}

func (u Uint) String() string {
	return u.v.Dec()
}

// Uint64 low word; callers must know the value fits
func (u Uint) Uint64() uint64 {
	return u.v.Uint64()
}

// Big copy as a math/big integer
func (u Uint) Big() *big.Int {
	return u.v.ToBig()
}

// MarshalJSON encode as a decimal string
func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accept a quoted or bare decimal
func (u *Uint) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*u = Uint{}
		return nil
	}

	v, err := UintFromString(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Value implement driver.Valuer, stored as a decimal string
func (u Uint) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implement sql.Scanner
func (u *Uint) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*u = Uint{}
		return nil
	case string:
		parsed, err := UintFromString(v)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	case []byte:
		parsed, err := UintFromString(string(v))
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("number: negative value %d", v)
		}
		*u = NewUint(uint64(v))
		return nil
	default:
		return fmt.Errorf("number: cannot scan %T", value)
	}
}
