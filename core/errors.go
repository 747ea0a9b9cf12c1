package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100001

	// ErrMarketNotFound no market
	ErrMarketNotFound ErrorCode = 100100
	// ErrPositionNotFound no position
	ErrPositionNotFound ErrorCode = 100101
	// ErrNotLiquidatable position is healthy
	ErrNotLiquidatable ErrorCode = 100102

	// ErrInvalidOracle oracle account does not match the market
	ErrInvalidOracle ErrorCode = 100200
	// ErrOracleInvalidReturnData malformed oracle account data
	ErrOracleInvalidReturnData ErrorCode = 100201
	// ErrOracleStale oracle freshness or sample-count violation
	ErrOracleStale ErrorCode = 100202
	// ErrOraclePriceTooLow price below the configured floor
	ErrOraclePriceTooLow ErrorCode = 100203
	// ErrOraclePriceTooHigh price above the max ratio ceiling
	ErrOraclePriceTooHigh ErrorCode = 100204

	// ErrMathOverflow arithmetic exceeded the representable range
	ErrMathOverflow ErrorCode = 100300
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
