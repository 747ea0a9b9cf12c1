package core

import (
	"morpho/pkg/number"

	"github.com/fox-one/pkg/store/db"
)

// Config morpho config
type Config struct {
	App         App         `json:"app"`
	DB          db.Config   `json:"db"`
	PriceOracle PriceOracle `json:"price_oracle"`
	Risk        RiskConfig  `json:"risk"`
}

// App app config
type App struct {
	// Genesis unix seconds of slot zero
	Genesis int64 `json:"genesis"`
	// SlotDurationMS milliseconds per slot, 400 if unset
	SlotDurationMS int64 `json:"slot_duration_ms"`
	// Liquidator keeper identity recorded on liquidations fired by the worker
	Liquidator string `json:"liquidator"`
	Location   string `json:"location"`
}

// PriceOracle oracle feed provider config
type PriceOracle struct {
	EndPoint string `json:"end_point"`
}

// RiskConfig deployment risk parameters. These are governance inputs,
// never derived at runtime.
type RiskConfig struct {
	// MinOraclePrice price floor at the 1e36 oracle scale
	MinOraclePrice number.Uint `json:"min_oracle_price"`
	// MaxOracleStaleness max slots since the feed's last update
	MaxOracleStaleness uint64 `json:"max_oracle_staleness"`
	// MinOracleSamples min independent feed samples
	MinOracleSamples uint32 `json:"min_oracle_samples"`
	// LIFCursor incentive cursor in LIFBPS units
	LIFCursor uint64 `json:"lif_cursor"`
	// LIFBPS basis of the liquidation incentive factor
	LIFBPS uint64 `json:"lif_bps"`
	// MaxLIF incentive ceiling in LIFBPS units
	MaxLIF uint64 `json:"max_lif"`
}

// DefaultRiskConfig common deployment parameters: 1.15x incentive ceiling,
// 0.3 cursor, 20s staleness window at 400ms slots.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		MinOraclePrice:     number.Pow10(18),
		MaxOracleStaleness: 50,
		MinOracleSamples:   1,
		LIFCursor:          3000,
		LIFBPS:             10000,
		MaxLIF:             11500,
	}
}
