package config

import (
	"testing"

	"morpho/core"
	"morpho/pkg/number"

	"github.com/stretchr/testify/require"
)

func TestDefaultRisk(t *testing.T) {
	var cfg core.Config
	defaultRisk(&cfg)

	require.Equal(t, core.DefaultRiskConfig(), cfg.Risk)
}

func TestDefaultRiskKeepsExplicitValues(t *testing.T) {
	cfg := core.Config{
		Risk: core.RiskConfig{
			MinOraclePrice: number.Pow10(12),
			LIFBPS:         20000,
			LIFCursor:      5000,
			MaxLIF:         21000,
		},
	}
	defaultRisk(&cfg)

	require.Equal(t, number.Pow10(12), cfg.Risk.MinOraclePrice)
	require.EqualValues(t, 50, cfg.Risk.MaxOracleStaleness)
	require.EqualValues(t, 1, cfg.Risk.MinOracleSamples)
	require.EqualValues(t, 20000, cfg.Risk.LIFBPS)
	require.EqualValues(t, 5000, cfg.Risk.LIFCursor)
	require.EqualValues(t, 21000, cfg.Risk.MaxLIF)
}
