package config

import (
	"morpho/core"

	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file and apply risk parameter defaults
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("MORPHO")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaultRisk(config)
	return nil
}

// defaultRisk fill unset risk parameters with the documented deployment
// defaults. A zero floor or zero incentive basis is never a valid setup.
func defaultRisk(cfg *core.Config) {
	defaults := core.DefaultRiskConfig()

	if cfg.Risk.MinOraclePrice.IsZero() {
		cfg.Risk.MinOraclePrice = defaults.MinOraclePrice
	}
	if cfg.Risk.MaxOracleStaleness == 0 {
		cfg.Risk.MaxOracleStaleness = defaults.MaxOracleStaleness
	}
	if cfg.Risk.MinOracleSamples == 0 {
		cfg.Risk.MinOracleSamples = defaults.MinOracleSamples
	}
	if cfg.Risk.LIFBPS == 0 {
		cfg.Risk.LIFBPS = defaults.LIFBPS
		if cfg.Risk.LIFCursor == 0 {
			cfg.Risk.LIFCursor = defaults.LIFCursor
		}
	}
	if cfg.Risk.MaxLIF == 0 {
		cfg.Risk.MaxLIF = defaults.MaxLIF
	}
}
