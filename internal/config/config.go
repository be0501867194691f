// Package config loads simulation and service settings from a JSON config
// file, with defaults matching the reference run so the simulator works with
// no config file at all.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/demetrios-koziris/skijump-engine/internal/engine"
)

// Load reads configuration from skijump.cfg.json in configDir and sets
// default values. A missing config file is not an error: the defaults
// reproduce the reference jump.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("skier.bodyMass", 63.0)
	viper.SetDefault("skier.height", 1.8)

	viper.SetDefault("physics.gravity", 9.81)
	viper.SetDefault("physics.airDensity", 1.13)
	viper.SetDefault("physics.frictionCoeff", 0.05)
	viper.SetDefault("physics.timeStep", 0.001)
	viper.SetDefault("physics.startPosition", 6.25)
	viper.SetDefault("physics.jumpHeight", 0.4)

	viper.SetDefault("integration.scheme", "mixed")
	viper.SetDefault("integration.direction", "single_atan")

	viper.SetDefault("export.outputDir", ".")
	viper.SetDefault("export.basename", "SkiJumpResults")

	viper.SetDefault("server.listenAddr", ":8086")

	viper.SetConfigName("skijump.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// SimulationInput builds an engine input from the loaded configuration.
func SimulationInput() engine.SimulationInput {
	return engine.SimulationInput{
		BodyMass:      viper.GetFloat64("skier.bodyMass"),
		Height:        viper.GetFloat64("skier.height"),
		Gravity:       viper.GetFloat64("physics.gravity"),
		AirDensity:    viper.GetFloat64("physics.airDensity"),
		FrictionCoeff: viper.GetFloat64("physics.frictionCoeff"),
		TimeStep:      viper.GetFloat64("physics.timeStep"),
		StartPosition: viper.GetFloat64("physics.startPosition"),
		JumpHeight:    viper.GetFloat64("physics.jumpHeight"),
		Scheme:        viper.GetString("integration.scheme"),
		Direction:     viper.GetString("integration.direction"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
