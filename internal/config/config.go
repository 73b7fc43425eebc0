package config

import (
	"os"

	"flipn-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Flip N server
type Config struct {
	loaded bool

	// Bind is the listen address
	Bind string `yaml:"bind" envconfig:"bind"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	Game struct {
		// TargetScore ends the game once a player banks this many points
		TargetScore int `yaml:"targetScore" envconfig:"target_score"`

		// MaxRounds caps the game length
		MaxRounds int `yaml:"maxRounds" envconfig:"max_rounds"`

		MaxPlayers int `yaml:"maxPlayers" envconfig:"max_players"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration with the stock values filled in
func DefaultConfig() Config {
	var c Config
	c.Bind = ":5000"
	c.Game.TargetScore = 200
	c.Game.MaxRounds = 5
	c.Game.MaxPlayers = 8
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and environment variables still apply
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("FLIPN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("flipn", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
