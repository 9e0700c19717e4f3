package config

import (
	"os"

	"chatjack-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the chatjack server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Game struct {
		CommandPrefix       string `yaml:"commandPrefix" envconfig:"command_prefix"`
		IntermissionSeconds int    `yaml:"intermissionSeconds" envconfig:"intermission_seconds"`
		BettingSeconds      int    `yaml:"bettingSeconds" envconfig:"betting_seconds"`
		PlayingSeconds      int    `yaml:"playingSeconds" envconfig:"playing_seconds"`
		MinBet              int    `yaml:"minBet" envconfig:"min_bet"`
		BetMultiple         int    `yaml:"betMultiple" envconfig:"bet_multiple"`
		MaxPlayers          int    `yaml:"maxPlayers" envconfig:"max_players"`
		StartingBankroll    int    `yaml:"startingBankroll" envconfig:"starting_bankroll"`
		BankrollFloor       int    `yaml:"bankrollFloor" envconfig:"bankroll_floor"`
		BankrollTopUp       int    `yaml:"bankrollTopUp" envconfig:"bankroll_top_up"`
	}
}

var config Config

// DefaultConfig returns the configuration defaults, suitable for generating
// a starter config file
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.JWT.PublicKey = "public.pem"
	c.JWT.PrivateKey = "private.key"
	c.Game.CommandPrefix = "!"
	c.Game.IntermissionSeconds = 10
	c.Game.BettingSeconds = 15
	c.Game.PlayingSeconds = 30
	c.Game.MinBet = 50
	c.Game.BetMultiple = 50
	c.Game.MaxPlayers = 6
	c.Game.StartingBankroll = 5000
	c.Game.BankrollFloor = 0
	c.Game.BankrollTopUp = 1000
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
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("CJK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cjk", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
