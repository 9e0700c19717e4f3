package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	a := assert.New(t)

	t.Setenv("CJK_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	a.NoError(Load())
	c := Instance()
	a.Equal("postgres://postgres@localhost:5432/postgres?sslmode=disable", c.PGDSN)
	a.Equal("./sql", c.MigrationsPath)
	a.Equal("!", c.Game.CommandPrefix)
	a.Equal(10, c.Game.IntermissionSeconds)
	a.Equal(15, c.Game.BettingSeconds)
	a.Equal(30, c.Game.PlayingSeconds)
	a.Equal(50, c.Game.MinBet)
	a.Equal(6, c.Game.MaxPlayers)
	a.Equal(5000, c.Game.StartingBankroll)
	a.Equal(1000, c.Game.BankrollTopUp)
}

func TestLoad_ConfigFile(t *testing.T) {
	a := assert.New(t)

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	contents := `pgDsn: postgres://example/db
log:
  level: debug
game:
  minBet: 25
  betMultiple: 25
  maxPlayers: 4
`
	a.NoError(os.WriteFile(configFile, []byte(contents), 0644))
	t.Setenv("CJK_CONFIG_FILE", configFile)

	a.NoError(Load())
	c := Instance()
	a.Equal("postgres://example/db", c.PGDSN)
	a.Equal("debug", c.Log.Level)
	a.Equal(25, c.Game.MinBet)
	a.Equal(25, c.Game.BetMultiple)
	a.Equal(4, c.Game.MaxPlayers)

	// untouched keys keep their defaults
	a.Equal("!", c.Game.CommandPrefix)
	a.Equal(5000, c.Game.StartingBankroll)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	a := assert.New(t)

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	a.NoError(os.WriteFile(configFile, []byte("game:\n  minBet: 25\n"), 0644))
	t.Setenv("CJK_CONFIG_FILE", configFile)
	t.Setenv("CJK_GAME_MIN_BET", "75")
	t.Setenv("CJK_PG_DSN", "postgres://env/db")

	a.NoError(Load())
	c := Instance()
	a.Equal(75, c.Game.MinBet)
	a.Equal("postgres://env/db", c.PGDSN)
}

func TestLoad_BadConfigFile(t *testing.T) {
	a := assert.New(t)

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	a.NoError(os.WriteFile(configFile, []byte("game: [not a map]\n"), 0644))
	t.Setenv("CJK_CONFIG_FILE", configFile)

	a.Error(Load())
}
