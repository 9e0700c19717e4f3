package mux

import (
	"net/http"
	"time"

	"chatjack-server/internal/config"
	"chatjack-server/pkg/bank"
	"chatjack-server/pkg/blackjack"
	"chatjack-server/pkg/db"
	"chatjack-server/pkg/room"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux. Bankroll saves go through a write-behind
// recorder so a slow database does not stall a live table.
func NewMux(version string) *Mux {
	store := bank.NewRecorder(bank.NewPostgres(db.Instance()), logrus.StandardLogger())
	return newMux(version, store)
}

// newMux lets tests supply their own bankroll store
func newMux(version string, store bank.Store) *Mux {
	pitBoss := room.NewPitBoss(store, gameOptions())
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodPost).Path("/guest").Handler(this.postGuest())
	this.Methods(http.MethodGet).Path("/channels/{channel:[a-z0-9-]+}/ws").Handler(this.getChannelWS())

	return this
}

func gameOptions() blackjack.Options {
	cfg := config.Instance().Game

	opts := blackjack.DefaultOptions()
	if cfg.CommandPrefix != "" {
		opts.CommandPrefix = cfg.CommandPrefix
	}
	if cfg.IntermissionSeconds > 0 {
		opts.Intermission = time.Duration(cfg.IntermissionSeconds) * time.Second
	}
	if cfg.BettingSeconds > 0 {
		opts.Betting = time.Duration(cfg.BettingSeconds) * time.Second
	}
	if cfg.PlayingSeconds > 0 {
		opts.Playing = time.Duration(cfg.PlayingSeconds) * time.Second
	}
	if cfg.MinBet > 0 {
		opts.MinBet = cfg.MinBet
	}
	if cfg.BetMultiple > 0 {
		opts.BetMultiple = cfg.BetMultiple
	}
	if cfg.MaxPlayers > 0 {
		opts.MaxPlayers = cfg.MaxPlayers
	}
	if cfg.StartingBankroll > 0 {
		opts.StartingBankroll = cfg.StartingBankroll
	}
	if cfg.BankrollFloor >= 0 {
		opts.BankrollFloor = cfg.BankrollFloor
	}
	if cfg.BankrollTopUp > 0 {
		opts.BankrollTopUp = cfg.BankrollTopUp
	}

	return opts
}
