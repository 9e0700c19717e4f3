// Package blackjack implements a chat-driven multiplayer blackjack session.
// A session is a single table bound to one chat channel: humans join during
// an intermission, place bets, then play timed hit/hold rounds against an
// automated dealer until nobody can act, at which point bankrolls settle and
// the table reopens.
package blackjack

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chatjack-server/pkg/bank"
	"chatjack-server/pkg/chat"
	"chatjack-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Phase represents the current phase of the session
type Phase int

const (
	// PhaseIntermission is when players may join or quit the table
	PhaseIntermission Phase = iota
	// PhaseBetting is when players place their bets
	PhaseBetting
	// PhaseDealing is when the deck is built and hands are dealt
	PhaseDealing
	// PhaseRound is a timed hit/hold decision pass
	PhaseRound
	// PhaseSettlement is when the dealer plays out and bankrolls settle
	PhaseSettlement
	// PhaseReset clears per-game state before the next intermission
	PhaseReset
	// PhaseOver is when the session has ended
	PhaseOver
)

// Session is a single blackjack table bound to one chat channel.
//
// The session advances strictly sequentially on the goroutine that calls
// Run. All participant and game mutation happens there, so no locking is
// needed; concurrency comes only from the inbound event stream.
type Session struct {
	opts      Options
	logger    logrus.FieldLogger
	transport chat.Transport
	channelID string
	bank      bank.Store

	dealer     *Participant
	players    []*Participant
	idToPlayer map[string]*Participant

	phase       Phase
	deck        *deck.Deck
	gamesPlayed int
}

// NewSession returns a new session for the given channel. The session does
// nothing until Run is called.
func NewSession(logger logrus.FieldLogger, transport chat.Transport, channelID string, store bank.Store, opts Options) *Session {
	defaults := DefaultOptions()
	if opts.CommandPrefix == "" {
		opts.CommandPrefix = defaults.CommandPrefix
	}
	if opts.Intermission <= 0 {
		opts.Intermission = defaults.Intermission
	}
	if opts.Betting <= 0 {
		opts.Betting = defaults.Betting
	}
	if opts.Playing <= 0 {
		opts.Playing = defaults.Playing
	}
	if opts.MinBet <= 0 {
		opts.MinBet = defaults.MinBet
	}
	if opts.BetMultiple <= 0 {
		opts.BetMultiple = defaults.BetMultiple
	}
	if opts.MaxPlayers <= 0 {
		opts.MaxPlayers = defaults.MaxPlayers
	}
	if opts.StartingBankroll <= 0 {
		opts.StartingBankroll = defaults.StartingBankroll
	}
	if opts.BankrollTopUp < opts.MinBet {
		opts.BankrollTopUp = defaults.BankrollTopUp
	}

	return &Session{
		opts:       opts,
		logger:     logger,
		transport:  transport,
		channelID:  channelID,
		bank:       store,
		dealer:     newDealer("Dealer"),
		idToPlayer: make(map[string]*Participant),
		phase:      PhaseIntermission,
	}
}

// Phase returns the session's current phase
func (s *Session) Phase() Phase {
	return s.phase
}

// Players returns the human participants in join order
func (s *Session) Players() []*Participant {
	return append([]*Participant{}, s.players...)
}

// Run drives the session until no players remain after an intermission. It
// returns nil on a normal end. A transport or persistence failure aborts the
// session and is returned to the caller; in-memory state is left intact.
func (s *Session) Run(ctx context.Context) error {
	s.logger.WithField("channel", s.channelID).Info("blackjack session starting")
	s.sayf("Blackjack game commencing. Type %sjoin to join the table!", s.opts.CommandPrefix)

	for {
		if err := s.runIntermission(ctx); err != nil {
			return s.abort(err)
		}

		if len(s.players) == 0 {
			s.say("Nobody is at the table. Closing up.")
			s.phase = PhaseOver
			s.logger.WithField("channel", s.channelID).WithField("games", s.gamesPlayed).Info("blackjack session over")
			return nil
		}

		if err := s.runGame(ctx); err != nil {
			return s.abort(err)
		}
	}
}

func (s *Session) abort(err error) error {
	s.phase = PhaseOver
	s.logger.WithError(err).WithField("channel", s.channelID).Error("blackjack session aborted")
	return err
}

func (s *Session) runGame(ctx context.Context) error {
	s.printTable()

	if err := s.runBetting(ctx); err != nil {
		return err
	}

	if err := s.dealCards(); err != nil {
		return err
	}

	for s.stillPlayingGame() {
		if err := s.runRound(ctx); err != nil {
			return err
		}
	}

	if err := s.settle(ctx); err != nil {
		return err
	}

	if err := s.resetTable(ctx); err != nil {
		return err
	}

	s.gamesPlayed++
	return nil
}

// runIntermission keeps the table open for join and quit commands until the
// intermission deadline passes.
func (s *Session) runIntermission(ctx context.Context) error {
	s.phase = PhaseIntermission
	prefix := s.opts.CommandPrefix
	s.sayf("The table is open for %d seconds. %sjoin to take a seat, %squit to leave.", seconds(s.opts.Intermission), prefix, prefix)

	deadline := time.Now().Add(s.opts.Intermission)
	for {
		ev, ok, err := chat.WaitFor(ctx, s.transport.Events(), deadline, func(ev chat.Event) bool {
			_, ok := s.parseEvent(ev, cmdJoin, cmdQuit)
			return ok
		})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		cmd, _ := s.parseEvent(ev, cmdJoin, cmdQuit)
		switch cmd.kind {
		case cmdJoin:
			if err := s.handleJoin(ctx, ev); err != nil {
				return err
			}
		case cmdQuit:
			if err := s.handleQuit(ctx, ev); err != nil {
				return err
			}
		}
	}
}

func (s *Session) handleJoin(ctx context.Context, ev chat.Event) error {
	if _, found := s.idToPlayer[ev.ActorID]; found {
		// joining twice is a no-op
		return nil
	}

	if len(s.players) >= s.opts.MaxPlayers {
		s.sayf("%s, %s", ev.DisplayName, ErrTableFull)
		return nil
	}

	bankroll, found, err := s.bank.Bankroll(ctx, ev.ActorID)
	if err != nil {
		return err
	}
	if !found {
		bankroll = s.opts.StartingBankroll
	}

	player := newPlayer(ev.ActorID, ev.DisplayName, bankroll)
	s.players = append(s.players, player)
	s.idToPlayer[player.ID] = player

	s.logger.WithFields(logrus.Fields{
		"channel": s.channelID,
		"player":  player.ID,
	}).Info("player joined")
	s.sayf("%s joined with a bankroll of $%d!", player.Name, player.bankroll)
	return nil
}

func (s *Session) handleQuit(ctx context.Context, ev chat.Event) error {
	player, found := s.idToPlayer[ev.ActorID]
	if !found {
		return nil
	}

	if err := s.bank.SaveBankroll(ctx, player.ID, player.bankroll); err != nil {
		return err
	}

	delete(s.idToPlayer, player.ID)
	for i, p := range s.players {
		if p == player {
			s.players = append(s.players[:i], s.players[i+1:]...)
			break
		}
	}

	s.logger.WithFields(logrus.Fields{
		"channel": s.channelID,
		"player":  player.ID,
	}).Info("player quit")
	s.sayf("%s left the table with $%d.", player.Name, player.bankroll)
	return nil
}

// runBetting collects one bet per player until everyone has one or the
// betting deadline passes. Players still without a bet at the deadline are
// forced onto the minimum bet.
func (s *Session) runBetting(ctx context.Context) error {
	s.phase = PhaseBetting
	s.sayf("Place your bets with %sbet <amount>. You have %d seconds.", s.opts.CommandPrefix, seconds(s.opts.Betting))

	deadline := time.Now().Add(s.opts.Betting)
	for s.awaitingBets() {
		ev, ok, err := chat.WaitFor(ctx, s.transport.Events(), deadline, func(ev chat.Event) bool {
			if _, found := s.idToPlayer[ev.ActorID]; !found {
				return false
			}

			_, ok := s.parseEvent(ev, cmdBet)
			return ok
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		cmd, _ := s.parseEvent(ev, cmdBet)
		player := s.idToPlayer[ev.ActorID]
		if cmd.amount < 0 {
			s.sayf("%s, your bet must be a whole number, like %sbet %d.", player.Name, s.opts.CommandPrefix, s.opts.MinBet)
			continue
		}

		if err := player.PlaceBet(cmd.amount, s.opts.MinBet, s.opts.BetMultiple); err != nil {
			s.sayf("%s, %s.", player.Name, err)
			continue
		}

		s.sayf("%s bet $%d.", player.Name, player.bet)
	}

	for _, p := range s.players {
		if p.bet == 0 {
			p.forceBet(s.opts.MinBet)
			s.sayf("%s did not bet in time and was given the minimum bet of $%d.", p.Name, p.bet)
		}
	}

	return nil
}

func (s *Session) awaitingBets() bool {
	for _, p := range s.players {
		if p.bet == 0 {
			return true
		}
	}

	return false
}

// dealCards builds a fresh shuffled deck and deals two cards to everyone,
// dealer included. A 52-card deck covers the largest allowed table, so a
// failed draw here is a programming error and ends the session.
func (s *Session) dealCards() error {
	s.phase = PhaseDealing
	s.deck = deck.New()
	s.deck.Shuffle(0)

	if err := s.dealer.Deal(s.deck); err != nil {
		return err
	}

	for _, p := range s.players {
		if err := p.Deal(s.deck); err != nil {
			return err
		}
	}

	s.say("The cards are dealt!")
	s.printTable()
	return nil
}

// runRound gives every still-playing participant one hit-or-hold decision
// before the round deadline. Anyone who doesn't decide is forced to hold,
// and the dealer takes its policy action last.
func (s *Session) runRound(ctx context.Context) error {
	s.phase = PhaseRound
	s.dealer.beginRound()
	for _, p := range s.players {
		p.beginRound()
	}

	prefix := s.opts.CommandPrefix
	s.sayf("Enter %shit or %shold. You have %d seconds.", prefix, prefix, seconds(s.opts.Playing))

	deadline := time.Now().Add(s.opts.Playing)
	for s.stillDeciding() {
		ev, ok, err := chat.WaitFor(ctx, s.transport.Events(), deadline, func(ev chat.Event) bool {
			if _, found := s.idToPlayer[ev.ActorID]; !found {
				return false
			}

			_, ok := s.parseEvent(ev, cmdHit, cmdHold)
			return ok
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		cmd, _ := s.parseEvent(ev, cmdHit, cmdHold)
		player := s.idToPlayer[ev.ActorID]

		switch cmd.kind {
		case cmdHit:
			if err := player.Hit(s.deck); err != nil {
				if errors.Is(err, ErrIllegalAction) {
					s.sayf("%s can not hit!", player.Name)
					continue
				}

				return err
			}

			s.sayf("%s hit! (%s)", player.Name, player.hand.Display())
			if player.IsBust() {
				s.sayf("%s busted!", player.Name)
			}
		case cmdHold:
			if err := player.Hold(); err != nil {
				s.sayf("%s cannot hold! They may have already played or are not playing this round.", player.Name)
				continue
			}

			s.sayf("%s held their hand!", player.Name)
		}
	}

	for _, p := range s.players {
		if p.isPlaying && !p.hasActed {
			_ = p.Hold()
			s.sayf("Forced %s to hold because they took too long to decide.", p.Name)
		}
	}

	if err := s.playDealerRound(); err != nil {
		return err
	}

	s.printTable()
	return nil
}

// stillPlayingGame returns true while any human may still act this game
func (s *Session) stillPlayingGame() bool {
	for _, p := range s.players {
		if p.isPlaying {
			return true
		}
	}

	return false
}

// stillDeciding returns true while a human who may act has not acted this round
func (s *Session) stillDeciding() bool {
	for _, p := range s.players {
		if p.isPlaying && !p.hasActed {
			return true
		}
	}

	return false
}

// resetTable clears per-game state and tops up depleted bankrolls so every
// remaining player can cover the minimum bet next game.
func (s *Session) resetTable(ctx context.Context) error {
	s.phase = PhaseReset
	s.dealer.reset(s.opts.BankrollFloor, s.opts.BankrollTopUp)

	for _, p := range s.players {
		if p.reset(s.opts.BankrollFloor, s.opts.BankrollTopUp) {
			s.sayf("%s is out of money and was staked $%d by the house.", p.Name, p.bankroll)
			if err := s.bank.SaveBankroll(ctx, p.ID, p.bankroll); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEvent parses ev as a command of one of the given kinds for this
// session's channel.
func (s *Session) parseEvent(ev chat.Event, kinds ...commandKind) (command, bool) {
	if ev.ChannelID != s.channelID {
		return command{}, false
	}

	cmd, ok := parseCommand(s.opts.CommandPrefix, ev.Text)
	if !ok {
		return command{}, false
	}

	for _, kind := range kinds {
		if cmd.kind == kind {
			return cmd, true
		}
	}

	return command{}, false
}

func (s *Session) say(text string) {
	if err := s.transport.Send(s.channelID, text); err != nil {
		s.logger.WithError(err).WithField("channel", s.channelID).Warn("could not send message")
	}
}

func (s *Session) sayf(format string, a ...interface{}) {
	s.say(fmt.Sprintf(format, a...))
}

// printTable sends the aligned name / bankroll / bet / hand listing, dealer
// first.
func (s *Session) printTable() {
	nameLen := len(s.dealer.Name)
	for _, p := range s.players {
		if len(p.Name) > nameLen {
			nameLen = len(p.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s | %9s | %5s | Hand\n", nameLen, "Name", "Bankroll", "Bet")
	fmt.Fprintf(&b, "%-*s | %9s | %5s | %s\n", nameLen, s.dealer.Name, "unlimited", "-", s.dealer.hand.Display())
	for _, p := range s.players {
		hand := p.hand.Display()
		if p.IsBust() && len(p.hand) > 0 {
			hand += " (bust)"
		}

		fmt.Fprintf(&b, "%-*s | %9s | %5s | %s\n", nameLen, p.Name, fmt.Sprintf("$%d", p.bankroll), fmt.Sprintf("$%d", p.bet), hand)
	}

	s.say(strings.TrimRight(b.String(), "\n"))
}

func seconds(d time.Duration) int {
	return int(d / time.Second)
}
