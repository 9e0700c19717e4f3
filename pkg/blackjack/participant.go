package blackjack

import (
	"chatjack-server/pkg/deck"
)

// Role distinguishes the automated dealer from a human player
type Role int

// role constants
const (
	RoleHuman Role = iota
	RoleDealer
)

// Participant is a seat at the table: either a human player or the dealer.
// The dealer has no bankroll or bet; both are guarded by role checks.
//
// All mutation happens on the session run loop, so no locking is required.
type Participant struct {
	ID   string
	Name string

	role     Role
	hand     deck.Hand
	bankroll int
	bet      int

	// isPlaying is true while the participant may still act this game
	// (not holding, not bust)
	isPlaying bool

	// hasActed is true once the participant has taken their one action
	// this round
	hasActed bool
}

func newPlayer(id, name string, bankroll int) *Participant {
	return &Participant{
		ID:        id,
		Name:      name,
		role:      RoleHuman,
		bankroll:  bankroll,
		isPlaying: true,
	}
}

func newDealer(name string) *Participant {
	return &Participant{
		ID:        "dealer",
		Name:      name,
		role:      RoleDealer,
		isPlaying: true,
	}
}

// Role returns the participant's role
func (p *Participant) Role() Role {
	return p.role
}

// IsDealer returns true for the automated dealer seat
func (p *Participant) IsDealer() bool {
	return p.role == RoleDealer
}

// Hand returns a shallow copy of the participant's hand
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}

// Bankroll returns the participant's bankroll. The dealer does not have one.
func (p *Participant) Bankroll() int {
	return p.bankroll
}

// Bet returns the participant's current bet, or zero if none is placed
func (p *Participant) Bet() int {
	return p.bet
}

// IsPlaying returns true while the participant may still act this game
func (p *Participant) IsPlaying() bool {
	return p.isPlaying
}

// HasActed returns true once the participant acted this round
func (p *Participant) HasActed() bool {
	return p.hasActed
}

// IsBust returns true if the participant's hand is bust
func (p *Participant) IsBust() bool {
	return IsBust(p.hand)
}

// IsBlackjack returns true if the participant's hand totals 21
func (p *Participant) IsBlackjack() bool {
	return IsBlackjack(p.hand)
}

// Deal draws the participant's two starting cards and marks them eligible
func (p *Participant) Deal(d *deck.Deck) error {
	p.hand = nil
	p.isPlaying = true
	p.hasActed = false

	for i := 0; i < 2; i++ {
		if err := p.draw(d); err != nil {
			return err
		}
	}

	return nil
}

func (p *Participant) draw(d *deck.Deck) error {
	card, err := d.Draw()
	if err != nil {
		return err
	}

	p.hand.AddCard(card)
	return nil
}

// Hit draws one card. It fails with ErrIllegalAction unless the participant
// is still playing, has not yet acted this round, and is not bust. A hit that
// busts the hand immediately removes the participant from play.
func (p *Participant) Hit(d *deck.Deck) error {
	if !p.isPlaying || p.hasActed || p.IsBust() {
		return ErrIllegalAction
	}

	if err := p.draw(d); err != nil {
		return err
	}

	p.hasActed = true
	if p.IsBust() {
		p.isPlaying = false
	}

	return nil
}

// Hold keeps the current hand and removes the participant from play for the
// rest of the game. It fails with ErrIllegalAction if the participant already
// acted this round or is no longer playing.
func (p *Participant) Hold() error {
	if !p.isPlaying || p.hasActed {
		return ErrIllegalAction
	}

	p.isPlaying = false
	p.hasActed = true
	return nil
}

// PlaceBet places the participant's bet for the game. A bet, once accepted,
// cannot be changed until the next game.
func (p *Participant) PlaceBet(amount, min, multiple int) error {
	if p.role == RoleDealer || p.bet > 0 {
		return ErrIllegalAction
	}

	if amount < min || amount > p.bankroll || amount%multiple != 0 {
		return BetError{
			Min:      min,
			Multiple: multiple,
			Bankroll: p.bankroll,
			Got:      amount,
		}
	}

	p.bet = amount
	return nil
}

// forceBet places the minimum bet on a betting timeout. The post-game top-up
// guarantees the bankroll covers it.
func (p *Participant) forceBet(min int) {
	p.bet = min
}

// winBet credits the bet, or one-and-a-half times the bet for a natural
// blackjack. Returns the amount credited.
func (p *Participant) winBet(isBlackjack bool) int {
	amount := p.bet
	if isBlackjack {
		amount = p.bet * 3 / 2
	}

	p.bankroll += amount
	return amount
}

// loseBet debits the full bet and returns the amount debited
func (p *Participant) loseBet() int {
	p.bankroll -= p.bet
	return p.bet
}

// beginRound clears the acted flag for a still-playing participant
func (p *Participant) beginRound() {
	if p.isPlaying {
		p.hasActed = false
	}
}

// reset prepares the participant for the next game: the hand and bet are
// cleared, eligibility is restored, and a depleted bankroll is topped up.
// Returns true if the bankroll was topped up.
func (p *Participant) reset(floor, topUp int) bool {
	p.hand = nil
	p.bet = 0
	p.isPlaying = true
	p.hasActed = false

	if p.role == RoleHuman && p.bankroll <= floor {
		p.bankroll = topUp
		return true
	}

	return false
}
