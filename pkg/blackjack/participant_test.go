package blackjack

import (
	"testing"

	"chatjack-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()

	d := deck.New()
	d.Shuffle(1)
	return d
}

func TestParticipant_Deal(t *testing.T) {
	a := assert.New(t)
	d := testDeck(t)

	p := newPlayer("a", "Alice", 5000)
	a.Equal(RoleHuman, p.Role())
	a.False(p.IsDealer())

	a.NoError(p.Deal(d))
	a.Len(p.Hand(), 2)
	a.True(p.IsPlaying())
	a.False(p.HasActed())
	a.Equal(50, d.CardsLeft())
}

func TestParticipant_Hit(t *testing.T) {
	a := assert.New(t)

	d := deck.New()
	d.Cards = deck.CardsFromString("10h,6s,2c,3d")

	p := newPlayer("a", "Alice", 5000)
	a.NoError(p.Deal(d))

	a.NoError(p.Hit(d))
	a.Len(p.Hand(), 3)
	a.True(p.HasActed())

	// only one action per round
	a.Equal(ErrIllegalAction, p.Hit(d))
	a.Equal(ErrIllegalAction, p.Hold())
	a.Len(p.Hand(), 3)

	p.beginRound()
	a.False(p.HasActed())
}

func TestParticipant_Hit_AfterBust(t *testing.T) {
	a := assert.New(t)
	d := testDeck(t)

	p := newPlayer("a", "Alice", 5000)
	p.hand = deck.CardsFromString("10h,9s,5c")
	p.isPlaying = false // busting removes eligibility

	a.Equal(ErrIllegalAction, p.Hit(d))
	a.Equal(ErrIllegalAction, p.Hold())
}

func TestParticipant_Hold_Idempotence(t *testing.T) {
	a := assert.New(t)
	d := testDeck(t)

	p := newPlayer("a", "Alice", 5000)
	a.NoError(p.Deal(d))

	a.NoError(p.Hold())
	a.False(p.IsPlaying())
	a.True(p.HasActed())

	// the second hold fails, even after a new round starts
	a.Equal(ErrIllegalAction, p.Hold())
	p.beginRound()
	a.Equal(ErrIllegalAction, p.Hold())
	a.Equal(ErrIllegalAction, p.Hit(d))
}

func TestParticipant_PlaceBet(t *testing.T) {
	a := assert.New(t)

	p := newPlayer("a", "Alice", 500)

	// below minimum
	err := p.PlaceBet(25, 50, 50)
	a.EqualError(err, "bet must be a multiple of 50 between 50 and your bankroll of 500; got 25")

	// not a multiple
	a.Error(p.PlaceBet(125, 50, 50))

	// above bankroll
	a.Error(p.PlaceBet(550, 50, 50))
	a.Equal(0, p.Bet())

	a.NoError(p.PlaceBet(500, 50, 50))
	a.Equal(500, p.Bet())

	// a bet, once accepted, is immutable for the game
	a.Equal(ErrIllegalAction, p.PlaceBet(100, 50, 50))
	a.Equal(500, p.Bet())
}

func TestParticipant_PlaceBet_Dealer(t *testing.T) {
	d := newDealer("Dealer")
	assert.Equal(t, ErrIllegalAction, d.PlaceBet(100, 50, 50))
}

func TestParticipant_Settlement(t *testing.T) {
	a := assert.New(t)

	p := newPlayer("a", "Alice", 500)
	a.NoError(p.PlaceBet(500, 50, 50))

	// a full-bankroll loss lands on exactly zero
	a.Equal(500, p.loseBet())
	a.Equal(0, p.Bankroll())

	p = newPlayer("b", "Bob", 5000)
	a.NoError(p.PlaceBet(100, 50, 50))
	a.Equal(100, p.winBet(false))
	a.Equal(5100, p.Bankroll())

	// blackjack pays 1.5x, truncated
	p = newPlayer("c", "Carol", 5000)
	a.NoError(p.PlaceBet(150, 50, 50))
	a.Equal(225, p.winBet(true))
	a.Equal(5225, p.Bankroll())
}

func TestParticipant_Reset(t *testing.T) {
	a := assert.New(t)
	d := testDeck(t)

	p := newPlayer("a", "Alice", 500)
	a.NoError(p.PlaceBet(500, 50, 50))
	a.NoError(p.Deal(d))
	a.NoError(p.Hold())
	p.loseBet()

	a.True(p.reset(0, 1000))
	a.Len(p.Hand(), 0)
	a.Equal(0, p.Bet())
	a.True(p.IsPlaying())
	a.False(p.HasActed())
	a.Equal(1000, p.Bankroll())

	// a healthy bankroll is left alone
	p2 := newPlayer("b", "Bob", 2500)
	a.False(p2.reset(0, 1000))
	a.Equal(2500, p2.Bankroll())

	// the dealer is never topped up
	dealer := newDealer("Dealer")
	a.False(dealer.reset(0, 1000))
}
