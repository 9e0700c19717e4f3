package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("A♠", (&Card{Rank: Ace, Suit: Spades}).String())
	a.Equal("10♡", (&Card{Rank: 10, Suit: Hearts}).String())
	a.Equal("J♣", (&Card{Rank: Jack, Suit: Clubs}).String())
	a.Equal("Q♢", (&Card{Rank: Queen, Suit: Diamonds}).String())
	a.Equal("K♠", (&Card{Rank: King, Suit: Spades}).String())
	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("1s")
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)

	card = CardFromString("13h")
	a.Equal(King, card.Rank)
	a.Equal(Hearts, card.Suit)

	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("14h")
	})

	a.Panics(func() {
		CardFromString("0c")
	})
}

func TestCardsToString_RoundTrip(t *testing.T) {
	const s = "1s,10d,13c,7h"
	cards := CardsFromString(s)
	assert.Len(t, cards, 4)
	assert.Equal(t, s, CardsToString(cards))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5c").Equal(CardFromString("5c")))
	a.False(CardFromString("5c").Equal(CardFromString("5d")))
	a.False(CardFromString("5c").Equal(CardFromString("6c")))
}

func TestHand(t *testing.T) {
	a := assert.New(t)

	var hand Hand
	hand.AddCard(CardFromString("1s"))
	hand.AddCard(CardFromString("10d"))

	a.Equal("1s,10d", hand.String())
	a.Equal("A♠, 10♢", hand.Display())
	a.True(hand.HasCard(CardFromString("1s")))
	a.False(hand.HasCard(CardFromString("2s")))

	clone := hand.Clone()
	clone.AddCard(CardFromString("2c"))
	a.Len(hand, 2)
	a.Len(clone, 3)
}
