package blackjack

import "chatjack-server/pkg/deck"

// blackjack is the total every player is chasing
const blackjack = 21

// dealerStandsAt is the total at which the dealer stops drawing
const dealerStandsAt = 17

// cardPoints returns the points a non-ace card contributes. Face cards count
// as ten.
func cardPoints(c *deck.Card) int {
	if c.Rank > 10 {
		return 10
	}

	return c.Rank
}

// PossibleValues returns the totals a hand may be worth. Without an ace there
// is a single total. With one or more aces there are exactly two: all aces as
// one point, or exactly one ace promoted to eleven.
func PossibleValues(hand deck.Hand) []int {
	total := 0
	aces := 0
	for _, c := range hand {
		if c.Rank == deck.Ace {
			aces++
			continue
		}

		total += cardPoints(c)
	}

	if aces == 0 {
		return []int{total}
	}

	return []int{total + aces, total + aces + 10}
}

// IsBust returns true if every possible value exceeds 21
func IsBust(hand deck.Hand) bool {
	for _, v := range PossibleValues(hand) {
		if v <= blackjack {
			return false
		}
	}

	return true
}

// IsBlackjack returns true if any possible value is exactly 21
func IsBlackjack(hand deck.Hand) bool {
	for _, v := range PossibleValues(hand) {
		if v == blackjack {
			return true
		}
	}

	return false
}

// BestValue returns the largest possible value that does not exceed 21. If
// the hand is bust, the smallest value is returned so comparisons still work.
func BestValue(hand deck.Hand) int {
	values := PossibleValues(hand)

	best := -1
	smallest := values[0]
	for _, v := range values {
		if v < smallest {
			smallest = v
		}

		if v <= blackjack && v > best {
			best = v
		}
	}

	if best < 0 {
		return smallest
	}

	return best
}
