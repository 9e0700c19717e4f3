package blackjack

import "chatjack-server/pkg/deck"

// dealerShouldHit is the dealer's per-round policy: hit only while every
// possible total is sixteen or less. A soft seventeen stands.
func dealerShouldHit(hand deck.Hand) bool {
	for _, v := range PossibleValues(hand) {
		if v > dealerStandsAt-1 {
			return false
		}
	}

	return true
}

// playDealerRound applies the dealer's policy as its single action for the
// round: a hit while the policy calls for one, otherwise a hold.
func (s *Session) playDealerRound() error {
	d := s.dealer
	if !d.isPlaying || d.hasActed {
		return nil
	}

	if dealerShouldHit(d.hand) {
		if err := d.Hit(s.deck); err != nil {
			return err
		}

		s.sayf("%s hit! (%s)", d.Name, d.hand.Display())
		if d.IsBust() {
			s.sayf("%s busted!", d.Name)
		}

		return nil
	}

	_ = d.Hold()
	s.sayf("%s held.", d.Name)
	return nil
}

// playOutDealer is the settlement catch-up pass: regardless of how many
// rounds the dealer took part in, it keeps drawing until its best value
// reaches seventeen or it busts.
func (s *Session) playOutDealer() error {
	d := s.dealer
	for !d.IsBust() && BestValue(d.hand) < dealerStandsAt {
		if err := d.draw(s.deck); err != nil {
			return err
		}
	}

	s.sayf("%s finished with %s.", d.Name, d.hand.Display())
	return nil
}
