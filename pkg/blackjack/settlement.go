package blackjack

import "context"

// outcome is the result of one player's hand against the dealer
type outcome int

const (
	outcomeWin outcome = iota
	outcomeLose
	outcomePush
)

// compareToDealer resolves a single player's outcome. Order matters: a
// dealer blackjack beats everything but another blackjack, a dealer bust
// pays every surviving hand, and only then are best values compared.
func compareToDealer(player, dealer *Participant) outcome {
	switch {
	case dealer.IsBlackjack():
		if player.IsBlackjack() {
			return outcomePush
		}

		return outcomeLose
	case dealer.IsBust():
		if player.IsBust() {
			return outcomeLose
		}

		return outcomeWin
	default:
		if player.IsBust() {
			return outcomeLose
		}

		playerBest, dealerBest := BestValue(player.hand), BestValue(dealer.hand)
		switch {
		case playerBest > dealerBest:
			return outcomeWin
		case playerBest == dealerBest:
			return outcomePush
		default:
			return outcomeLose
		}
	}
}

// settle plays out the dealer's hand and applies every player's bankroll
// delta. Bankrolls are only ever mutated here and in PlaceBet/reset, all on
// the session run loop.
func (s *Session) settle(ctx context.Context) error {
	s.phase = PhaseSettlement

	if err := s.playOutDealer(); err != nil {
		return err
	}

	for _, p := range s.players {
		switch compareToDealer(p, s.dealer) {
		case outcomeWin:
			won := p.winBet(p.IsBlackjack())
			s.sayf("%s won $%d! Bankroll: $%d.", p.Name, won, p.bankroll)
		case outcomeLose:
			lost := p.loseBet()
			s.sayf("%s lost $%d. Bankroll: $%d.", p.Name, lost, p.bankroll)
		case outcomePush:
			s.sayf("%s pushed. Bankroll: $%d.", p.Name, p.bankroll)
		}

		if err := s.bank.SaveBankroll(ctx, p.ID, p.bankroll); err != nil {
			return err
		}
	}

	return nil
}
