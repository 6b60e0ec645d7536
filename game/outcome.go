package game

// resolveOutcomes assigns a result to every hand that does not already
// carry one (blackjack and surrender paths set theirs at the moment of
// the event). Outcomes are permanent once set.
func resolveOutcomes(r *Round) {
	dealerValue := HandValue(r.dealerCards)
	for _, hand := range r.playerHands {
		if hand.Outcome != OutcomeNone {
			continue
		}
		playerValue := HandValue(hand.Cards)
		switch {
		case hand.Busted:
			hand.Outcome = OutcomeLoss
		case dealerValue > 21:
			hand.Outcome = OutcomeWin
		case playerValue > dealerValue:
			hand.Outcome = OutcomeWin
		case playerValue < dealerValue:
			hand.Outcome = OutcomeLoss
		default:
			hand.Outcome = OutcomePush
		}
	}
}
