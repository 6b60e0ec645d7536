package game

// SessionStats accumulates across rounds until explicitly reset.
// Decision counters update as each action is judged; outcome counters
// update once per round at settlement. A split round contributes more
// than one to HandsPlayed.
type SessionStats struct {
	CorrectMoves   int `json:"correctMoves"`
	IncorrectMoves int `json:"incorrectMoves"`
	TotalDecisions int `json:"totalDecisions"`
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Pushes         int `json:"pushes"`
	HandsPlayed    int `json:"handsPlayed"`
}

func (s *SessionStats) recordDecision(correct bool) {
	if correct {
		s.CorrectMoves++
	} else {
		s.IncorrectMoves++
	}
	s.TotalDecisions++
}

func (s *SessionStats) recordRound(r *Round) {
	for _, hand := range r.playerHands {
		switch hand.Outcome {
		case OutcomeWin:
			s.Wins++
		case OutcomeLoss:
			s.Losses++
		case OutcomePush:
			s.Pushes++
		}
		s.HandsPlayed++
	}
}

// Reset zeroes every counter.
func (s *SessionStats) Reset() {
	*s = SessionStats{}
}
