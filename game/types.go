package game

import (
	"voyager.com/trainer/poker"
)

// Action is a player decision. The single-letter forms match the
// strategy chart cells.
type Action string

const (
	ActionHit       Action = "H"
	ActionStand     Action = "S"
	ActionDouble    Action = "D"
	ActionSplit     Action = "P"
	ActionSurrender Action = "R"
)

// Outcome is the per-hand result of a resolved round.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "Win"
	OutcomeLoss Outcome = "Loss"
	OutcomePush Outcome = "Push"
)

// ActionLogEntry records one player decision: what was played, what the
// chart said, and the hand value before and after the card (if any)
// caused by the action.
type ActionLogEntry struct {
	PlayerAction    Action      `json:"playerAction"`
	OptimalAction   Action      `json:"optimalAction"`
	WasCorrect      bool        `json:"wasCorrect"`
	HandValueBefore int         `json:"handValueBefore"`
	HandValueAfter  int         `json:"handValueAfter"`
	CardDealt       *poker.Card `json:"cardDealt,omitempty"`
}

// PlayerHand is one playable hand. A round starts with one and grows by
// one per split. InitialCards is frozen at creation (or at the split that
// produced the hand) and ActionsTaken is append-only.
type PlayerHand struct {
	Cards         []poker.Card     `json:"cards"`
	Busted        bool             `json:"busted"`
	Stood         bool             `json:"stood"`
	Doubled       bool             `json:"doubled"`
	SplitFromPair bool             `json:"splitFromPair"`
	Surrendered   bool             `json:"surrendered"`
	IsBlackjack   bool             `json:"isBlackjack"`
	Outcome       Outcome          `json:"outcome"`
	InitialCards  []poker.Card     `json:"initialCardsForThisHand"`
	ActionsTaken  []ActionLogEntry `json:"actionsTakenLog"`
}

// Resolved reports whether the hand can take no further action.
func (h *PlayerHand) Resolved() bool {
	return h.Busted || h.Stood || h.Surrendered
}

// IsPair reports whether the hand is exactly two cards of equal rank.
func (h *PlayerHand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// DealerAction is one step of dealer auto-play.
type DealerAction string

const (
	DealerReveal    DealerAction = "Reveal"
	DealerBlackjack DealerAction = "Blackjack!"
	DealerHit       DealerAction = "H"
	DealerStand     DealerAction = "S"
	DealerBust      DealerAction = "Bust"
)

// DealerActionEntry records one dealer step with the hand value before
// and after it.
type DealerActionEntry struct {
	Action          DealerAction `json:"action"`
	HandValueBefore int          `json:"handValueBefore"`
	HandValueAfter  int          `json:"handValueAfter"`
	CardDealt       *poker.Card  `json:"cardDealt,omitempty"`
}

// HouseRules fixes the table variant. The chart in this trainer is
// derived for dealer-stands-soft-17 with double after split allowed and
// at most four split hands.
type HouseRules struct {
	DealerHitsSoft17 bool `json:"dealerHitsSoft17"`
	MaxSplitHands    int  `json:"maxSplitHands"`
}

// DefaultHouseRules returns the table variant the strategy chart assumes.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		DealerHitsSoft17: false,
		MaxSplitHands:    4,
	}
}
