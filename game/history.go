package game

import (
	"time"

	"github.com/google/uuid"
	"voyager.com/trainer/poker"
)

// HandSummary is the per-hand slice of a history entry.
type HandSummary struct {
	Cards        []poker.Card     `json:"cards"`
	FinalValue   int              `json:"finalValue"`
	Outcome      Outcome          `json:"outcome"`
	Busted       bool             `json:"busted"`
	Doubled      bool             `json:"doubled"`
	Surrendered  bool             `json:"surrendered"`
	Split        bool             `json:"split"`
	IsBlackjack  bool             `json:"isBlackjack"`
	ActionsTaken []ActionLogEntry `json:"actionsTakenLog"`
}

// GameHistoryEntry is one resolved round. Entries are append-only and
// immutable once recorded.
type GameHistoryEntry struct {
	RoundID         string              `json:"roundId"`
	PlayedAt        time.Time           `json:"playedAt"`
	Hands           []HandSummary       `json:"hands"`
	DealerCards     []poker.Card        `json:"dealerCards"`
	DealerValue     int                 `json:"dealerValue"`
	DealerLog       []DealerActionEntry `json:"dealerLog"`
	PlayerBlackjack bool                `json:"playerBlackjack"`
	DealerBlackjack bool                `json:"dealerBlackjack"`
}

func newHistoryEntry(r *Round) GameHistoryEntry {
	hands := make([]HandSummary, len(r.playerHands))
	for i, hand := range r.playerHands {
		cards := make([]poker.Card, len(hand.Cards))
		copy(cards, hand.Cards)
		actions := make([]ActionLogEntry, len(hand.ActionsTaken))
		copy(actions, hand.ActionsTaken)
		hands[i] = HandSummary{
			Cards:        cards,
			FinalValue:   HandValue(hand.Cards),
			Outcome:      hand.Outcome,
			Busted:       hand.Busted,
			Doubled:      hand.Doubled,
			Surrendered:  hand.Surrendered,
			Split:        hand.SplitFromPair,
			IsBlackjack:  hand.IsBlackjack,
			ActionsTaken: actions,
		}
	}
	dealerCards := make([]poker.Card, len(r.dealerCards))
	copy(dealerCards, r.dealerCards)
	dealerLog := make([]DealerActionEntry, len(r.dealerLog))
	copy(dealerLog, r.dealerLog)
	return GameHistoryEntry{
		RoundID:         uuid.New().String(),
		PlayedAt:        time.Now().UTC(),
		Hands:           hands,
		DealerCards:     dealerCards,
		DealerValue:     HandValue(r.dealerCards),
		DealerLog:       dealerLog,
		PlayerBlackjack: r.playerBlackjack,
		DealerBlackjack: r.dealerBlackjack,
	}
}
