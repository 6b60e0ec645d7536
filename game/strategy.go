package game

import (
	"fmt"

	"voyager.com/trainer/poker"
)

// The decision table below is basic strategy for the table variant this
// trainer deals: dealer stands on soft 17, double after split allowed,
// up to four split hands. The chart key derivation is only used to
// highlight a chart cell for the UI; OptimalAction is the authority.

// ChartCategory selects which strategy sub-chart a hand falls in.
type ChartCategory string

const (
	ChartNone  ChartCategory = ""
	ChartPairs ChartCategory = "pairs"
	ChartSoft  ChartCategory = "soft"
	ChartHard  ChartCategory = "hard"
)

// ChartCoords locates the chart cell for a hand versus a dealer upcard.
// A zero Category means the hand has no cell (highlight suppressed).
type ChartCoords struct {
	Category  ChartCategory `json:"type"`
	PlayerKey string        `json:"playerKey"`
	DealerKey string        `json:"dealerKey"`
}

var canonicalPairs = map[string]bool{
	"A,A": true, "T,T": true, "9,9": true, "8,8": true, "7,7": true,
	"6,6": true, "5,5": true, "4,4": true, "3,3": true, "2,2": true,
}

// normalizeRank collapses ten and face cards to "T" for chart lookup.
func normalizeRank(rank string) string {
	switch rank {
	case "T", "J", "Q", "K":
		return "T"
	default:
		return rank
	}
}

func dealerChartKey(upcard poker.Card) string {
	r := normalizeRank(upcard.Rank)
	switch r {
	case "2", "3", "4", "5", "6", "7", "8", "9", "T", "A":
		return r
	default:
		return ""
	}
}

// ChartKey derives the highlight coordinates for a player hand versus
// the dealer upcard. Hands the chart does not enumerate (soft 21, busted
// totals and other off-chart shapes) return zero coords.
func ChartKey(playerCards []poker.Card, upcard poker.Card) ChartCoords {
	dealerKey := dealerChartKey(upcard)
	if dealerKey == "" || len(playerCards) == 0 {
		return ChartCoords{}
	}

	if len(playerCards) == 2 && playerCards[0].Rank == playerCards[1].Rank {
		r := normalizeRank(playerCards[0].Rank)
		playerKey := fmt.Sprintf("%s,%s", r, r)
		if !canonicalPairs[playerKey] {
			return ChartCoords{}
		}
		return ChartCoords{Category: ChartPairs, PlayerKey: playerKey, DealerKey: dealerKey}
	}

	total := HandValue(playerCards)
	if IsSoft(playerCards) {
		n := total - 11
		if n < 2 || n > 9 {
			// The soft chart only enumerates A,2 through A,9; higher soft
			// totals are stand territory handled by the caller's fallback.
			return ChartCoords{}
		}
		return ChartCoords{Category: ChartSoft, PlayerKey: fmt.Sprintf("A,%d", n), DealerKey: dealerKey}
	}

	var playerKey string
	switch {
	case total >= 17 && total <= 21:
		playerKey = "17+"
	case total >= 8 && total <= 16:
		playerKey = fmt.Sprintf("%d", total)
	case total >= 1 && total <= 7:
		playerKey = "5-7"
	default:
		return ChartCoords{}
	}
	return ChartCoords{Category: ChartHard, PlayerKey: playerKey, DealerKey: dealerKey}
}

// OptimalAction returns the chart action for the hand versus the dealer
// upcard. Pure function of its inputs; falls back to hit rather than
// ever failing. Evaluation order is surrender, then pairs, then soft
// totals, then hard totals, first match wins.
func OptimalAction(playerCards []poker.Card, upcard poker.Card, canSplit bool, canDouble bool, canSurrender bool) Action {
	if len(playerCards) == 0 {
		return ActionHit
	}
	uv := upcard.Value
	total := HandValue(playerCards)
	soft := IsSoft(playerCards)
	pair := len(playerCards) == 2 && playerCards[0].Rank == playerCards[1].Rank

	if canSurrender && len(playerCards) == 2 && !pair && !soft {
		if total == 16 && (uv == 9 || uv == 10 || uv == 11) {
			return ActionSurrender
		}
		if total == 15 && (uv == 10 || uv == 11) {
			return ActionSurrender
		}
	}

	if canSplit && pair {
		switch normalizeRank(playerCards[0].Rank) {
		case "A", "8":
			return ActionSplit
		case "T":
			// Never split tens.
			return ActionStand
		case "9":
			if uv == 7 || uv == 10 || uv == 11 {
				return ActionStand
			}
			return ActionSplit
		case "7":
			if uv <= 7 {
				return ActionSplit
			}
			return ActionHit
		case "6":
			if uv <= 6 {
				return ActionSplit
			}
			return ActionHit
		case "5":
			if uv <= 9 && canDouble {
				return ActionDouble
			}
			return ActionHit
		case "4":
			// Only worth splitting when double after split is allowed,
			// which it is at this table.
			if uv == 5 || uv == 6 {
				return ActionSplit
			}
			return ActionHit
		case "3", "2":
			if uv <= 7 {
				return ActionSplit
			}
			return ActionHit
		}
	}

	if soft {
		switch {
		case total >= 20:
			return ActionStand
		case total == 19:
			// Doubling soft 19 against a 6 relies on the dealer standing
			// on soft 17.
			if canDouble && uv == 6 {
				return ActionDouble
			}
			return ActionStand
		case total == 18:
			if canDouble && uv >= 2 && uv <= 6 {
				return ActionDouble
			}
			if uv <= 8 {
				return ActionStand
			}
			return ActionHit
		case total == 17:
			if canDouble && uv >= 3 && uv <= 6 {
				return ActionDouble
			}
			return ActionHit
		case total == 16 || total == 15:
			if canDouble && uv >= 4 && uv <= 6 {
				return ActionDouble
			}
			return ActionHit
		case total == 14 || total == 13:
			if canDouble && uv >= 5 && uv <= 6 {
				return ActionDouble
			}
			return ActionHit
		default:
			return ActionHit
		}
	}

	switch {
	case total >= 17:
		return ActionStand
	case total >= 13:
		if uv <= 6 {
			return ActionStand
		}
		return ActionHit
	case total == 12:
		if uv >= 4 && uv <= 6 {
			return ActionStand
		}
		return ActionHit
	case total == 11:
		if canDouble {
			return ActionDouble
		}
		return ActionHit
	case total == 10:
		if canDouble && uv <= 9 {
			return ActionDouble
		}
		return ActionHit
	case total == 9:
		if canDouble && uv >= 3 && uv <= 6 {
			return ActionDouble
		}
		return ActionHit
	default:
		return ActionHit
	}
}
