package game

import (
	"fmt"

	"voyager.com/trainer/poker"
)

// HandValue returns the best blackjack total for the cards: aces start
// at 11 and demote to 1 one at a time while the total busts. An empty
// hand totals 0.
func HandValue(cards []poker.Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.Value
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsSoft reports whether the best total counts an ace as 11. A busted
// hand is never soft.
func IsSoft(cards []poker.Card) bool {
	best := HandValue(cards)
	if best > 21 {
		return false
	}
	hasAce := false
	allOnes := 0
	for _, c := range cards {
		if c.IsAce() {
			hasAce = true
			allOnes++
		} else {
			allOnes += c.Value
		}
	}
	return hasAce && best != allOnes
}

// ScoreText renders the total for display, e.g. "17" or "17 (Soft)".
func ScoreText(cards []poker.Card) string {
	value := HandValue(cards)
	if IsSoft(cards) {
		return fmt.Sprintf("%d (Soft)", value)
	}
	return fmt.Sprintf("%d", value)
}
