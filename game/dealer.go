package game

import (
	"voyager.com/trainer/poker"
)

// DealerRun steps the dealer through auto-play, one discrete action per
// Step call. The caller drives it either all at once (tests, script
// runner) or one step at a time (a UI pacing each hit). Given the same
// cards and shoe the sequence is deterministic, and a run can be rebuilt
// from a snapshot of both.
type DealerRun struct {
	cards     []poker.Card
	shoe      *poker.Shoe
	hitSoft17 bool
	revealed  bool
	done      bool
}

// NewDealerRun starts a run from the dealer's current cards. The shoe is
// drawn from as the dealer hits.
func NewDealerRun(cards []poker.Card, shoe *poker.Shoe, hitSoft17 bool) *DealerRun {
	dealerCards := make([]poker.Card, len(cards))
	copy(dealerCards, cards)
	return &DealerRun{
		cards:     dealerCards,
		shoe:      shoe,
		hitSoft17: hitSoft17,
	}
}

// Step produces the next dealer action. The first step is always the
// hole-card reveal (or an immediate blackjack, which ends the run).
// Returns false once the run is complete.
func (d *DealerRun) Step() (DealerActionEntry, bool) {
	if d.done {
		return DealerActionEntry{}, false
	}

	value := HandValue(d.cards)
	if !d.revealed {
		d.revealed = true
		if len(d.cards) == 2 && value == 21 {
			d.done = true
			return DealerActionEntry{Action: DealerBlackjack, HandValueBefore: value, HandValueAfter: value}, true
		}
		return DealerActionEntry{Action: DealerReveal, HandValueBefore: value, HandValueAfter: value}, true
	}

	if value > 21 {
		d.done = true
		return DealerActionEntry{Action: DealerBust, HandValueBefore: value, HandValueAfter: value}, true
	}

	mustHit := value < 17 || (value == 17 && IsSoft(d.cards) && d.hitSoft17)
	if !mustHit {
		d.done = true
		return DealerActionEntry{Action: DealerStand, HandValueBefore: value, HandValueAfter: value}, true
	}

	card := d.shoe.Deal()
	d.cards = append(d.cards, card)
	after := HandValue(d.cards)
	return DealerActionEntry{
		Action:          DealerHit,
		HandValueBefore: value,
		HandValueAfter:  after,
		CardDealt:       &card,
	}, true
}

// Run drains the remaining steps.
func (d *DealerRun) Run() []DealerActionEntry {
	var entries []DealerActionEntry
	for {
		entry, ok := d.Step()
		if !ok {
			break
		}
		entries = append(entries, entry)
	}
	return entries
}

// Cards returns the dealer's cards as of the last step.
func (d *DealerRun) Cards() []poker.Card {
	cards := make([]poker.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Done reports whether the run has produced its final action.
func (d *DealerRun) Done() bool {
	return d.done
}
