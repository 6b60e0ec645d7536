package game

import (
	"github.com/rs/zerolog/log"
	"voyager.com/trainer/logging"
	"voyager.com/trainer/poker"
)

var roundLogger = log.With().Str("logger_name", "game::round").Logger()

// Round is one deal from shuffle to settlement. It owns the shoe, the
// player hands, the dealer cards and the dealer log; transitions happen
// only through the action methods, and every unmet precondition is a
// silent no-op so the caller can disable controls without racing the
// state.
type Round struct {
	shoe                *poker.Shoe
	playerHands         []*PlayerHand
	currentHand         int
	dealerCards         []poker.Card
	dealerLog           []DealerActionEntry
	gameActive          bool
	hideDealerFirstCard bool
	canSurrender        bool
	rules               HouseRules
	stats               *SessionStats
	playerBlackjack     bool
	dealerBlackjack     bool
	finished            bool
}

// NewRound shuffles a fresh shoe and deals player, dealer, player,
// dealer. The dealer's first dealt card is the hole card.
func NewRound(rules HouseRules, stats *SessionStats) *Round {
	return newRoundFromShoe(poker.NewShoe(1).Shuffle(), rules, stats)
}

// NewScriptedRound deals from a shoe prepared to produce a fixed
// sequence, for deterministic scenarios.
func NewScriptedRound(shoe *poker.Shoe, rules HouseRules, stats *SessionStats) *Round {
	return newRoundFromShoe(shoe, rules, stats)
}

// NewSeededRound starts a round from pre-built cards for both sides and
// a remainder shoe with those cards excluded.
func NewSeededRound(playerCards []poker.Card, dealerCards []poker.Card, shoe *poker.Shoe, rules HouseRules, stats *SessionStats) *Round {
	r := &Round{
		shoe:                shoe,
		rules:               rules,
		stats:               stats,
		gameActive:          true,
		hideDealerFirstCard: true,
		canSurrender:        true,
	}
	hand := &PlayerHand{
		Cards:        append([]poker.Card{}, playerCards...),
		InitialCards: append([]poker.Card{}, playerCards...),
	}
	r.playerHands = []*PlayerHand{hand}
	r.dealerCards = append([]poker.Card{}, dealerCards...)
	r.checkInitialBlackjack()
	return r
}

func newRoundFromShoe(shoe *poker.Shoe, rules HouseRules, stats *SessionStats) *Round {
	r := &Round{
		shoe:                shoe,
		rules:               rules,
		stats:               stats,
		gameActive:          true,
		hideDealerFirstCard: true,
		canSurrender:        true,
	}
	p1 := shoe.Deal()
	d1 := shoe.Deal()
	p2 := shoe.Deal()
	d2 := shoe.Deal()
	hand := &PlayerHand{
		Cards:        []poker.Card{p1, p2},
		InitialCards: []poker.Card{p1, p2},
	}
	r.playerHands = []*PlayerHand{hand}
	r.dealerCards = []poker.Card{d1, d2}
	r.checkInitialBlackjack()
	return r
}

// checkInitialBlackjack short-circuits the round when either side was
// dealt a natural 21. No further play happens; the hole card is revealed
// and the outcome assigned directly.
func (r *Round) checkInitialBlackjack() {
	hand := r.playerHands[0]
	playerBJ := len(hand.Cards) == 2 && HandValue(hand.Cards) == 21
	dealerBJ := len(r.dealerCards) == 2 && HandValue(r.dealerCards) == 21
	if !playerBJ && !dealerBJ {
		return
	}

	r.playerBlackjack = playerBJ
	r.dealerBlackjack = dealerBJ
	r.hideDealerFirstCard = false
	hand.Stood = true
	hand.IsBlackjack = playerBJ

	dealerValue := HandValue(r.dealerCards)
	if dealerBJ {
		r.dealerLog = append(r.dealerLog, DealerActionEntry{
			Action: DealerBlackjack, HandValueBefore: dealerValue, HandValueAfter: dealerValue,
		})
	} else {
		r.dealerLog = append(r.dealerLog, DealerActionEntry{
			Action: DealerReveal, HandValueBefore: dealerValue, HandValueAfter: dealerValue,
		})
	}

	switch {
	case playerBJ && dealerBJ:
		hand.Outcome = OutcomePush
	case playerBJ:
		hand.Outcome = OutcomeWin
	default:
		hand.Outcome = OutcomeLoss
	}
	roundLogger.Debug().
		Bool("playerBlackjack", playerBJ).
		Bool("dealerBlackjack", dealerBJ).
		Msg("Round short-circuited on initial blackjack")
	r.finish()
}

// activeHand returns the current hand if it can still act, else nil.
func (r *Round) activeHand() *PlayerHand {
	if !r.gameActive || r.currentHand >= len(r.playerHands) {
		return nil
	}
	hand := r.playerHands[r.currentHand]
	if hand.Resolved() {
		return nil
	}
	return hand
}

// judge scores a player decision against the chart using the hand as it
// stands before the action mutates it. Correctness streams straight into
// the session stats.
func (r *Round) judge(hand *PlayerHand, action Action) ActionLogEntry {
	upcard := r.Upcard()
	canSplit := hand.IsPair() && len(r.playerHands) < r.rules.MaxSplitHands
	canDouble := len(hand.Cards) == 2
	canSurrender := r.canSurrender && len(hand.Cards) == 2 && !hand.SplitFromPair
	optimal := OptimalAction(hand.Cards, upcard, canSplit, canDouble, canSurrender)
	before := HandValue(hand.Cards)
	entry := ActionLogEntry{
		PlayerAction:    action,
		OptimalAction:   optimal,
		WasCorrect:      action == optimal,
		HandValueBefore: before,
		HandValueAfter:  before,
	}
	if r.stats != nil {
		r.stats.recordDecision(entry.WasCorrect)
	}
	roundLogger.Debug().
		Str(logging.ActionKey, string(action)).
		Str("optimal", string(optimal)).
		Bool("correct", entry.WasCorrect).
		Int(logging.HandNumKey, r.currentHand).
		Msg("Judged player action")
	return entry
}

// Hit deals one card to the current hand. Busting or reaching 21 ends
// the hand.
func (r *Round) Hit() {
	hand := r.activeHand()
	if hand == nil {
		return
	}
	entry := r.judge(hand, ActionHit)
	card := r.shoe.Deal()
	hand.Cards = append(hand.Cards, card)
	entry.CardDealt = &card
	entry.HandValueAfter = HandValue(hand.Cards)
	hand.ActionsTaken = append(hand.ActionsTaken, entry)
	r.canSurrender = false

	if entry.HandValueAfter > 21 {
		hand.Busted = true
		hand.Stood = true
	} else if entry.HandValueAfter == 21 {
		hand.Stood = true
	}
	if hand.Resolved() {
		r.advance()
	}
}

// Stand ends the current hand.
func (r *Round) Stand() {
	hand := r.activeHand()
	if hand == nil {
		return
	}
	entry := r.judge(hand, ActionStand)
	hand.ActionsTaken = append(hand.ActionsTaken, entry)
	hand.Stood = true
	r.canSurrender = false
	r.advance()
}

// Double deals exactly one card to a two-card hand and ends it.
func (r *Round) Double() {
	hand := r.activeHand()
	if hand == nil || len(hand.Cards) != 2 {
		return
	}
	entry := r.judge(hand, ActionDouble)
	card := r.shoe.Deal()
	hand.Cards = append(hand.Cards, card)
	entry.CardDealt = &card
	entry.HandValueAfter = HandValue(hand.Cards)
	hand.ActionsTaken = append(hand.ActionsTaken, entry)
	hand.Doubled = true
	hand.Stood = true
	if entry.HandValueAfter > 21 {
		hand.Busted = true
	}
	r.canSurrender = false
	r.advance()
}

// Split replaces the current pair with two new hands, one card dealt to
// each. Split aces receive exactly one card apiece and stand; a 21 made
// that way is a plain 21, not a blackjack. Play continues on the first
// new hand otherwise.
func (r *Round) Split() {
	hand := r.activeHand()
	if hand == nil || !hand.IsPair() || len(r.playerHands) >= r.rules.MaxSplitHands {
		return
	}
	// The split decision is judged and counted, but the entry has no hand
	// to live on: both new hands start with fresh logs.
	r.judge(hand, ActionSplit)

	card1 := hand.Cards[0]
	card2 := hand.Cards[1]
	new1 := r.shoe.Deal()
	new2 := r.shoe.Deal()
	hand1 := &PlayerHand{
		Cards:         []poker.Card{card1, new1},
		InitialCards:  []poker.Card{card1, new1},
		SplitFromPair: true,
	}
	hand2 := &PlayerHand{
		Cards:         []poker.Card{card2, new2},
		InitialCards:  []poker.Card{card2, new2},
		SplitFromPair: true,
	}
	if card1.IsAce() {
		// One card per split ace.
		hand1.Stood = true
		hand2.Stood = true
	}

	hands := make([]*PlayerHand, 0, len(r.playerHands)+1)
	hands = append(hands, r.playerHands[:r.currentHand]...)
	hands = append(hands, hand1, hand2)
	hands = append(hands, r.playerHands[r.currentHand+1:]...)
	r.playerHands = hands
	r.canSurrender = false

	roundLogger.Debug().
		Str("rank", card1.Rank).
		Int("hands", len(r.playerHands)).
		Msg("Split pair")

	if hand1.Resolved() {
		r.advance()
	}
}

// Surrender forfeits a first-decision two-card hand for an immediate
// loss. Not available after any action or on a split hand.
func (r *Round) Surrender() {
	hand := r.activeHand()
	if hand == nil || !r.canSurrender || len(hand.Cards) != 2 || hand.SplitFromPair {
		return
	}
	entry := r.judge(hand, ActionSurrender)
	hand.ActionsTaken = append(hand.ActionsTaken, entry)
	hand.Surrendered = true
	hand.Stood = true
	hand.Outcome = OutcomeLoss
	r.canSurrender = false
	r.advance()
}

// advance moves play to the next unresolved hand, or hands control to
// dealer auto-play and settlement when none remains.
func (r *Round) advance() {
	for i := r.currentHand + 1; i < len(r.playerHands); i++ {
		hand := r.playerHands[i]
		if !hand.Resolved() {
			r.currentHand = i
			r.canSurrender = len(hand.Cards) == 2 && !hand.SplitFromPair
			return
		}
	}
	r.finish()
}

// finish runs dealer auto-play if any hand still needs a dealer total,
// assigns outcomes, and deactivates the round. Runs exactly once.
func (r *Round) finish() {
	if r.finished {
		return
	}

	allOutcomesSet := true
	anyLiveHand := false
	for _, hand := range r.playerHands {
		if hand.Outcome == OutcomeNone {
			allOutcomesSet = false
			if !hand.Busted {
				anyLiveHand = true
			}
		}
	}

	if !allOutcomesSet {
		if anyLiveHand {
			run := NewDealerRun(r.dealerCards, r.shoe, r.rules.DealerHitsSoft17)
			entries := run.Run()
			r.dealerCards = run.Cards()
			r.dealerLog = append(r.dealerLog, entries...)
			r.hideDealerFirstCard = false
		} else if r.hideDealerFirstCard {
			// Every hand busted or surrendered: the dealer reveals but
			// does not play.
			value := HandValue(r.dealerCards)
			r.dealerLog = append(r.dealerLog, DealerActionEntry{
				Action: DealerReveal, HandValueBefore: value, HandValueAfter: value,
			})
			r.hideDealerFirstCard = false
		}
		resolveOutcomes(r)
	}

	r.gameActive = false
	r.finished = true
	roundLogger.Debug().
		Int("hands", len(r.playerHands)).
		Int("dealerValue", HandValue(r.dealerCards)).
		Msg("Round finished")
}

// Upcard returns the dealer's face-up card (index 1 by convention).
func (r *Round) Upcard() poker.Card {
	if len(r.dealerCards) < 2 {
		return poker.Card{}
	}
	return r.dealerCards[1]
}

// PlayerHands returns the hands slice. Callers treat it as read-only.
func (r *Round) PlayerHands() []*PlayerHand {
	return r.playerHands
}

// CurrentHandIndex returns the index of the hand in play.
func (r *Round) CurrentHandIndex() int {
	return r.currentHand
}

// DealerCards returns the dealer's cards, hole card first.
func (r *Round) DealerCards() []poker.Card {
	return r.dealerCards
}

// DealerLog returns the dealer's action log.
func (r *Round) DealerLog() []DealerActionEntry {
	return r.dealerLog
}

// GameActive reports whether the round still accepts player actions.
func (r *Round) GameActive() bool {
	return r.gameActive
}

// HideDealerFirstCard reports whether the hole card is still face down.
func (r *Round) HideDealerFirstCard() bool {
	return r.hideDealerFirstCard
}

// CanSurrender reports whether surrender is currently legal.
func (r *Round) CanSurrender() bool {
	if !r.gameActive {
		return false
	}
	hand := r.activeHand()
	return hand != nil && r.canSurrender && len(hand.Cards) == 2 && !hand.SplitFromPair
}

// Finished reports whether settlement has run.
func (r *Round) Finished() bool {
	return r.finished
}

// PlayerBlackjack reports a natural 21 on the initial deal.
func (r *Round) PlayerBlackjack() bool {
	return r.playerBlackjack
}

// DealerBlackjack reports a dealer natural on the initial deal.
func (r *Round) DealerBlackjack() bool {
	return r.dealerBlackjack
}
