package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"voyager.com/trainer/logging"
	"voyager.com/trainer/poker"
)

var sessionLogger = log.With().Str("logger_name", "game::session").Logger()

// Session owns everything that outlives a round: cumulative stats, the
// round history, and the house rules. One round is in play at a time;
// starting a new round discards any round still in progress. The lock
// serializes HTTP handlers that share a session code; every exported
// method takes it, so the round underneath only ever sees one caller.
type Session struct {
	code    string
	rules   HouseRules
	stats   SessionStats
	history []GameHistoryEntry
	round   *Round
	settled bool
	persist PersistSessionState
	lock    sync.Mutex
}

// NewSession creates an empty session.
func NewSession(rules HouseRules) *Session {
	return &Session{
		code:  uuid.New().String(),
		rules: rules,
	}
}

// NewSessionWithPersist creates a session whose stats and history are
// tracked through the given persist backend under the session code.
func NewSessionWithPersist(code string, rules HouseRules, persist PersistSessionState) *Session {
	s := &Session{
		code:    code,
		rules:   rules,
		persist: persist,
	}
	if persist != nil {
		if state, err := persist.Load(code); err == nil && state != nil {
			s.stats = state.Stats
			s.history = state.History
		}
	}
	return s
}

// Code returns the session identifier.
func (s *Session) Code() string {
	return s.code
}

// NewRound shuffles a fresh shoe and deals. Any in-progress round is
// discarded.
func (s *Session) NewRound() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.round = NewRound(s.rules, &s.stats)
	s.settled = false
	s.settle()
}

// NewScriptedRound deals a fixed card sequence: the two-card seeds for
// each side in standard order, then the draw list as play consumes
// cards.
func (s *Session) NewScriptedRound(playerCards poker.CardsInAscii, dealerCards poker.CardsInAscii, draws poker.CardsInAscii) {
	s.lock.Lock()
	defer s.lock.Unlock()
	shoe := poker.ShoeFromScript(playerCards, dealerCards, draws)
	s.round = NewScriptedRound(shoe, s.rules, &s.stats)
	s.settled = false
	s.settle()
}

// NewSeededRound starts from pre-built cards for both sides and a
// remainder shoe with those cards excluded.
func (s *Session) NewSeededRound(playerCards []poker.Card, dealerCards []poker.Card, shoe *poker.Shoe) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.round = NewSeededRound(playerCards, dealerCards, shoe, s.rules, &s.stats)
	s.settled = false
	s.settle()
}

// Hit, Stand, Double, Split and Surrender forward to the active round.
// Without one they are no-ops, like any action whose preconditions fail.

func (s *Session) Hit() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.round == nil {
		return
	}
	s.round.Hit()
	s.settle()
}

func (s *Session) Stand() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.round == nil {
		return
	}
	s.round.Stand()
	s.settle()
}

func (s *Session) Double() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.round == nil {
		return
	}
	s.round.Double()
	s.settle()
}

func (s *Session) Split() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.round == nil {
		return
	}
	s.round.Split()
	s.settle()
}

func (s *Session) Surrender() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.round == nil {
		return
	}
	s.round.Surrender()
	s.settle()
}

// settle records stats and history exactly once per finished round.
func (s *Session) settle() {
	if s.round == nil || !s.round.Finished() || s.settled {
		return
	}
	s.settled = true
	s.stats.recordRound(s.round)
	entry := newHistoryEntry(s.round)
	s.history = append(s.history, entry)
	sessionLogger.Info().
		Str(logging.SessionCodeKey, s.code).
		Str("roundId", entry.RoundID).
		Int(logging.RoundNumKey, len(s.history)).
		Int("hands", len(entry.Hands)).
		Str(logging.OutcomeKey, outcomeSummary(s.round)).
		Msg("Round settled")
	s.save()
}

// outcomeSummary joins the per-hand outcomes for the settle log event.
func outcomeSummary(r *Round) string {
	outcomes := make([]string, len(r.playerHands))
	for i, hand := range r.playerHands {
		outcomes[i] = string(hand.Outcome)
	}
	return strings.Join(outcomes, "/")
}

func (s *Session) save() {
	if s.persist == nil {
		return
	}
	err := s.persist.Save(s.code, &SessionState{Stats: s.stats, History: s.history})
	if err != nil {
		sessionLogger.Error().Err(err).Str(logging.SessionCodeKey, s.code).Msg("Could not save session state")
	}
}

// Round exposes the current round, nil before the first deal.
func (s *Session) Round() *Round {
	return s.round
}

// Stats returns a copy of the cumulative stats.
func (s *Session) Stats() SessionStats {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.stats
}

// History returns the resolved rounds, oldest first.
func (s *Session) History() []GameHistoryEntry {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.history
}

// ResetStats zeroes the cumulative stats and clears the history.
func (s *Session) ResetStats() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.stats.Reset()
	s.history = nil
	s.save()
}

// HandState is the read-only projection of one player hand.
type HandState struct {
	Cards       []string `json:"cards"`
	Score       string   `json:"score"`
	Busted      bool     `json:"busted"`
	Stood       bool     `json:"stood"`
	Doubled     bool     `json:"doubled"`
	Split       bool     `json:"split"`
	Surrendered bool     `json:"surrendered"`
	IsBlackjack bool     `json:"isBlackjack"`
	Outcome     Outcome  `json:"outcome,omitempty"`
}

// TableState is the read-only projection a UI renders. The hole card is
// masked while hidden and the chart highlight is recomputed for the
// active hand against the visible upcard.
type TableState struct {
	PlayerHands         []HandState  `json:"playerHands"`
	CurrentHandIndex    int          `json:"currentHandIndex"`
	DealerCards         []string     `json:"dealerCards"`
	DealerScore         string       `json:"dealerScore,omitempty"`
	GameActive          bool         `json:"gameActive"`
	HideDealerFirstCard bool         `json:"hideDealerFirstCard"`
	Message             string       `json:"message"`
	Highlight           *ChartCoords `json:"highlight,omitempty"`
	Stats               SessionStats `json:"sessionStats"`
}

// State builds the current projection.
func (s *Session) State() TableState {
	s.lock.Lock()
	defer s.lock.Unlock()
	state := TableState{
		Message: "Press New Round to begin",
		Stats:   s.stats,
	}
	r := s.round
	if r == nil {
		return state
	}

	state.GameActive = r.gameActive
	state.HideDealerFirstCard = r.hideDealerFirstCard
	state.CurrentHandIndex = r.currentHand
	state.PlayerHands = make([]HandState, len(r.playerHands))
	for i, hand := range r.playerHands {
		cards := make([]string, len(hand.Cards))
		for j, c := range hand.Cards {
			cards[j] = c.PrettyString()
		}
		state.PlayerHands[i] = HandState{
			Cards:       cards,
			Score:       ScoreText(hand.Cards),
			Busted:      hand.Busted,
			Stood:       hand.Stood,
			Doubled:     hand.Doubled,
			Split:       hand.SplitFromPair,
			Surrendered: hand.Surrendered,
			IsBlackjack: hand.IsBlackjack,
			Outcome:     hand.Outcome,
		}
	}

	state.DealerCards = make([]string, len(r.dealerCards))
	for i, c := range r.dealerCards {
		if i == 0 && r.hideDealerFirstCard {
			state.DealerCards[i] = "??"
			continue
		}
		state.DealerCards[i] = c.PrettyString()
	}
	if !r.hideDealerFirstCard {
		state.DealerScore = ScoreText(r.dealerCards)
	}

	if hand := r.activeHand(); hand != nil {
		coords := ChartKey(hand.Cards, r.Upcard())
		if coords.Category != ChartNone {
			state.Highlight = &coords
		}
	}

	state.Message = s.message()
	return state
}

func (s *Session) message() string {
	r := s.round
	if r == nil {
		return "Press New Round to begin"
	}
	if r.gameActive {
		hand := r.playerHands[r.currentHand]
		prefix := ""
		if len(r.playerHands) > 1 {
			prefix = fmt.Sprintf("Hand %d of %d: ", r.currentHand+1, len(r.playerHands))
		}
		return fmt.Sprintf("%sYour move: %s vs dealer %s", prefix, ScoreText(hand.Cards), r.Upcard().Rank)
	}

	if len(r.playerHands) == 1 {
		hand := r.playerHands[0]
		switch {
		case hand.IsBlackjack && hand.Outcome == OutcomeWin:
			return "Blackjack! You win"
		case hand.IsBlackjack && hand.Outcome == OutcomePush:
			return "Both have blackjack, push"
		case r.dealerBlackjack:
			return "Dealer has blackjack, you lose"
		case hand.Surrendered:
			return "Hand surrendered"
		case hand.Busted:
			return "You busted, dealer wins"
		case hand.Outcome == OutcomeWin:
			return "You win!"
		case hand.Outcome == OutcomeLoss:
			return "Dealer wins"
		default:
			return "Push"
		}
	}

	parts := make([]string, len(r.playerHands))
	for i, hand := range r.playerHands {
		parts[i] = fmt.Sprintf("hand %d %s", i+1, strings.ToLower(string(hand.Outcome)))
	}
	return "Round over: " + strings.Join(parts, ", ")
}
