package game

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"voyager.com/trainer/gamescript"
	"voyager.com/trainer/poker"
)

var scriptLogger = log.With().Str("logger_name", "game::scriptrunner").Logger()

// RunGameScriptTests runs every yaml scenario in the directory (or just
// the named one) through a real session and reports failures.
func RunGameScriptTests(dir string, testName string) error {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "Error reading script directory %s", dir)
	}
	var scriptFiles []string
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".yaml") {
			continue
		}
		name := strings.TrimSuffix(file.Name(), ".yaml")
		if testName != "" && name != testName {
			continue
		}
		scriptFiles = append(scriptFiles, filepath.Join(dir, file.Name()))
	}
	sort.Strings(scriptFiles)
	if len(scriptFiles) == 0 {
		return fmt.Errorf("No scripts found in %s", dir)
	}

	failed := 0
	for _, file := range scriptFiles {
		err := RunGameScript(file)
		if err != nil {
			failed++
			scriptLogger.Error().Err(err).Str("script", file).Msg("Script FAILED")
		} else {
			scriptLogger.Info().Str("script", file).Msg("Script PASSED")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(scriptFiles))
	}
	return nil
}

// RunGameScript drives one scenario through a session and verifies the
// settled table against the script's expectations.
func RunGameScript(fileName string) error {
	script, err := gamescript.ReadGameScript(fileName)
	if err != nil {
		return err
	}

	rules := DefaultHouseRules()
	rules.DealerHitsSoft17 = script.HouseRules.DealerHitsSoft17
	session := NewSession(rules)
	session.NewScriptedRound(
		poker.CardsInAscii(script.Deal.PlayerCards),
		poker.CardsInAscii(script.Deal.DealerCards),
		poker.CardsInAscii(script.Deal.Draws),
	)

	for i, action := range script.Actions {
		if action.ExpectOptimal != "" {
			optimal, err := scriptOptimal(session.Round())
			if err != nil {
				return errors.Wrapf(err, "Action %d (%s)", i+1, action.Action)
			}
			if string(optimal) != action.ExpectOptimal {
				return fmt.Errorf("Action %d (%s): expected optimal [%s], chart says [%s]",
					i+1, action.Action, action.ExpectOptimal, optimal)
			}
		}
		switch action.Action {
		case "hit":
			session.Hit()
		case "stand":
			session.Stand()
		case "double":
			session.Double()
		case "split":
			session.Split()
		case "surrender":
			session.Surrender()
		case "new-round":
			session.NewRound()
		}
	}

	return verifyExpectations(session, script)
}

// scriptOptimal recomputes the chart action for the hand about to act,
// with the same eligibility flags the round itself would judge with.
func scriptOptimal(r *Round) (Action, error) {
	if r == nil {
		return "", fmt.Errorf("no round in play")
	}
	hand := r.activeHand()
	if hand == nil {
		return "", fmt.Errorf("no active hand")
	}
	canSplit := hand.IsPair() && len(r.playerHands) < r.rules.MaxSplitHands
	canDouble := len(hand.Cards) == 2
	return OptimalAction(hand.Cards, r.Upcard(), canSplit, canDouble, r.CanSurrender()), nil
}

func verifyExpectations(session *Session, script *gamescript.Script) error {
	r := session.Round()
	expect := script.Expect

	if expect.GameActive != nil && r.GameActive() != *expect.GameActive {
		return fmt.Errorf("Expected gameActive=%v, got %v", *expect.GameActive, r.GameActive())
	}

	if len(expect.Hands) > 0 {
		hands := r.PlayerHands()
		if len(hands) != len(expect.Hands) {
			return fmt.Errorf("Expected %d hands, got %d", len(expect.Hands), len(hands))
		}
		for i, expected := range expect.Hands {
			hand := hands[i]
			if expected.Outcome != "" && string(hand.Outcome) != expected.Outcome {
				return fmt.Errorf("Hand %d: expected outcome [%s], got [%s]", i+1, expected.Outcome, hand.Outcome)
			}
			if expected.FinalValue != nil && HandValue(hand.Cards) != *expected.FinalValue {
				return fmt.Errorf("Hand %d: expected value %d, got %d", i+1, *expected.FinalValue, HandValue(hand.Cards))
			}
			if expected.Blackjack != nil && hand.IsBlackjack != *expected.Blackjack {
				return fmt.Errorf("Hand %d: expected blackjack=%v", i+1, *expected.Blackjack)
			}
			if expected.Busted != nil && hand.Busted != *expected.Busted {
				return fmt.Errorf("Hand %d: expected busted=%v", i+1, *expected.Busted)
			}
			if expected.Surrendered != nil && hand.Surrendered != *expected.Surrendered {
				return fmt.Errorf("Hand %d: expected surrendered=%v", i+1, *expected.Surrendered)
			}
			if expected.Split != nil && hand.SplitFromPair != *expected.Split {
				return fmt.Errorf("Hand %d: expected split=%v", i+1, *expected.Split)
			}
		}
	}

	if expect.DealerFinalValue != nil {
		got := HandValue(r.DealerCards())
		if got != *expect.DealerFinalValue {
			return fmt.Errorf("Expected dealer value %d, got %d", *expect.DealerFinalValue, got)
		}
	}

	if len(expect.DealerActions) > 0 {
		dealerLog := r.DealerLog()
		if len(dealerLog) != len(expect.DealerActions) {
			return fmt.Errorf("Expected %d dealer actions, got %d", len(expect.DealerActions), len(dealerLog))
		}
		for i, expected := range expect.DealerActions {
			if string(dealerLog[i].Action) != expected {
				return fmt.Errorf("Dealer action %d: expected [%s], got [%s]", i+1, expected, dealerLog[i].Action)
			}
		}
	}

	stats := session.Stats()
	if expect.CorrectMoves != nil && stats.CorrectMoves != *expect.CorrectMoves {
		return fmt.Errorf("Expected %d correct moves, got %d", *expect.CorrectMoves, stats.CorrectMoves)
	}
	if expect.IncorrectMoves != nil && stats.IncorrectMoves != *expect.IncorrectMoves {
		return fmt.Errorf("Expected %d incorrect moves, got %d", *expect.IncorrectMoves, stats.IncorrectMoves)
	}
	return nil
}
