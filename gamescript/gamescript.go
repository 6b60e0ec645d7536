package gamescript

import (
	"fmt"
	"io/ioutil"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Script contains one scenario: a seeded deal, the actions to take, and
// what the table must look like afterward. Scenarios make the round
// state machine deterministic for automated play and tests.
type Script struct {
	Title      string         `yaml:"title"`
	HouseRules HouseRules     `yaml:"house-rules"`
	Deal       Deal           `yaml:"deal"`
	Actions    []PlayerAction `yaml:"actions"`
	Expect     Expect         `yaml:"expect"`
}

type HouseRules struct {
	DealerHitsSoft17 bool `yaml:"dealer-hits-soft-17"`
}

// Deal seeds the round. PlayerCards and DealerCards are the two-card
// initial hands; Draws is the order every later card comes off the shoe
// (player hits, split cards, dealer hits).
type Deal struct {
	PlayerCards []string `yaml:"player-cards"`
	DealerCards []string `yaml:"dealer-cards"`
	Draws       []string `yaml:"draws"`
}

// PlayerAction is one scripted decision on the hand currently in play.
type PlayerAction struct {
	Action        string `yaml:"action"`
	ExpectOptimal string `yaml:"expect-optimal"`
}

// Expect describes the settled round.
type Expect struct {
	Hands            []ExpectedHand `yaml:"hands"`
	DealerFinalValue *int           `yaml:"dealer-final-value"`
	DealerActions    []string       `yaml:"dealer-actions"`
	CorrectMoves     *int           `yaml:"correct-moves"`
	IncorrectMoves   *int           `yaml:"incorrect-moves"`
	GameActive       *bool          `yaml:"game-active"`
}

type ExpectedHand struct {
	Outcome     string `yaml:"outcome"`
	FinalValue  *int   `yaml:"final-value"`
	Blackjack   *bool  `yaml:"blackjack"`
	Busted      *bool  `yaml:"busted"`
	Surrendered *bool  `yaml:"surrendered"`
	Split       *bool  `yaml:"split"`
}

var validActions = map[string]bool{
	"new-round": true, "hit": true, "stand": true, "double": true,
	"split": true, "surrender": true,
}

// ReadGameScript reads and validates the yaml script file.
func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading game script %s", fileName)
	}
	var script Script
	err = yaml.Unmarshal(bytes, &script)
	if err != nil {
		return nil, errors.Wrapf(err, "Error parsing YAML file %s", fileName)
	}
	err = script.Validate()
	if err != nil {
		return nil, errors.Wrapf(err, "Script %s failed validation", fileName)
	}
	return &script, nil
}

// Validate checks card syntax, the action names, and that no scripted
// card appears twice (a shoe holds one of each).
func (s *Script) Validate() error {
	seededCards := mapset.NewSet()
	checkCard := func(card string) error {
		if len(card) != 2 ||
			!strings.ContainsRune("23456789TJQKA", rune(card[0])) ||
			!strings.ContainsRune("shdc", rune(card[1])) {
			return fmt.Errorf("Invalid card [%s]", card)
		}
		if !seededCards.Add(card) {
			return fmt.Errorf("Duplicate scripted card [%s]", card)
		}
		return nil
	}

	for _, group := range [][]string{s.Deal.PlayerCards, s.Deal.DealerCards, s.Deal.Draws} {
		for _, card := range group {
			if err := checkCard(card); err != nil {
				return err
			}
		}
	}
	if len(s.Deal.PlayerCards) != 2 {
		return fmt.Errorf("Expected 2 seeded player cards, got %d", len(s.Deal.PlayerCards))
	}
	if len(s.Deal.DealerCards) != 2 {
		return fmt.Errorf("Expected 2 seeded dealer cards, got %d", len(s.Deal.DealerCards))
	}

	for _, action := range s.Actions {
		if !validActions[action.Action] {
			return fmt.Errorf("Invalid action [%s]", action.Action)
		}
	}
	return nil
}
