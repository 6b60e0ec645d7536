package gamescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func getIntPointer(i int) *int {
	return &i
}

func getBoolPointer(b bool) *bool {
	return &b
}

func TestReadGameScript(t *testing.T) {
	script, err := ReadGameScript("test_scripts/script1.yaml")
	if err != nil {
		t.Fatalf("ReadGameScript returned error [%s]", err)
	}
	if script == nil {
		t.Fatal("ReadGameScript returned nil data")
	}

	expectedScript := Script{
		Title: "double hard 11 against a six",
		HouseRules: HouseRules{
			DealerHitsSoft17: false,
		},
		Deal: Deal{
			PlayerCards: []string{"6h", "5d"},
			DealerCards: []string{"6s", "9c"},
			Draws:       []string{"Th", "2h"},
		},
		Actions: []PlayerAction{
			{
				Action:        "double",
				ExpectOptimal: "D",
			},
		},
		Expect: Expect{
			GameActive: getBoolPointer(false),
			Hands: []ExpectedHand{
				{
					Outcome:    "Win",
					FinalValue: getIntPointer(21),
				},
			},
			DealerFinalValue: getIntPointer(17),
			DealerActions:    []string{"Reveal", "H", "S"},
			CorrectMoves:     getIntPointer(1),
			IncorrectMoves:   getIntPointer(0),
		},
	}

	if !cmp.Equal(*script, expectedScript) {
		t.Errorf("Diff: %v", cmp.Diff(*script, expectedScript))
	}
}

func TestValidateRejectsDuplicateCards(t *testing.T) {
	script := Script{
		Deal: Deal{
			PlayerCards: []string{"Ah", "Kd"},
			DealerCards: []string{"9s", "Ah"},
		},
	}
	if err := script.Validate(); err == nil {
		t.Error("expected duplicate card error")
	}
}

func TestValidateRejectsBadCard(t *testing.T) {
	script := Script{
		Deal: Deal{
			PlayerCards: []string{"Ah", "1x"},
			DealerCards: []string{"9s", "7c"},
		},
	}
	if err := script.Validate(); err == nil {
		t.Error("expected invalid card error")
	}
}

func TestValidateRejectsBadAction(t *testing.T) {
	script := Script{
		Deal: Deal{
			PlayerCards: []string{"Ah", "Kd"},
			DealerCards: []string{"9s", "7c"},
		},
		Actions: []PlayerAction{
			{Action: "fold"},
		},
	}
	if err := script.Validate(); err == nil {
		t.Error("expected invalid action error")
	}
}

func TestValidateRejectsWrongSeedCount(t *testing.T) {
	script := Script{
		Deal: Deal{
			PlayerCards: []string{"Ah"},
			DealerCards: []string{"9s", "7c"},
		},
	}
	if err := script.Validate(); err == nil {
		t.Error("expected seed count error")
	}
}
