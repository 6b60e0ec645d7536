package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"voyager.com/trainer/poker"
)

func TestOptimalActionOracle(t *testing.T) {
	tests := []struct {
		name         string
		player       []string
		upcard       string
		canSplit     bool
		canDouble    bool
		canSurrender bool
		want         Action
	}{
		{"hard 8 vs 2", []string{"5h", "3d"}, "2s", false, true, true, ActionHit},
		{"hard 8 vs A", []string{"5h", "3d"}, "As", false, true, true, ActionHit},
		{"pair of aces vs 9", []string{"Ah", "Ad"}, "9s", true, true, true, ActionSplit},
		{"hard 11 vs 6 double", []string{"6h", "5d"}, "6s", false, true, true, ActionDouble},
		{"hard 11 vs 6 no double", []string{"6h", "5d"}, "6s", false, false, true, ActionHit},
		{"hard 16 vs A surrender", []string{"Th", "6d"}, "As", false, true, true, ActionSurrender},
		{"hard 16 vs A no surrender", []string{"Th", "6d"}, "As", false, true, false, ActionHit},
		{"hard 15 vs T surrender", []string{"Th", "5d"}, "Ks", false, true, true, ActionSurrender},
		{"hard 15 vs 9 no surrender", []string{"Th", "5d"}, "9s", false, true, true, ActionHit},
		{"soft 18 vs 9", []string{"Ah", "7d"}, "9s", false, false, false, ActionHit},
		{"soft 18 vs 8", []string{"Ah", "7d"}, "8s", false, false, false, ActionStand},
		{"soft 18 vs 3 double", []string{"Ah", "7d"}, "3s", false, true, false, ActionDouble},
		{"hard 17 vs A", []string{"Th", "7d"}, "As", false, false, false, ActionStand},
		{"hard 20 vs T", []string{"Th", "4d", "6c"}, "Ks", false, false, false, ActionStand},
		{"soft 17 vs 6 double", []string{"Ah", "6d"}, "6s", false, true, false, ActionDouble},
		{"soft 17 vs 2", []string{"Ah", "6d"}, "2s", false, true, false, ActionHit},
		{"soft 19 vs 6 double", []string{"Ah", "8d"}, "6s", false, true, false, ActionDouble},
		{"soft 19 vs 5", []string{"Ah", "8d"}, "5s", false, true, false, ActionStand},
		{"soft 20 vs 6", []string{"Ah", "9d"}, "6s", false, true, false, ActionStand},
		{"pair of eights vs T", []string{"8h", "8d"}, "Ks", true, true, false, ActionSplit},
		{"pair of tens vs 6", []string{"Th", "Td"}, "6s", true, true, false, ActionStand},
		{"pair of nines vs 7", []string{"9h", "9d"}, "7s", true, true, false, ActionStand},
		{"pair of nines vs 6", []string{"9h", "9d"}, "6s", true, true, false, ActionSplit},
		{"pair of nines vs A", []string{"9h", "9d"}, "As", true, true, false, ActionStand},
		{"pair of sevens vs 7", []string{"7h", "7d"}, "7s", true, true, false, ActionSplit},
		{"pair of sevens vs 8", []string{"7h", "7d"}, "8s", true, true, false, ActionHit},
		{"pair of sixes vs 6", []string{"6h", "6d"}, "6s", true, true, false, ActionSplit},
		{"pair of sixes vs 7", []string{"6h", "6d"}, "7s", true, true, false, ActionHit},
		{"pair of fives vs 9", []string{"5h", "5d"}, "9s", true, true, false, ActionDouble},
		{"pair of fives vs T", []string{"5h", "5d"}, "Ts", true, true, false, ActionHit},
		{"pair of fours vs 5", []string{"4h", "4d"}, "5s", true, true, false, ActionSplit},
		{"pair of fours vs 4", []string{"4h", "4d"}, "4s", true, true, false, ActionHit},
		{"pair of threes vs 7", []string{"3h", "3d"}, "7s", true, true, false, ActionSplit},
		{"pair of threes vs 8", []string{"3h", "3d"}, "8s", true, true, false, ActionHit},
		{"pair of twos vs 2", []string{"2h", "2d"}, "2s", true, true, false, ActionSplit},
		{"pair no split allowed", []string{"8h", "8d"}, "6s", false, true, false, ActionStand},
		{"hard 12 vs 3", []string{"Th", "2d"}, "3s", false, false, false, ActionHit},
		{"hard 12 vs 4", []string{"Th", "2d"}, "4s", false, false, false, ActionStand},
		{"hard 13 vs 2", []string{"Th", "3d"}, "2s", false, false, false, ActionStand},
		{"hard 16 vs 7", []string{"Th", "6d"}, "7s", false, false, false, ActionHit},
		{"hard 10 vs 9 double", []string{"6h", "4d"}, "9s", false, true, false, ActionDouble},
		{"hard 10 vs T", []string{"6h", "4d"}, "Ts", false, true, false, ActionHit},
		{"hard 9 vs 3 double", []string{"5h", "4d"}, "3s", false, true, false, ActionDouble},
		{"hard 9 vs 2", []string{"5h", "4d"}, "2s", false, true, false, ActionHit},
		{"soft 13 vs 5 double", []string{"Ah", "2d"}, "5s", false, true, false, ActionDouble},
		{"soft 13 vs 4", []string{"Ah", "2d"}, "4s", false, true, false, ActionHit},
		{"soft 15 vs 4 double", []string{"Ah", "4d"}, "4s", false, true, false, ActionDouble},
		{"soft 15 vs 3", []string{"Ah", "4d"}, "3s", false, true, false, ActionHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimalAction(cards(tt.player...), poker.NewCard(tt.upcard),
				tt.canSplit, tt.canDouble, tt.canSurrender)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The pair-of-eights surrender case: surrender never applies to pairs,
// splitting wins even against a ten.
func TestSurrenderExcludesPairs(t *testing.T) {
	got := OptimalAction(cards("8h", "8d"), poker.NewCard("Ts"), true, true, true)
	assert.Equal(t, ActionSplit, got)
}

// Soft 16 (A,5) is not a surrender hand even though it totals 16.
func TestSurrenderExcludesSoftSixteen(t *testing.T) {
	got := OptimalAction(cards("Ah", "5d"), poker.NewCard("Ts"), false, true, true)
	assert.Equal(t, ActionHit, got)
}

func TestOptimalActionIsPure(t *testing.T) {
	player := cards("Th", "6d")
	upcard := poker.NewCard("7s")
	first := OptimalAction(player, upcard, false, true, true)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, OptimalAction(player, upcard, false, true, true))
	}
}

func TestChartKey(t *testing.T) {
	tests := []struct {
		name   string
		player []string
		upcard string
		want   ChartCoords
	}{
		{"pair of aces vs king", []string{"Ah", "Ad"}, "Ks", ChartCoords{ChartPairs, "A,A", "T"}},
		{"pair of jacks vs ten", []string{"Jh", "Jd"}, "Ts", ChartCoords{ChartPairs, "T,T", "T"}},
		{"soft A6 vs 4", []string{"Ah", "6d"}, "4s", ChartCoords{ChartSoft, "A,6", "4"}},
		{"hard 16 vs 7", []string{"Th", "6d"}, "7s", ChartCoords{ChartHard, "16", "7"}},
		{"hard 17 collapses", []string{"Th", "7d"}, "2s", ChartCoords{ChartHard, "17+", "2"}},
		{"hard 21 collapses", []string{"Th", "7d", "4c"}, "2s", ChartCoords{ChartHard, "17+", "2"}},
		{"hard 6 collapses", []string{"2h", "4d"}, "9s", ChartCoords{ChartHard, "5-7", "9"}},
		{"soft 20 maps to A9", []string{"Ah", "9d"}, "6s", ChartCoords{ChartSoft, "A,9", "6"}},
		{"soft 21 has no cell", []string{"Ah", "4d", "6c"}, "6s", ChartCoords{}},
		{"busted hand has no cell", []string{"Th", "9d", "5c"}, "6s", ChartCoords{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChartKey(cards(tt.player...), poker.NewCard(tt.upcard))
			assert.Equal(t, tt.want, got)
		})
	}
}

// With the hole card hidden, highlight coordinates must come from the
// visible upcard (index 1), never the hole card.
func TestChartKeyUsesVisibleUpcard(t *testing.T) {
	dealer := cards("As", "8h")
	got := ChartKey(cards("Th", "6d"), dealer[1])
	assert.Equal(t, ChartCoords{ChartHard, "16", "8"}, got)
}
