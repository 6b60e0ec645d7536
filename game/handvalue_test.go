package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"voyager.com/trainer/poker"
)

func cards(asciis ...string) []poker.Card {
	return poker.CardsInAscii(asciis).Cards()
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		want  int
	}{
		{"empty", nil, 0},
		{"simple", []string{"5h", "9d"}, 14},
		{"faces count ten", []string{"Kh", "Qd"}, 20},
		{"blackjack", []string{"Ah", "Kd"}, 21},
		{"soft total", []string{"Ah", "6d"}, 17},
		{"ace demotes once", []string{"Ah", "6d", "9c"}, 16},
		{"two aces", []string{"Ah", "Ad"}, 12},
		{"all four aces", []string{"Ah", "Ad", "Ac", "As"}, 14},
		{"bust", []string{"Th", "9d", "5c"}, 24},
		{"ace saves then busts", []string{"Ah", "Th", "5d", "9c"}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(cards(tt.cards...)))
		})
	}
}

func TestIsSoft(t *testing.T) {
	assert.True(t, IsSoft(cards("Ah", "6d")))
	assert.True(t, IsSoft(cards("Ah", "Ad")))
	assert.True(t, IsSoft(cards("Ah", "3d", "4c")))
	assert.False(t, IsSoft(cards("Th", "7d")))
	assert.False(t, IsSoft(cards("Ah", "6d", "9c")), "demoted ace is hard")
	assert.False(t, IsSoft(cards("Ah", "Th", "5d", "9c")), "busted hand is never soft")
	assert.False(t, IsSoft(nil))
}

func TestScoreText(t *testing.T) {
	assert.Equal(t, "17 (Soft)", ScoreText(cards("Ah", "6d")))
	assert.Equal(t, "17", ScoreText(cards("Th", "7d")))
	assert.Equal(t, "24", ScoreText(cards("Th", "9d", "5c")))
}
