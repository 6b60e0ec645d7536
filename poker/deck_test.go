package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	shoe := NewShoe(1)
	require.Equal(t, 52, shoe.Size())

	ranks := make(map[string]int)
	suits := make(map[string]int)
	ids := make(map[string]bool)
	for _, c := range shoe.Cards() {
		ranks[c.Rank]++
		suits[c.Suit]++
		assert.False(t, ids[c.ID], "duplicate card id in fresh shoe")
		ids[c.ID] = true
	}
	assert.Len(t, ranks, 13)
	assert.Len(t, suits, 4)
	for rank, n := range ranks {
		assert.Equal(t, 4, n, "rank %s", rank)
	}
}

func TestDealRemovesCards(t *testing.T) {
	shoe := NewShoe(1).Shuffle()
	dealt := make(map[string]bool)
	for i := 0; i < 30; i++ {
		card := shoe.Deal()
		assert.False(t, dealt[card.ID], "card dealt twice")
		dealt[card.ID] = true
	}
	require.Equal(t, 22, shoe.Size())
	for _, c := range shoe.Cards() {
		assert.False(t, dealt[c.ID], "dealt card still in shoe")
	}
}

func TestReshuffleBelowThreshold(t *testing.T) {
	shoe := NewShoe(1).Shuffle()
	for i := 0; i < 33; i++ {
		shoe.Deal()
	}
	require.Equal(t, 19, shoe.Size())
	// Next deal replaces the remainder with a fresh deck first.
	shoe.Deal()
	assert.Equal(t, 51, shoe.Size())
}

func TestShoeFromScriptDealOrder(t *testing.T) {
	shoe := ShoeFromScript(
		CardsInAscii{"Ah", "Kd"},
		CardsInAscii{"9s", "7c"},
		CardsInAscii{"5h", "2d"},
	)
	// New-round order: player, dealer, player, dealer, then the draws.
	expected := []string{"Ah", "9s", "Kd", "7c", "5h", "2d"}
	for _, want := range expected {
		card := shoe.Deal()
		assert.Equal(t, want, card.String())
	}
	// Scripted cards are excluded from the remainder.
	assert.Equal(t, 52-len(expected), shoe.Size())
	for _, c := range shoe.Cards() {
		for _, want := range expected {
			assert.NotEqual(t, want, c.String())
		}
	}
}

func TestMultiDeckShoe(t *testing.T) {
	shoe := NewShoe(2)
	assert.Equal(t, 104, shoe.Size())
}
