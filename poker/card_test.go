package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	tests := []struct {
		ascii string
		rank  string
		suit  string
		value int
	}{
		{"Ah", "A", "h", 11},
		{"Kd", "K", "d", 10},
		{"Ts", "T", "s", 10},
		{"9c", "9", "c", 9},
		{"2s", "2", "s", 2},
	}
	for _, tt := range tests {
		card := NewCard(tt.ascii)
		assert.Equal(t, tt.rank, card.Rank, tt.ascii)
		assert.Equal(t, tt.suit, card.Suit, tt.ascii)
		assert.Equal(t, tt.value, card.Value, tt.ascii)
		assert.NotEmpty(t, card.ID, tt.ascii)
		assert.Equal(t, tt.ascii, card.String())
	}
}

func TestCardIDsUnique(t *testing.T) {
	c1 := NewCard("Ah")
	c2 := NewCard("Ah")
	assert.NotEqual(t, c1.ID, c2.ID, "same rank and suit must still get distinct ids")
}

func TestCardPredicates(t *testing.T) {
	assert.True(t, NewCard("As").IsAce())
	assert.False(t, NewCard("Ks").IsAce())
	assert.True(t, NewCard("Qd").IsTenValue())
	assert.True(t, NewCard("Th").IsTenValue())
	assert.False(t, NewCard("9h").IsTenValue())
}

func TestPrettyString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard("As").PrettyString())
	assert.Equal(t, "T♦", NewCard("Td").PrettyString())
}
