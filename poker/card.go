package poker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	strRanks = "23456789TJQKA"
	strSuits = "shdc"
)

var (
	prettySuits = map[uint8]string{
		's': "♠", // spades
		'h': "❤", // hearts
		'd': "♦", // diamonds
		'c': "♣", // clubs
	}
	rankValues = map[uint8]int{
		'2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
		'T': 10, 'J': 10, 'Q': 10, 'K': 10, 'A': 11,
	}
)

// Card is one physical card in a shoe. Rank is a single character from
// "23456789TJQKA" and Suit one of "shdc". Value is the blackjack point
// value with an ace counted as 11; hand totals demote aces as needed.
// ID is unique per physical card, so the same rank and suit can repeat
// across shoes without colliding.
type Card struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Value int    `json:"value"`
	ID    string `json:"id"`
}

// NewCard creates a card from its two-character ascii form, e.g. "Ah", "Td".
func NewCard(s string) Card {
	rank := s[0]
	suit := s[1]
	return Card{
		Rank:  string(rank),
		Suit:  string(suit),
		Value: rankValues[rank],
		ID:    uuid.New().String(),
	}
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

// IsAce reports whether this card is an ace.
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

// IsTenValue reports whether this card counts 10 (ten or face card).
func (c Card) IsTenValue() bool {
	return c.Value == 10
}

// PrettyString renders the card with a unicode suit symbol, e.g. "A♠".
func (c Card) PrettyString() string {
	if len(c.Suit) == 0 {
		return c.Rank
	}
	return fmt.Sprintf("%s%s", c.Rank, prettySuits[c.Suit[0]])
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", c.PrettyString())
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}

// CardsInAscii is a list of cards in their two-character form, used by
// scenario scripts.
type CardsInAscii []string

// Cards converts the ascii forms into freshly identified cards.
func (ca CardsInAscii) Cards() []Card {
	cards := make([]Card, len(ca))
	for i, s := range ca {
		cards[i] = NewCard(s)
	}
	return cards
}
