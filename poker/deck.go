package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// ReshuffleThreshold is the minimum shoe size dealt from. A shoe that
// drops below this is wholesale replaced with a freshly shuffled single
// deck before the next card comes off.
const ReshuffleThreshold = 20

// CardsPerDeck is the size of one 52-card deck.
const CardsPerDeck = 52

// Shoe is the working stack of cards a round deals from. Cards come off
// the top, which is the end of the slice.
type Shoe struct {
	cards   []Card
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewShoe builds numDecks full decks in construction order, unshuffled.
// numDecks below 1 is treated as 1.
func NewShoe(numDecks int) *Shoe {
	if numDecks < 1 {
		numDecks = 1
	}
	cards := make([]Card, 0, numDecks*CardsPerDeck)
	for d := 0; d < numDecks; d++ {
		for i := range strRanks {
			for j := range strSuits {
				cards = append(cards, NewCard(string(strRanks[i])+string(strSuits[j])))
			}
		}
	}
	return &Shoe{cards: cards, randGen: rand.New(newSeed())}
}

// Shuffle performs a Fisher-Yates shuffle and returns the shoe for
// chaining.
func (s *Shoe) Shuffle() *Shoe {
	if s.randGen == nil {
		s.randGen = rand.New(newSeed())
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		loc := s.randGen.Intn(i + 1)
		s.cards[i], s.cards[loc] = s.cards[loc], s.cards[i]
	}
	return s
}

// Deal removes and returns the top card. A shoe below the reshuffle
// threshold is first replaced by a freshly shuffled full deck; the old
// remainder is discarded, not refilled.
func (s *Shoe) Deal() Card {
	if len(s.cards) < ReshuffleThreshold {
		s.cards = NewShoe(1).Shuffle().cards
	}
	if len(s.cards) == 0 {
		// Unreachable with a sane deck builder. Synthesize a shoe rather
		// than fail the round.
		s.cards = NewShoe(1).cards
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card
}

// Size returns the number of cards remaining.
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (s *Shoe) Cards() []Card {
	cards := make([]Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// ShoeFromCards builds a shoe that deals the given cards in order. The
// first element of next is the first card dealt.
func ShoeFromCards(next []Card) *Shoe {
	cards := make([]Card, len(next))
	for i, c := range next {
		cards[len(next)-1-i] = c
	}
	return &Shoe{cards: cards, randGen: rand.New(newSeed())}
}

// ShoeFromScript builds a shoe for a scripted round. The first four cards
// dealt are player, dealer, player, dealer from the two-card seeds, then
// the draw list in order, then the shuffled remainder of a single deck
// with all scripted cards excluded.
func ShoeFromScript(playerCards CardsInAscii, dealerCards CardsInAscii, draws CardsInAscii) *Shoe {
	scripted := make([]Card, 0, len(playerCards)+len(dealerCards)+len(draws))
	for i := 0; i < 2; i++ {
		if i < len(playerCards) {
			scripted = append(scripted, NewCard(playerCards[i]))
		}
		if i < len(dealerCards) {
			scripted = append(scripted, NewCard(dealerCards[i]))
		}
	}
	for _, s := range draws {
		scripted = append(scripted, NewCard(s))
	}

	used := make(map[string]int)
	for _, c := range scripted {
		used[c.Rank+c.Suit]++
	}
	remainder := NewShoe(1).Shuffle()
	tail := make([]Card, 0, CardsPerDeck)
	for _, c := range remainder.cards {
		if used[c.Rank+c.Suit] > 0 {
			used[c.Rank+c.Suit]--
			continue
		}
		tail = append(tail, c)
	}

	// The top of the shoe is the end of the slice, so the scripted cards
	// go last in reverse deal order.
	cards := make([]Card, 0, len(tail)+len(scripted))
	cards = append(cards, tail...)
	for i := len(scripted) - 1; i >= 0; i-- {
		cards = append(cards, scripted[i])
	}
	return &Shoe{cards: cards, randGen: rand.New(newSeed())}
}
