package cards

import (
	"math/rand"
	"strconv"
	"time"
)

// Suits and Ranks describe a standard 52-card deck. Suits never affect
// scoring in any of the games.
var (
	Suits = []string{"♠", "♥", "♦", "♣"}
	Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// Card represents a single playing card
type Card struct {
	Rank string
	Suit string
}

// String returns the card as rank followed by suit, e.g. "A♠"
func (c Card) String() string {
	return c.Rank + c.Suit
}

// BlackjackValue returns the card's blackjack value: J/Q/K count 10,
// an ace counts 11 before any soft adjustment
func (c Card) BlackjackValue() int {
	switch c.Rank {
	case "J", "Q", "K":
		return 10
	case "A":
		return 11
	default:
		v, _ := strconv.Atoi(c.Rank)
		return v
	}
}

// QQValue returns the card's value in the QQ game: 10/J/Q/K count 0,
// an ace counts 1
func (c Card) QQValue() int {
	switch c.Rank {
	case "10", "J", "Q", "K":
		return 0
	case "A":
		return 1
	default:
		v, _ := strconv.Atoi(c.Rank)
		return v
	}
}

// Config for a deck
type Config struct {
	// Number of combined 52-card decks in the shoe
	NumDecks int

	// Optional seed for testing
	Seed int64
}

// Deck is a shuffled shoe of one or more 52-card decks
type Deck struct {
	cards    []Card
	numDecks int
	random   *rand.Rand
}

// NewDeck builds a shoe of NumDecks × 52 cards, shuffled uniformly
func NewDeck(cfg *Config) *Deck {
	numDecks := 1
	var seed int64

	if cfg != nil {
		if cfg.NumDecks > 0 {
			numDecks = cfg.NumDecks
		}
		if cfg.Seed != 0 {
			seed = cfg.Seed
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d := &Deck{
		numDecks: numDecks,
		random:   rand.New(rand.NewSource(seed)),
	}
	d.reset()

	return d
}

// reset rebuilds the shoe from fresh full decks and shuffles it.
// Previously drawn cards are not tracked as a discard pile.
func (d *Deck) reset() {
	d.cards = make([]Card, 0, d.numDecks*52)
	for i := 0; i < d.numDecks; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
			}
		}
	}

	d.random.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw pops one card from the shoe. When fewer than 10 cards remain the
// shoe is rebuilt from a brand-new full deck before the draw.
func (d *Deck) Draw() Card {
	if len(d.cards) < 10 {
		d.reset()
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]

	return card
}

// Remaining returns the number of cards left in the shoe
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// HandValue calculates the blackjack total of a hand. Aces count 11 and
// are downgraded to 1 one at a time while the total exceeds 21. The soft
// flag is true while an ace is still counted as 11.
func HandValue(hand []Card) (total int, soft bool) {
	aces := 0

	for _, c := range hand {
		if c.Rank == "A" {
			aces++
		}
		total += c.BlackjackValue()
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total, aces > 0
}

// DealerShouldHit reports whether the dealer must draw another card.
// The dealer hits below 17 and hits soft 17.
func DealerShouldHit(total int, soft bool) bool {
	return total < 17 || (total == 17 && soft)
}

// IsNaturalBlackjack reports whether a hand is a natural: 21 with
// exactly two cards
func IsNaturalBlackjack(hand []Card) bool {
	if len(hand) != 2 {
		return false
	}
	total, _ := HandValue(hand)
	return total == 21
}

// QQHandValue returns the QQ value of a hand: the sum of the card
// values mod 10
func QQHandValue(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += c.QQValue()
	}
	return total % 10
}
