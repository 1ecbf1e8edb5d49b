package words

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// WordBank holds the answers used by the guessing and word-chain games
var WordBank = []string{
	"komputer", "discord", "python", "internet", "keyboard", "monitor",
	"program", "database", "jaringan", "teknologi", "aplikasi", "algoritma",
}

// EmojiClue pairs an answer with its emoji hint sequence
type EmojiClue struct {
	Answer string
	Emojis string
}

// EmojiClues holds the picture-guess prompts
var EmojiClues = []EmojiClue{
	{Answer: "pizza", Emojis: "🍕🧀🍅"},
	{Answer: "hujan", Emojis: "☁️🌧️☔"},
	{Answer: "kucing", Emojis: "🐱🐾🐟"},
	{Answer: "pantai", Emojis: "🏖️🌊☀️"},
	{Answer: "sekolah", Emojis: "🏫📚📝"},
	{Answer: "pesawat", Emojis: "✈️☁️🧳"},
	{Answer: "kopi", Emojis: "☕🌙💻"},
	{Answer: "rumah", Emojis: "🏠🛋️🚪"},
}

// TriviaLabels is the fixed answer-label order for trivia questions
var TriviaLabels = []string{"A", "B", "C", "D"}

// TriviaQuestion is a four-choice quiz question
type TriviaQuestion struct {
	Question string
	Options  map[string]string
	Answer   string
}

// TriviaBank holds the quiz questions
var TriviaBank = []TriviaQuestion{
	{
		Question: "Planet terbesar di tata surya adalah...",
		Options:  map[string]string{"A": "Mars", "B": "Jupiter", "C": "Bumi", "D": "Saturnus"},
		Answer:   "B",
	},
	{
		Question: "Bahasa yang dipakai bot ini adalah...",
		Options:  map[string]string{"A": "Java", "B": "Go", "C": "Python", "D": "Rust"},
		Answer:   "B",
	},
	{
		Question: "Siapa penemu lampu pijar yang populer secara komersial?",
		Options:  map[string]string{"A": "Nikola Tesla", "B": "Thomas Edison", "C": "Albert Einstein", "D": "Galileo Galilei"},
		Answer:   "B",
	},
	{
		Question: "Hasil dari 9 x 8 adalah...",
		Options:  map[string]string{"A": "72", "B": "81", "C": "64", "D": "69"},
		Answer:   "A",
	},
}

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/andikahmad/warkop/internal/words Generator

// Generator produces prompts for the word games
type Generator interface {
	// PickWord returns a random answer from the word bank
	PickWord() string

	// PickEmojiClue returns a random picture-guess prompt
	PickEmojiClue() EmojiClue

	// PickTrivia returns a random quiz question
	PickTrivia() TriviaQuestion

	// Scramble returns a shuffled permutation of the word
	Scramble(word string) string
}

// Config for the word generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultGenerator implements Generator using a seeded random source
type DefaultGenerator struct {
	random *rand.Rand
}

// New creates a new word generator
func New(cfg *Config) *DefaultGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultGenerator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// PickWord returns a random answer from the word bank
func (g *DefaultGenerator) PickWord() string {
	return WordBank[g.random.Intn(len(WordBank))]
}

// PickEmojiClue returns a random picture-guess prompt
func (g *DefaultGenerator) PickEmojiClue() EmojiClue {
	return EmojiClues[g.random.Intn(len(EmojiClues))]
}

// PickTrivia returns a random quiz question
func (g *DefaultGenerator) PickTrivia() TriviaQuestion {
	return TriviaBank[g.random.Intn(len(TriviaBank))]
}

// Scramble returns a permutation of word that differs from the original
// case-insensitively. Up to 10 shuffles are attempted; if none produces
// a different spelling the last candidate is returned. Words shorter
// than 2 runes are returned unchanged.
func (g *DefaultGenerator) Scramble(word string) string {
	chars := []rune(word)
	if len(chars) < 2 {
		return word
	}

	for attempt := 0; attempt < 10; attempt++ {
		g.random.Shuffle(len(chars), func(i, j int) {
			chars[i], chars[j] = chars[j], chars[i]
		})

		candidate := string(chars)
		if !strings.EqualFold(candidate, word) {
			return candidate
		}
	}

	return string(chars)
}

// Clue builds the masked hint for an answer: first and last letter kept,
// interior masked, letter count appended, e.g. "k______r (8 huruf)".
// Answers of two runes or fewer are returned as-is.
func Clue(answer string) string {
	runes := []rune(answer)
	if len(runes) <= 2 {
		return answer
	}

	middle := strings.Repeat("_", len(runes)-2)
	return fmt.Sprintf("%c%s%c (%d huruf)", runes[0], middle, runes[len(runes)-1], len(runes))
}

// CleanWord normalizes a word-chain submission: trimmed, lowercased,
// letters only
func CleanWord(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(word)) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
