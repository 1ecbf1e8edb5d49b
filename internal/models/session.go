package models

// SessionKind discriminates the mini-game session variants
type SessionKind string

const (
	// SessionKindWordGuess is the scrambled-word guessing game
	SessionKindWordGuess SessionKind = "word_guess"

	// SessionKindImageGuess is the emoji picture guessing game
	SessionKindImageGuess SessionKind = "image_guess"

	// SessionKindTrivia is the four-choice quiz
	SessionKindTrivia SessionKind = "trivia"

	// SessionKindWordChain is the last-letter word chain game
	SessionKindWordChain SessionKind = "word_chain"
)

// WordGuessSession is the state of an active scrambled-word game
type WordGuessSession struct {
	// Answer is the lowercase solution
	Answer string

	// PromptRef is the message reference of the prompt, used to match
	// clue and surrender replies
	PromptRef string
}

// ImageGuessSession is the state of an active emoji picture game
type ImageGuessSession struct {
	// Answer is the lowercase solution
	Answer string

	// Emojis is the emoji sequence shown as the prompt
	Emojis string

	// PromptRef is the message reference of the prompt
	PromptRef string
}

// TriviaSession is the state of an active quiz question
type TriviaSession struct {
	// Question is the prompt text
	Question string

	// Options maps the four labels to their choices
	Options map[string]string

	// CorrectLabel is the winning label
	CorrectLabel string
}

// WordChainSession is the state of an active word-chain game
type WordChainSession struct {
	// LastWord is the most recently accepted word
	LastWord string

	// UsedWords is the set of all accepted words
	UsedWords map[string]struct{}
}

// GameSession is the tagged variant stored in the session registry.
// Exactly one of the state fields matching Kind is set.
type GameSession struct {
	Kind SessionKind

	WordGuess  *WordGuessSession
	ImageGuess *ImageGuessSession
	Trivia     *TriviaSession
	WordChain  *WordChainSession
}
