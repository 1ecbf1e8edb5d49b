package arcade

import (
	"github.com/andikahmad/warkop/internal/models"
	"github.com/andikahmad/warkop/internal/services/economy"
	"github.com/andikahmad/warkop/internal/words"
	"github.com/rs/zerolog"
)

// Point awards per game
const (
	WordGuessAward  = 10
	ImageGuessAward = 10
	TriviaAward     = 12
	ChainWordAward  = 2
)

// ChainViolation names the rule a rejected word-chain submission broke
type ChainViolation string

const (
	// ChainViolationTooShort: the cleaned word has fewer than 3 letters
	ChainViolationTooShort ChainViolation = "too_short"

	// ChainViolationAlreadyUsed: the word was played earlier this game
	ChainViolationAlreadyUsed ChainViolation = "already_used"

	// ChainViolationWrongStart: the word does not start with the last
	// letter of the previous word
	ChainViolationWrongStart ChainViolation = "wrong_start"
)

// Config holds configuration for the arcade service
type Config struct {
	// Economy awards points for correct answers
	Economy economy.Service

	// Generator produces prompts and scrambles
	Generator words.Generator

	// Logger receives session lifecycle events
	Logger zerolog.Logger
}

// StartWordGuessInput contains parameters for opening a word game
type StartWordGuessInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string
}

// StartWordGuessOutput contains the opened word game's prompt
type StartWordGuessOutput struct {
	// Scrambled is the shuffled word to show players
	Scrambled string
}

// StartImageGuessInput contains parameters for opening a picture game
type StartImageGuessInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string
}

// StartImageGuessOutput contains the opened picture game's prompt
type StartImageGuessOutput struct {
	// Emojis is the emoji sequence to show players
	Emojis string
}

// BindPromptInput contains parameters for attaching a prompt reference
type BindPromptInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string

	// Kind is the session to bind; word or image guess
	Kind models.SessionKind

	// PromptRef is the message reference of the sent prompt
	PromptRef string
}

// GuessInput contains parameters for checking an answer
type GuessInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string

	// Kind selects the word or image game
	Kind models.SessionKind

	// UserID is the guessing player
	UserID string

	// Guess is the submitted answer; compared case-insensitively after
	// trimming surrounding whitespace
	Guess string
}

// GuessOutput contains the result of an answer check
type GuessOutput struct {
	// Correct is true when the guess matched and the session ended
	Correct bool

	// Award is the number of points granted on a correct guess
	Award int

	// NewBalance is the guesser's balance after the award
	NewBalance int
}

// RevealClueInput contains parameters for requesting a hint
type RevealClueInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string

	// PromptRef optionally pins the request to a specific prompt
	// message; when set it must match the live session's prompt
	PromptRef string
}

// RevealClueOutput contains the hint for the live guessing session
type RevealClueOutput struct {
	// Kind is the session the clue belongs to
	Kind models.SessionKind

	// WordClue is the masked word hint, set for word sessions
	WordClue string

	// FirstLetter and LetterCount describe the answer, set for image
	// sessions
	FirstLetter string
	LetterCount int
}

// SurrenderInput contains parameters for giving up a guessing game
type SurrenderInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string

	// PromptRef optionally pins the request to a specific prompt message
	PromptRef string
}

// SurrenderOutput contains the revealed answer
type SurrenderOutput struct {
	// Kind is the session that ended
	Kind models.SessionKind

	// Answer is the revealed solution
	Answer string
}

// StartTriviaInput contains parameters for opening a quiz question
type StartTriviaInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string
}

// StartTriviaOutput contains the opened question
type StartTriviaOutput struct {
	// Question is the prompt text
	Question string

	// Options maps the labels to their choices
	Options map[string]string

	// Labels is the fixed display order of the options
	Labels []string
}

// AnswerTriviaInput contains parameters for answering the live question
type AnswerTriviaInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string

	// UserID is the answering player
	UserID string

	// Choice is the submitted label
	Choice string
}

// AnswerTriviaOutput contains the result of a trivia answer
type AnswerTriviaOutput struct {
	// Correct is true when the choice matched and the session ended
	Correct bool

	// Award is the number of points granted on a correct answer
	Award int

	// NewBalance is the answerer's balance after the award
	NewBalance int
}

// StartWordChainInput contains parameters for opening a word chain
type StartWordChainInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string
}

// StartWordChainOutput contains the opened chain's seed word
type StartWordChainOutput struct {
	// Seed is the starting word
	Seed string
}

// SubmitChainWordInput contains parameters for a chain submission
type SubmitChainWordInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string

	// UserID is the submitting player
	UserID string

	// Word is the raw submission; normalized before validation
	Word string
}

// SubmitChainWordOutput contains the result of a chain submission
type SubmitChainWordOutput struct {
	// Accepted is true when the word passed every rule
	Accepted bool

	// Violation names the broken rule when Accepted is false
	Violation ChainViolation

	// Word is the normalized submission
	Word string

	// RequiredLetter is the letter the word had to start with
	RequiredLetter string

	// NextLetter is the letter the next word must start with, set on
	// acceptance
	NextLetter string

	// Award is the number of points granted on acceptance
	Award int

	// NewBalance is the submitter's balance after the award
	NewBalance int
}

// StopWordChainInput contains parameters for ending a word chain
type StopWordChainInput struct {
	// ChannelID is the Discord channel hosting the game
	ChannelID string
}
