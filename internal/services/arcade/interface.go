package arcade

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/andikahmad/warkop/internal/services/arcade Service

// Service runs the per-channel mini-game sessions. At most one session
// of each kind may be live per channel.
type Service interface {
	// StartWordGuess opens a scrambled-word game in a channel
	StartWordGuess(ctx context.Context, input *StartWordGuessInput) (*StartWordGuessOutput, error)

	// StartImageGuess opens an emoji picture game in a channel
	StartImageGuess(ctx context.Context, input *StartImageGuessInput) (*StartImageGuessOutput, error)

	// BindPrompt attaches the sent prompt's message reference to a live
	// guessing session so replies can be matched to it
	BindPrompt(ctx context.Context, input *BindPromptInput) error

	// Guess checks an answer for the word or image game; a correct guess
	// awards points and ends the session in one step
	Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error)

	// RevealClue returns the hint for a live guessing session
	RevealClue(ctx context.Context, input *RevealClueInput) (*RevealClueOutput, error)

	// Surrender ends a guessing session and reveals the answer
	Surrender(ctx context.Context, input *SurrenderInput) (*SurrenderOutput, error)

	// StartTrivia opens a quiz question in a channel
	StartTrivia(ctx context.Context, input *StartTriviaInput) (*StartTriviaOutput, error)

	// AnswerTrivia checks a labeled choice against the live question
	AnswerTrivia(ctx context.Context, input *AnswerTriviaInput) (*AnswerTriviaOutput, error)

	// StartWordChain opens a word-chain game in a channel
	StartWordChain(ctx context.Context, input *StartWordChainInput) (*StartWordChainOutput, error)

	// SubmitChainWord validates and applies a word-chain submission
	SubmitChainWord(ctx context.Context, input *SubmitChainWordInput) (*SubmitChainWordOutput, error)

	// StopWordChain ends the word-chain game in a channel
	StopWordChain(ctx context.Context, input *StopWordChainInput) error
}
