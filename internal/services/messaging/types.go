package messaging

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for message selection, for testing
	Seed int64
}

// GetGuessResultMessageInput contains parameters for a guess result
type GetGuessResultMessageInput struct {
	// PlayerMention is the Discord mention of the guesser
	PlayerMention string

	// Answer is the word or phrase that was being guessed
	Answer string

	// Award is the number of points earned; only used when Correct
	Award int

	// Correct is whether the guess matched
	Correct bool
}

// GetGuessResultMessageOutput contains the selected message
type GetGuessResultMessageOutput struct {
	Message string
}

// GetHeistResultMessageInput contains parameters for a heist result
type GetHeistResultMessageInput struct {
	// RobberMention is the Discord mention of the robber
	RobberMention string

	// TargetMention is the Discord mention of the target
	TargetMention string

	// Amount is the number of points that changed hands
	Amount int

	// Success is whether the heist landed
	Success bool
}

// GetHeistResultMessageOutput contains the selected message
type GetHeistResultMessageOutput struct {
	Message string
}

// GetChainResultMessageInput contains parameters for a chain submission
type GetChainResultMessageInput struct {
	// PlayerMention is the Discord mention of the submitter
	PlayerMention string

	// Word is the cleaned submitted word
	Word string

	// NextLetter is the letter the next word must start with
	NextLetter string

	// Award is the number of points earned; only used when Accepted
	Award int

	// Accepted is whether the word extended the chain
	Accepted bool

	// Violation names the broken rule when not accepted
	Violation string
}

// GetChainResultMessageOutput contains the selected message
type GetChainResultMessageOutput struct {
	Message string
}
