package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGuessResultMessage returns a message for a guessing-game answer
	GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error)

	// GetHeistResultMessage returns a message for a heist attempt
	GetHeistResultMessage(ctx context.Context, input *GetHeistResultMessageInput) (*GetHeistResultMessageOutput, error)

	// GetChainResultMessage returns a message for a word-chain submission
	GetChainResultMessage(ctx context.Context, input *GetChainResultMessageInput) (*GetChainResultMessageOutput, error)
}
