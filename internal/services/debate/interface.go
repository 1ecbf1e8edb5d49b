package debate

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/andikahmad/warkop/internal/services/debate Notifier

// Notifier delivers debate announcements to a channel
type Notifier interface {
	// Send posts a message to the channel
	Send(ctx context.Context, channelID string, content string) error
}

// Service referees structured debates, one per channel
type Service interface {
	// Define creates a session in the channel, overwriting any earlier
	// definition
	Define(ctx context.Context, input *DefineInput) (*DefineOutput, error)

	// Join places a user on a side while the debate is not running; a
	// user already on the other side is moved
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Start launches the turn runner, cancelling any runner still
	// driving this channel
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// LogPoint records an argument point for the user's side
	LogPoint(ctx context.Context, input *LogPointInput) (*LogPointOutput, error)

	// Summary returns a snapshot of the debate
	Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)

	// Stop cancels the runner and removes the session
	Stop(ctx context.Context, input *StopInput) error
}
