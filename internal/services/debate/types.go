package debate

import (
	"github.com/andikahmad/warkop/internal/common/clock"
	"github.com/andikahmad/warkop/internal/models"
	"github.com/rs/zerolog"
)

// Config holds configuration for the debate service
type Config struct {
	// Clock paces the turn timer
	Clock clock.Clock

	// Notifier delivers turn announcements to the channel
	Notifier Notifier

	// Logger receives runner lifecycle events
	Logger zerolog.Logger
}

// DefineInput contains parameters for creating a debate session
type DefineInput struct {
	// GuildID is the Discord server
	GuildID string

	// ChannelID is where the debate runs
	ChannelID string

	// Topic is the statement to debate
	Topic string

	// TurnSeconds is the speaking time per turn, minimum 10
	TurnSeconds int

	// Rounds is the number of full pro/kontra cycles, minimum 1
	Rounds int
}

// DefineOutput contains the session creation result
type DefineOutput struct {
	// Replaced is true when an earlier definition was overwritten
	Replaced bool
}

// JoinInput contains parameters for joining a side
type JoinInput struct {
	// ChannelID identifies the debate
	ChannelID string

	// UserID is the joining participant
	UserID string

	// Side is "pro" or "kontra", case-insensitive
	Side string
}

// JoinOutput contains the join result
type JoinOutput struct {
	// Side is the roster the user ended up on
	Side models.DebateSide
}

// StartInput contains parameters for launching the turn runner
type StartInput struct {
	// ChannelID identifies the debate
	ChannelID string
}

// StartOutput contains the launch result
type StartOutput struct {
	// Replaced is true when a still-running runner was cancelled first
	Replaced bool
}

// LogPointInput contains parameters for recording an argument point
type LogPointInput struct {
	// ChannelID identifies the debate
	ChannelID string

	// UserID is the participant logging the point
	UserID string

	// Note is the free-text argument summary
	Note string
}

// LogPointOutput contains the point logging result
type LogPointOutput struct {
	// Side is the roster the point was credited to
	Side models.DebateSide
}

// SummaryInput contains parameters for the summary query
type SummaryInput struct {
	// ChannelID identifies the debate
	ChannelID string
}

// SummaryOutput contains a snapshot of the debate
type SummaryOutput struct {
	// Topic is the statement being debated
	Topic string

	// Pro and Kontra are the rosters in join order
	Pro    []string
	Kontra []string

	// ProPoints and KontraPoints are the logged point counts per side
	ProPoints    int
	KontraPoints int

	// Running is true while the turn runner is live
	Running bool
}

// StopInput contains parameters for ending a debate
type StopInput struct {
	// ChannelID identifies the debate
	ChannelID string
}
