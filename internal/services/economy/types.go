package economy

import (
	"github.com/andikahmad/warkop/internal/common/clock"
	"github.com/andikahmad/warkop/internal/repositories/ledger"
	"github.com/rs/zerolog"
)

// Config holds configuration for the economy service
type Config struct {
	// LedgerRepo persists account snapshots
	LedgerRepo ledger.Repository

	// Clock is the time source for cooldown expiry
	Clock clock.Clock

	// Logger receives persistence failure events
	Logger zerolog.Logger

	// Optional seed for the heist roll, for testing
	Seed int64
}

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	// UserID is the Discord user ID of the account owner
	UserID string
}

// GetBalanceOutput contains the balance read result
type GetBalanceOutput struct {
	// Points is the current balance
	Points int
}

// AddPointsInput contains parameters for adjusting a balance
type AddPointsInput struct {
	// UserID is the Discord user ID of the account owner
	UserID string

	// Delta is the signed adjustment; the resulting balance is clamped
	// at zero
	Delta int
}

// AddPointsOutput contains the adjustment result
type AddPointsOutput struct {
	// NewBalance is the balance after the adjustment
	NewBalance int
}

// TransferInput contains parameters for moving points between users
type TransferInput struct {
	// FromUserID is the sender
	FromUserID string

	// ToUserID is the recipient
	ToUserID string

	// Amount is the requested amount; the actual amount moved is clamped
	// to the sender's balance
	Amount int
}

// TransferOutput contains the transfer result
type TransferOutput struct {
	// Moved is the amount actually transferred; may be zero
	Moved int
}

// SetCooldownInput contains parameters for storing a cooldown
type SetCooldownInput struct {
	// UserID is the Discord user ID of the account owner
	UserID string

	// Key identifies the cooldown, e.g. "heist"
	Key string

	// DurationSeconds is how long the cooldown lasts from now
	DurationSeconds int
}

// CooldownRemainingInput contains parameters for reading a cooldown
type CooldownRemainingInput struct {
	// UserID is the Discord user ID of the account owner
	UserID string

	// Key identifies the cooldown
	Key string
}

// CooldownRemainingOutput contains the cooldown read result
type CooldownRemainingOutput struct {
	// Seconds is the time left; zero when expired or never set
	Seconds int
}

// HeistInput contains parameters for a heist attempt
type HeistInput struct {
	// RobberID is the user attempting the heist
	RobberID string

	// TargetID is the user being robbed
	TargetID string
}

// HeistOutput contains the heist result
type HeistOutput struct {
	// Success is true when the heist landed
	Success bool

	// Amount is the number of points that changed hands: loot on
	// success, penalty paid to the target on failure
	Amount int

	// RobberBalance is the robber's balance after the attempt
	RobberBalance int

	// TargetBalance is the target's balance after the attempt
	TargetBalance int
}

// GetLeaderboardInput contains parameters for the leaderboard query
type GetLeaderboardInput struct {
	// Limit is the maximum number of entries to return
	Limit int
}

// LeaderboardEntry is one row of the leaderboard
type LeaderboardEntry struct {
	// UserID is the Discord user ID of the account owner
	UserID string

	// Points is the account balance
	Points int
}

// GetLeaderboardOutput contains the leaderboard query result
type GetLeaderboardOutput struct {
	// Entries are ordered by balance, highest first
	Entries []LeaderboardEntry
}
