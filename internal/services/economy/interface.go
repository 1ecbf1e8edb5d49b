package economy

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/andikahmad/warkop/internal/services/economy Service

// Service manages the point economy shared by all games
type Service interface {
	// GetBalance returns a user's balance, lazily creating the account
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// AddPoints adjusts a balance by a delta, clamping at zero
	AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error)

	// Transfer moves points between users, clamped to the sender's balance
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// SetCooldown stores an absolute cooldown expiry for a user
	SetCooldown(ctx context.Context, input *SetCooldownInput) error

	// CooldownRemaining returns the seconds left on a cooldown
	CooldownRemaining(ctx context.Context, input *CooldownRemainingInput) (*CooldownRemainingOutput, error)

	// Heist attempts to steal points from another user
	Heist(ctx context.Context, input *HeistInput) (*HeistOutput, error)

	// GetLeaderboard returns the top balances
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
