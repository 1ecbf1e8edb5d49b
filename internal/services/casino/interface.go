package casino

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/andikahmad/warkop/internal/services/casino Service

// Service runs the card table games
type Service interface {
	// StartBlackjack deals a new round. An opening natural for either
	// side ends the round immediately.
	StartBlackjack(ctx context.Context, input *StartBlackjackInput) (*StartBlackjackOutput, error)

	// Hit draws one card for the player; a bust ends the round
	Hit(ctx context.Context, input *HitInput) (*HitOutput, error)

	// Stand ends the player's turn, plays out the dealer and settles the
	// round
	Stand(ctx context.Context, input *StandInput) (*StandOutput, error)

	// PlayQQ deals and settles a three-card QQ round in one call
	PlayQQ(ctx context.Context, input *PlayQQInput) (*PlayQQOutput, error)
}
