package casino

import (
	"github.com/andikahmad/warkop/internal/cards"
	"github.com/andikahmad/warkop/internal/common/uuid"
	"github.com/rs/zerolog"
)

// BlackjackOutcome describes how a blackjack round ended
type BlackjackOutcome string

const (
	// OutcomePlayerBlackjack is a natural 21 on the player's opening hand
	OutcomePlayerBlackjack = BlackjackOutcome("player_blackjack")

	// OutcomeDealerBlackjack is a natural 21 on the dealer's opening hand
	OutcomeDealerBlackjack = BlackjackOutcome("dealer_blackjack")

	// OutcomePlayerBust means the player drew past 21
	OutcomePlayerBust = BlackjackOutcome("player_bust")

	// OutcomeDealerBust means the dealer drew past 21
	OutcomeDealerBust = BlackjackOutcome("dealer_bust")

	// OutcomePlayerWin means the player's total beat the dealer's
	OutcomePlayerWin = BlackjackOutcome("player_win")

	// OutcomePlayerLose means the dealer's total beat the player's
	OutcomePlayerLose = BlackjackOutcome("player_lose")

	// OutcomePush means both totals were equal
	OutcomePush = BlackjackOutcome("push")
)

// QQOutcome describes how a QQ round ended
type QQOutcome string

const (
	QQOutcomePlayerWin = QQOutcome("player_win")
	QQOutcomeDealerWin = QQOutcome("dealer_win")
	QQOutcomeTie       = QQOutcome("tie")
)

// Config holds configuration for the casino service
type Config struct {
	// UUID generates round IDs
	UUID uuid.UUID

	// Logger receives round lifecycle events
	Logger zerolog.Logger

	// Optional seed for every round's deck, for testing
	Seed int64
}

// StartBlackjackInput contains parameters for opening a blackjack round
type StartBlackjackInput struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string
}

// StartBlackjackOutput contains the opening deal
type StartBlackjackOutput struct {
	// RoundID identifies the round for Hit and Stand calls
	RoundID string

	// PlayerHand is the player's two opening cards
	PlayerHand []cards.Card

	// PlayerTotal is the blackjack value of the player's hand
	PlayerTotal int

	// PlayerSoft is true while an ace still counts as 11
	PlayerSoft bool

	// DealerUpCards are the dealer cards visible before the showdown
	DealerUpCards []cards.Card

	// Over is true when an opening natural ended the round immediately
	Over bool

	// Outcome is set when Over is true
	Outcome BlackjackOutcome

	// DealerHand is the dealer's full hand, revealed only when Over
	DealerHand []cards.Card

	// DealerTotal is the dealer's total, set only when Over
	DealerTotal int
}

// HitInput contains parameters for drawing a card
type HitInput struct {
	// RoundID identifies the round
	RoundID string

	// PlayerID is the acting player
	PlayerID string
}

// HitOutput contains the draw result
type HitOutput struct {
	// Card is the card just drawn
	Card cards.Card

	// PlayerHand is the player's hand after the draw
	PlayerHand []cards.Card

	// PlayerTotal is the blackjack value after the draw
	PlayerTotal int

	// PlayerSoft is true while an ace still counts as 11
	PlayerSoft bool

	// DealerUpCards are the dealer cards still visible mid-round
	DealerUpCards []cards.Card

	// Over is true when the draw busted the hand and ended the round
	Over bool

	// Outcome is set when Over is true
	Outcome BlackjackOutcome

	// DealerHand is the dealer's full hand, revealed only when Over
	DealerHand []cards.Card

	// DealerTotal is the dealer's total, set only when Over
	DealerTotal int
}

// StandInput contains parameters for ending the player's turn
type StandInput struct {
	// RoundID identifies the round
	RoundID string

	// PlayerID is the acting player
	PlayerID string
}

// StandOutput contains the showdown result
type StandOutput struct {
	// PlayerHand is the player's final hand
	PlayerHand []cards.Card

	// PlayerTotal is the player's final total
	PlayerTotal int

	// DealerHand is the dealer's final hand after playing out
	DealerHand []cards.Card

	// DealerTotal is the dealer's final total
	DealerTotal int

	// Outcome is how the round ended
	Outcome BlackjackOutcome
}

// PlayQQInput contains parameters for a QQ round
type PlayQQInput struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string
}

// PlayQQOutput contains the complete QQ round; the game has no turns
type PlayQQOutput struct {
	// PlayerHand is the player's three cards
	PlayerHand []cards.Card

	// PlayerValue is the player's mod-10 value
	PlayerValue int

	// DealerHand is the dealer's three cards
	DealerHand []cards.Card

	// DealerValue is the dealer's mod-10 value
	DealerValue int

	// Outcome is how the round ended
	Outcome QQOutcome
}
