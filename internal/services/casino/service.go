package casino

import (
	"context"
	"sync"

	"github.com/andikahmad/warkop/internal/cards"
	"github.com/andikahmad/warkop/internal/common/uuid"
	"github.com/rs/zerolog"
)

// blackjackRound tracks one live blackjack game
type blackjackRound struct {
	PlayerID   string
	Deck       *cards.Deck
	PlayerHand []cards.Card
	DealerHand []cards.Card
}

// service implements the Service interface
type service struct {
	uuider uuid.UUID
	logger zerolog.Logger
	seed   int64

	// mu serializes round access; settled rounds are removed before the
	// lock is released
	mu     sync.Mutex
	rounds map[string]*blackjackRound
}

// New creates a new casino service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		uuider: cfg.UUID,
		logger: cfg.Logger,
		seed:   cfg.Seed,
		rounds: make(map[string]*blackjackRound),
	}, nil
}

// StartBlackjack deals a new round from a fresh single deck
func (s *service) StartBlackjack(ctx context.Context, input *StartBlackjackInput) (*StartBlackjackOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := cards.NewDeck(&cards.Config{NumDecks: 1, Seed: s.seed})

	round := &blackjackRound{
		PlayerID:   input.PlayerID,
		Deck:       deck,
		PlayerHand: []cards.Card{deck.Draw(), deck.Draw()},
		DealerHand: []cards.Card{deck.Draw(), deck.Draw()},
	}

	playerTotal, playerSoft := cards.HandValue(round.PlayerHand)

	out := &StartBlackjackOutput{
		PlayerHand:  round.PlayerHand,
		PlayerTotal: playerTotal,
		PlayerSoft:  playerSoft,
		// The dealer's first card stays face down
		DealerUpCards: round.DealerHand[1:],
	}

	// An opening natural for either side settles the round before any
	// hit or stand; the player's natural is checked first
	if cards.IsNaturalBlackjack(round.PlayerHand) {
		dealerTotal, _ := cards.HandValue(round.DealerHand)
		out.Over = true
		out.Outcome = OutcomePlayerBlackjack
		out.DealerHand = round.DealerHand
		out.DealerTotal = dealerTotal
		return out, nil
	}

	if cards.IsNaturalBlackjack(round.DealerHand) {
		dealerTotal, _ := cards.HandValue(round.DealerHand)
		out.Over = true
		out.Outcome = OutcomeDealerBlackjack
		out.DealerHand = round.DealerHand
		out.DealerTotal = dealerTotal
		return out, nil
	}

	roundID := s.uuider.NewUUID()
	s.rounds[roundID] = round
	out.RoundID = roundID

	s.logger.Debug().Str("round_id", roundID).Str("player_id", input.PlayerID).Msg("blackjack round started")

	return out, nil
}

// Hit draws one card for the player
func (s *service) Hit(ctx context.Context, input *HitInput) (*HitOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, err := s.getRoundLocked(input.RoundID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	card := round.Deck.Draw()
	round.PlayerHand = append(round.PlayerHand, card)

	playerTotal, playerSoft := cards.HandValue(round.PlayerHand)

	out := &HitOutput{
		Card:          card,
		PlayerHand:    round.PlayerHand,
		PlayerTotal:   playerTotal,
		PlayerSoft:    playerSoft,
		DealerUpCards: round.DealerHand[1:],
	}

	if playerTotal > 21 {
		dealerTotal, _ := cards.HandValue(round.DealerHand)
		out.Over = true
		out.Outcome = OutcomePlayerBust
		out.DealerHand = round.DealerHand
		out.DealerTotal = dealerTotal
		delete(s.rounds, input.RoundID)
	}

	return out, nil
}

// Stand plays out the dealer and settles the round
func (s *service) Stand(ctx context.Context, input *StandInput) (*StandOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, err := s.getRoundLocked(input.RoundID, input.PlayerID)
	if err != nil {
		return nil, err
	}

	dealerTotal, dealerSoft := cards.HandValue(round.DealerHand)
	for cards.DealerShouldHit(dealerTotal, dealerSoft) {
		round.DealerHand = append(round.DealerHand, round.Deck.Draw())
		dealerTotal, dealerSoft = cards.HandValue(round.DealerHand)
	}

	playerTotal, _ := cards.HandValue(round.PlayerHand)

	var outcome BlackjackOutcome
	switch {
	case dealerTotal > 21:
		outcome = OutcomeDealerBust
	case playerTotal > dealerTotal:
		outcome = OutcomePlayerWin
	case playerTotal < dealerTotal:
		outcome = OutcomePlayerLose
	default:
		outcome = OutcomePush
	}

	delete(s.rounds, input.RoundID)

	return &StandOutput{
		PlayerHand:  round.PlayerHand,
		PlayerTotal: playerTotal,
		DealerHand:  round.DealerHand,
		DealerTotal: dealerTotal,
		Outcome:     outcome,
	}, nil
}

// getRoundLocked looks up a live round and checks ownership. Callers
// must hold mu.
func (s *service) getRoundLocked(roundID, playerID string) (*blackjackRound, error) {
	round, exists := s.rounds[roundID]
	if !exists {
		return nil, ErrRoundNotFound
	}

	if round.PlayerID != playerID {
		return nil, ErrNotYourRound
	}

	return round, nil
}

// PlayQQ deals three cards each and settles immediately
func (s *service) PlayQQ(ctx context.Context, input *PlayQQInput) (*PlayQQOutput, error) {
	deck := cards.NewDeck(&cards.Config{NumDecks: 1, Seed: s.seed})

	playerHand := []cards.Card{deck.Draw(), deck.Draw(), deck.Draw()}
	dealerHand := []cards.Card{deck.Draw(), deck.Draw(), deck.Draw()}

	playerValue := cards.QQHandValue(playerHand)
	dealerValue := cards.QQHandValue(dealerHand)

	var outcome QQOutcome
	switch {
	case playerValue > dealerValue:
		outcome = QQOutcomePlayerWin
	case playerValue < dealerValue:
		outcome = QQOutcomeDealerWin
	default:
		outcome = QQOutcomeTie
	}

	return &PlayQQOutput{
		PlayerHand:  playerHand,
		PlayerValue: playerValue,
		DealerHand:  dealerHand,
		DealerValue: dealerValue,
		Outcome:     outcome,
	}, nil
}
