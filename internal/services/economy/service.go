package economy

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/andikahmad/warkop/internal/common/clock"
	"github.com/andikahmad/warkop/internal/models"
	"github.com/andikahmad/warkop/internal/repositories/ledger"
	"github.com/rs/zerolog"
)

// Heist tuning
const (
	HeistCooldownKey     = "heist"
	heistCooldownSeconds = 120
	heistSuccessChance   = 0.55
	heistSeedPoints      = 50
	heistLootMin         = 10
	heistLootMax         = 40
	heistPenaltyMin      = 8
	heistPenaltyMax      = 25
)

// service implements the Service interface
type service struct {
	repo   ledger.Repository
	clock  clock.Clock
	logger zerolog.Logger
	random *rand.Rand

	// mu serializes every operation so balances are never read torn
	mu       sync.Mutex
	accounts map[string]*models.Account
}

// New creates a new economy service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		repo:     cfg.LedgerRepo,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		random:   rand.New(rand.NewSource(seed)),
		accounts: make(map[string]*models.Account),
	}, nil
}

// account returns the cached account for a user, loading it from the
// ledger repository or creating it at zero. Callers must hold mu.
func (s *service) account(ctx context.Context, userID string) *models.Account {
	if acct, ok := s.accounts[userID]; ok {
		return acct
	}

	acct, err := s.repo.GetAccount(ctx, &ledger.GetAccountInput{
		UserID: userID,
	})
	if err != nil {
		if !errors.Is(err, ledger.ErrAccountNotFound) {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("ledger read failed, starting from zero")
		}
		acct = models.NewAccount(userID)
	}

	s.accounts[userID] = acct
	return acct
}

// persist writes an account snapshot. Failures are logged and swallowed
// so gameplay continues on the in-memory state.
func (s *service) persist(ctx context.Context, acct *models.Account) {
	err := s.repo.SaveAccount(ctx, &ledger.SaveAccountInput{
		Account: acct,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", acct.ID).Msg("ledger snapshot failed")
	}
}

// GetBalance returns a user's balance, lazily creating the account
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.account(ctx, input.UserID)

	return &GetBalanceOutput{
		Points: acct.Points,
	}, nil
}

// AddPoints adjusts a balance by a delta, clamping at zero
func (s *service) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newBalance := s.addPointsLocked(ctx, input.UserID, input.Delta)

	return &AddPointsOutput{
		NewBalance: newBalance,
	}, nil
}

// addPointsLocked applies a clamped delta and persists. Callers must
// hold mu.
func (s *service) addPointsLocked(ctx context.Context, userID string, delta int) int {
	acct := s.account(ctx, userID)

	acct.Points += delta
	if acct.Points < 0 {
		acct.Points = 0
	}

	s.persist(ctx, acct)
	return acct.Points
}

// Transfer moves points between users, clamped to the sender's balance
func (s *service) Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil || input.FromUserID == "" || input.ToUserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	moved := s.transferLocked(ctx, input.FromUserID, input.ToUserID, input.Amount)

	return &TransferOutput{
		Moved: moved,
	}, nil
}

// transferLocked debits and credits the clamped amount in one step.
// Callers must hold mu.
func (s *service) transferLocked(ctx context.Context, fromID, toID string, amount int) int {
	from := s.account(ctx, fromID)
	to := s.account(ctx, toID)

	if amount < 0 {
		amount = 0
	}
	if amount > from.Points {
		amount = from.Points
	}

	from.Points -= amount
	to.Points += amount

	s.persist(ctx, from)
	if toID != fromID {
		s.persist(ctx, to)
	}

	return amount
}

// SetCooldown stores an absolute cooldown expiry for a user
func (s *service) SetCooldown(ctx context.Context, input *SetCooldownInput) error {
	if input == nil || input.UserID == "" {
		return ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setCooldownLocked(ctx, input.UserID, input.Key, input.DurationSeconds)
	return nil
}

// setCooldownLocked stores the expiry and persists. Callers must hold mu.
func (s *service) setCooldownLocked(ctx context.Context, userID, key string, durationSeconds int) {
	acct := s.account(ctx, userID)
	acct.Cooldowns[key] = s.clock.Now().Unix() + int64(durationSeconds)
	s.persist(ctx, acct)
}

// CooldownRemaining returns the seconds left on a cooldown
func (s *service) CooldownRemaining(ctx context.Context, input *CooldownRemainingInput) (*CooldownRemainingOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return &CooldownRemainingOutput{
		Seconds: s.cooldownRemainingLocked(ctx, input.UserID, input.Key),
	}, nil
}

// cooldownRemainingLocked reads the remaining seconds. Callers must
// hold mu.
func (s *service) cooldownRemainingLocked(ctx context.Context, userID, key string) int {
	acct := s.account(ctx, userID)

	remaining := acct.Cooldowns[key] - s.clock.Now().Unix()
	if remaining < 0 {
		remaining = 0
	}

	return int(remaining)
}

// Heist attempts to steal points from another user. Both parties are
// floor-seeded so a heist against a broke target still has stakes.
func (s *service) Heist(ctx context.Context, input *HeistInput) (*HeistOutput, error) {
	if input == nil || input.RobberID == "" || input.TargetID == "" {
		return nil, ErrEmptyUserID
	}

	if input.RobberID == input.TargetID {
		return nil, ErrHeistSelfTarget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cooldownRemainingLocked(ctx, input.RobberID, HeistCooldownKey) > 0 {
		return nil, ErrHeistOnCooldown
	}

	robber := s.account(ctx, input.RobberID)
	target := s.account(ctx, input.TargetID)

	if robber.Points == 0 {
		s.addPointsLocked(ctx, input.RobberID, heistSeedPoints)
	}
	if target.Points == 0 {
		s.addPointsLocked(ctx, input.TargetID, heistSeedPoints)
	}

	success := s.random.Float64() < heistSuccessChance
	s.setCooldownLocked(ctx, input.RobberID, HeistCooldownKey, heistCooldownSeconds)

	var moved int
	if success {
		loot := heistLootMin + s.random.Intn(heistLootMax-heistLootMin+1)
		moved = s.transferLocked(ctx, input.TargetID, input.RobberID, loot)
	} else {
		penalty := heistPenaltyMin + s.random.Intn(heistPenaltyMax-heistPenaltyMin+1)
		moved = s.transferLocked(ctx, input.RobberID, input.TargetID, penalty)
	}

	return &HeistOutput{
		Success:       success,
		Amount:        moved,
		RobberBalance: robber.Points,
		TargetBalance: target.Points,
	}, nil
}

// GetLeaderboard returns the top balances from the persisted ledger
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := 10
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	out, err := s.repo.GetTopAccounts(ctx, &ledger.GetTopAccountsInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(out.Accounts))
	for _, acct := range out.Accounts {
		entries = append(entries, LeaderboardEntry{
			UserID: acct.ID,
			Points: acct.Points,
		})
	}

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}
