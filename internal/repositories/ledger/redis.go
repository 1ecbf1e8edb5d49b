package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andikahmad/warkop/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	accountKeyPrefix = "account:"
	leaderboardKey   = "leaderboard"
)

// ErrAccountNotFound is returned when an account is not found
var ErrAccountNotFound = errors.New("account not found")

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveAccount persists an account to Redis
func (r *redisRepository) SaveAccount(ctx context.Context, input *SaveAccountInput) error {
	if input == nil || input.Account == nil {
		return errors.New("input and account cannot be nil")
	}

	account := input.Account

	// Ensure the account has an ID
	if account.ID == "" {
		return errors.New("account ID cannot be empty")
	}

	// Marshal the account to JSON
	accountJSON, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	// Save the snapshot and keep the leaderboard index in sync
	pipe := r.client.Pipeline()

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, account.ID)
	pipe.Set(ctx, accountKey, accountJSON, 0)

	pipe.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(account.Points),
		Member: account.ID,
	})

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by user ID from Redis
func (r *redisRepository) GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, input.UserID)
	accountJSON, err := r.client.Get(ctx, accountKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var account models.Account
	if err := json.Unmarshal([]byte(accountJSON), &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	if account.Cooldowns == nil {
		account.Cooldowns = make(map[string]int64)
	}

	return &account, nil
}

// GetTopAccounts retrieves the highest balances from Redis
func (r *redisRepository) GetTopAccounts(ctx context.Context, input *GetTopAccountsInput) (*GetTopAccountsOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and a positive limit are required")
	}

	userIDs, err := r.client.ZRevRange(ctx, leaderboardKey, 0, int64(input.Limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard members: %w", err)
	}

	if len(userIDs) == 0 {
		return &GetTopAccountsOutput{
			Accounts: []*models.Account{},
		}, nil
	}

	// Fetch the account records in order using a pipeline
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(userIDs))

	for _, userID := range userIDs {
		accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, userID)
		commands = append(commands, pipe.Get(ctx, accountKey))
	}

	if _, err = pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	accounts := make([]*models.Account, 0, len(userIDs))
	for i, cmd := range commands {
		accountJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Account was removed between reading the index and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get account %s: %w", userIDs[i], err)
		}

		var account models.Account
		if err := json.Unmarshal([]byte(accountJSON), &account); err != nil {
			return nil, fmt.Errorf("failed to unmarshal account %s: %w", userIDs[i], err)
		}

		accounts = append(accounts, &account)
	}

	return &GetTopAccountsOutput{
		Accounts: accounts,
	}, nil
}
