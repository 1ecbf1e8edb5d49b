package ledger

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/andikahmad/warkop/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetAccount() {
	account := &models.Account{
		ID:     "user-1",
		Points: 42,
		Cooldowns: map[string]int64{
			"heist": 1700000000,
		},
	}

	err := s.repo.SaveAccount(context.Background(), &SaveAccountInput{
		Account: account,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetAccount(context.Background(), &GetAccountInput{
		UserID: "user-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("user-1", retrieved.ID)
	s.Equal(42, retrieved.Points)
	s.Equal(int64(1700000000), retrieved.Cooldowns["heist"])
}

func (s *RedisRepositoryTestSuite) TestGetAccountNotFound() {
	_, err := s.repo.GetAccount(context.Background(), &GetAccountInput{
		UserID: "missing",
	})
	s.Require().ErrorIs(err, ErrAccountNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetAccountInitializesCooldowns() {
	err := s.repo.SaveAccount(context.Background(), &SaveAccountInput{
		Account: &models.Account{ID: "user-2", Points: 5},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetAccount(context.Background(), &GetAccountInput{
		UserID: "user-2",
	})
	s.Require().NoError(err)
	s.NotNil(retrieved.Cooldowns)
}

func (s *RedisRepositoryTestSuite) TestGetTopAccounts() {
	balances := map[string]int{
		"user-low":  10,
		"user-high": 100,
		"user-mid":  50,
	}

	for id, points := range balances {
		err := s.repo.SaveAccount(context.Background(), &SaveAccountInput{
			Account: &models.Account{ID: id, Points: points},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetTopAccounts(context.Background(), &GetTopAccountsInput{
		Limit: 2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Accounts, 2)

	s.Equal("user-high", out.Accounts[0].ID)
	s.Equal("user-mid", out.Accounts[1].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveAccountUpdatesLeaderboardScore() {
	account := &models.Account{ID: "user-3", Points: 10}

	err := s.repo.SaveAccount(context.Background(), &SaveAccountInput{Account: account})
	s.Require().NoError(err)

	account.Points = 90
	err = s.repo.SaveAccount(context.Background(), &SaveAccountInput{Account: account})
	s.Require().NoError(err)

	err = s.repo.SaveAccount(context.Background(), &SaveAccountInput{
		Account: &models.Account{ID: "user-4", Points: 40},
	})
	s.Require().NoError(err)

	out, err := s.repo.GetTopAccounts(context.Background(), &GetTopAccountsInput{
		Limit: 10,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Accounts, 2)
	s.Equal("user-3", out.Accounts[0].ID)
	s.Equal(90, out.Accounts[0].Points)
}
