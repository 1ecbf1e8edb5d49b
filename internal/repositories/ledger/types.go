package ledger

import (
	"github.com/andikahmad/warkop/internal/models"
)

// SaveAccountInput contains parameters for saving an account
type SaveAccountInput struct {
	// Account is the snapshot to persist
	Account *models.Account
}

// GetAccountInput contains parameters for retrieving an account
type GetAccountInput struct {
	// UserID is the Discord user ID of the account owner
	UserID string
}

// GetTopAccountsInput contains parameters for the leaderboard query
type GetTopAccountsInput struct {
	// Limit is the maximum number of accounts to return
	Limit int
}

// GetTopAccountsOutput contains the leaderboard query result
type GetTopAccountsOutput struct {
	// Accounts are ordered by balance, highest first
	Accounts []*models.Account
}
