package ledger

import (
	"context"

	"github.com/andikahmad/warkop/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/andikahmad/warkop/internal/repositories/ledger Repository

// Repository persists account snapshots
type Repository interface {
	// SaveAccount persists an account snapshot
	SaveAccount(ctx context.Context, input *SaveAccountInput) error

	// GetAccount retrieves an account by user ID
	GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error)

	// GetTopAccounts retrieves the highest balances in descending order
	GetTopAccounts(ctx context.Context, input *GetTopAccountsInput) (*GetTopAccountsOutput, error)
}
