package models

// Account holds a user's point balance and active cooldowns
type Account struct {
	// ID is the Discord user ID that owns the account
	ID string `json:"id"`

	// Points is the current balance; never negative
	Points int `json:"points"`

	// Cooldowns maps a cooldown key to its absolute expiry in unix seconds
	Cooldowns map[string]int64 `json:"cooldowns"`
}

// NewAccount creates a zeroed account for a user
func NewAccount(userID string) *Account {
	return &Account{
		ID:        userID,
		Cooldowns: make(map[string]int64),
	}
}
