package economy

// EconomyError is a custom error type for economy-related errors
type EconomyError string

// Error implements the error interface
func (e EconomyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       EconomyError = "config cannot be nil"
	ErrNilLedgerRepo   EconomyError = "ledger repository cannot be nil"
	ErrNilClock        EconomyError = "clock cannot be nil"
	ErrEmptyUserID     EconomyError = "user ID cannot be empty"
	ErrHeistSelfTarget EconomyError = "cannot heist yourself"
	ErrHeistOnCooldown EconomyError = "heist is on cooldown"
)
