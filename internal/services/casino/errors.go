package casino

// CasinoError is a casino service error
type CasinoError string

func (e CasinoError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = CasinoError("config cannot be nil")

	// ErrNilUUID is returned when the uuid generator is nil
	ErrNilUUID = CasinoError("uuid generator cannot be nil")

	// ErrRoundNotFound is returned when no live round matches the given
	// ID, including rounds that already finished
	ErrRoundNotFound = CasinoError("round not found")

	// ErrNotYourRound is returned when a player acts on someone else's
	// round
	ErrNotYourRound = CasinoError("round belongs to another player")
)
