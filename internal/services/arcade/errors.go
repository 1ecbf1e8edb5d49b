package arcade

// ArcadeError is a custom error type for game session errors
type ArcadeError string

// Error implements the error interface
func (e ArcadeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            ArcadeError = "config cannot be nil"
	ErrNilEconomyService    ArcadeError = "economy service cannot be nil"
	ErrNilGenerator         ArcadeError = "word generator cannot be nil"
	ErrSessionAlreadyActive ArcadeError = "a session of this kind is already active in this channel"
	ErrSessionNotFound      ArcadeError = "no active session of this kind in this channel"
	ErrPromptMismatch       ArcadeError = "message is not the prompt of an active guessing game"
	ErrInvalidChoice        ArcadeError = "choice must be one of A, B, C, or D"
)
