package debate

// DebateError is a debate service error
type DebateError string

func (e DebateError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = DebateError("config cannot be nil")

	// ErrNilClock is returned when the clock is nil
	ErrNilClock = DebateError("clock cannot be nil")

	// ErrNilNotifier is returned when the notifier is nil
	ErrNilNotifier = DebateError("notifier cannot be nil")

	// ErrNoSession is returned when the channel has no defined debate
	ErrNoSession = DebateError("no debate session in this channel")

	// ErrAlreadyRunning is returned when joining while turns are being
	// driven
	ErrAlreadyRunning = DebateError("debate is already running")

	// ErrInvalidSide is returned for a side other than pro or kontra
	ErrInvalidSide = DebateError("side must be pro or kontra")

	// ErrInvalidSchedule is returned when the turn length or round count
	// is below the minimum
	ErrInvalidSchedule = DebateError("turn seconds must be at least 10 and rounds at least 1")

	// ErrRosterEmpty is returned when starting with an empty side
	ErrRosterEmpty = DebateError("both sides need at least one participant")

	// ErrNotParticipant is returned when logging a point without having
	// joined a side
	ErrNotParticipant = DebateError("user has not joined a side")
)
