package models

// DebateSide labels one of the two debate rosters
type DebateSide string

const (
	// DebateSidePro argues for the topic
	DebateSidePro DebateSide = "PRO"

	// DebateSideKontra argues against the topic
	DebateSideKontra DebateSide = "KONTRA"
)

// DebatePoint is one argument point logged during a debate
type DebatePoint struct {
	// UserID is the participant who logged the point
	UserID string

	// Side is the roster the participant belongs to
	Side DebateSide

	// Note is the free-text argument summary
	Note string
}

// DebateSession is the state of a debate in one channel
type DebateSession struct {
	// GuildID is the Discord server the debate belongs to
	GuildID string

	// ChannelID is where turns are announced
	ChannelID string

	// Topic is the statement being debated
	Topic string

	// TurnSeconds is the speaking time per turn
	TurnSeconds int

	// Rounds is the number of full pro/kontra cycles
	Rounds int

	// Pro and Kontra are the rosters in join order
	Pro    []string
	Kontra []string

	// Points are the logged argument points in order
	Points []DebatePoint

	// Running is true while a turn runner is driving the debate
	Running bool
}

// SideOf returns the side the user has joined, or "" if they are not a
// participant
func (s *DebateSession) SideOf(userID string) DebateSide {
	for _, id := range s.Pro {
		if id == userID {
			return DebateSidePro
		}
	}
	for _, id := range s.Kontra {
		if id == userID {
			return DebateSideKontra
		}
	}
	return ""
}

// Tally returns the number of logged points per side
func (s *DebateSession) Tally() (pro, kontra int) {
	for _, p := range s.Points {
		switch p.Side {
		case DebateSidePro:
			pro++
		case DebateSideKontra:
			kontra++
		}
	}
	return pro, kontra
}
