package debate

import (
	"context"
	"strings"
	"sync"

	"github.com/andikahmad/warkop/internal/common/clock"
	"github.com/andikahmad/warkop/internal/models"
	"github.com/rs/zerolog"
)

const (
	minTurnSeconds = 10
	minRounds      = 1
)

// service implements the Service interface
type service struct {
	clock    clock.Clock
	notifier Notifier
	logger   zerolog.Logger

	// mu guards both maps and every session; runners reacquire it
	// between turns
	mu       sync.Mutex
	sessions map[string]*models.DebateSession
	runners  map[string]*runnerHandle
}

// New creates a new debate service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	return &service{
		clock:    cfg.Clock,
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
		sessions: make(map[string]*models.DebateSession),
		runners:  make(map[string]*runnerHandle),
	}, nil
}

// Define creates a fresh session for the channel. Any earlier
// definition is discarded and its runner cancelled.
func (s *service) Define(ctx context.Context, input *DefineInput) (*DefineOutput, error) {
	if input.TurnSeconds < minTurnSeconds || input.Rounds < minRounds {
		return nil, ErrInvalidSchedule
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.sessions[input.ChannelID]
	s.cancelRunnerLocked(input.ChannelID)

	s.sessions[input.ChannelID] = &models.DebateSession{
		GuildID:     input.GuildID,
		ChannelID:   input.ChannelID,
		Topic:       input.Topic,
		TurnSeconds: input.TurnSeconds,
		Rounds:      input.Rounds,
	}

	s.logger.Debug().Str("channel_id", input.ChannelID).Str("topic", input.Topic).Msg("debate defined")

	return &DefineOutput{Replaced: replaced}, nil
}

// Join places the user on a side. Joining the other side moves them.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	side := strings.ToLower(strings.TrimSpace(input.Side))
	if side != "pro" && side != "kontra" {
		return nil, ErrInvalidSide
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[input.ChannelID]
	if !exists {
		return nil, ErrNoSession
	}

	if session.Running {
		return nil, ErrAlreadyRunning
	}

	session.Pro = removeUser(session.Pro, input.UserID)
	session.Kontra = removeUser(session.Kontra, input.UserID)

	if side == "pro" {
		session.Pro = append(session.Pro, input.UserID)
		return &JoinOutput{Side: models.DebateSidePro}, nil
	}

	session.Kontra = append(session.Kontra, input.UserID)
	return &JoinOutput{Side: models.DebateSideKontra}, nil
}

// Start launches the turn runner. A runner still driving the channel is
// cancelled first; none of its turns are announced after this call
// returns.
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[input.ChannelID]
	if !exists {
		return nil, ErrNoSession
	}

	if len(session.Pro) == 0 || len(session.Kontra) == 0 {
		return nil, ErrRosterEmpty
	}

	replaced := s.cancelRunnerLocked(input.ChannelID)

	runnerCtx, cancel := context.WithCancel(context.Background())
	handle := &runnerHandle{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.runners[input.ChannelID] = handle

	session.Running = true

	go s.run(runnerCtx, handle, session)

	s.logger.Info().Str("channel_id", input.ChannelID).Int("rounds", session.Rounds).Msg("debate started")

	return &StartOutput{Replaced: replaced}, nil
}

// LogPoint credits an argument point to the user's side
func (s *service) LogPoint(ctx context.Context, input *LogPointInput) (*LogPointOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[input.ChannelID]
	if !exists {
		return nil, ErrNoSession
	}

	side := session.SideOf(input.UserID)
	if side == "" {
		return nil, ErrNotParticipant
	}

	session.Points = append(session.Points, models.DebatePoint{
		UserID: input.UserID,
		Side:   side,
		Note:   input.Note,
	})

	return &LogPointOutput{Side: side}, nil
}

// Summary returns a snapshot of the debate
func (s *service) Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[input.ChannelID]
	if !exists {
		return nil, ErrNoSession
	}

	pro, kontra := session.Tally()

	return &SummaryOutput{
		Topic:        session.Topic,
		Pro:          append([]string(nil), session.Pro...),
		Kontra:       append([]string(nil), session.Kontra...),
		ProPoints:    pro,
		KontraPoints: kontra,
		Running:      session.Running,
	}, nil
}

// Stop cancels the runner and removes the session entirely
func (s *service) Stop(ctx context.Context, input *StopInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[input.ChannelID]
	if !exists {
		return ErrNoSession
	}

	session.Running = false
	s.cancelRunnerLocked(input.ChannelID)
	delete(s.sessions, input.ChannelID)

	s.logger.Info().Str("channel_id", input.ChannelID).Msg("debate stopped")

	return nil
}

// cancelRunnerLocked cancels the channel's runner, if any, and reports
// whether one was live. Callers must hold mu.
func (s *service) cancelRunnerLocked(channelID string) bool {
	handle, exists := s.runners[channelID]
	if !exists {
		return false
	}

	handle.cancel()
	delete(s.runners, channelID)
	return true
}

func removeUser(roster []string, userID string) []string {
	out := roster[:0]
	for _, id := range roster {
		if id != userID {
			out = append(out, id)
		}
	}
	return out
}
