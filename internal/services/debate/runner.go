package debate

import (
	"context"
	"fmt"
	"time"

	"github.com/andikahmad/warkop/internal/models"
)

// runnerHandle lets the service cancel a live runner and observe its
// exit
type runnerHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// run drives the debate through rounds × sides × roster turns,
// announcing each turn and waiting out the speaking time. It exits
// early when its context is cancelled or the running flag is cleared.
func (s *service) run(ctx context.Context, handle *runnerHandle, session *models.DebateSession) {
	defer close(handle.done)

	s.mu.Lock()
	channelID := session.ChannelID
	topic := session.Topic
	turnSeconds := session.TurnSeconds
	rounds := session.Rounds
	pro := append([]string(nil), session.Pro...)
	kontra := append([]string(nil), session.Kontra...)
	s.mu.Unlock()

	opening := fmt.Sprintf("🎤 Debat dimulai!\nTopik: **%s**\nDurasi tiap giliran: **%ds**", topic, turnSeconds)
	if err := s.notifier.Send(ctx, channelID, opening); err != nil {
		s.abortRunner(handle, session, err)
		return
	}

	sides := []struct {
		Name   models.DebateSide
		Roster []string
	}{
		{models.DebateSidePro, pro},
		{models.DebateSideKontra, kontra},
	}

	for r := 1; r <= rounds; r++ {
		for _, side := range sides {
			for _, userID := range side.Roster {
				s.mu.Lock()
				alive := ctx.Err() == nil && session.Running
				s.mu.Unlock()
				if !alive {
					return
				}

				turn := fmt.Sprintf("🕒 Round %d/%d • Giliran %s: <@%s> (%ds)", r, rounds, side.Name, userID, turnSeconds)
				if err := s.notifier.Send(ctx, channelID, turn); err != nil {
					s.abortRunner(handle, session, err)
					return
				}

				select {
				case <-ctx.Done():
					return
				case <-s.clock.After(time.Duration(turnSeconds) * time.Second):
				}
			}
		}
	}

	s.mu.Lock()
	if s.runners[channelID] != handle {
		// Replaced or stopped while parked on the final wait; the
		// channel belongs to another runner now
		s.mu.Unlock()
		return
	}
	delete(s.runners, channelID)
	session.Running = false
	proPoints, kontraPoints := session.Tally()
	s.mu.Unlock()

	closing := fmt.Sprintf("✅ Debat selesai.\nPoin tercatat: PRO **%d** | KONTRA **%d**\nGunakan `/debat_ringkas` untuk lihat ringkasan.", proPoints, kontraPoints)
	if err := s.notifier.Send(ctx, channelID, closing); err != nil {
		s.logger.Warn().Err(err).Str("channel_id", channelID).Msg("debate closing announcement failed")
	}
}

// abortRunner clears the running state after a delivery failure. A
// runner that has already been replaced leaves the session alone.
func (s *service) abortRunner(handle *runnerHandle, session *models.DebateSession, err error) {
	s.mu.Lock()
	if s.runners[session.ChannelID] != handle {
		s.mu.Unlock()
		return
	}
	delete(s.runners, session.ChannelID)
	session.Running = false
	s.mu.Unlock()

	s.logger.Warn().Err(err).Str("channel_id", session.ChannelID).Msg("debate announcement failed, runner stopped")
}
