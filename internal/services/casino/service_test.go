package casino

import (
	"context"
	"testing"

	"github.com/andikahmad/warkop/internal/cards"
	"github.com/andikahmad/warkop/internal/common/uuid"
	"github.com/stretchr/testify/suite"
)

type CasinoServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context

	testPlayerID string
}

func (s *CasinoServiceTestSuite) SetupTest() {
	svc, err := New(&Config{
		UUID: uuid.New(),
	})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
	s.testPlayerID = "player-1"
}

func TestCasinoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CasinoServiceTestSuite))
}

// startLiveRound deals rounds until one survives the natural check.
// Opening naturals occur in under a tenth of deals, so a handful of
// attempts is plenty.
func (s *CasinoServiceTestSuite) startLiveRound() *StartBlackjackOutput {
	for i := 0; i < 50; i++ {
		out, err := s.svc.StartBlackjack(s.ctx, &StartBlackjackInput{
			PlayerID: s.testPlayerID,
		})
		s.Require().NoError(err)

		if !out.Over {
			return out
		}

		s.assertNaturalOutcome(out)
	}

	s.Require().FailNow("no non-natural opening deal in 50 attempts")
	return nil
}

func (s *CasinoServiceTestSuite) assertNaturalOutcome(out *StartBlackjackOutput) {
	s.Empty(out.RoundID)
	s.Contains([]BlackjackOutcome{OutcomePlayerBlackjack, OutcomeDealerBlackjack}, out.Outcome)
	s.Len(out.DealerHand, 2)

	if out.Outcome == OutcomePlayerBlackjack {
		s.Equal(21, out.PlayerTotal)
		s.Len(out.PlayerHand, 2)
	} else {
		s.Equal(21, out.DealerTotal)
	}
}

func (s *CasinoServiceTestSuite) TestStartBlackjackDeals() {
	out := s.startLiveRound()

	s.NotEmpty(out.RoundID)
	s.Len(out.PlayerHand, 2)
	s.Len(out.DealerUpCards, 1)
	s.Nil(out.DealerHand)

	total, soft := cards.HandValue(out.PlayerHand)
	s.Equal(total, out.PlayerTotal)
	s.Equal(soft, out.PlayerSoft)
	s.Less(out.PlayerTotal, 21)
}

func (s *CasinoServiceTestSuite) TestHitUnknownRound() {
	_, err := s.svc.Hit(s.ctx, &HitInput{
		RoundID:  "no-such-round",
		PlayerID: s.testPlayerID,
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)
}

func (s *CasinoServiceTestSuite) TestHitWrongPlayer() {
	out := s.startLiveRound()

	_, err := s.svc.Hit(s.ctx, &HitInput{
		RoundID:  out.RoundID,
		PlayerID: "player-2",
	})
	s.Require().ErrorIs(err, ErrNotYourRound)
}

func (s *CasinoServiceTestSuite) TestHitGrowsHand() {
	out := s.startLiveRound()

	hit, err := s.svc.Hit(s.ctx, &HitInput{
		RoundID:  out.RoundID,
		PlayerID: s.testPlayerID,
	})
	s.Require().NoError(err)

	s.Len(hit.PlayerHand, 3)
	s.Equal(hit.Card, hit.PlayerHand[2])

	total, soft := cards.HandValue(hit.PlayerHand)
	s.Equal(total, hit.PlayerTotal)
	s.Equal(soft, hit.PlayerSoft)

	if hit.Over {
		s.Equal(OutcomePlayerBust, hit.Outcome)
		s.Greater(hit.PlayerTotal, 21)
	}
}

func (s *CasinoServiceTestSuite) TestBustEndsRound() {
	// Drawing at 11 or less can never bust, so keep hitting until the
	// hand either busts or is too big to hit safely, then stand
	out := s.startLiveRound()
	roundID := out.RoundID

	over := false
	var outcome BlackjackOutcome

	for i := 0; i < 15 && !over; i++ {
		hit, err := s.svc.Hit(s.ctx, &HitInput{
			RoundID:  roundID,
			PlayerID: s.testPlayerID,
		})
		s.Require().NoError(err)

		if hit.Over {
			over = true
			outcome = hit.Outcome
			s.Greater(hit.PlayerTotal, 21)
		}
	}

	s.Require().True(over, "repeated hits must eventually bust")
	s.Equal(OutcomePlayerBust, outcome)

	// The round is gone once settled
	_, err := s.svc.Hit(s.ctx, &HitInput{
		RoundID:  roundID,
		PlayerID: s.testPlayerID,
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)
}

func (s *CasinoServiceTestSuite) TestStandSettlesRound() {
	out := s.startLiveRound()

	stand, err := s.svc.Stand(s.ctx, &StandInput{
		RoundID:  out.RoundID,
		PlayerID: s.testPlayerID,
	})
	s.Require().NoError(err)

	// The dealer always finishes on 17 or more
	s.GreaterOrEqual(stand.DealerTotal, 17)
	s.GreaterOrEqual(len(stand.DealerHand), 2)

	switch stand.Outcome {
	case OutcomeDealerBust:
		s.Greater(stand.DealerTotal, 21)
	case OutcomePlayerWin:
		s.Greater(stand.PlayerTotal, stand.DealerTotal)
	case OutcomePlayerLose:
		s.Less(stand.PlayerTotal, stand.DealerTotal)
	case OutcomePush:
		s.Equal(stand.PlayerTotal, stand.DealerTotal)
	default:
		s.Failf("unexpected outcome", "got %s", stand.Outcome)
	}

	_, err = s.svc.Stand(s.ctx, &StandInput{
		RoundID:  out.RoundID,
		PlayerID: s.testPlayerID,
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)
}

func (s *CasinoServiceTestSuite) TestRoundsAreIndependent() {
	first := s.startLiveRound()

	second, err := s.svc.StartBlackjack(s.ctx, &StartBlackjackInput{
		PlayerID: "player-2",
	})
	s.Require().NoError(err)

	if !second.Over {
		s.NotEqual(first.RoundID, second.RoundID)
	}

	// The first round still answers after the second was dealt
	_, err = s.svc.Hit(s.ctx, &HitInput{
		RoundID:  first.RoundID,
		PlayerID: s.testPlayerID,
	})
	s.Require().NoError(err)
}

func (s *CasinoServiceTestSuite) TestPlayQQ() {
	out, err := s.svc.PlayQQ(s.ctx, &PlayQQInput{
		PlayerID: s.testPlayerID,
	})
	s.Require().NoError(err)

	s.Len(out.PlayerHand, 3)
	s.Len(out.DealerHand, 3)

	s.Equal(cards.QQHandValue(out.PlayerHand), out.PlayerValue)
	s.Equal(cards.QQHandValue(out.DealerHand), out.DealerValue)

	s.GreaterOrEqual(out.PlayerValue, 0)
	s.LessOrEqual(out.PlayerValue, 9)
	s.GreaterOrEqual(out.DealerValue, 0)
	s.LessOrEqual(out.DealerValue, 9)

	switch out.Outcome {
	case QQOutcomePlayerWin:
		s.Greater(out.PlayerValue, out.DealerValue)
	case QQOutcomeDealerWin:
		s.Less(out.PlayerValue, out.DealerValue)
	case QQOutcomeTie:
		s.Equal(out.PlayerValue, out.DealerValue)
	}
}
