package arcade

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/andikahmad/warkop/internal/common/clock"
	"github.com/andikahmad/warkop/internal/models"
	"github.com/andikahmad/warkop/internal/repositories/ledger"
	"github.com/andikahmad/warkop/internal/services/economy"
	"github.com/andikahmad/warkop/internal/words"
	wordMocks "github.com/andikahmad/warkop/internal/words/mocks"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ArcadeServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockGenerator *wordMocks.MockGenerator
	mr            *miniredis.Miniredis
	client        *redis.Client
	economySvc    economy.Service
	svc           Service
	ctx           context.Context

	testChannelID string
	testUserID    string
}

func (s *ArcadeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGenerator = wordMocks.NewMockGenerator(s.mockCtrl)
	s.ctx = context.Background()
	s.testChannelID = "channel-1"
	s.testUserID = "user-1"

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := ledger.NewRedis(&ledger.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	economySvc, err := economy.New(&economy.Config{
		LedgerRepo: repo,
		Clock:      &clock.DefaultClock{},
	})
	s.Require().NoError(err)
	s.economySvc = economySvc

	svc, err := New(&Config{
		Economy:   s.economySvc,
		Generator: s.mockGenerator,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ArcadeServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestArcadeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArcadeServiceTestSuite))
}

func (s *ArcadeServiceTestSuite) expectWordPick(answer, scrambled string) {
	s.mockGenerator.EXPECT().PickWord().Return(answer).AnyTimes()
	s.mockGenerator.EXPECT().Scramble(answer).Return(scrambled).AnyTimes()
}

func (s *ArcadeServiceTestSuite) TestStartWordGuess() {
	s.expectWordPick("komputer", "moktupre")

	out, err := s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.Equal("moktupre", out.Scrambled)
}

func (s *ArcadeServiceTestSuite) TestStartWordGuessAlreadyActive() {
	s.expectWordPick("komputer", "moktupre")

	_, err := s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	_, err = s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().ErrorIs(err, ErrSessionAlreadyActive)

	// The original session is untouched: its answer still wins
	guess, err := s.svc.Guess(s.ctx, &GuessInput{
		ChannelID: s.testChannelID,
		Kind:      models.SessionKindWordGuess,
		UserID:    s.testUserID,
		Guess:     "komputer",
	})
	s.Require().NoError(err)
	s.True(guess.Correct)
}

func (s *ArcadeServiceTestSuite) TestStartWordGuessIndependentChannels() {
	s.expectWordPick("komputer", "moktupre")

	_, err := s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{ChannelID: "channel-a"})
	s.Require().NoError(err)

	_, err = s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{ChannelID: "channel-b"})
	s.Require().NoError(err)
}

func (s *ArcadeServiceTestSuite) TestGuessWordAwardsAndEndsSession() {
	s.expectWordPick("komputer", "moktupre")

	_, err := s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	// Wrong guess leaves the session in place
	out, err := s.svc.Guess(s.ctx, &GuessInput{
		ChannelID: s.testChannelID,
		Kind:      models.SessionKindWordGuess,
		UserID:    s.testUserID,
		Guess:     "monitor",
	})
	s.Require().NoError(err)
	s.False(out.Correct)

	// Case and surrounding whitespace are ignored
	out, err = s.svc.Guess(s.ctx, &GuessInput{
		ChannelID: s.testChannelID,
		Kind:      models.SessionKindWordGuess,
		UserID:    s.testUserID,
		Guess:     "  KOMPUTER ",
	})
	s.Require().NoError(err)
	s.True(out.Correct)
	s.Equal(WordGuessAward, out.Award)
	s.Equal(10, out.NewBalance)

	// The session ended with the award
	_, err = s.svc.Guess(s.ctx, &GuessInput{
		ChannelID: s.testChannelID,
		Kind:      models.SessionKindWordGuess,
		UserID:    s.testUserID,
		Guess:     "komputer",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *ArcadeServiceTestSuite) TestImageGuessFlow() {
	s.mockGenerator.EXPECT().PickEmojiClue().Return(words.EmojiClue{
		Answer: "pizza",
		Emojis: "🍕🧀🍅",
	})

	out, err := s.svc.StartImageGuess(s.ctx, &StartImageGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.Equal("🍕🧀🍅", out.Emojis)

	guess, err := s.svc.Guess(s.ctx, &GuessInput{
		ChannelID: s.testChannelID,
		Kind:      models.SessionKindImageGuess,
		UserID:    s.testUserID,
		Guess:     "Pizza",
	})
	s.Require().NoError(err)
	s.True(guess.Correct)
	s.Equal(ImageGuessAward, guess.Award)
}

func (s *ArcadeServiceTestSuite) TestRevealClueMatchesBoundPrompt() {
	s.expectWordPick("komputer", "moktupre")

	_, err := s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	err = s.svc.BindPrompt(s.ctx, &BindPromptInput{
		ChannelID: s.testChannelID,
		Kind:      models.SessionKindWordGuess,
		PromptRef: "msg-1",
	})
	s.Require().NoError(err)

	clue, err := s.svc.RevealClue(s.ctx, &RevealClueInput{
		ChannelID: s.testChannelID,
		PromptRef: "msg-1",
	})
	s.Require().NoError(err)
	s.Equal(models.SessionKindWordGuess, clue.Kind)
	s.Equal("k______r (8 huruf)", clue.WordClue)

	// A reply to some other message is not a clue request
	_, err = s.svc.RevealClue(s.ctx, &RevealClueInput{
		ChannelID: s.testChannelID,
		PromptRef: "msg-other",
	})
	s.Require().ErrorIs(err, ErrPromptMismatch)
}

func (s *ArcadeServiceTestSuite) TestRevealClueForImageSession() {
	s.mockGenerator.EXPECT().PickEmojiClue().Return(words.EmojiClue{
		Answer: "pizza",
		Emojis: "🍕🧀🍅",
	})

	_, err := s.svc.StartImageGuess(s.ctx, &StartImageGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	clue, err := s.svc.RevealClue(s.ctx, &RevealClueInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionKindImageGuess, clue.Kind)
	s.Equal("P", clue.FirstLetter)
	s.Equal(5, clue.LetterCount)
}

func (s *ArcadeServiceTestSuite) TestSurrenderRevealsAnswer() {
	s.expectWordPick("komputer", "moktupre")

	_, err := s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	out, err := s.svc.Surrender(s.ctx, &SurrenderInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionKindWordGuess, out.Kind)
	s.Equal("komputer", out.Answer)

	_, err = s.svc.Surrender(s.ctx, &SurrenderInput{
		ChannelID: s.testChannelID,
	})
	s.Require().ErrorIs(err, ErrPromptMismatch)
}

func (s *ArcadeServiceTestSuite) TestTriviaFlow() {
	s.mockGenerator.EXPECT().PickTrivia().Return(words.TriviaQuestion{
		Question: "Planet terbesar di tata surya adalah...",
		Options:  map[string]string{"A": "Mars", "B": "Jupiter", "C": "Bumi", "D": "Saturnus"},
		Answer:   "B",
	})

	out, err := s.svc.StartTrivia(s.ctx, &StartTriviaInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.Len(out.Options, 4)
	s.Equal(words.TriviaLabels, out.Labels)

	_, err = s.svc.AnswerTrivia(s.ctx, &AnswerTriviaInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Choice:    "X",
	})
	s.Require().ErrorIs(err, ErrInvalidChoice)

	answer, err := s.svc.AnswerTrivia(s.ctx, &AnswerTriviaInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Choice:    "A",
	})
	s.Require().NoError(err)
	s.False(answer.Correct)

	answer, err = s.svc.AnswerTrivia(s.ctx, &AnswerTriviaInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Choice:    " b ",
	})
	s.Require().NoError(err)
	s.True(answer.Correct)
	s.Equal(TriviaAward, answer.Award)
	s.Equal(12, answer.NewBalance)

	_, err = s.svc.AnswerTrivia(s.ctx, &AnswerTriviaInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Choice:    "B",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *ArcadeServiceTestSuite) TestWordChainRules() {
	s.expectWordPick("kata", "")

	out, err := s.svc.StartWordChain(s.ctx, &StartWordChainInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.Equal("kata", out.Seed)

	// Too short
	submit, err := s.svc.SubmitChainWord(s.ctx, &SubmitChainWordInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Word:      "an",
	})
	s.Require().NoError(err)
	s.False(submit.Accepted)
	s.Equal(ChainViolationTooShort, submit.Violation)

	// Already used
	submit, err = s.svc.SubmitChainWord(s.ctx, &SubmitChainWordInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Word:      "kata",
	})
	s.Require().NoError(err)
	s.False(submit.Accepted)
	s.Equal(ChainViolationAlreadyUsed, submit.Violation)

	// Valid: starts with the last letter of "kata"
	submit, err = s.svc.SubmitChainWord(s.ctx, &SubmitChainWordInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Word:      " AyAm ",
	})
	s.Require().NoError(err)
	s.True(submit.Accepted)
	s.Equal("ayam", submit.Word)
	s.Equal("m", submit.NextLetter)
	s.Equal(ChainWordAward, submit.Award)
	s.Equal(2, submit.NewBalance)

	// Wrong starting letter now that the tail is "ayam"
	submit, err = s.svc.SubmitChainWord(s.ctx, &SubmitChainWordInput{
		ChannelID: s.testChannelID,
		UserID:    s.testUserID,
		Word:      "kuda",
	})
	s.Require().NoError(err)
	s.False(submit.Accepted)
	s.Equal(ChainViolationWrongStart, submit.Violation)
	s.Equal("m", submit.RequiredLetter)
}

func (s *ArcadeServiceTestSuite) TestStopWordChain() {
	s.expectWordPick("kata", "")

	_, err := s.svc.StartWordChain(s.ctx, &StartWordChainInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	err = s.svc.StopWordChain(s.ctx, &StopWordChainInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)

	err = s.svc.StopWordChain(s.ctx, &StopWordChainInput{
		ChannelID: s.testChannelID,
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *ArcadeServiceTestSuite) TestKindsAreIndependentSlots() {
	s.expectWordPick("komputer", "moktupre")
	s.mockGenerator.EXPECT().PickEmojiClue().Return(words.EmojiClue{Answer: "kopi", Emojis: "☕"})

	_, err := s.svc.StartWordGuess(s.ctx, &StartWordGuessInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)

	_, err = s.svc.StartImageGuess(s.ctx, &StartImageGuessInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
}
