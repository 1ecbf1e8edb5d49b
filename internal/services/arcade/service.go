package arcade

import (
	"context"
	"strings"
	"sync"

	"github.com/andikahmad/warkop/internal/models"
	"github.com/andikahmad/warkop/internal/services/economy"
	"github.com/andikahmad/warkop/internal/words"
	"github.com/rs/zerolog"
)

// sessionKey identifies one exclusive session slot
type sessionKey struct {
	ChannelID string
	Kind      models.SessionKind
}

// service implements the Service interface
type service struct {
	economy   economy.Service
	generator words.Generator
	logger    zerolog.Logger

	// mu serializes all registry access; answer checks, awards and
	// session removal happen in one critical section
	mu       sync.Mutex
	sessions map[sessionKey]*models.GameSession
}

// New creates a new arcade service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Economy == nil {
		return nil, ErrNilEconomyService
	}

	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}

	return &service{
		economy:   cfg.Economy,
		generator: cfg.Generator,
		logger:    cfg.Logger,
		sessions:  make(map[sessionKey]*models.GameSession),
	}, nil
}

// startSessionLocked stores a new session or reports the existing one.
// Callers must hold mu.
func (s *service) startSessionLocked(key sessionKey, session *models.GameSession) error {
	if _, exists := s.sessions[key]; exists {
		return ErrSessionAlreadyActive
	}

	s.sessions[key] = session
	s.logger.Debug().Str("channel_id", key.ChannelID).Str("kind", string(key.Kind)).Msg("session started")
	return nil
}

// getSessionLocked retrieves a live session. Callers must hold mu.
func (s *service) getSessionLocked(key sessionKey) (*models.GameSession, error) {
	session, exists := s.sessions[key]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// endSessionLocked removes a session; a no-op when absent. Callers must
// hold mu.
func (s *service) endSessionLocked(key sessionKey) {
	delete(s.sessions, key)
}

// StartWordGuess opens a scrambled-word game in a channel
func (s *service) StartWordGuess(ctx context.Context, input *StartWordGuessInput) (*StartWordGuessOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindWordGuess}

	answer := strings.ToLower(s.generator.PickWord())
	scrambled := s.generator.Scramble(answer)

	err := s.startSessionLocked(key, &models.GameSession{
		Kind: models.SessionKindWordGuess,
		WordGuess: &models.WordGuessSession{
			Answer: answer,
		},
	})
	if err != nil {
		return nil, err
	}

	return &StartWordGuessOutput{
		Scrambled: scrambled,
	}, nil
}

// StartImageGuess opens an emoji picture game in a channel
func (s *service) StartImageGuess(ctx context.Context, input *StartImageGuessInput) (*StartImageGuessOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindImageGuess}

	clue := s.generator.PickEmojiClue()

	err := s.startSessionLocked(key, &models.GameSession{
		Kind: models.SessionKindImageGuess,
		ImageGuess: &models.ImageGuessSession{
			Answer: strings.ToLower(clue.Answer),
			Emojis: clue.Emojis,
		},
	})
	if err != nil {
		return nil, err
	}

	return &StartImageGuessOutput{
		Emojis: clue.Emojis,
	}, nil
}

// BindPrompt attaches a prompt message reference to a guessing session
func (s *service) BindPrompt(ctx context.Context, input *BindPromptInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.getSessionLocked(sessionKey{ChannelID: input.ChannelID, Kind: input.Kind})
	if err != nil {
		return err
	}

	switch input.Kind {
	case models.SessionKindWordGuess:
		session.WordGuess.PromptRef = input.PromptRef
	case models.SessionKindImageGuess:
		session.ImageGuess.PromptRef = input.PromptRef
	default:
		return ErrSessionNotFound
	}

	return nil
}

// Guess checks an answer for a word or image game. A correct guess
// awards points and removes the session before the lock is released.
func (s *service) Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: input.Kind}
	session, err := s.getSessionLocked(key)
	if err != nil {
		return nil, err
	}

	var answer string
	var award int

	switch input.Kind {
	case models.SessionKindWordGuess:
		answer = session.WordGuess.Answer
		award = WordGuessAward
	case models.SessionKindImageGuess:
		answer = session.ImageGuess.Answer
		award = ImageGuessAward
	default:
		return nil, ErrSessionNotFound
	}

	if !strings.EqualFold(strings.TrimSpace(input.Guess), answer) {
		return &GuessOutput{Correct: false}, nil
	}

	awarded, err := s.economy.AddPoints(ctx, &economy.AddPointsInput{
		UserID: input.UserID,
		Delta:  award,
	})
	if err != nil {
		return nil, err
	}

	s.endSessionLocked(key)

	return &GuessOutput{
		Correct:    true,
		Award:      award,
		NewBalance: awarded.NewBalance,
	}, nil
}

// RevealClue returns the hint for the live guessing session matching
// the prompt reference. The word session is checked before the image
// session.
func (s *service) RevealClue(ctx context.Context, input *RevealClueInput) (*RevealClueOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, err := s.getSessionLocked(sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindWordGuess}); err == nil {
		if promptMatches(input.PromptRef, session.WordGuess.PromptRef) {
			return &RevealClueOutput{
				Kind:     models.SessionKindWordGuess,
				WordClue: words.Clue(session.WordGuess.Answer),
			}, nil
		}
	}

	if session, err := s.getSessionLocked(sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindImageGuess}); err == nil {
		if promptMatches(input.PromptRef, session.ImageGuess.PromptRef) {
			answer := []rune(session.ImageGuess.Answer)
			return &RevealClueOutput{
				Kind:        models.SessionKindImageGuess,
				FirstLetter: strings.ToUpper(string(answer[0])),
				LetterCount: len(answer),
			}, nil
		}
	}

	return nil, ErrPromptMismatch
}

// Surrender ends the guessing session matching the prompt reference and
// reveals its answer
func (s *service) Surrender(ctx context.Context, input *SurrenderInput) (*SurrenderOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wordKey := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindWordGuess}
	if session, err := s.getSessionLocked(wordKey); err == nil {
		if promptMatches(input.PromptRef, session.WordGuess.PromptRef) {
			s.endSessionLocked(wordKey)
			return &SurrenderOutput{
				Kind:   models.SessionKindWordGuess,
				Answer: session.WordGuess.Answer,
			}, nil
		}
	}

	imageKey := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindImageGuess}
	if session, err := s.getSessionLocked(imageKey); err == nil {
		if promptMatches(input.PromptRef, session.ImageGuess.PromptRef) {
			s.endSessionLocked(imageKey)
			return &SurrenderOutput{
				Kind:   models.SessionKindImageGuess,
				Answer: session.ImageGuess.Answer,
			}, nil
		}
	}

	return nil, ErrPromptMismatch
}

// promptMatches reports whether a requested prompt reference matches a
// session's stored one. An empty request matches any prompt.
func promptMatches(requested, stored string) bool {
	return requested == "" || requested == stored
}

// StartTrivia opens a quiz question in a channel
func (s *service) StartTrivia(ctx context.Context, input *StartTriviaInput) (*StartTriviaOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindTrivia}

	q := s.generator.PickTrivia()

	err := s.startSessionLocked(key, &models.GameSession{
		Kind: models.SessionKindTrivia,
		Trivia: &models.TriviaSession{
			Question:     q.Question,
			Options:      q.Options,
			CorrectLabel: q.Answer,
		},
	})
	if err != nil {
		return nil, err
	}

	return &StartTriviaOutput{
		Question: q.Question,
		Options:  q.Options,
		Labels:   words.TriviaLabels,
	}, nil
}

// AnswerTrivia checks a labeled choice against the live question
func (s *service) AnswerTrivia(ctx context.Context, input *AnswerTriviaInput) (*AnswerTriviaOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindTrivia}
	session, err := s.getSessionLocked(key)
	if err != nil {
		return nil, err
	}

	choice := strings.ToUpper(strings.TrimSpace(input.Choice))
	valid := false
	for _, label := range words.TriviaLabels {
		if choice == label {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrInvalidChoice
	}

	if choice != session.Trivia.CorrectLabel {
		return &AnswerTriviaOutput{Correct: false}, nil
	}

	awarded, err := s.economy.AddPoints(ctx, &economy.AddPointsInput{
		UserID: input.UserID,
		Delta:  TriviaAward,
	})
	if err != nil {
		return nil, err
	}

	s.endSessionLocked(key)

	return &AnswerTriviaOutput{
		Correct:    true,
		Award:      TriviaAward,
		NewBalance: awarded.NewBalance,
	}, nil
}

// StartWordChain opens a word-chain game in a channel
func (s *service) StartWordChain(ctx context.Context, input *StartWordChainInput) (*StartWordChainOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindWordChain}

	seed := strings.ToLower(s.generator.PickWord())

	err := s.startSessionLocked(key, &models.GameSession{
		Kind: models.SessionKindWordChain,
		WordChain: &models.WordChainSession{
			LastWord: seed,
			UsedWords: map[string]struct{}{
				seed: {},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &StartWordChainOutput{
		Seed: seed,
	}, nil
}

// SubmitChainWord validates a submission against the chain rules. On a
// violation the session is left unchanged and the broken rule is
// reported; on acceptance the word becomes the new tail and earns
// points.
func (s *service) SubmitChainWord(ctx context.Context, input *SubmitChainWordInput) (*SubmitChainWordOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindWordChain}
	session, err := s.getSessionLocked(key)
	if err != nil {
		return nil, err
	}

	chain := session.WordChain
	cleaned := words.CleanWord(input.Word)

	lastRunes := []rune(chain.LastWord)
	required := string(lastRunes[len(lastRunes)-1])

	if len([]rune(cleaned)) < 3 {
		return &SubmitChainWordOutput{
			Violation:      ChainViolationTooShort,
			Word:           cleaned,
			RequiredLetter: required,
		}, nil
	}

	if _, used := chain.UsedWords[cleaned]; used {
		return &SubmitChainWordOutput{
			Violation:      ChainViolationAlreadyUsed,
			Word:           cleaned,
			RequiredLetter: required,
		}, nil
	}

	if string([]rune(cleaned)[0]) != required {
		return &SubmitChainWordOutput{
			Violation:      ChainViolationWrongStart,
			Word:           cleaned,
			RequiredLetter: required,
		}, nil
	}

	chain.UsedWords[cleaned] = struct{}{}
	chain.LastWord = cleaned

	awarded, err := s.economy.AddPoints(ctx, &economy.AddPointsInput{
		UserID: input.UserID,
		Delta:  ChainWordAward,
	})
	if err != nil {
		return nil, err
	}

	cleanedRunes := []rune(cleaned)

	return &SubmitChainWordOutput{
		Accepted:       true,
		Word:           cleaned,
		RequiredLetter: required,
		NextLetter:     string(cleanedRunes[len(cleanedRunes)-1]),
		Award:          ChainWordAward,
		NewBalance:     awarded.NewBalance,
	}, nil
}

// StopWordChain ends the word-chain game in a channel
func (s *service) StopWordChain(ctx context.Context, input *StopWordChainInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{ChannelID: input.ChannelID, Kind: models.SessionKindWordChain}
	if _, err := s.getSessionLocked(key); err != nil {
		return err
	}

	s.endSessionLocked(key)
	return nil
}
