package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetGuessResultMessage returns a message for a guessing-game answer
func (s *service) GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error) {
	var messages []string

	if input.Correct {
		messages = []string{
			fmt.Sprintf("🎉 Benar! Jawabannya **%s**. +%d poin untuk %s!", input.Answer, input.Award, input.PlayerMention),
			fmt.Sprintf("✅ Mantap %s! **%s** tepat sekali. +%d poin!", input.PlayerMention, input.Answer, input.Award),
			fmt.Sprintf("🔥 %s gercep! Jawabannya memang **%s**. +%d poin!", input.PlayerMention, input.Answer, input.Award),
		}
	} else {
		messages = []string{
			fmt.Sprintf("❌ Bukan itu, %s. Coba lagi!", input.PlayerMention),
			fmt.Sprintf("😅 Masih salah, %s. Pakai `clue` kalau buntu.", input.PlayerMention),
			fmt.Sprintf("🙈 Belum tepat, %s. Jangan nyerah dulu!", input.PlayerMention),
		}
	}

	return &GetGuessResultMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
	}, nil
}

// GetHeistResultMessage returns a message for a heist attempt
func (s *service) GetHeistResultMessage(ctx context.Context, input *GetHeistResultMessageInput) (*GetHeistResultMessageOutput, error) {
	var messages []string

	if input.Success {
		messages = []string{
			fmt.Sprintf("💰 Heist sukses! %s menggondol **%d** poin dari %s!", input.RobberMention, input.Amount, input.TargetMention),
			fmt.Sprintf("🥷 %s kabur dengan **%d** poin milik %s. Mulus.", input.RobberMention, input.Amount, input.TargetMention),
			fmt.Sprintf("😎 Rampokan berhasil! **%d** poin pindah dari %s ke %s.", input.Amount, input.TargetMention, input.RobberMention),
		}
	} else {
		messages = []string{
			fmt.Sprintf("🚨 Ketahuan! %s gagal dan bayar denda **%d** poin ke %s.", input.RobberMention, input.Amount, input.TargetMention),
			fmt.Sprintf("🪤 Heist gagal total. %s kena denda **%d** poin untuk %s.", input.RobberMention, input.Amount, input.TargetMention),
			fmt.Sprintf("😬 Apes, %s. Rencana bocor, **%d** poin melayang ke %s.", input.RobberMention, input.Amount, input.TargetMention),
		}
	}

	return &GetHeistResultMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
	}, nil
}

// GetChainResultMessage returns a message for a word-chain submission
func (s *service) GetChainResultMessage(ctx context.Context, input *GetChainResultMessageInput) (*GetChainResultMessageOutput, error) {
	if input.Accepted {
		messages := []string{
			fmt.Sprintf("🔗 **%s** diterima! +%d poin untuk %s. Kata berikutnya mulai dengan **%s**.", input.Word, input.Award, input.PlayerMention, input.NextLetter),
			fmt.Sprintf("✅ %s nyambung dengan **%s**! +%d poin. Lanjut dari huruf **%s**.", input.PlayerMention, input.Word, input.Award, input.NextLetter),
		}
		return &GetChainResultMessageOutput{
			Message: messages[s.rand.Intn(len(messages))],
		}, nil
	}

	var message string
	switch input.Violation {
	case "too_short":
		message = fmt.Sprintf("❌ Kata **%s** terlalu pendek, %s. Minimal 3 huruf.", input.Word, input.PlayerMention)
	case "already_used":
		message = fmt.Sprintf("♻️ **%s** sudah dipakai, %s. Cari kata lain.", input.Word, input.PlayerMention)
	case "wrong_start":
		message = fmt.Sprintf("🔤 **%s** tidak nyambung, %s. Harus mulai dengan huruf **%s**.", input.Word, input.PlayerMention, input.NextLetter)
	default:
		message = fmt.Sprintf("❌ **%s** tidak valid, %s.", input.Word, input.PlayerMention)
	}

	return &GetChainResultMessageOutput{
		Message: message,
	}, nil
}
