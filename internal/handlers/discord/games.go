package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andikahmad/warkop/internal/models"
	"github.com/andikahmad/warkop/internal/services/arcade"
	"github.com/andikahmad/warkop/internal/services/casino"
	"github.com/andikahmad/warkop/internal/services/messaging"
	"github.com/andikahmad/warkop/internal/words"
	"github.com/bwmarrin/discordgo"
)

// TebakKataCommand handles the /tebak_kata command
type TebakKataCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewTebakKataCommand creates a new tebak_kata command handler
func NewTebakKataCommand(arcadeService arcade.Service) *TebakKataCommand {
	return &TebakKataCommand{
		BaseCommand: BaseCommand{
			Name:        "tebak_kata",
			Description: "Mulai game acak huruf jadi kata",
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the tebak_kata command
func (c *TebakKataCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.arcadeService.StartWordGuess(ctx, &arcade.StartWordGuessInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionAlreadyActive) {
			return RespondWithEphemeralMessage(s, i, "Masih ada tebak kata yang berjalan di channel ini.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal memulai game: %v", err))
	}

	err = RespondWithMessage(s, i, fmt.Sprintf("🔤 Susun huruf ini jadi kata: **%s**\nJawab dengan `/jawab_kata`.", strings.ToUpper(out.Scrambled)))
	if err != nil {
		return err
	}

	bindPromptToResponse(ctx, c.arcadeService, s, i, models.SessionKindWordGuess)
	return nil
}

// bindPromptToResponse attaches the interaction's response message to
// the session so `/clue` and `/surrend` replies can match it.
// Best-effort: the game works without the binding.
func bindPromptToResponse(ctx context.Context, arcadeService arcade.Service, s *discordgo.Session, i *discordgo.InteractionCreate, kind models.SessionKind) {
	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil || msg == nil {
		return
	}

	_ = arcadeService.BindPrompt(ctx, &arcade.BindPromptInput{
		ChannelID: i.ChannelID,
		Kind:      kind,
		PromptRef: msg.ID,
	})
}

// JawabKataCommand handles the /jawab_kata command
type JawabKataCommand struct {
	BaseCommand
	arcadeService    arcade.Service
	messagingService messaging.Service
}

// NewJawabKataCommand creates a new jawab_kata command handler
func NewJawabKataCommand(arcadeService arcade.Service, messagingService messaging.Service) *JawabKataCommand {
	return &JawabKataCommand{
		BaseCommand: BaseCommand{
			Name:        "jawab_kata",
			Description: "Jawab tebak kata yang sedang berjalan",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kata",
					Description: "Tebakan Anda",
					Required:    true,
				},
			},
		},
		arcadeService:    arcadeService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the jawab_kata command
func (c *JawabKataCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return handleGuess(c.arcadeService, c.messagingService, s, i, models.SessionKindWordGuess, "kata")
}

// handleGuess runs a guess for either guessing game kind
func handleGuess(arcadeService arcade.Service, messagingService messaging.Service, s *discordgo.Session, i *discordgo.InteractionCreate, kind models.SessionKind, optionName string) error {
	ctx := context.Background()
	user := interactionUser(i)

	options := optionMap(i.ApplicationCommandData())
	guess := options[optionName].StringValue()

	out, err := arcadeService.Guess(ctx, &arcade.GuessInput{
		ChannelID: i.ChannelID,
		Kind:      kind,
		UserID:    user.ID,
		Guess:     guess,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionNotFound) {
			return RespondWithEphemeralMessage(s, i, "Tidak ada game yang berjalan di channel ini.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal memproses jawaban: %v", err))
	}

	answer := ""
	if out.Correct {
		answer = strings.TrimSpace(guess)
	}

	msg, err := messagingService.GetGuessResultMessage(ctx, &messaging.GetGuessResultMessageInput{
		PlayerMention: "<@" + user.ID + ">",
		Answer:        answer,
		Award:         out.Award,
		Correct:       out.Correct,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Gagal membuat pesan: %v", err))
	}

	return RespondWithMessage(s, i, msg.Message)
}

// TebakGambarCommand handles the /tebak_gambar command
type TebakGambarCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewTebakGambarCommand creates a new tebak_gambar command handler
func NewTebakGambarCommand(arcadeService arcade.Service) *TebakGambarCommand {
	return &TebakGambarCommand{
		BaseCommand: BaseCommand{
			Name:        "tebak_gambar",
			Description: "Tebak gambar dari rangkaian emoji",
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the tebak_gambar command
func (c *TebakGambarCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.arcadeService.StartImageGuess(ctx, &arcade.StartImageGuessInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionAlreadyActive) {
			return RespondWithEphemeralMessage(s, i, "Masih ada tebak gambar yang berjalan di channel ini.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal memulai game: %v", err))
	}

	err = RespondWithMessage(s, i, fmt.Sprintf("🖼️ Tebak gambar ini: %s\nJawab dengan `/jawab_gambar`.", out.Emojis))
	if err != nil {
		return err
	}

	bindPromptToResponse(ctx, c.arcadeService, s, i, models.SessionKindImageGuess)
	return nil
}

// JawabGambarCommand handles the /jawab_gambar command
type JawabGambarCommand struct {
	BaseCommand
	arcadeService    arcade.Service
	messagingService messaging.Service
}

// NewJawabGambarCommand creates a new jawab_gambar command handler
func NewJawabGambarCommand(arcadeService arcade.Service, messagingService messaging.Service) *JawabGambarCommand {
	return &JawabGambarCommand{
		BaseCommand: BaseCommand{
			Name:        "jawab_gambar",
			Description: "Jawab tebak gambar yang sedang berjalan",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "jawaban",
					Description: "Tebakan Anda",
					Required:    true,
				},
			},
		},
		arcadeService:    arcadeService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the jawab_gambar command
func (c *JawabGambarCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return handleGuess(c.arcadeService, c.messagingService, s, i, models.SessionKindImageGuess, "jawaban")
}

// ClueCommand handles the /clue command
type ClueCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewClueCommand creates a new clue command handler
func NewClueCommand(arcadeService arcade.Service) *ClueCommand {
	return &ClueCommand{
		BaseCommand: BaseCommand{
			Name:        "clue",
			Description: "Minta petunjuk untuk game tebak-tebakan yang berjalan",
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the clue command
func (c *ClueCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.arcadeService.RevealClue(ctx, &arcade.RevealClueInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrPromptMismatch) {
			return RespondWithEphemeralMessage(s, i, "Tidak ada game tebak-tebakan yang berjalan di channel ini.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal mengambil petunjuk: %v", err))
	}

	if out.Kind == models.SessionKindWordGuess {
		return RespondWithMessage(s, i, fmt.Sprintf("💡 Petunjuk: `%s`", out.WordClue))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("💡 Petunjuk: huruf pertama **%s**, total **%d huruf**.", out.FirstLetter, out.LetterCount))
}

// SurrendCommand handles the /surrend command
type SurrendCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewSurrendCommand creates a new surrend command handler
func NewSurrendCommand(arcadeService arcade.Service) *SurrendCommand {
	return &SurrendCommand{
		BaseCommand: BaseCommand{
			Name:        "surrend",
			Description: "Nyerah dan buka jawaban game tebak-tebakan",
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the surrend command
func (c *SurrendCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.arcadeService.Surrender(ctx, &arcade.SurrenderInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrPromptMismatch) {
			return RespondWithEphemeralMessage(s, i, "Tidak ada game tebak-tebakan yang berjalan di channel ini.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal menyerah: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🏳️ Yah, nyerah. Jawabannya: **%s**", out.Answer))
}

// TriviaCommand handles the /trivia command
type TriviaCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewTriviaCommand creates a new trivia command handler
func NewTriviaCommand(arcadeService arcade.Service) *TriviaCommand {
	return &TriviaCommand{
		BaseCommand: BaseCommand{
			Name:        "trivia",
			Description: "Mulai quiz pilihan ganda",
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the trivia command
func (c *TriviaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.arcadeService.StartTrivia(ctx, &arcade.StartTriviaInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionAlreadyActive) {
			return RespondWithEphemeralMessage(s, i, "Masih ada trivia yang berjalan di channel ini.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal memulai trivia: %v", err))
	}

	var b strings.Builder
	for _, label := range out.Labels {
		fmt.Fprintf(&b, "**%s.** %s\n", label, out.Options[label])
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🧠 TRIVIA",
		Description: out.Question + "\n\n" + b.String() + "\nJawab dengan `/jawab_trivia`.",
		Color:       colorGreen,
	}

	return RespondWithEmbed(s, i, embed)
}

// JawabTriviaCommand handles the /jawab_trivia command
type JawabTriviaCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewJawabTriviaCommand creates a new jawab_trivia command handler
func NewJawabTriviaCommand(arcadeService arcade.Service) *JawabTriviaCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(words.TriviaLabels))
	for idx, label := range words.TriviaLabels {
		choices[idx] = &discordgo.ApplicationCommandOptionChoice{
			Name:  label,
			Value: label,
		}
	}

	return &JawabTriviaCommand{
		BaseCommand: BaseCommand{
			Name:        "jawab_trivia",
			Description: "Jawab trivia yang sedang berjalan",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "pilihan",
					Description: "Pilihan jawaban",
					Required:    true,
					Choices:     choices,
				},
			},
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the jawab_trivia command
func (c *JawabTriviaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	options := optionMap(i.ApplicationCommandData())
	choice := options["pilihan"].StringValue()

	out, err := c.arcadeService.AnswerTrivia(ctx, &arcade.AnswerTriviaInput{
		ChannelID: i.ChannelID,
		UserID:    user.ID,
		Choice:    choice,
	})
	if err != nil {
		switch {
		case errors.Is(err, arcade.ErrSessionNotFound):
			return RespondWithEphemeralMessage(s, i, "Tidak ada trivia yang berjalan di channel ini.")
		case errors.Is(err, arcade.ErrInvalidChoice):
			return RespondWithEphemeralMessage(s, i, "Pilih salah satu dari A, B, C, atau D.")
		default:
			return RespondWithError(s, i, fmt.Sprintf("Gagal memproses jawaban: %v", err))
		}
	}

	if !out.Correct {
		return RespondWithMessage(s, i, fmt.Sprintf("❌ Salah, <@%s>. Coba lagi!", user.ID))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🎉 Benar, <@%s>! +%d poin. Total: **%d**.", user.ID, out.Award, out.NewBalance))
}

// SambungKataCommand handles the /sambung_kata command
type SambungKataCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewSambungKataCommand creates a new sambung_kata command handler
func NewSambungKataCommand(arcadeService arcade.Service) *SambungKataCommand {
	return &SambungKataCommand{
		BaseCommand: BaseCommand{
			Name:        "sambung_kata",
			Description: "Mulai game sambung kata di channel ini",
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the sambung_kata command
func (c *SambungKataCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.arcadeService.StartWordChain(ctx, &arcade.StartWordChainInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionAlreadyActive) {
			return RespondWithEphemeralMessage(s, i, "Sambung kata sudah berjalan di channel ini.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal memulai sambung kata: %v", err))
	}

	seedRunes := []rune(out.Seed)
	next := string(seedRunes[len(seedRunes)-1])

	return RespondWithMessage(s, i, fmt.Sprintf("🔗 Sambung kata dimulai! Kata pertama: **%s**.\nKata berikutnya mulai dengan **%s**. Kirim dengan `/kata`.", out.Seed, next))
}

// KataCommand handles the /kata command
type KataCommand struct {
	BaseCommand
	arcadeService    arcade.Service
	messagingService messaging.Service
}

// NewKataCommand creates a new kata command handler
func NewKataCommand(arcadeService arcade.Service, messagingService messaging.Service) *KataCommand {
	return &KataCommand{
		BaseCommand: BaseCommand{
			Name:        "kata",
			Description: "Sambung kata yang sedang berjalan",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kata",
					Description: "Kata sambungan Anda",
					Required:    true,
				},
			},
		},
		arcadeService:    arcadeService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the kata command
func (c *KataCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	options := optionMap(i.ApplicationCommandData())
	word := options["kata"].StringValue()

	out, err := c.arcadeService.SubmitChainWord(ctx, &arcade.SubmitChainWordInput{
		ChannelID: i.ChannelID,
		UserID:    user.ID,
		Word:      word,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionNotFound) {
			return RespondWithEphemeralMessage(s, i, "Tidak ada sambung kata yang berjalan. Mulai dengan `/sambung_kata`.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal memproses kata: %v", err))
	}

	letter := out.NextLetter
	if !out.Accepted {
		letter = out.RequiredLetter
	}

	msg, err := c.messagingService.GetChainResultMessage(ctx, &messaging.GetChainResultMessageInput{
		PlayerMention: "<@" + user.ID + ">",
		Word:          out.Word,
		NextLetter:    letter,
		Award:         out.Award,
		Accepted:      out.Accepted,
		Violation:     string(out.Violation),
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Gagal membuat pesan: %v", err))
	}

	return RespondWithMessage(s, i, msg.Message)
}

// SambungStopCommand handles the /sambung_stop command
type SambungStopCommand struct {
	BaseCommand
	arcadeService arcade.Service
}

// NewSambungStopCommand creates a new sambung_stop command handler
func NewSambungStopCommand(arcadeService arcade.Service) *SambungStopCommand {
	return &SambungStopCommand{
		BaseCommand: BaseCommand{
			Name:        "sambung_stop",
			Description: "Hentikan game sambung kata",
		},
		arcadeService: arcadeService,
	}
}

// Handle processes a Discord interaction for the sambung_stop command
func (c *SambungStopCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	err := c.arcadeService.StopWordChain(ctx, &arcade.StopWordChainInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, arcade.ErrSessionNotFound) {
			return RespondWithEphemeralMessage(s, i, "Tidak ada sambung kata yang berjalan.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal menghentikan game: %v", err))
	}

	return RespondWithMessage(s, i, "🛑 Sambung kata dihentikan. Terima kasih sudah main!")
}

// BlackjackCommand handles the /blackjack command
type BlackjackCommand struct {
	BaseCommand
	casinoService casino.Service
}

// NewBlackjackCommand creates a new blackjack command handler
func NewBlackjackCommand(casinoService casino.Service) *BlackjackCommand {
	return &BlackjackCommand{
		BaseCommand: BaseCommand{
			Name:        "blackjack",
			Description: "Bermain Blackjack melawan Dealer",
		},
		casinoService: casinoService,
	}
}

// Handle processes a Discord interaction for the blackjack command
func (c *BlackjackCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	out, err := c.casinoService.StartBlackjack(ctx, &casino.StartBlackjackInput{
		PlayerID: user.ID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Gagal memulai blackjack: %v", err))
	}

	if out.Over {
		embed := renderBlackjackFinalEmbed(user.Username, out.PlayerHand, out.DealerHand, out.PlayerTotal, out.DealerTotal, out.Outcome)
		return RespondWithEmbed(s, i, embed)
	}

	embed := renderBlackjackTableEmbed(user.Username, out.PlayerHand, out.DealerUpCards, out.PlayerTotal, out.PlayerSoft)
	return RespondWithEmbedAndButtons(s, i, embed, blackjackButtons(out.RoundID))
}

// QQCommand handles the /qq command
type QQCommand struct {
	BaseCommand
	casinoService casino.Service
}

// NewQQCommand creates a new qq command handler
func NewQQCommand(casinoService casino.Service) *QQCommand {
	return &QQCommand{
		BaseCommand: BaseCommand{
			Name:        "qq",
			Description: "Bermain minigame kartu QQ (3 kartu)",
		},
		casinoService: casinoService,
	}
}

// Handle processes a Discord interaction for the qq command
func (c *QQCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	out, err := c.casinoService.PlayQQ(ctx, &casino.PlayQQInput{
		PlayerID: user.ID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Gagal memulai QQ: %v", err))
	}

	return RespondWithEmbed(s, i, renderQQEmbed(user.Username, out))
}
