package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/andikahmad/warkop/internal/services/economy"
	"github.com/andikahmad/warkop/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// PoinCommand handles the /poin command
type PoinCommand struct {
	BaseCommand
	economyService economy.Service
}

// NewPoinCommand creates a new poin command handler
func NewPoinCommand(economyService economy.Service) *PoinCommand {
	return &PoinCommand{
		BaseCommand: BaseCommand{
			Name:        "poin",
			Description: "Cek jumlah poin Anda",
		},
		economyService: economyService,
	}
}

// Handle processes a Discord interaction for the poin command
func (c *PoinCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	out, err := c.economyService.GetBalance(ctx, &economy.GetBalanceInput{
		UserID: user.ID,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Gagal membaca poin: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("💎 <@%s> punya **%d** poin.", user.ID, out.Points))
}

// LeaderboardCommand handles the /leaderboard command
type LeaderboardCommand struct {
	BaseCommand
	economyService economy.Service
}

// NewLeaderboardCommand creates a new leaderboard command handler
func NewLeaderboardCommand(economyService economy.Service) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Ranking poin server",
		},
		economyService: economyService,
	}
}

// Handle processes a Discord interaction for the leaderboard command
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.economyService.GetLeaderboard(ctx, &economy.GetLeaderboardInput{
		Limit: 10,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Gagal membaca leaderboard: %v", err))
	}

	return RespondWithEmbed(s, i, renderLeaderboardEmbed(out.Entries))
}

// HeistCommand handles the /heist command
type HeistCommand struct {
	BaseCommand
	economyService   economy.Service
	messagingService messaging.Service
}

// NewHeistCommand creates a new heist command handler
func NewHeistCommand(economyService economy.Service, messagingService messaging.Service) *HeistCommand {
	return &HeistCommand{
		BaseCommand: BaseCommand{
			Name:        "heist",
			Description: "Coba curi poin dari user lain (ada cooldown)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "target",
					Description: "User yang mau dirampok",
					Required:    true,
				},
			},
		},
		economyService:   economyService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the heist command
func (c *HeistCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	options := optionMap(i.ApplicationCommandData())
	target := options["target"].UserValue(s)
	if target == nil {
		return RespondWithError(s, i, "Target tidak ditemukan.")
	}

	out, err := c.economyService.Heist(ctx, &economy.HeistInput{
		RobberID: user.ID,
		TargetID: target.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, economy.ErrHeistSelfTarget):
			return RespondWithEphemeralMessage(s, i, "🙃 Merampok diri sendiri? Cari target lain.")
		case errors.Is(err, economy.ErrHeistOnCooldown):
			remaining, cdErr := c.economyService.CooldownRemaining(ctx, &economy.CooldownRemainingInput{
				UserID: user.ID,
				Key:    economy.HeistCooldownKey,
			})
			if cdErr != nil {
				return RespondWithEphemeralMessage(s, i, "⏳ Masih cooldown. Sabar dulu.")
			}
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("⏳ Masih cooldown. Coba lagi dalam **%d detik**.", remaining.Seconds))
		default:
			return RespondWithError(s, i, fmt.Sprintf("Heist gagal dijalankan: %v", err))
		}
	}

	msg, err := c.messagingService.GetHeistResultMessage(ctx, &messaging.GetHeistResultMessageInput{
		RobberMention: "<@" + user.ID + ">",
		TargetMention: "<@" + target.ID + ">",
		Amount:        out.Amount,
		Success:       out.Success,
	})
	if err != nil {
		return RespondWithError(s, i, fmt.Sprintf("Heist selesai tapi gagal membuat pesan: %v", err))
	}

	return RespondWithMessage(s, i, msg.Message)
}
