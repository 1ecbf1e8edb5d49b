package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/andikahmad/warkop/internal/services/debate"
	"github.com/bwmarrin/discordgo"
)

// DebatMulaiCommand handles the /debat_mulai command
type DebatMulaiCommand struct {
	BaseCommand
	debateService debate.Service
}

// NewDebatMulaiCommand creates a new debat_mulai command handler
func NewDebatMulaiCommand(debateService debate.Service) *DebatMulaiCommand {
	return &DebatMulaiCommand{
		BaseCommand: BaseCommand{
			Name:        "debat_mulai",
			Description: "Buat sesi debat terstruktur dengan timer giliran",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "detik",
					Description: "Durasi tiap giliran dalam detik (minimal 10)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "round",
					Description: "Jumlah round (minimal 1)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "topik",
					Description: "Topik yang didebatkan",
					Required:    true,
				},
			},
		},
		debateService: debateService,
	}
}

// Handle processes a Discord interaction for the debat_mulai command
func (c *DebatMulaiCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	options := optionMap(i.ApplicationCommandData())
	turnSeconds := int(options["detik"].IntValue())
	rounds := int(options["round"].IntValue())
	topic := options["topik"].StringValue()

	_, err := c.debateService.Define(ctx, &debate.DefineInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		Topic:       topic,
		TurnSeconds: turnSeconds,
		Rounds:      rounds,
	})
	if err != nil {
		if errors.Is(err, debate.ErrInvalidSchedule) {
			return RespondWithEphemeralMessage(s, i, "Minimal `detik=10` dan `round>=1`.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal membuat sesi debat: %v", err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"🧠 Sesi debat dibuat.\nTopik: **%s**\nTurn: **%ds** • Rounds: **%d**\nJoin dengan `/debat_join`, lalu start `/debat_start`.",
		topic, turnSeconds, rounds,
	))
}

// DebatJoinCommand handles the /debat_join command
type DebatJoinCommand struct {
	BaseCommand
	debateService debate.Service
}

// NewDebatJoinCommand creates a new debat_join command handler
func NewDebatJoinCommand(debateService debate.Service) *DebatJoinCommand {
	return &DebatJoinCommand{
		BaseCommand: BaseCommand{
			Name:        "debat_join",
			Description: "Gabung ke salah satu sisi debat",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "sisi",
					Description: "Sisi yang dibela",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "PRO", Value: "pro"},
						{Name: "KONTRA", Value: "kontra"},
					},
				},
			},
		},
		debateService: debateService,
	}
}

// Handle processes a Discord interaction for the debat_join command
func (c *DebatJoinCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	options := optionMap(i.ApplicationCommandData())
	side := options["sisi"].StringValue()

	out, err := c.debateService.Join(ctx, &debate.JoinInput{
		ChannelID: i.ChannelID,
		UserID:    user.ID,
		Side:      side,
	})
	if err != nil {
		switch {
		case errors.Is(err, debate.ErrNoSession):
			return RespondWithEphemeralMessage(s, i, "Belum ada sesi debat. Gunakan `/debat_mulai`.")
		case errors.Is(err, debate.ErrAlreadyRunning):
			return RespondWithEphemeralMessage(s, i, "Debat sudah berjalan, tidak bisa join.")
		case errors.Is(err, debate.ErrInvalidSide):
			return RespondWithEphemeralMessage(s, i, "Pilih sisi: `pro` atau `kontra`.")
		default:
			return RespondWithError(s, i, fmt.Sprintf("Gagal join debat: %v", err))
		}
	}

	return RespondWithMessage(s, i, fmt.Sprintf("✅ <@%s> masuk sisi **%s**.", user.ID, out.Side))
}

// DebatStartCommand handles the /debat_start command
type DebatStartCommand struct {
	BaseCommand
	debateService debate.Service
}

// NewDebatStartCommand creates a new debat_start command handler
func NewDebatStartCommand(debateService debate.Service) *DebatStartCommand {
	return &DebatStartCommand{
		BaseCommand: BaseCommand{
			Name:        "debat_start",
			Description: "Jalankan timer giliran debat",
		},
		debateService: debateService,
	}
}

// Handle processes a Discord interaction for the debat_start command
func (c *DebatStartCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.debateService.Start(ctx, &debate.StartInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		switch {
		case errors.Is(err, debate.ErrNoSession):
			return RespondWithEphemeralMessage(s, i, "Belum ada sesi debat. Gunakan `/debat_mulai`.")
		case errors.Is(err, debate.ErrRosterEmpty):
			return RespondWithEphemeralMessage(s, i, "Kedua sisi harus punya minimal 1 peserta.")
		default:
			return RespondWithError(s, i, fmt.Sprintf("Gagal menjalankan debat: %v", err))
		}
	}

	if out.Replaced {
		return RespondWithMessage(s, i, "🚀 Timer debat di-restart dari awal.")
	}

	return RespondWithMessage(s, i, "🚀 Timer debat dijalankan.")
}

// DebatPoinCommand handles the /debat_poin command
type DebatPoinCommand struct {
	BaseCommand
	debateService debate.Service
}

// NewDebatPoinCommand creates a new debat_poin command handler
func NewDebatPoinCommand(debateService debate.Service) *DebatPoinCommand {
	return &DebatPoinCommand{
		BaseCommand: BaseCommand{
			Name:        "debat_poin",
			Description: "Catat poin argumen untuk sisi Anda",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "poin",
					Description: "Ringkasan argumen",
					Required:    true,
				},
			},
		},
		debateService: debateService,
	}
}

// Handle processes a Discord interaction for the debat_poin command
func (c *DebatPoinCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	user := interactionUser(i)

	options := optionMap(i.ApplicationCommandData())
	note := options["poin"].StringValue()

	out, err := c.debateService.LogPoint(ctx, &debate.LogPointInput{
		ChannelID: i.ChannelID,
		UserID:    user.ID,
		Note:      note,
	})
	if err != nil {
		switch {
		case errors.Is(err, debate.ErrNoSession):
			return RespondWithEphemeralMessage(s, i, "Belum ada sesi debat.")
		case errors.Is(err, debate.ErrNotParticipant):
			return RespondWithEphemeralMessage(s, i, "Kamu belum join sisi debat.")
		default:
			return RespondWithError(s, i, fmt.Sprintf("Gagal mencatat poin: %v", err))
		}
	}

	return RespondWithMessage(s, i, fmt.Sprintf("📝 Poin %s dicatat dari <@%s>: %s", out.Side, user.ID, note))
}

// DebatRingkasCommand handles the /debat_ringkas command
type DebatRingkasCommand struct {
	BaseCommand
	debateService debate.Service
}

// NewDebatRingkasCommand creates a new debat_ringkas command handler
func NewDebatRingkasCommand(debateService debate.Service) *DebatRingkasCommand {
	return &DebatRingkasCommand{
		BaseCommand: BaseCommand{
			Name:        "debat_ringkas",
			Description: "Lihat ringkasan debat di channel ini",
		},
		debateService: debateService,
	}
}

// Handle processes a Discord interaction for the debat_ringkas command
func (c *DebatRingkasCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	out, err := c.debateService.Summary(ctx, &debate.SummaryInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, debate.ErrNoSession) {
			return RespondWithEphemeralMessage(s, i, "Belum ada sesi debat.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal membaca ringkasan: %v", err))
	}

	return RespondWithEmbed(s, i, renderDebateSummaryEmbed(out))
}

// DebatStopCommand handles the /debat_stop command
type DebatStopCommand struct {
	BaseCommand
	debateService debate.Service
}

// NewDebatStopCommand creates a new debat_stop command handler
func NewDebatStopCommand(debateService debate.Service) *DebatStopCommand {
	return &DebatStopCommand{
		BaseCommand: BaseCommand{
			Name:        "debat_stop",
			Description: "Hentikan dan reset sesi debat",
		},
		debateService: debateService,
	}
}

// Handle processes a Discord interaction for the debat_stop command
func (c *DebatStopCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	err := c.debateService.Stop(ctx, &debate.StopInput{
		ChannelID: i.ChannelID,
	})
	if err != nil {
		if errors.Is(err, debate.ErrNoSession) {
			return RespondWithEphemeralMessage(s, i, "Tidak ada sesi debat aktif.")
		}
		return RespondWithError(s, i, fmt.Sprintf("Gagal menghentikan debat: %v", err))
	}

	return RespondWithMessage(s, i, "🛑 Sesi debat dihentikan dan direset.")
}
