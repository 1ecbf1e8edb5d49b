package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andikahmad/warkop/internal/services/arcade"
	"github.com/andikahmad/warkop/internal/services/casino"
	"github.com/andikahmad/warkop/internal/services/debate"
	"github.com/andikahmad/warkop/internal/services/economy"
	"github.com/andikahmad/warkop/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Button custom ID prefixes; the round ID rides after the colon
const (
	ButtonBlackjackHit   = "bj_hit"
	ButtonBlackjackStand = "bj_stand"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	logger     zerolog.Logger

	economyService   economy.Service
	arcadeService    arcade.Service
	casinoService    casino.Service
	debateService    debate.Service
	messagingService messaging.Service

	config *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the pre-built Discord session; the bot registers its
	// handlers on it and owns opening and closing it
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Logger receives command lifecycle events
	Logger zerolog.Logger

	// Services
	EconomyService   economy.Service
	ArcadeService    arcade.Service
	CasinoService    casino.Service
	DebateService    debate.Service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.EconomyService == nil {
		return nil, errors.New("economy service cannot be nil")
	}

	if cfg.ArcadeService == nil {
		return nil, errors.New("arcade service cannot be nil")
	}

	if cfg.CasinoService == nil {
		return nil, errors.New("casino service cannot be nil")
	}

	if cfg.DebateService == nil {
		return nil, errors.New("debate service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	bot := &Bot{
		session:          cfg.Session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		logger:           cfg.Logger,
		economyService:   cfg.EconomyService,
		arcadeService:    cfg.ArcadeService,
		casinoService:    cfg.CasinoService,
		debateService:    cfg.DebateService,
		messagingService: cfg.MessagingService,
		config:           cfg,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers all commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewPoinCommand(b.economyService),
		NewLeaderboardCommand(b.economyService),
		NewHeistCommand(b.economyService, b.messagingService),
		NewTebakKataCommand(b.arcadeService),
		NewJawabKataCommand(b.arcadeService, b.messagingService),
		NewTebakGambarCommand(b.arcadeService),
		NewJawabGambarCommand(b.arcadeService, b.messagingService),
		NewClueCommand(b.arcadeService),
		NewSurrendCommand(b.arcadeService),
		NewTriviaCommand(b.arcadeService),
		NewJawabTriviaCommand(b.arcadeService),
		NewSambungKataCommand(b.arcadeService),
		NewKataCommand(b.arcadeService, b.messagingService),
		NewSambungStopCommand(b.arcadeService),
		NewBlackjackCommand(b.casinoService),
		NewQQCommand(b.casinoService),
		NewDebatMulaiCommand(b.debateService),
		NewDebatJoinCommand(b.debateService),
		NewDebatStartCommand(b.debateService),
		NewDebatPoinCommand(b.debateService),
		NewDebatRingkasCommand(b.debateService),
		NewDebatStopCommand(b.debateService),
	}

	for _, h := range handlers {
		if err := b.RegisterCommand(h); err != nil {
			return fmt.Errorf("failed to register %s command: %w", h.GetName(), err)
		}
	}

	b.logger.Info().Int("commands", len(handlers)).Msg("bot is now running")
	return nil
}

// Stop deregisters commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn().Err(err).Str("command", cmdName).Msg("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Debug().Str("command", cmd.GetName()).Str("id", createdCmd.ID).Msg("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error().Err(err).Str("command", name).Msg("command failed")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error().Err(err).Msg("component interaction failed")
		}
	}
}

// handleComponentInteraction handles the blackjack Hit and Stand buttons
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	action, roundID, found := strings.Cut(customID, ":")
	if !found {
		return nil
	}

	switch action {
	case ButtonBlackjackHit:
		return b.handleBlackjackHit(s, i, roundID)
	case ButtonBlackjackStand:
		return b.handleBlackjackStand(s, i, roundID)
	}

	return nil
}

// handleBlackjackHit draws a card and updates the table message
func (b *Bot) handleBlackjackHit(s *discordgo.Session, i *discordgo.InteractionCreate, roundID string) error {
	ctx := context.Background()
	user := interactionUser(i)

	out, err := b.casinoService.Hit(ctx, &casino.HitInput{
		RoundID:  roundID,
		PlayerID: user.ID,
	})
	if err != nil {
		return respondToRoundError(s, i, err)
	}

	if out.Over {
		embed := renderBlackjackFinalEmbed(user.Username, out.PlayerHand, out.DealerHand, out.PlayerTotal, out.DealerTotal, out.Outcome)
		return updateWithFinalEmbed(s, i, embed)
	}

	// The dealer's first card stays hidden until the showdown
	embed := renderBlackjackTableEmbed(user.Username, out.PlayerHand, out.DealerUpCards, out.PlayerTotal, out.PlayerSoft)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: blackjackButtons(roundID)},
			},
		},
	})
}

// handleBlackjackStand settles the round and updates the table message
func (b *Bot) handleBlackjackStand(s *discordgo.Session, i *discordgo.InteractionCreate, roundID string) error {
	ctx := context.Background()
	user := interactionUser(i)

	out, err := b.casinoService.Stand(ctx, &casino.StandInput{
		RoundID:  roundID,
		PlayerID: user.ID,
	})
	if err != nil {
		return respondToRoundError(s, i, err)
	}

	embed := renderBlackjackFinalEmbed(user.Username, out.PlayerHand, out.DealerHand, out.PlayerTotal, out.DealerTotal, out.Outcome)
	return updateWithFinalEmbed(s, i, embed)
}

// respondToRoundError answers a button click whose round is gone or
// owned by someone else
func respondToRoundError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch {
	case errors.Is(err, casino.ErrRoundNotFound):
		return RespondWithEphemeralMessage(s, i, "Ronde ini sudah selesai. Mulai lagi dengan `/blackjack`.")
	case errors.Is(err, casino.ErrNotYourRound):
		return RespondWithEphemeralMessage(s, i, "Ini meja orang lain. Mulai ronde sendiri dengan `/blackjack`.")
	default:
		return RespondWithError(s, i, fmt.Sprintf("Gagal memproses aksi: %v", err))
	}
}

// updateWithFinalEmbed replaces the table message and strips the buttons
func updateWithFinalEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	})
}
