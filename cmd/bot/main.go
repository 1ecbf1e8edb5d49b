package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andikahmad/warkop/internal/common/clock"
	"github.com/andikahmad/warkop/internal/common/uuid"
	"github.com/andikahmad/warkop/internal/handlers/discord"
	"github.com/andikahmad/warkop/internal/repositories/ledger"
	"github.com/andikahmad/warkop/internal/services/arcade"
	"github.com/andikahmad/warkop/internal/services/casino"
	debateService "github.com/andikahmad/warkop/internal/services/debate"
	"github.com/andikahmad/warkop/internal/services/economy"
	"github.com/andikahmad/warkop/internal/services/messaging"
	"github.com/andikahmad/warkop/internal/words"
	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	// A missing .env is fine; the environment may carry everything
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		errLogger := zerolog.New(os.Stderr)
		errLogger.Fatal().Err(err).Msg("failed to parse config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to connect to Redis")
	}

	ledgerRepo, err := ledger.NewRedis(&ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create ledger repository")
	}

	systemClock := &clock.DefaultClock{}

	economySvc, err := economy.New(&economy.Config{
		LedgerRepo: ledgerRepo,
		Clock:      systemClock,
		Logger:     logger.With().Str("service", "economy").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create economy service")
	}

	generator := words.New(&words.Config{})

	arcadeSvc, err := arcade.New(&arcade.Config{
		Economy:   economySvc,
		Generator: generator,
		Logger:    logger.With().Str("service", "arcade").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create arcade service")
	}

	casinoSvc, err := casino.New(&casino.Config{
		UUID:   uuid.New(),
		Logger: logger.With().Str("service", "casino").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create casino service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	debateSvc, err := debateService.New(&debateService.Config{
		Clock:    systemClock,
		Notifier: discord.NewChannelNotifier(session),
		Logger:   logger.With().Str("service", "debate").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create debate service")
	}

	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		Logger:           logger.With().Str("component", "bot").Logger(),
		EconomyService:   economySvc,
		ArcadeService:    arcadeSvc,
		CasinoService:    casinoSvc,
		DebateService:    debateSvc,
		MessagingService: messagingSvc,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start bot")
	}

	logger.Info().Msg("bot is running, press CTRL-C to exit")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("failed to stop bot cleanly")
	}

	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close Redis client")
	}
}
