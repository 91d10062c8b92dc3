package app

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"esportsbot/bots"
	"esportsbot/config"
	"esportsbot/handlers"
)

// NewDispatcher собирает цепочку обработчиков для варианта бота
func NewDispatcher(sender handlers.Sender, variant *bots.Variant, log zerolog.Logger) *handlers.BotHandler {
	botHandler := handlers.NewBotHandler(sender, log.With().Str("bot", variant.Name).Logger())
	matchesHandler := handlers.NewMatchesHandler(botHandler, variant.Settings)

	botHandler.AddHandler(handlers.NewCommandHandler(matchesHandler, variant.Settings).CommandHandler)
	botHandler.AddHandler(handlers.NewCallbackHandler(botHandler, matchesHandler, variant.Settings).CallbackHandler)
	botHandler.AddHandler(matchesHandler.MatchesHandler)

	return botHandler
}

func Run(lc fx.Lifecycle, api *tgbotapi.BotAPI, variant *bots.Variant, cfg *config.Config, log zerolog.Logger) {
	botHandler := NewDispatcher(api, variant, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			u := tgbotapi.NewUpdate(0)
			u.Timeout = cfg.PollTimeout

			updates := api.GetUpdatesChan(u)
			go func() {
				defer close(done)
				botHandler.Run(ctx, updates)
			}()

			log.Info().Str("bot", variant.Name).Msg("bot is running")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Info().Str("bot", variant.Name).Msg("stopping bot")
			api.StopReceivingUpdates()
			cancel()

			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			log.Info().Str("bot", variant.Name).Msg("bot stopped")
			return nil
		},
	})
}
