package app

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"esportsbot/config"
	"esportsbot/logger"
)

// Module - общие зависимости всех ботов; вариант бота добавляет каждый cmd
var Module = fx.Options(
	fx.Provide(LoadConfig),
	fx.Provide(NewLogger),
	fx.Provide(NewBotAPI),
)

func LoadConfig() (*config.Config, error) {
	return config.Load(logger.New())
}

func NewLogger(cfg *config.Config) zerolog.Logger {
	return logger.FromString(logger.New(), cfg.LogLevel)
}

func NewBotAPI(cfg *config.Config, log zerolog.Logger) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	api.Debug = cfg.TelegramDebug

	log.Info().Str("account", api.Self.UserName).Msg("authorized on telegram")
	return api, nil
}
